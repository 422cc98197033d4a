package api

import (
	"github.com/gin-gonic/gin"

	"voicedetect/internal/config"
	"voicedetect/internal/logger"
)

// NewRouter builds the gin engine with the middleware stack and routes.
func NewRouter(cfg *config.Config, log *logger.Logger, opts ...Option) *gin.Engine {
	r := gin.New()
	r.Use(
		Recovery(log),
		RequestID(),
		RequestLogger(log),
		CORS(cfg.AllowedOrigins),
	)

	RegisterRoutes(r, NewHandler(cfg, log, opts...))
	return r
}
