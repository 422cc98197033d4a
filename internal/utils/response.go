package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicedetect/internal/model"
)

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, model.ErrorResponse{
		Status:  model.StatusError,
		Message: msg,
	})
}

// Abort writes an error body and stops the handler chain.
func Abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, model.ErrorResponse{
		Status:  model.StatusError,
		Message: msg,
	})
}
