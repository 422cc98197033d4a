package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicedetect/internal/apperr"
	"voicedetect/internal/audio"
	"voicedetect/internal/config"
	"voicedetect/internal/detector"
	"voicedetect/internal/logger"
	"voicedetect/internal/model"
	"voicedetect/internal/utils"
	"voicedetect/internal/validation"
)

const healthMessage = "AI Voice Detection API is live"

// DecoderFactory returns the decoder for an audio format.
type DecoderFactory func(format string) (audio.Decoder, error)

// AnalyzeFunc scores a decoded waveform.
type AnalyzeFunc func(audio.Waveform) (detector.Result, detector.Features)

// Handler serves the detection API.
type Handler struct {
	cfg        *config.Config
	log        *logger.Logger
	newDecoder DecoderFactory
	analyze    AnalyzeFunc
}

// Option customises a Handler.
type Option func(*Handler)

// WithDecoderFactory replaces the audio decoder lookup.
func WithDecoderFactory(f DecoderFactory) Option {
	return func(h *Handler) { h.newDecoder = f }
}

// WithAnalyzer replaces the scoring function.
func WithAnalyzer(f AnalyzeFunc) Option {
	return func(h *Handler) { h.analyze = f }
}

// NewHandler creates a Handler bound to cfg.
func NewHandler(cfg *config.Config, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		cfg:        cfg,
		log:        log.WithComponent("api"),
		newDecoder: audio.NewDecoder,
		analyze:    detector.Analyze,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	// Health check
	r.GET("/", h.healthCheck)
	r.GET("/health", h.healthCheck)

	api := r.Group("/api")
	api.Use(APIKeyAuth(h.cfg.APIKey), BodyLimit(h.cfg.MaxBodyBytes))
	{
		api.POST("/voice-detection", h.voiceDetection)
	}
}

// healthCheck returns server health status
func (h *Handler) healthCheck(c *gin.Context) {
	utils.Success(c, model.HealthResponse{
		Status:  model.StatusRunning,
		Message: healthMessage,
	})
}

// voiceDetection classifies a base64 MP3 clip as AI-generated or human.
func (h *Handler) voiceDetection(c *gin.Context) {
	log := h.log.WithFields(map[string]interface{}{"request_id": c.GetString(requestIDKey)})

	var body model.VoiceRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(c, log, apperr.PayloadTooLarge(tooLarge.Limit))
			return
		}
		h.respondError(c, log, apperr.BadRequest("invalid JSON body: "+err.Error()))
		return
	}
	if err := validation.Struct(body); err != nil {
		h.respondError(c, log, apperr.BadRequest(err.Error()))
		return
	}
	req := body.Request()

	result, err := h.detect(c.Request.Context(), log, req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	utils.Success(c, model.DetectionResponse{
		Status:          model.StatusSuccess,
		Language:        req.Language,
		Classification:  string(result.Classification),
		ConfidenceScore: detector.RoundConfidence(result.Confidence),
		Explanation:     result.Explanation,
	})
}

// detect validates req, decodes its audio and scores it.
func (h *Handler) detect(ctx context.Context, log *logger.Logger, req model.VoiceRequest) (detector.Result, error) {
	if !model.IsSupportedLanguage(req.Language) {
		return detector.Result{}, apperr.Validation(fmt.Sprintf("Unsupported language: %s", req.Language))
	}
	if !audio.IsSupportedFormat(req.AudioFormat) {
		return detector.Result{}, apperr.Validation(fmt.Sprintf("Unsupported audio format: %s", req.AudioFormat))
	}

	data, err := audio.DecodeBase64(req.AudioBase64)
	if err != nil {
		return detector.Result{}, apperr.Decode(err)
	}

	dec, err := h.newDecoder(req.AudioFormat)
	if err != nil {
		return detector.Result{}, apperr.Decode(err)
	}

	wave, err := dec.Decode(ctx, data)
	if err != nil {
		return detector.Result{}, apperr.Decode(err)
	}
	if wave == nil {
		return detector.Result{}, apperr.Decode(errors.New("decoder returned no audio"))
	}

	result, features, err := h.score(*wave)
	if err != nil {
		return detector.Result{}, apperr.Decode(err)
	}

	log.Debug("Clip scored", map[string]interface{}{
		"language":       req.Language,
		"duration_ms":    wave.Duration().Milliseconds(),
		"pitch_var":      features.PitchVariance,
		"flatness_mean":  features.FlatnessMean,
		"rms_var":        features.RMSVariance,
		"zcr_var":        features.ZCRVariance,
		"rules":          result.Fired,
		"confidence":     result.Confidence,
		"classification": result.Classification,
	})
	return result, nil
}

// score runs the analyzer, turning a panic inside feature extraction into
// an error so a malformed clip cannot take the request down.
func (h *Handler) score(w audio.Waveform) (res detector.Result, f detector.Features, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("feature extraction failed: %v", r)
		}
	}()
	res, f = h.analyze(w)
	return res, f, nil
}

func (h *Handler) respondError(c *gin.Context, log *logger.Logger, err error) {
	appErr := apperr.As(err)
	fields := map[string]interface{}{
		"code":   appErr.Code,
		"status": appErr.HTTPStatus,
	}
	if appErr.Code == apperr.CodeInternal {
		log.WithError(err).Error("Request failed", fields)
	} else {
		log.WithError(err).Warn("Request rejected", fields)
	}
	utils.Error(c, appErr.HTTPStatus, appErr.Message)
}
