// Package api provides the REST API server for alankar
package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/james-see/alankar/pkg/alankar"
	"github.com/james-see/alankar/pkg/config"
	"github.com/james-see/alankar/pkg/export"
	"github.com/james-see/alankar/pkg/logger"
	"github.com/james-see/alankar/pkg/swaram"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Alankar API
// @version 1.0
// @description API for generating alankar exercise sequences
// @host localhost:8080
// @BasePath /api/v1

// Server holds the handlers' shared configuration
type Server struct {
	cfg *config.Config
}

// GenerateRequest is the body of the generation endpoints
type GenerateRequest struct {
	Scale     string `json:"scale" example:"SRGMPDN"`
	Preset    string `json:"preset" example:"bhupali"`
	Pattern   string `json:"pattern" binding:"required" example:"SGMDN"`
	Direction string `json:"direction" example:"both"`
	ShortLoop bool   `json:"short_loop"`
}

// GenerateResponse lists the formatted patterns of each requested section
type GenerateResponse struct {
	Scale      string   `json:"scale"`
	Pattern    string   `json:"pattern"`
	Ascending  []string `json:"ascending,omitempty"`
	Descending []string `json:"descending,omitempty"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// NewRouter builds the gin engine with all routes and middleware
func NewRouter(cfg *config.Config) *gin.Engine {
	s := &Server{cfg: cfg}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true, Timeout: 2 * time.Second}))
	r.Use(requestTracking())
	r.Use(corsMiddleware())

	r.GET("/health", healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/presets", listPresets)
		v1.POST("/alankars", s.handleGenerate)
		v1.POST("/alankars/midi", s.handleMIDI)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// StartServer starts the API server on the configured port
func StartServer(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Info("Starting API server", logger.Fields{"port": cfg.Port, "environment": cfg.Environment})
	return NewRouter(cfg).Run(fmt.Sprintf(":%d", cfg.Port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestTracking tags every request with an ID and logs its completion
func requestTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		fields := logger.WithContext(c)
		fields["status_code"] = c.Writer.Status()
		fields["duration_ms"] = time.Since(start).Milliseconds()

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed with server error", errors.New(http.StatusText(status)), fields)
		case status >= http.StatusBadRequest:
			logger.Warn("Request failed with client error", fields)
		default:
			logger.Info("Request completed", fields)
		}
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "alankar",
	})
}

// listPresets godoc
// @Summary List raag presets
// @Description Returns the built-in named scales
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]alankar.Preset
// @Router /api/v1/presets [get]
func listPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"presets": alankar.Presets(),
	})
}

// handleGenerate godoc
// @Summary Generate an alankar
// @Description Shift a seed pattern through a scale and return every step
// @Tags generate
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Scale, seed and direction"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/alankars [post]
func (s *Server) handleGenerate(c *gin.Context) {
	res, ok := s.build(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Scale:      res.Scale.String(),
		Pattern:    res.Seed.String(),
		Ascending:  res.Ascending.Strings(),
		Descending: res.Descending.Strings(),
	})
}

// handleMIDI godoc
// @Summary Generate an alankar as MIDI
// @Description Same request as /alankars, answered with a Standard MIDI File
// @Tags generate
// @Accept json
// @Produce audio/midi
// @Param request body GenerateRequest true "Scale, seed and direction"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/alankars/midi [post]
func (s *Server) handleMIDI(c *gin.Context) {
	res, ok := s.build(c)
	if !ok {
		return
	}

	data, err := export.NewMIDIExporter(s.cfg.Tonic, s.cfg.Tempo).GenerateMIDI(res)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "midi_range"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=alankar.mid")
	c.Data(http.StatusOK, "audio/midi", data)
}

// build binds the request and runs generation, writing the error response
// itself when anything fails
func (s *Server) build(c *gin.Context) (*alankar.Result, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_request"})
		return nil, false
	}

	mode, err := alankar.ParseMode(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_request"})
		return nil, false
	}

	scale := req.Scale
	if scale == "" && req.Preset == "" {
		scale = s.cfg.Scale
	}

	res, err := alankar.Build(alankar.Options{
		Scale:     scale,
		Preset:    req.Preset,
		Pattern:   req.Pattern,
		Mode:      mode,
		ShortLoop: req.ShortLoop,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: errorKind(err)})
		return nil, false
	}
	return res, true
}

func errorKind(err error) string {
	var (
		scaleErr *swaram.InvalidScaleError
		noteErr  *swaram.InvalidNoteError
		notIn    *swaram.PatternNotInScaleError
	)
	switch {
	case errors.As(err, &scaleErr):
		return "invalid_scale"
	case errors.As(err, &noteErr):
		return "invalid_note"
	case errors.As(err, &notIn):
		return "not_in_scale"
	case errors.Is(err, swaram.ErrEmptyPattern):
		return "empty_pattern"
	default:
		return "invalid_request"
	}
}
