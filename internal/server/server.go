// Package server exposes the order pipeline over HTTP.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/processor"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server is the HTTP API around a processor pipeline
type Server struct {
	config   *Config
	router   *gin.Engine
	pipeline *processor.Pipeline
	logger   zerolog.Logger
}

// NewServer creates the API server over an already-wired pipeline
func NewServer(config *Config, pipeline *processor.Pipeline, logger zerolog.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		pipeline: pipeline,
		logger:   logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/orders", s.handleOrder)
		v1.POST("/invoices/:number/revision", s.handleRevision)
		v1.GET("/summary", s.handleSummary)
		v1.GET("/inventory", s.handleInventory)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	msg := &model.OrderMessage{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		BranchID:        req.BranchID,
		MessageType:     model.ChannelType(req.MessageType),
		Message:         req.Message,
		AudioTranscript: req.AudioTranscript,
		PromoCode:       req.PromoCode,
		SpecialNote:     req.SpecialNote,
	}

	result, err := s.pipeline.Process(msg)
	if err != nil {
		s.renderOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, OrderResponse{Invoice: result})
}

// renderOrderError maps rejection kinds onto HTTP statuses: malformed
// requests are 400, orders that parsed but cannot be billed are 422.
func (s *Server) renderOrderError(c *gin.Context, err error) {
	var oe *model.OrderError
	if !errors.As(err, &oe) {
		s.logger.Error().Err(err).Msg("order processing failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	status := http.StatusUnprocessableEntity
	if oe.Kind == model.RejectionEmptyInput || oe.Kind == model.RejectionUnsupportedChannel {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Error: oe.Message, Kind: string(oe.Kind), Input: oe.Input})
}

func (s *Server) handleRevision(c *gin.Context) {
	var req RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ack := s.pipeline.RequestRevision(c.Param("number"), req.Message)
	c.JSON(http.StatusAccepted, ack)
}

func (s *Server) handleSummary(c *gin.Context) {
	branch := c.Query("branch_id")
	summary, err := s.pipeline.DailySummary(branch)
	if err != nil {
		s.logger.Error().Err(err).Msg("daily summary failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, SummaryResponse{BranchID: branch, Summary: summary})
}

func (s *Server) handleInventory(c *gin.Context) {
	inventory, err := s.pipeline.Inventory()
	if err != nil {
		s.logger.Error().Err(err).Msg("inventory read failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, InventoryResponse{Inventory: inventory})
}
