// Package ui serves the filter over HTTP. Every request carries its own
// input file; nothing is kept between requests.
package ui

import (
	"xlfilter/app"
	"xlfilter/internal"
	"xlfilter/internal/config"
	"xlfilter/ui/middleware"

	"github.com/gin-gonic/gin"
)

// Server wires the filter service to HTTP routes
type Server struct {
	router  *gin.Engine
	service *app.FilterService
	config  config.Config
	logger  *internal.Logger
}

// NewServer creates a server with middleware and routes installed
func NewServer(cfg config.Config, service *app.FilterService, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router:  gin.New(),
		service: service,
		config:  cfg,
		logger:  logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api", middleware.LimitBody(s.config.Server.MaxUploadBytes))
	api.POST("/headers", s.handleHeaders)
	api.POST("/preview", s.handlePreview)
	api.POST("/filter", s.handleFilter)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting xlfilter on http://%s", addr)
	return s.router.Run(addr)
}
