package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/api/v1"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/logging"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/runner"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/server/handlers"
)

// maxUploadBytes memory budget for multipart parsing; larger parts spill to disk
const maxUploadBytes = 32 << 20

// Server HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	api    *v1.Handler
	page   *handlers.Page
	log    zerolog.Logger
}

// NewServer creates the server
func NewServer(cfg *config.AppConfig, log zerolog.Logger, version string) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := runner.New(cfg, log)
	api := v1.NewHandler(cfg, r, log, version)

	router := gin.New()
	router.MaxMultipartMemory = maxUploadBytes

	s := &Server{
		router: router,
		api:    api,
		page:   handlers.NewPage(cfg, api),
		log:    log,
	}
	s.setupRoutes()

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), logging.GinMiddleware(s.log))

	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	s.page.RegisterRoutes(s.router)

	api := s.router.Group("/api")
	{
		s.api.RegisterRoutes(api)
	}
}

// Handler the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
