package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/runner"
)

// Handler report API
type Handler struct {
	cfg       *config.AppConfig
	runner    *runner.Runner
	downloads *downloadStore
	log       zerolog.Logger
	version   string
}

// NewHandler creates the report API handler
func NewHandler(cfg *config.AppConfig, r *runner.Runner, log zerolog.Logger, version string) *Handler {
	h := &Handler{
		cfg:       cfg,
		runner:    r,
		downloads: newDownloadStore(),
		log:       log.With().Str("component", "api").Logger(),
		version:   version,
	}
	h.downloads.onExpire = r.Discard
	return h
}

// RegisterRoutes registers the API routes under router
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.GET("/variants", h.ListVariants)

	router.POST("/report", h.CreateReport)
	router.POST("/report/stream", h.StreamReport)
	router.GET("/report/download/:token", h.DownloadReport)
}
