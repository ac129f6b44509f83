package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse service status
type StatusResponse struct {
	Version          string `json:"version"`
	DefaultVariant   string `json:"defaultVariant"`
	HeaderMarker     string `json:"headerMarker"`
	DateLayout       string `json:"dateLayout"`
	Timezone         string `json:"timezone"`
	PendingDownloads int    `json:"pendingDownloads"`
}

// GetStatus reports version and configured defaults
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Version:          h.version,
		DefaultVariant:   h.cfg.Report.DefaultVariant,
		HeaderMarker:     h.cfg.Report.HeaderMarker,
		DateLayout:       h.cfg.Report.DateLayout,
		Timezone:         h.cfg.Report.Timezone,
		PendingDownloads: h.downloads.pending(),
	})
}
