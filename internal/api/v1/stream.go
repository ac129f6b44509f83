package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/runner"
)

// StreamReport generates the report with SSE progress; the done event carries
// a one-shot download URL.
// POST /api/report/stream
func (h *Handler) StreamReport(c *gin.Context) {
	u, err := h.receiveUpload(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	defer h.removeUpload(u)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	send := func(event runner.Event) {
		b, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}

	for event := range h.runner.Stream(c.Request.Context(), u.runID, u.path, u.variant) {
		if event.Type == "done" {
			if result, ok := event.Data.(*runner.Result); ok {
				token := h.downloads.put(result, downloadTTL)
				event.Data = gin.H{
					"percent":     100,
					"runId":       result.RunID,
					"stats":       result.Stats,
					"days":        result.Report.Aging.Days,
					"downloadUrl": "/api/report/download/" + token,
					"expiresAt":   time.Now().Add(downloadTTL),
				}
			}
		}
		send(event)
	}
}

// DownloadReport sends a streamed run's workbook once
// GET /api/report/download/:token
func (h *Handler) DownloadReport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	result, ok := h.downloads.take(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link expired"})
		return
	}

	if _, err := os.Stat(result.ResultPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report file not found"})
		return
	}

	h.SendResult(c, result)
}
