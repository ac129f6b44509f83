package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// VariantResponse one configured aging report
type VariantResponse struct {
	Name        string    `json:"name"`
	DateColumn  string    `json:"dateColumn"`
	DateHeader  string    `json:"dateHeader"`
	RequireDone bool      `json:"requireDone"`
	Labels      [3]string `json:"labels"`
	UpperBounds [2]int    `json:"upperBounds"`
	Default     bool      `json:"default"`
}

// ListVariants lists the configured aging variants
// GET /api/variants
func (h *Handler) ListVariants(c *gin.Context) {
	def, _ := h.cfg.Report.Variant("")

	out := make([]VariantResponse, 0, len(h.cfg.Report.Variants))
	for _, v := range h.cfg.Report.Variants {
		out = append(out, VariantResponse{
			Name:        v.Name,
			DateColumn:  v.DateColumn,
			DateHeader:  v.DateHeader,
			RequireDone: v.RequireDone,
			Labels:      v.Labels,
			UpperBounds: v.UpperBounds,
			Default:     v.Name == def.Name,
		})
	}
	c.JSON(http.StatusOK, gin.H{"variants": out})
}
