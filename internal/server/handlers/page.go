package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/api/v1"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
)

//go:embed templates/index.html
var templateFiles embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

// Page the upload form
type Page struct {
	cfg *config.AppConfig
	api *v1.Handler
}

type pageData struct {
	Error          string
	HeaderMarker   string
	DefaultVariant string
	Variants       []config.VariantConfig
}

// NewPage creates the upload page handlers
func NewPage(cfg *config.AppConfig, api *v1.Handler) *Page {
	return &Page{cfg: cfg, api: api}
}

// RegisterRoutes registers GET and POST /
func (p *Page) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", p.Index)
	router.POST("/", p.Submit)
}

// Index renders the upload form
// GET /
func (p *Page) Index(c *gin.Context) {
	p.render(c, http.StatusOK, "")
}

// Submit processes the uploaded file and returns the workbook, or re-renders
// the form with the error message.
// POST /
func (p *Page) Submit(c *gin.Context) {
	result, err := p.api.Generate(c)
	if err != nil {
		status, _ := v1.ErrorStatus(err)
		p.render(c, status, err.Error())
		return
	}
	p.api.SendResult(c, result)
}

func (p *Page) render(c *gin.Context, status int, message string) {
	def, _ := p.cfg.Report.Variant("")
	data := pageData{
		Error:          message,
		HeaderMarker:   p.cfg.Report.HeaderMarker,
		DefaultVariant: def.Name,
		Variants:       p.cfg.Report.Variants,
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(c.Writer, data); err != nil {
		_ = c.Error(err)
	}
}
