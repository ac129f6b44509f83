package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/runner"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	// ErrNoFile the request carries no uploaded file
	ErrNoFile = errors.New("Harap unggah file.")
	// ErrUnsupportedFile the upload is not a workbook excelize can read
	ErrUnsupportedFile = errors.New("Format file tidak didukung, unggah file .xlsx.")
)

const (
	kindBadRequest = "bad_request"
)

var allowedExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// upload a received file stored in the run workspace
type upload struct {
	runID   string
	path    string
	variant string
}

// receiveUpload stores the multipart "file" field under a fresh run ID.
func (h *Handler) receiveUpload(c *gin.Context) (*upload, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil || fh.Filename == "" {
		return nil, ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !slices.Contains(allowedExtensions, ext) {
		return nil, ErrUnsupportedFile
	}

	runID := runner.NewRunID()
	path := h.runner.UploadPath(runID, fh.Filename)
	if err := c.SaveUploadedFile(fh, path); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	variant := c.PostForm("variant")
	if variant == "" {
		variant = c.Query("variant")
	}

	return &upload{
		runID:   runID,
		path:    path,
		variant: variant,
	}, nil
}

func (h *Handler) removeUpload(u *upload) {
	if err := os.Remove(u.path); err != nil && !os.IsNotExist(err) {
		h.log.Warn().Err(err).Str("path", u.path).Msg("remove upload failed")
	}
}

// Generate receives the uploaded file, runs the recap and removes the upload.
// The caller sends and then discards the result.
func (h *Handler) Generate(c *gin.Context) (*runner.Result, error) {
	u, err := h.receiveUpload(c)
	if err != nil {
		return nil, err
	}
	defer h.removeUpload(u)

	return h.runner.Process(c.Request.Context(), u.runID, u.path, u.variant)
}

// SendResult writes result as an attachment and discards it afterwards.
func (h *Handler) SendResult(c *gin.Context, result *runner.Result) {
	defer h.runner.Discard(result)

	c.Header("Content-Disposition", buildReportContentDisposition(result.Variant, result.Report.GeneratedAt))
	c.Header("Content-Type", xlsxContentType)
	c.File(result.ResultPath)
}

// ErrorStatus HTTP status and client-facing kind of a run error
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrNoFile), errors.Is(err, ErrUnsupportedFile):
		return http.StatusBadRequest, kindBadRequest
	}

	kind := runner.ErrorKind(err)
	switch kind {
	case runner.KindHeaderNotFound, runner.KindMissingColumn:
		return http.StatusUnprocessableEntity, kind
	case runner.KindUnknownVariant:
		return http.StatusBadRequest, kind
	default:
		return http.StatusInternalServerError, kind
	}
}

// CreateReport generates the report workbook synchronously
// POST /api/report
func (h *Handler) CreateReport(c *gin.Context) {
	result, err := h.Generate(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.SendResult(c, result)
}

func (h *Handler) abortWithError(c *gin.Context, err error) {
	status, kind := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Msg("report failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": kind})
}

// buildReportContentDisposition attachment name rekap-<variant>-<yyyy-mm-dd>.xlsx
func buildReportContentDisposition(variant string, at time.Time) string {
	if variant == "" {
		variant = "report"
	}
	name := fmt.Sprintf("rekap-%s-%s.xlsx", variant, at.Format("2006-01-02"))
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", name, url.PathEscape(name))
}
