package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/exporter"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/service/recap"
)

// Error kinds reported to clients
const (
	KindHeaderNotFound = "header_not_found"
	KindMissingColumn  = "missing_column"
	KindUnknownVariant = "unknown_variant"
	KindInternal       = "internal"
)

// ErrorKind classifies a run error
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, parser.ErrHeaderNotFound):
		return KindHeaderNotFound
	case errors.Is(err, parser.ErrMissingColumn):
		return KindMissingColumn
	case errors.Is(err, recap.ErrUnknownVariant):
		return KindUnknownVariant
	default:
		return KindInternal
	}
}

// Result one finished run
type Result struct {
	RunID      string         `json:"runId"`
	Variant    string         `json:"variant"`
	InputName  string         `json:"inputName"`
	ResultPath string         `json:"-"`
	Report     *model.Report  `json:"-"`
	Stats      model.RunStats `json:"stats"`
	Duration   time.Duration  `json:"duration"`
}

// Runner executes recap runs in an isolated per-run workspace
type Runner struct {
	cfg      *config.AppConfig
	exporter *exporter.Exporter
	log      zerolog.Logger
	now      func() time.Time
}

// New creates a runner
func New(cfg *config.AppConfig, log zerolog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		exporter: exporter.NewExporter(),
		log:      log.With().Str("component", "runner").Logger(),
		now:      time.Now,
	}
}

// WithClock replaces the clock used for day counts
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// NewRunID a fresh run ID
func NewRunID() string {
	return uuid.NewString()
}

var unsafeNameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces an uploaded file name to a safe base name.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeNameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "upload.xlsx"
	}
	if len(name) > 100 {
		name = name[len(name)-100:]
	}
	return name
}

// UploadPath where the upload of runID is stored
func (r *Runner) UploadPath(runID, filename string) string {
	return config.GetDataPath(r.cfg, config.UploadsDir, runID+"-"+SanitizeFilename(filename))
}

// ResultPath where the workbook of runID is written
func (r *Runner) ResultPath(runID string) string {
	return config.GetDataPath(r.cfg, config.ResultsDir, runID+".xlsx")
}

// Process runs the pipeline on inputPath and writes the workbook to the
// result path of runID.
func (r *Runner) Process(ctx context.Context, runID, inputPath, variant string) (*Result, error) {
	return r.process(ctx, runID, inputPath, variant, nil)
}

func (r *Runner) process(ctx context.Context, runID, inputPath, variant string, progress progressFunc) (*Result, error) {
	start := time.Now()
	log := r.log.With().Str("run_id", runID).Logger()

	opts, err := recap.OptionsFromConfig(r.cfg.Report, variant)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pipeline := recap.NewPipeline(opts, log).WithClock(r.now)
	progress.report(5, "reading "+filepath.Base(inputPath))

	report, err := pipeline.Run(inputPath)
	if err != nil {
		log.Warn().Err(err).Str("kind", ErrorKind(err)).Msg("recap failed")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	progress.report(40, "recap computed")

	out := r.ResultPath(runID)
	err = r.exporter.Save(report, out, exporter.ExportOptions{
		Progress: progress.exportProgress(40, 95),
	})
	if err != nil {
		return nil, fmt.Errorf("export report: %w", err)
	}

	result := &Result{
		RunID:      runID,
		Variant:    opts.Variant.Name,
		InputName:  filepath.Base(inputPath),
		ResultPath: out,
		Report:     report,
		Stats:      report.Stats,
		Duration:   time.Since(start),
	}
	log.Info().
		Str("variant", result.Variant).
		Int("eligible_rows", report.Stats.EligibleRows).
		Int("aged_rows", report.Stats.AgedRows).
		Dur("duration", result.Duration).
		Msg("report generated")
	return result, nil
}

// Discard removes the result file unless data.keep_results is set.
func (r *Runner) Discard(result *Result) {
	if result == nil || r.cfg.Data.KeepResults {
		return
	}
	if err := os.Remove(result.ResultPath); err != nil && !os.IsNotExist(err) {
		r.log.Warn().Err(err).Str("path", result.ResultPath).Msg("remove result failed")
	}
}

type progressFunc func(percent int, stage string)

func (p progressFunc) report(percent int, stage string) {
	if p != nil {
		p(percent, stage)
	}
}

// exportProgress maps the exporter's 0..100 onto from..to
func (p progressFunc) exportProgress(from, to int) exporter.Progress {
	if p == nil {
		return nil
	}
	return func(e exporter.ProgressEvent) {
		p(from+(to-from)*e.Percent/100, e.Stage)
	}
}
