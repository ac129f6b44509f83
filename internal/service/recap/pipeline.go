package recap

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
)

// ErrUnknownVariant the requested aging variant is not configured
var ErrUnknownVariant = errors.New("unknown report variant")

// Options settings of one pipeline run
type Options struct {
	HeaderMarker      string
	SheetName         string
	DetectSheet       bool
	DateLayout        string
	Location          *time.Location
	FoldHospitalNames bool
	Variant           AgingVariant
}

// OptionsFromConfig builds run options for the named variant; an empty name
// selects the configured default.
func OptionsFromConfig(cfg config.ReportConfig, variant string) (Options, error) {
	v, ok := cfg.Variant(variant)
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		return Options{}, fmt.Errorf("invalid report.timezone %q: %w", cfg.Timezone, err)
	}

	return Options{
		HeaderMarker:      cfg.HeaderMarker,
		SheetName:         cfg.SheetName,
		DetectSheet:       cfg.DetectSheet,
		DateLayout:        cfg.DateLayout,
		Location:          loc,
		FoldHospitalNames: cfg.FoldHospitalNames,
		Variant:           VariantFromConfig(v),
	}, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// RequiredColumns every column a run needs, in the order they are checked
func (o Options) RequiredColumns() []string {
	cols := make([]string, 0, len(SummaryColumns)+1)
	cols = append(cols, SummaryColumns...)
	return append(cols, o.Variant.DateColumn)
}

// Pipeline turns one guarantee export into report tables
type Pipeline struct {
	opts       Options
	classifier *Classifier
	now        func() time.Time
	log        zerolog.Logger
}

// NewPipeline creates a pipeline
func NewPipeline(opts Options, log zerolog.Logger) *Pipeline {
	if opts.HeaderMarker == "" {
		opts.HeaderMarker = parser.DefaultHeaderMarker
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Pipeline{
		opts:       opts,
		classifier: NewClassifier(),
		now:        time.Now,
		log:        log,
	}
}

// WithClock replaces the source of "now" used for day counts
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run loads the workbook at path and builds the report tables. Without a
// configured sheet name the first sheet is used, or with DetectSheet the first
// sheet carrying the header marker.
func (p *Pipeline) Run(path string) (*model.Report, error) {
	var (
		sheet *parser.Sheet
		err   error
	)
	if p.opts.SheetName == "" && p.opts.DetectSheet {
		sheet, err = parser.DetectGrid(path, p.opts.HeaderMarker)
	} else {
		sheet, err = parser.LoadGrid(path, p.opts.SheetName)
	}
	if err != nil {
		return nil, err
	}
	return p.RunSheet(sheet)
}

// RunSheet builds the report tables from an already loaded sheet. Header and
// column problems abort before any row is filtered.
func (p *Pipeline) RunSheet(sheet *parser.Sheet) (*model.Report, error) {
	headerRow, err := parser.LocateHeader(sheet.Grid, p.opts.HeaderMarker)
	if err != nil {
		return nil, err
	}

	table := parser.NewSheetTable(sheet, headerRow)
	cols, err := table.Resolve(p.opts.RequiredColumns()...)
	if err != nil {
		return nil, err
	}

	stats := model.RunStats{
		HeaderRow: headerRow,
		DataRows:  table.Len(),
	}

	eligible := Filter(table.Records(cols), EligibilityFilters()...)
	stats.EligibleRows = len(eligible)

	keyer := NewHospitalKeyer(p.opts.FoldHospitalNames)
	keyer.Learn(eligible)
	summary := Summarize(eligible, p.classifier, keyer)

	now := p.now()
	binner := NewAgeBinner(p.opts.Variant, DateParser{
		Layout:   p.opts.DateLayout,
		Location: p.opts.Location,
	}, keyer, func() time.Time { return now })
	aging := binner.Build(eligible, &stats)

	p.log.Debug().
		Str("sheet", sheet.Name).
		Str("variant", p.opts.Variant.Name).
		Int("header_row", headerRow).
		Int("data_rows", stats.DataRows).
		Int("eligible_rows", stats.EligibleRows).
		Int("aged_rows", stats.AgedRows).
		Int("missing_dates", stats.MissingDates).
		Int("date_parse_failures", stats.DateParseFailures).
		Msg("recap computed")

	return &model.Report{
		SourceSheet: sheet.Name,
		GeneratedAt: now,
		Summary:     summary,
		Aging:       aging,
		Stats:       stats,
	}, nil
}
