package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
)

// Sheet names of the generated workbook, in order
const (
	SheetSummary  = "Summary"
	SheetGrouped  = "Grouped Summary"
	SheetDetailed = "Detailed Data"
)

const (
	colHospital   = "Nama Rumah Sakit"
	colGrandTotal = "Grand Total"
	colDays       = "Lama Hari"

	detailDateFormat = "dd-mm-yyyy"
)

// SummaryHeaders header row of the Summary sheet
func SummaryHeaders() []string {
	headers := make([]string, 0, len(model.Categories)+2)
	headers = append(headers, colHospital)
	for _, c := range model.Categories {
		headers = append(headers, string(c))
	}
	return append(headers, model.TotalLabel)
}

// GroupedHeaders header row of the Grouped Summary sheet
func GroupedHeaders(aging model.AgingTable) []string {
	return []string{colHospital, aging.Labels[0], aging.Labels[1], aging.Labels[2], colGrandTotal}
}

// DetailedHeaders header row of the Detailed Data sheet
func DetailedHeaders(aging model.AgingTable) []string {
	dateHeader := aging.DateHeader
	if dateHeader == "" {
		dateHeader = "Tanggal"
	}
	return []string{colHospital, dateHeader, colDays}
}

// ExportOptions export options
type ExportOptions struct {
	Progress Progress
}

// Exporter writes a computed report as a three-sheet workbook
type Exporter struct{}

// NewExporter creates an exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds the workbook in memory; the caller closes it.
func (e *Exporter) Export(report *model.Report, opts ExportOptions) (*excelize.File, error) {
	if report == nil {
		return nil, fmt.Errorf("export: nil report")
	}

	f := excelize.NewFile()
	w := &sheetWriter{f: f}

	if err := w.init(); err != nil {
		_ = f.Close()
		return nil, err
	}

	opts.Progress.report(10, "writing "+SheetSummary)
	if err := w.writeSummary(report.Summary); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write %s: %w", SheetSummary, err)
	}

	opts.Progress.report(40, "writing "+SheetGrouped)
	if err := w.writeGrouped(report.Aging); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write %s: %w", SheetGrouped, err)
	}

	opts.Progress.report(70, "writing "+SheetDetailed)
	if err := w.writeDetailed(report.Aging); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write %s: %w", SheetDetailed, err)
	}

	f.SetActiveSheet(0)
	opts.Progress.report(90, "workbook ready")
	return f, nil
}

// Save writes the workbook to path, creating parent directories.
func (e *Exporter) Save(report *model.Report, path string, opts ExportOptions) error {
	f, err := e.Export(report, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	opts.Progress.report(100, "saved")
	return nil
}

// Write streams the workbook to w.
func (e *Exporter) Write(report *model.Report, w io.Writer, opts ExportOptions) error {
	f, err := e.Export(report, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	opts.Progress.report(100, "written")
	return nil
}
