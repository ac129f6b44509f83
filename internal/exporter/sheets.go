package exporter

import (
	"github.com/xuri/excelize/v2"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
)

type sheetWriter struct {
	f *excelize.File

	headerStyle int
	totalStyle  int
	dateStyle   int
}

func (w *sheetWriter) init() error {
	if err := w.f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetGrouped, SheetDetailed} {
		if _, err := w.f.NewSheet(name); err != nil {
			return err
		}
	}

	var err error
	w.headerStyle, err = w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	if err != nil {
		return err
	}
	w.totalStyle, err = w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	format := detailDateFormat
	w.dateStyle, err = w.f.NewStyle(&excelize.Style{
		CustomNumFmt: &format,
	})
	return err
}

func (w *sheetWriter) writeRow(sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) writeHeader(sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := w.writeRow(sheet, 1, values); err != nil {
		return err
	}
	if err := w.f.SetRowStyle(sheet, 1, 1, w.headerStyle); err != nil {
		return err
	}
	return w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (w *sheetWriter) styleTotalRow(sheet string, row, cols int) error {
	end, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	return w.f.SetCellStyle(sheet, start, end, w.totalStyle)
}

func summaryValues(c model.CategoryCounts) []interface{} {
	values := make([]interface{}, 0, len(model.Categories)+2)
	values = append(values, c.Hospital)
	for _, cat := range model.Categories {
		values = append(values, c.Count(cat))
	}
	return append(values, c.Total)
}

func (w *sheetWriter) writeSummary(t model.SummaryTable) error {
	headers := SummaryHeaders()
	if err := w.writeHeader(SheetSummary, headers); err != nil {
		return err
	}

	row := 2
	for _, c := range t.Rows {
		if err := w.writeRow(SheetSummary, row, summaryValues(c)); err != nil {
			return err
		}
		row++
	}
	if err := w.writeRow(SheetSummary, row, summaryValues(t.Total)); err != nil {
		return err
	}
	if err := w.styleTotalRow(SheetSummary, row, len(headers)); err != nil {
		return err
	}

	if err := w.f.SetColWidth(SheetSummary, "A", "A", 40); err != nil {
		return err
	}
	return w.f.SetColWidth(SheetSummary, "B", "G", 16)
}

func groupedValues(c model.AgeBinCounts) []interface{} {
	return []interface{}{c.Hospital, c.Bins[0], c.Bins[1], c.Bins[2], c.GrandTotal}
}

func (w *sheetWriter) writeGrouped(t model.AgingTable) error {
	headers := GroupedHeaders(t)
	if err := w.writeHeader(SheetGrouped, headers); err != nil {
		return err
	}

	row := 2
	for _, c := range t.Rows {
		if err := w.writeRow(SheetGrouped, row, groupedValues(c)); err != nil {
			return err
		}
		row++
	}
	if err := w.writeRow(SheetGrouped, row, groupedValues(t.Total)); err != nil {
		return err
	}
	if err := w.styleTotalRow(SheetGrouped, row, len(headers)); err != nil {
		return err
	}

	if err := w.f.SetColWidth(SheetGrouped, "A", "A", 40); err != nil {
		return err
	}
	return w.f.SetColWidth(SheetGrouped, "B", "E", 14)
}

func (w *sheetWriter) writeDetailed(t model.AgingTable) error {
	if err := w.writeHeader(SheetDetailed, DetailedHeaders(t)); err != nil {
		return err
	}

	for i, d := range t.Details {
		row := i + 2
		var date interface{} = d.DateText
		if !d.Date.IsZero() {
			date = d.Date
		}
		if err := w.writeRow(SheetDetailed, row, []interface{}{d.Hospital, date, d.Days}); err != nil {
			return err
		}
	}
	if n := len(t.Details); n > 0 {
		last, err := excelize.CoordinatesToCellName(2, n+1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStyle(SheetDetailed, "B2", last, w.dateStyle); err != nil {
			return err
		}
	}

	if err := w.f.SetColWidth(SheetDetailed, "A", "A", 40); err != nil {
		return err
	}
	return w.f.SetColWidth(SheetDetailed, "B", "C", 18)
}
