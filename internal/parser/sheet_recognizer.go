package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetRecognition outcome of checking one sheet for the header marker
type SheetRecognition struct {
	Sheet     string
	HeaderRow int
	Found     bool
}

// SheetRecognizer finds the worksheet that holds the guarantee table
type SheetRecognizer struct {
	marker string
}

// NewSheetRecognizer creates a recognizer for marker
func NewSheetRecognizer(marker string) *SheetRecognizer {
	if marker == "" {
		marker = DefaultHeaderMarker
	}
	return &SheetRecognizer{marker: marker}
}

// Recognize checks one loaded sheet
func (r *SheetRecognizer) Recognize(sheet *Sheet) SheetRecognition {
	idx, err := LocateHeader(sheet.Grid, r.marker)
	if err != nil {
		return SheetRecognition{Sheet: sheet.Name, HeaderRow: -1}
	}
	return SheetRecognition{Sheet: sheet.Name, HeaderRow: idx, Found: true}
}

// Pick returns the first sheet, in workbook order, that carries the marker.
// When none does, the first sheet is returned so that header location reports
// the failure.
func (r *SheetRecognizer) Pick(wb *excelize.File) (*Sheet, error) {
	names := wb.GetSheetList()
	if len(names) == 0 {
		return nil, ErrNoSheets
	}

	var first *Sheet
	for _, name := range names {
		sheet, err := ReadGrid(wb, name)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = sheet
		}
		if r.Recognize(sheet).Found {
			return sheet, nil
		}
	}
	return first, nil
}

// DetectGrid opens the workbook at path and loads the sheet Pick selects.
func DetectGrid(path, marker string) (*Sheet, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer wb.Close()

	return NewSheetRecognizer(marker).Pick(wb)
}
