package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// LoadGrid opens the workbook at path and reads one sheet as a raw grid.
// An empty sheet name selects the first sheet of the workbook.
func LoadGrid(path, sheet string) (*Sheet, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer wb.Close()

	return ReadGrid(wb, sheet)
}

// LoadGridFromReader is LoadGrid for an in-memory upload.
func LoadGridFromReader(r io.Reader, sheet string) (*Sheet, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer wb.Close()

	return ReadGrid(wb, sheet)
}

// ReadGrid reads raw cell values (unformatted, date cells as serial numbers)
// so that no column typing happens before the header is known. Which cells
// are dates is kept aside in Sheet.Dates.
func ReadGrid(wb *excelize.File, sheet string) (*Sheet, error) {
	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	grid := Grid(rows)
	dates, err := readDateCells(wb, sheet, grid)
	if err != nil {
		return nil, err
	}

	return &Sheet{
		Name:  sheet,
		Grid:  grid,
		Dates: dates,
	}, nil
}
