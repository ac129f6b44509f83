package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type cellPos struct {
	row, col int
}

// DateCells grid positions (0-based) of numeric cells carrying a date number
// format. Only these hold Excel date serials; other numbers are plain values.
type DateCells map[cellPos]struct{}

// Has reports whether the cell at row, col is a date cell
func (d DateCells) Has(row, col int) bool {
	_, ok := d[cellPos{row, col}]
	return ok
}

func (d DateCells) add(row, col int) {
	d[cellPos{row, col}] = struct{}{}
}

// readDateCells looks up the number format of every numeric cell in grid.
func readDateCells(wb *excelize.File, sheet string, grid Grid) (DateCells, error) {
	cells := make(DateCells)
	byStyle := make(map[int]bool)

	for i, row := range grid {
		for j, v := range row {
			if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
				continue
			}
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			styleID, err := wb.GetCellStyle(sheet, name)
			if err != nil {
				return nil, fmt.Errorf("failed to read style of %s!%s: %w", sheet, name, err)
			}

			isDate, seen := byStyle[styleID]
			if !seen {
				isDate = isDateStyle(wb, styleID)
				byStyle[styleID] = isDate
			}
			if isDate {
				cells.add(i, j)
			}
		}
	}
	return cells, nil
}

func isDateStyle(wb *excelize.File, styleID int) bool {
	if styleID == 0 {
		return false
	}
	style, err := wb.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return IsDateFormatCode(*style.CustomNumFmt)
	}
	return isDateNumFmt(style.NumFmt)
}

// isDateNumFmt built-in number format IDs that render a calendar date
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 17, id == 22:
		return true
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

// IsDateFormatCode reports whether a custom number format shows a day or a
// year. Quoted literals, bracketed sections and escaped characters are ignored.
func IsDateFormatCode(code string) bool {
	inQuote, inBracket, escaped := false, false, false
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case r == 'd', r == 'D', r == 'y', r == 'Y':
			return true
		}
	}
	return false
}
