package parser

// Table the data region below a located header row
type Table struct {
	Sheet     string
	HeaderRow int
	Header    []string
	Rows      [][]string

	positions ColumnIndex
	dates     DateCells
}

// NewTable splits grid at headerRow. Header names are indexed case-insensitively;
// when a name repeats, the first occurrence wins.
func NewTable(sheet string, grid Grid, headerRow int) *Table {
	header := grid[headerRow]
	positions := make(ColumnIndex, len(header))
	for i, h := range header {
		key := NormalizeColumnName(h)
		if key == "" {
			continue
		}
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	return &Table{
		Sheet:     sheet,
		HeaderRow: headerRow,
		Header:    header,
		Rows:      grid[headerRow+1:],
		positions: positions,
	}
}

// NewSheetTable is NewTable over a loaded sheet, keeping its date cells.
func NewSheetTable(sheet *Sheet, headerRow int) *Table {
	t := NewTable(sheet.Name, sheet.Grid, headerRow)
	t.dates = sheet.Dates
	return t
}

// Len number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Resolve maps every required logical name to its position. It fails with a
// *MissingColumnError naming the first absent column, in the order given.
func (t *Table) Resolve(required ...string) (ColumnIndex, error) {
	out := make(ColumnIndex, len(required))
	for _, name := range required {
		key := NormalizeColumnName(name)
		idx, ok := t.positions[key]
		if !ok {
			return nil, &MissingColumnError{Name: key}
		}
		out[key] = idx
	}
	return out, nil
}

// ResolveColumns resolves required names against a bare header row.
func ResolveColumns(header []string, required ...string) (ColumnIndex, error) {
	return NewTable("", Grid{header}, 0).Resolve(required...)
}

// Record one data row viewed through a resolved ColumnIndex
type Record struct {
	// RowNo 1-based row number in the worksheet
	RowNo int
	cells []string
	cols  ColumnIndex
	dates DateCells
}

// Records binds every data row to cols.
func (t *Table) Records(cols ColumnIndex) []Record {
	out := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = Record{
			RowNo: t.HeaderRow + i + 2,
			cells: row,
			cols:  cols,
			dates: t.dates,
		}
	}
	return out
}

// Value raw cell text for a resolved column; "" when the row is short or the
// column was not resolved.
func (r Record) Value(column string) string {
	idx, ok := r.index(column)
	if !ok {
		return ""
	}
	return getCell(r.cells, idx)
}

// IsDate reports whether the cell of column is formatted as a date in the
// workbook. Rows not loaded from a workbook have no date cells.
func (r Record) IsDate(column string) bool {
	idx, ok := r.index(column)
	if !ok {
		return false
	}
	return r.dates.Has(r.RowNo-1, idx)
}

func (r Record) index(column string) (int, bool) {
	if idx, ok := r.cols[column]; ok {
		return idx, true
	}
	idx, ok := r.cols[NormalizeColumnName(column)]
	return idx, ok
}
