package parser

import (
	"errors"
	"fmt"
)

// Grid raw sheet content, rows × cells, no schema assumed
type Grid [][]string

// Sheet a loaded worksheet
type Sheet struct {
	Name  string    `json:"name"`
	Grid  Grid      `json:"-"`
	Dates DateCells `json:"-"`
}

// ColumnIndex lowercase logical column name -> position in the header row
type ColumnIndex map[string]int

var (
	// ErrHeaderNotFound no row carries the header marker
	ErrHeaderNotFound = errors.New("header row not found")
	// ErrMissingColumn a required column is absent from the header row
	ErrMissingColumn = errors.New("required column missing")
	// ErrNoSheets the workbook has no worksheets
	ErrNoSheets = errors.New("workbook has no sheets")
)

// HeaderNotFoundError reports the marker that could not be located.
type HeaderNotFoundError struct {
	Marker string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("Header yang mengandung '%s' tidak ditemukan.", e.Marker)
}

func (e *HeaderNotFoundError) Is(target error) bool {
	return target == ErrHeaderNotFound
}

// MissingColumnError names the first required column absent from the header.
type MissingColumnError struct {
	Name string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("Kolom tidak ditemukan: '%s'", e.Name)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
