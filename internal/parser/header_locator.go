package parser

import (
	"strings"
)

// DefaultHeaderMarker text that identifies the header row of a guarantee export
const DefaultHeaderMarker = "nomor id jaminan"

// defaultMarkerLabel DefaultHeaderMarker as the source sheets spell it
const defaultMarkerLabel = "Nomor ID Jaminan"

// MarkerLabel the form of marker shown to users
func MarkerLabel(marker string) string {
	marker = strings.TrimSpace(marker)
	if marker == "" || strings.EqualFold(marker, DefaultHeaderMarker) {
		return defaultMarkerLabel
	}
	return marker
}

// LocateHeader returns the index of the first row that has a cell containing
// marker, compared case-insensitively.
func LocateHeader(grid Grid, marker string) (int, error) {
	needle := strings.ToLower(strings.TrimSpace(marker))
	if needle == "" {
		needle = DefaultHeaderMarker
	}

	for i, row := range grid {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				return i, nil
			}
		}
	}

	return -1, &HeaderNotFoundError{Marker: MarkerLabel(marker)}
}
