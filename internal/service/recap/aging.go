package recap

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
)

// DefaultDateLayout day-month-year, one or two digit day and month
const DefaultDateLayout = "2-1-2006"

// Binning three contiguous day ranges. Upper holds the inclusive upper edge of
// the first two bins; everything above Upper[1] falls in the last bin and
// everything at or below Upper[0], negatives included, in the first.
type Binning struct {
	Labels [3]string
	Upper  [2]int
}

// Bin assigns days to exactly one bin
func (b Binning) Bin(days int) model.AgeBin {
	switch {
	case days <= b.Upper[0]:
		return model.AgeBinLow
	case days <= b.Upper[1]:
		return model.AgeBinMid
	default:
		return model.AgeBinHigh
	}
}

// AgingVariant which date drives the age computation and how it is binned
type AgingVariant struct {
	Name        string
	DateColumn  string
	DateHeader  string
	RequireDone bool
	Binning     Binning
}

// VariantFromConfig converts a configured variant
func VariantFromConfig(v config.VariantConfig) AgingVariant {
	header := v.DateHeader
	if header == "" {
		header = v.DateColumn
	}
	return AgingVariant{
		Name:        v.Name,
		DateColumn:  parser.NormalizeColumnName(v.DateColumn),
		DateHeader:  header,
		RequireDone: v.RequireDone,
		Binning: Binning{
			Labels: v.Labels,
			Upper:  v.UpperBounds,
		},
	}
}

// DateParser parses date cells read as raw values
type DateParser struct {
	Layout   string
	Location *time.Location
}

// minDateSerial 1900-03-01, the first serial past the 1900 leap year bug
const minDateSerial = 61

// Parse returns the calendar date of a text cell parsed with Layout and the
// text to show for it.
func (p DateParser) Parse(cell string) (time.Time, string, bool) {
	return p.ParseCell(cell, false)
}

// ParseCell is Parse for a workbook cell. When serial is set the cell holds a
// date-formatted number and is read as an Excel date serial; bare numbers in
// other cells never parse.
func (p DateParser) ParseCell(cell string, serial bool) (time.Time, string, bool) {
	text := strings.TrimSpace(cell)
	if text == "" {
		return time.Time{}, "", false
	}

	loc := p.location()
	layout := p.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}

	if t, err := time.ParseInLocation(layout, text, loc); err == nil {
		return t, text, true
	}
	if !serial {
		return time.Time{}, "", false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || value < minDateSerial {
		return time.Time{}, "", false
	}
	t, err := excelize.ExcelDateToTime(value, false)
	if err != nil {
		return time.Time{}, "", false
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return day, day.Format("02-01-2006"), true
}

func (p DateParser) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// DaysBetween whole calendar days from date to now, both taken at midnight
// in loc. Dates after now give negative values.
func DaysBetween(date, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	d := date.In(loc)
	n := now.In(loc)
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// AgeBinner builds the Grouped Summary and Detailed Data of one variant
type AgeBinner struct {
	variant AgingVariant
	dates   DateParser
	keyer   *HospitalKeyer
	now     func() time.Time
}

// NewAgeBinner creates a binner
func NewAgeBinner(variant AgingVariant, dates DateParser, keyer *HospitalKeyer, now func() time.Time) *AgeBinner {
	if now == nil {
		now = time.Now
	}
	return &AgeBinner{
		variant: variant,
		dates:   dates,
		keyer:   keyer,
		now:     now,
	}
}

// Build ages records that already passed the eligibility filters. Rows without
// a usable date are left out of both tables; stats records why.
func (b *AgeBinner) Build(records []parser.Record, stats *model.RunStats) model.AgingTable {
	if stats == nil {
		stats = &model.RunStats{}
	}

	candidates := records
	if b.variant.RequireDone {
		candidates = Filter(candidates, VerifiedFilter())
	}
	stats.AgingCandidates = len(candidates)

	now := b.now()
	loc := b.dates.location()

	groups := make(map[string]*model.AgeBinCounts)
	details := make([]model.DetailRow, 0, len(candidates))

	for _, r := range candidates {
		raw := r.Value(b.variant.DateColumn)
		if parser.IsPlaceholder(raw) {
			stats.MissingDates++
			continue
		}
		date, text, ok := b.dates.ParseCell(raw, r.IsDate(b.variant.DateColumn))
		if !ok {
			stats.DateParseFailures++
			continue
		}

		days := DaysBetween(date, now, loc)
		bin := b.variant.Binning.Bin(days)

		name := r.Value(ColHospital)
		key := b.keyer.Key(name)
		g, exists := groups[key]
		if !exists {
			g = &model.AgeBinCounts{Hospital: b.keyer.Display(name)}
			groups[key] = g
		}
		g.Add(bin)

		details = append(details, model.DetailRow{
			RowNo:    r.RowNo,
			Hospital: g.Hospital,
			Date:     date,
			DateText: text,
			Days:     days,
			Bin:      bin,
		})
	}
	stats.AgedRows = len(details)

	rows := make([]model.AgeBinCounts, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, *g)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Hospital < rows[j].Hospital
	})

	total := model.AgeBinCounts{Hospital: model.TotalLabel}
	for _, row := range rows {
		total.Merge(row)
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Hospital < details[j].Hospital
	})

	return model.AgingTable{
		Variant:    b.variant.Name,
		DateHeader: b.variant.DateHeader,
		Labels:     b.variant.Binning.Labels,
		Rows:       rows,
		Total:      total,
		Details:    details,
		Days:       summarizeDays(details),
	}
}

// summarizeDays zero value when there are no details
func summarizeDays(details []model.DetailRow) model.DayStats {
	if len(details) == 0 {
		return model.DayStats{}
	}

	data := make(stats.Float64Data, len(details))
	for i, d := range details {
		data[i] = float64(d.Days)
	}

	out := model.DayStats{Count: len(details)}
	out.Mean, _ = stats.Mean(data)
	out.Median, _ = stats.Median(data)
	out.P90, _ = stats.Percentile(data, 90)
	longest, _ := stats.Max(data)
	out.Max = int(longest)
	return out
}
