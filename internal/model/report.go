package model

import "time"

// Category verification status bucket of the Summary sheet
type Category string

const (
	CategoryDone              Category = "Done"
	CategoryRevision          Category = "Revision"
	CategoryNew               Category = "New"
	CategoryWaitingFirstLayer Category = "Waiting First Layer Verification"
	CategoryOther             Category = "Lain-lain"
)

// Categories column order of the Summary sheet
var Categories = []Category{
	CategoryDone,
	CategoryRevision,
	CategoryNew,
	CategoryWaitingFirstLayer,
	CategoryOther,
}

// TotalLabel label of the synthetic column-wise sum row
const TotalLabel = "Total"

// CategoryCounts per-hospital tally of classified rows
type CategoryCounts struct {
	Hospital          string `json:"hospital"`
	Done              int    `json:"done"`
	Revision          int    `json:"revision"`
	New               int    `json:"new"`
	WaitingFirstLayer int    `json:"waitingFirstLayerVerification"`
	Other             int    `json:"other"`
	Total             int    `json:"total"`
}

// Add counts one row of category c; every row also counts towards Total.
func (c *CategoryCounts) Add(cat Category) {
	switch cat {
	case CategoryDone:
		c.Done++
	case CategoryRevision:
		c.Revision++
	case CategoryNew:
		c.New++
	case CategoryWaitingFirstLayer:
		c.WaitingFirstLayer++
	default:
		c.Other++
	}
	c.Total++
}

// Merge adds all counts of o
func (c *CategoryCounts) Merge(o CategoryCounts) {
	c.Done += o.Done
	c.Revision += o.Revision
	c.New += o.New
	c.WaitingFirstLayer += o.WaitingFirstLayer
	c.Other += o.Other
	c.Total += o.Total
}

// Count value of one category column
func (c CategoryCounts) Count(cat Category) int {
	switch cat {
	case CategoryDone:
		return c.Done
	case CategoryRevision:
		return c.Revision
	case CategoryNew:
		return c.New
	case CategoryWaitingFirstLayer:
		return c.WaitingFirstLayer
	default:
		return c.Other
	}
}

// SummaryTable hospital × category counts, rows sorted by hospital
type SummaryTable struct {
	Rows  []CategoryCounts `json:"rows"`
	Total CategoryCounts   `json:"total"`
}

// AgeBin index of one of the three aging ranges
type AgeBin int

const (
	AgeBinLow AgeBin = iota
	AgeBinMid
	AgeBinHigh
)

// AgeBinCounts per-hospital tally of aged rows
type AgeBinCounts struct {
	Hospital   string `json:"hospital"`
	Bins       [3]int `json:"bins"`
	GrandTotal int    `json:"grandTotal"`
}

// Add counts one row into bin b
func (c *AgeBinCounts) Add(b AgeBin) {
	c.Bins[b]++
	c.GrandTotal++
}

// Merge adds all counts of o
func (c *AgeBinCounts) Merge(o AgeBinCounts) {
	for i := range c.Bins {
		c.Bins[i] += o.Bins[i]
	}
	c.GrandTotal += o.GrandTotal
}

// DetailRow one aged record, not aggregated
type DetailRow struct {
	RowNo    int       `json:"rowNo"`
	Hospital string    `json:"hospital"`
	Date     time.Time `json:"date"`
	DateText string    `json:"dateText"`
	Days     int       `json:"days"`
	Bin      AgeBin    `json:"bin"`
}

// DayStats distribution of day counts over the aged rows
type DayStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	Max    int     `json:"max"`
}

// AgingTable hospital × age-bin counts plus the detail rows behind them
type AgingTable struct {
	Variant    string         `json:"variant"`
	DateHeader string         `json:"dateHeader"`
	Labels     [3]string      `json:"labels"`
	Rows       []AgeBinCounts `json:"rows"`
	Total      AgeBinCounts   `json:"total"`
	Details    []DetailRow    `json:"details"`
	Days       DayStats       `json:"days"`
}

// RunStats counters of one pipeline run
type RunStats struct {
	HeaderRow         int `json:"headerRow"`
	DataRows          int `json:"dataRows"`
	EligibleRows      int `json:"eligibleRows"`
	AgingCandidates   int `json:"agingCandidates"`
	AgedRows          int `json:"agedRows"`
	MissingDates      int `json:"missingDates"`
	DateParseFailures int `json:"dateParseFailures"`
}

// Report everything a run produces before it is written to a workbook
type Report struct {
	SourceSheet string       `json:"sourceSheet"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Summary     SummaryTable `json:"summary"`
	Aging       AgingTable   `json:"aging"`
	Stats       RunStats     `json:"stats"`
}
