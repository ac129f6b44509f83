package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/exporter"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
)

func printReport(w io.Writer, report *model.Report) {
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetTitle(exporter.SheetSummary)
	summary.AppendHeader(toRow(exporter.SummaryHeaders()))
	for _, c := range report.Summary.Rows {
		summary.AppendRow(summaryRow(c))
	}
	summary.AppendFooter(summaryRow(report.Summary.Total))
	summary.SetStyle(table.StyleLight)
	summary.Render()

	fmt.Fprintln(w)

	aging := report.Aging
	grouped := table.NewWriter()
	grouped.SetOutputMirror(w)
	grouped.SetTitle(fmt.Sprintf("%s (%s)", exporter.SheetGrouped, aging.DateHeader))
	grouped.AppendHeader(toRow(exporter.GroupedHeaders(aging)))
	for _, c := range aging.Rows {
		grouped.AppendRow(groupedRow(c))
	}
	grouped.AppendFooter(groupedRow(aging.Total))
	grouped.SetStyle(table.StyleLight)
	grouped.Render()

	if aging.Days.Count > 0 {
		fmt.Fprintf(w, "\nLama hari: rata-rata %.1f, median %.1f, p90 %.1f, maks %d (%d baris)\n",
			aging.Days.Mean, aging.Days.Median, aging.Days.P90, aging.Days.Max, aging.Days.Count)
	}
}

func toRow(values []string) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func summaryRow(c model.CategoryCounts) table.Row {
	row := table.Row{c.Hospital}
	for _, cat := range model.Categories {
		row = append(row, c.Count(cat))
	}
	return append(row, c.Total)
}

func groupedRow(c model.AgeBinCounts) table.Row {
	return table.Row{c.Hospital, c.Bins[0], c.Bins[1], c.Bins[2], c.GrandTotal}
}
