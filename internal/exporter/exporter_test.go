package exporter

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
)

func sampleReport() *model.Report {
	verified := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	return &model.Report{
		SourceSheet: "Sheet1",
		GeneratedAt: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Summary: model.SummaryTable{
			Rows: []model.CategoryCounts{
				{Hospital: "RS A", Done: 1, Revision: 1, Total: 2},
				{Hospital: "RS B", Done: 1, Total: 1},
			},
			Total: model.CategoryCounts{Hospital: model.TotalLabel, Done: 2, Revision: 1, Total: 3},
		},
		Aging: model.AgingTable{
			Variant:    "verification",
			DateHeader: "Tanggal Verifikasi",
			Labels:     [3]string{"<10", "10-14", ">14"},
			Rows: []model.AgeBinCounts{
				{Hospital: "RS A", Bins: [3]int{1, 0, 0}, GrandTotal: 1},
			},
			Total: model.AgeBinCounts{Hospital: model.TotalLabel, Bins: [3]int{1, 0, 0}, GrandTotal: 1},
			Details: []model.DetailRow{
				{RowNo: 4, Hospital: "RS A", Date: verified, DateText: "05-03-2024", Days: 10, Bin: model.AgeBinMid},
			},
		},
	}
}

func openSaved(t *testing.T, report *model.Report) *excelize.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out", "rekap.xlsx")
	require.NoError(t, NewExporter().Save(report, path, ExportOptions{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExport_SheetOrder(t *testing.T) {
	t.Parallel()

	f := openSaved(t, sampleReport())
	assert.Equal(t, []string{SheetSummary, SheetGrouped, SheetDetailed}, f.GetSheetList())
}

func TestExport_SummarySheet(t *testing.T) {
	t.Parallel()

	f := openSaved(t, sampleReport())
	rows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Nama Rumah Sakit", "Done", "Revision", "New", "Waiting First Layer Verification", "Lain-lain", "Total"}, rows[0])
	assert.Equal(t, []string{"RS A", "1", "1", "0", "0", "0", "2"}, rows[1])
	assert.Equal(t, []string{"Total", "2", "1", "0", "0", "0", "3"}, rows[3])
}

func TestExport_GroupedAndDetailed(t *testing.T) {
	t.Parallel()

	f := openSaved(t, sampleReport())

	grouped, err := f.GetRows(SheetGrouped)
	require.NoError(t, err)
	require.Len(t, grouped, 3)
	assert.Equal(t, []string{"Nama Rumah Sakit", "<10", "10-14", ">14", "Grand Total"}, grouped[0])
	assert.Equal(t, []string{"Total", "1", "0", "0", "1"}, grouped[2])

	detailed, err := f.GetRows(SheetDetailed, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, detailed, 2)
	assert.Equal(t, []string{"Nama Rumah Sakit", "Tanggal Verifikasi", "Lama Hari"}, detailed[0])
	assert.Equal(t, "RS A", detailed[1][0])
	assert.Equal(t, "45356", detailed[1][1], "dates are stored as Excel serials")
	assert.Equal(t, "10", detailed[1][2])
}

func TestExport_EmptyReportHasTotalRows(t *testing.T) {
	t.Parallel()

	report := &model.Report{
		Summary: model.SummaryTable{Total: model.CategoryCounts{Hospital: model.TotalLabel}},
		Aging: model.AgingTable{
			DateHeader: "Tanggal Klaim Diajukan",
			Labels:     [3]string{"0-10", "11-14", ">14"},
			Total:      model.AgeBinCounts{Hospital: model.TotalLabel},
		},
	}
	f := openSaved(t, report)

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "Total", summary[1][0])

	grouped, err := f.GetRows(SheetGrouped)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	assert.Equal(t, []string{"Total", "0", "0", "0", "0"}, grouped[1])

	detailed, err := f.GetRows(SheetDetailed)
	require.NoError(t, err)
	require.Len(t, detailed, 1)
	assert.Equal(t, "Tanggal Klaim Diajukan", detailed[0][1])
}

func TestExport_ProgressAndWrite(t *testing.T) {
	t.Parallel()

	var events []ProgressEvent
	var buf bytes.Buffer
	err := NewExporter().Write(sampleReport(), &buf, ExportOptions{
		Progress: func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)
	require.NotEmpty(t, events)

	last := -1
	for _, e := range events {
		assert.GreaterOrEqual(t, e.Percent, last)
		last = e.Percent
	}
	assert.Equal(t, 100, last)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
}

func TestExport_NilReport(t *testing.T) {
	t.Parallel()

	_, err := NewExporter().Export(nil, ExportOptions{})
	assert.Error(t, err)
}

func TestClampPercent(t *testing.T) {
	t.Parallel()

	cases := map[int]int{-5: 0, 0: 0, 55: 55, 100: 100, 130: 100}
	for in, want := range cases {
		if got := clampPercent(in); got != want {
			t.Fatalf("clampPercent(%d)=%d, want %d", in, got, want)
		}
	}
}
