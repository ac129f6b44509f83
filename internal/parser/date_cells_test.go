package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestIsDateFormatCode(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"dd-mm-yyyy":         true,
		"yyyy/mm/dd hh:mm":   true,
		"[$-421]d mmmm yyyy": true,
		"0.00":               false,
		"#,##0":              false,
		"hh:mm:ss":           false,
		`0 "days"`:           false,
		`[Red]0;\d0`:         false,
		`"Rp" #,##0;[Red]-#`: false,
	}
	for code, want := range cases {
		if got := IsDateFormatCode(code); got != want {
			t.Fatalf("IsDateFormatCode(%q)=%v, want %v", code, got, want)
		}
	}
}

func TestReadGrid_DateCells(t *testing.T) {
	t.Parallel()

	wb := excelize.NewFile()
	t.Cleanup(func() { _ = wb.Close() })

	custom := "dd-mm-yyyy"
	dateStyle, err := wb.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)

	require.NoError(t, wb.SetSheetRow("Sheet1", "A1", &[]interface{}{"Nomor ID Jaminan", "Tanggal Verifikasi"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A2", &[]interface{}{1001, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A3", &[]interface{}{1002, 45356}))
	require.NoError(t, wb.SetCellStyle("Sheet1", "B3", "B3", dateStyle))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A4", &[]interface{}{1003, 15}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A5", &[]interface{}{1004, "05-03-2024"}))

	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)

	sheet, err := LoadGridFromReader(buf, "")
	require.NoError(t, err)
	assert.Equal(t, "45356", sheet.Grid[1][1])
	assert.Equal(t, "45356", sheet.Grid[2][1])

	assert.True(t, sheet.Dates.Has(1, 1), "time value")
	assert.True(t, sheet.Dates.Has(2, 1), "custom date format")
	assert.False(t, sheet.Dates.Has(3, 1), "bare number")
	assert.False(t, sheet.Dates.Has(4, 1), "text")
	assert.False(t, sheet.Dates.Has(1, 0), "id column")

	table := NewSheetTable(sheet, 0)
	cols, err := table.Resolve("tanggal verifikasi")
	require.NoError(t, err)
	recs := table.Records(cols)
	require.Len(t, recs, 4)
	assert.True(t, recs[0].IsDate("Tanggal Verifikasi"))
	assert.True(t, recs[1].IsDate("tanggal verifikasi"))
	assert.False(t, recs[2].IsDate("tanggal verifikasi"))
	assert.False(t, recs[3].IsDate("tanggal verifikasi"))
	assert.False(t, recs[0].IsDate("nomor id jaminan"), "unresolved column")
}

func TestRecordIsDate_PlainGrid(t *testing.T) {
	t.Parallel()

	table := NewTable("Sheet1", Grid{{"Tanggal"}, {"45356"}}, 0)
	cols, err := table.Resolve("tanggal")
	require.NoError(t, err)
	assert.False(t, table.Records(cols)[0].IsDate("tanggal"))
}
