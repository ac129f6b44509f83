package recap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
)

var testHeader = []string{
	"No",
	"Nomor ID Jaminan",
	"Nama Rumah Sakit",
	"Status Pembayaran",
	"Status Verifikasi",
	"GL Status",
	"Tanggal Verifikasi",
	"Tanggal Klaim Diajukan",
}

// claim one data row in testHeader order
type claim struct {
	hospital, payment, status, gl, verified, submitted string
}

func (c claim) row(i int) []string {
	return []string{"", "J-" + string(rune('0'+i%10)), c.hospital, c.payment, c.status, c.gl, c.verified, c.submitted}
}

func buildGrid(preamble int, claims ...claim) parser.Grid {
	grid := make(parser.Grid, 0, preamble+1+len(claims))
	for i := 0; i < preamble; i++ {
		grid = append(grid, []string{"Laporan Guarantee Letter"})
	}
	grid = append(grid, testHeader)
	for i, c := range claims {
		grid = append(grid, c.row(i))
	}
	return grid
}

func buildRecords(t *testing.T, claims ...claim) []parser.Record {
	t.Helper()

	table := parser.NewTable("Sheet1", buildGrid(0, claims...), 0)
	cols, err := table.Resolve(append(SummaryColumns, ColVerificationDate, ColSubmissionDate)...)
	require.NoError(t, err)
	return table.Records(cols)
}

func writeWorkbook(t *testing.T, grid parser.Grid) string {
	t.Helper()

	wb := excelize.NewFile()
	t.Cleanup(func() { _ = wb.Close() })
	for i, row := range grid {
		values := make([]interface{}, 0, len(row))
		for _, v := range row {
			values = append(values, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow("Sheet1", cell, &values))
	}

	path := filepath.Join(t.TempDir(), "klaim.xlsx")
	require.NoError(t, wb.SaveAs(path))
	return path
}
