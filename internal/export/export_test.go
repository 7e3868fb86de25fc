package export_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/spendr/internal/export"
	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/ledger"
	"github.com/theirongolddev/spendr/internal/model"
)

func sampleStore() *ledger.Store {
	s := ledger.New()
	s.AddExpense("Groceries", decimal.RequireFromString("50"), model.NewDate(2024, time.January, 1))
	s.AddExpense("Transport", decimal.RequireFromString("20"), model.NewDate(2024, time.January, 2))
	s.AddExpense("Groceries", decimal.RequireFromString("30.25"), model.NewDate(2024, time.January, 3))
	return s
}

func readRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return rows
}

func TestExportLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.xlsx")
	records := sampleStore().Records()

	require.NoError(t, export.ExportToExcel(path, records))

	rows := readRows(t, path, "Expenses")
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, []string{"Date", "Category", "Amount"}, rows[0])
	assert.Equal(t, []string{"2024-01-01", "Groceries", "50"}, rows[1])
	assert.Equal(t, []string{"2024-01-03", "Groceries", "30.25"}, rows[2])
	assert.Equal(t, []string{"2024-01-02", "Transport", "20"}, rows[3])
}

func TestExportAmountsAreNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.xlsx")
	require.NoError(t, export.ExportToExcel(path, sampleStore().Records(), export.WithAmountFormat("#,##0.00")))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	typ, err := f.GetCellType("Expenses", "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)

	typ, err = f.GetCellType("Expenses", "A2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeSharedString, typ)
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.xlsx")
	records := sampleStore().Records()
	require.NoError(t, export.ExportToExcel(path, records))

	got, err := export.ReadExcel(path)
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].Category(), got[i].Category())
		assert.True(t, records[i].Amount().Equal(got[i].Amount()), "row %d amount", i)
		assert.True(t, records[i].Date().Equal(got[i].Date()), "row %d date", i)
	}
}

func TestExportRoundTripKeepsFifteenDigits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.xlsx")
	amount := decimal.RequireFromString("1234567890123.45")
	records := []model.Expense{model.NewExpense("Housing", amount, model.NewDate(2024, time.June, 1))}
	require.NoError(t, export.ExportToExcel(path, records))

	got, err := export.ReadExcel(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, amount.Equal(got[0].Amount()), "read back %s", got[0].Amount())
}

func TestExportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, export.ExportToExcel(path, nil))

	rows := readRows(t, path, "Expenses")
	require.Len(t, rows, 1)

	got, err := export.ReadExcel(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, export.ExportToExcel(path, sampleStore().Records()))
	rows := readRows(t, path, "Expenses")
	assert.Len(t, rows, 4)
}

func TestExportMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	path := filepath.Join(dir, "expenses.xlsx")

	err := export.ExportToExcel(path, sampleStore().Records())
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrIO)
	assert.Equal(t, fault.ErrIO, fault.KindOf(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, export.ExportToExcel(filepath.Join(dir, "a.xlsx"), sampleStore().Records()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.xlsx", entries[0].Name())
}

func TestExportFailedReplaceRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path lets the temp file be written but
	// makes the final rename fail.
	target := filepath.Join(dir, "expenses.xlsx")
	require.NoError(t, os.Mkdir(target, 0o755))

	err := export.ExportToExcel(target, sampleStore().Records())
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrIO)

	tmps, err := filepath.Glob(filepath.Join(dir, ".spendr-*.xlsx.tmp"))
	require.NoError(t, err)
	assert.Empty(t, tmps)

	fi, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, fi.IsDir(), "target directory was replaced")
}

func TestExportKeepsExistingMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, export.ExportToExcel(path, sampleStore().Records()))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	assert.Len(t, readRows(t, path, export.DefaultLabels.Sheet), 4)
}

func TestExportNewFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.xlsx")
	require.NoError(t, export.ExportToExcel(path, sampleStore().Records()))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm())
}

func TestExportLocalizedLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ru.xlsx")
	labels := export.Labels{Sheet: "Расходы", Date: "Дата", Category: "Категория", Amount: "Сумма"}
	require.NoError(t, export.ExportToExcel(path, sampleStore().Records(), export.WithLabels(labels)))

	rows := readRows(t, path, "Расходы")
	assert.Equal(t, []string{"Дата", "Категория", "Сумма"}, rows[0])

	// A reader with default labels falls back to the first sheet.
	got, err := export.ReadExcel(path)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestReadExcelErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := export.ReadExcel(filepath.Join(dir, "nope.xlsx"))
	assert.ErrorIs(t, err, fault.ErrIO)

	junk := filepath.Join(dir, "junk.xlsx")
	require.NoError(t, os.WriteFile(junk, []byte("not a zip"), 0o644))
	_, err = export.ReadExcel(junk)
	assert.ErrorIs(t, err, fault.ErrValidation)
}

func TestReadExcelBadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Expenses"))
	require.NoError(t, f.SetSheetRow("Expenses", "A1", &[]any{"Date", "Category", "Amount"}))
	require.NoError(t, f.SetSheetRow("Expenses", "A2", &[]any{"2024-01-01", "Groceries", 10}))
	require.NoError(t, f.SetSheetRow("Expenses", "A3", &[]any{"2024-01-02", "Transport", "lots"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := export.ReadExcel(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrValidation)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadExcelDateSerial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serial.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Expenses"))
	require.NoError(t, f.SetSheetRow("Expenses", "A1", &[]any{"Date", "Category", "Amount"}))
	// 45292 is 2024-01-01 in the 1900 date system.
	require.NoError(t, f.SetSheetRow("Expenses", "A2", &[]any{45292, "Health", 12.5}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := export.ReadExcel(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01", got[0].Date().String())
	assert.Equal(t, "12.5", got[0].Amount().String())
}
