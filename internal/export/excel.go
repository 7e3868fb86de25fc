package export

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/model"
)

// ExportToExcel writes records to an .xlsx file at path, replacing any
// existing file. Row 1 holds the headers, every following row one record in
// the given order. Amounts are numeric cells and dates YYYY-MM-DD text.
//
// The workbook is written to a temporary file next to path and renamed into
// place, so a failed export leaves no file behind. I/O failures match
// fault.ErrIO.
func ExportToExcel(path string, records []model.Expense, opts ...Option) (err error) {
	o := buildOptions(opts)

	f, err := buildWorkbook(records, o)
	if err != nil {
		return fault.Wrap(fault.ErrInternal, err, "build workbook")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fault.Wrap(fault.ErrInternal, cerr, "close workbook")
		}
	}()

	return writeAtomic(path, f)
}

func buildWorkbook(records []model.Expense, o options) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := o.labels.Sheet

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "name sheet")
	}

	if err := fillSheet(f, sheet, records, o); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fillSheet(f *excelize.File, sheet string, records []model.Expense, o options) error {
	header := []any{o.labels.Date, o.labels.Category, o.labels.Amount}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "write header")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "header style")
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", bold); err != nil {
		return errors.Wrap(err, "apply header style")
	}

	for i, e := range records {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return errors.Wrapf(err, "row %d", row)
		}
		values := []any{e.Date().String(), e.Category(), e.Amount().InexactFloat64()}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "write row %d", row)
		}
	}

	if o.amountFormat != "" && len(records) > 0 {
		format := o.amountFormat
		numeric, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
		if err != nil {
			return errors.Wrap(err, "amount style")
		}
		last, err := excelize.CoordinatesToCellName(3, len(records)+1)
		if err != nil {
			return errors.Wrap(err, "amount range")
		}
		if err := f.SetCellStyle(sheet, "C2", last, numeric); err != nil {
			return errors.Wrap(err, "apply amount style")
		}
	}

	if err := f.SetColWidth(sheet, "A", "C", o.colWidth); err != nil {
		return errors.Wrap(err, "column width")
	}
	return nil
}

// writeAtomic streams f into a temp file in path's directory, then renames
// it over path. An existing file keeps its permissions. The temp file is
// removed on every failure.
func writeAtomic(path string, f *excelize.File) (err error) {
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".spendr-*.xlsx.tmp")
	if err != nil {
		return fault.Wrap(fault.ErrIO, err, "create export file")
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = f.Write(tmp); err != nil {
		return fault.Wrap(fault.ErrIO, err, "write %s", path)
	}
	if err = tmp.Sync(); err != nil {
		return fault.Wrap(fault.ErrIO, err, "sync %s", path)
	}
	if err = tmp.Close(); err != nil {
		return fault.Wrap(fault.ErrIO, err, "close %s", path)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fault.Wrap(fault.ErrIO, err, "chmod %s", path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fault.Wrap(fault.ErrIO, err, "replace %s", path)
	}
	return nil
}
