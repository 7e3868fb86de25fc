package export

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"

	ferrors "github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/model"
)

// ReadExcel loads records from a workbook laid out like ExportToExcel writes
// it. The configured sheet is used when present, otherwise the first sheet.
// Row 1 is the header. Blank rows are skipped; any other malformed row fails
// with an error matching fault.ErrValidation that names the row.
func ReadExcel(path string, opts ...Option) (records []model.Expense, err error) {
	o := buildOptions(opts)

	f, err := excelize.OpenFile(path)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return nil, fault.Wrap(fault.ErrIO, err, "open %s", path)
		}
		return nil, fault.Wrap(fault.ErrValidation, err, "%s is not a workbook", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fault.Wrap(fault.ErrIO, cerr, "close %s", path)
		}
	}()

	sheet := pickSheet(f.GetSheetList(), o.labels.Sheet)
	if sheet == "" {
		return nil, fault.New(fault.ErrValidation, "%s has no sheets", path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fault.Wrap(fault.ErrInternal, ferrors.Wrap(err, "read rows"), "sheet %q", sheet)
	}
	if len(rows) == 0 {
		return nil, fault.New(fault.ErrValidation, "sheet %q has no header row", sheet)
	}
	if len(rows[0]) < 3 {
		return nil, fault.New(fault.ErrValidation, "sheet %q: header has %d columns, want 3", sheet, len(rows[0]))
	}

	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		e, err := parseRow(row)
		if err != nil {
			return nil, fault.Wrap(fault.ErrValidation, err, "sheet %q row %d", sheet, i+2)
		}
		records = append(records, e)
	}
	return records, nil
}

func pickSheet(sheets []string, want string) string {
	for _, s := range sheets {
		if s == want {
			return s
		}
	}
	if len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (model.Expense, error) {
	if len(row) < 3 {
		return model.Expense{}, ferrors.Errorf("want 3 cells, got %d", len(row))
	}

	date, err := parseDateCell(strings.TrimSpace(row[0]))
	if err != nil {
		return model.Expense{}, err
	}

	category := strings.TrimSpace(row[1])
	if category == "" {
		return model.Expense{}, ferrors.New("empty category")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return model.Expense{}, ferrors.Wrapf(err, "amount %q", row[2])
	}
	if amount.IsNegative() {
		return model.Expense{}, ferrors.Errorf("negative amount %s", amount)
	}

	return model.NewExpense(category, amount, date), nil
}

// parseDateCell accepts the YYYY-MM-DD text written by ExportToExcel and, for
// workbooks edited by hand, an Excel date serial.
func parseDateCell(s string) (model.Date, error) {
	if d, err := model.ParseDate(s); err == nil {
		return d, nil
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Date{}, ferrors.Errorf("date %q: want YYYY-MM-DD", s)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return model.Date{}, ferrors.Wrapf(err, "date serial %q", s)
	}
	return model.DateOf(t), nil
}
