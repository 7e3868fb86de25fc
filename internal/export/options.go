// Package export writes expenses to spreadsheet files and reads them back.
package export

// DefaultPath is where exports go when the caller names no file.
const DefaultPath = "expenses.xlsx"

// Labels holds the user-facing names in a workbook.
type Labels struct {
	Sheet    string
	Date     string
	Category string
	Amount   string
}

// DefaultLabels are the English labels.
var DefaultLabels = Labels{
	Sheet:    "Expenses",
	Date:     "Date",
	Category: "Category",
	Amount:   "Amount",
}

type options struct {
	labels       Labels
	amountFormat string
	colWidth     float64
}

// Option customizes ExportToExcel and ReadExcel.
type Option func(*options)

// WithLabels sets the sheet name and header labels. Empty fields keep
// their defaults.
func WithLabels(l Labels) Option {
	return func(o *options) {
		if l.Sheet != "" {
			o.labels.Sheet = l.Sheet
		}
		if l.Date != "" {
			o.labels.Date = l.Date
		}
		if l.Category != "" {
			o.labels.Category = l.Category
		}
		if l.Amount != "" {
			o.labels.Amount = l.Amount
		}
	}
}

// WithSheetName sets only the sheet name.
func WithSheetName(name string) Option {
	return WithLabels(Labels{Sheet: name})
}

// WithAmountFormat applies an Excel number format such as "#,##0.00" to the
// amount column. Cells stay numeric either way.
func WithAmountFormat(format string) Option {
	return func(o *options) { o.amountFormat = format }
}

func buildOptions(opts []Option) options {
	o := options{labels: DefaultLabels, colWidth: 16}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithHeaders sets the three header labels.
func WithHeaders(date, category, amount string) Option {
	return WithLabels(Labels{Date: date, Category: category, Amount: amount})
}
