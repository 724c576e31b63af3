package services

import (
	"encoding/csv"
	"io"

	"github.com/shopspring/decimal"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
)

// ExportCSVHeaders are the columns of the record export feed.
var ExportCSVHeaders = []string{
	"owner_name",
	"product_id",
	"date",
	"amount",
	"target",
	"completion_rate",
}

// WriteRecordsCSV streams records as delimited text. Amounts render with
// two decimals and the completion rate as a percentage; formatting happens
// only here at render time and is never persisted.
func WriteRecordsCSV(w io.Writer, records []domain.SalesRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportCSVHeaders); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.OwnerName,
			r.ProductID,
			r.SaleDate.Format(saleDateLayout),
			r.Amount.StringFixed(2),
			r.Target.StringFixed(2),
			FormatPercent(r.CompletionRate),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatPercent renders a rate like 0.5 as "50.00%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
