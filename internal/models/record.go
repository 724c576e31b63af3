package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is the DB-shaped representation of a sales_records row.
type SalesRecord struct {
	RecordID       int64           `db:"record_id"`
	OwnerID        string          `db:"owner_id"`
	OwnerName      string          `db:"owner_name"`
	ProductID      string          `db:"product_id"`
	SaleDate       time.Time       `db:"sale_date"`
	Amount         decimal.Decimal `db:"amount"`
	Target         decimal.Decimal `db:"target"`
	CompletionRate decimal.Decimal `db:"completion_rate"`
	CreatedAt      time.Time       `db:"created_at"`
}
