package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one sales entry against a target. Records are immutable
// once created; the only lifecycle transition is deletion by the owner.
type SalesRecord struct {
	RecordID int64  `json:"recordID"`
	OwnerID  string `json:"ownerID"`
	// OwnerName is a snapshot of the owner's display name at insert time.
	// Reports use this snapshot as-is; it is intentionally not kept in sync
	// with later display name changes.
	OwnerName      string          `json:"ownerName"`
	ProductID      string          `json:"productID"`
	SaleDate       time.Time       `json:"saleDate"` // calendar date, no time component
	Amount         decimal.Decimal `json:"amount"`
	Target         decimal.Decimal `json:"target"`
	CompletionRate decimal.Decimal `json:"completionRate"` // derived at insert: amount/target, 0 when target is 0
	CreatedAt      time.Time       `json:"createdAt"`
}

// RecordFilter narrows a record query. A nil OwnerID means all owners
// (admin rollup). Date bounds are inclusive.
type RecordFilter struct {
	OwnerID   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// BatchSkip describes one batch entry that was not inserted and why.
type BatchSkip struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BatchResult summarizes a batch insertion. Partial failures never abort
// the batch; each skipped entry is reported alongside the insert count.
type BatchResult struct {
	InsertedCount int         `json:"insertedCount"`
	Skipped       []BatchSkip `json:"skipped"`
}
