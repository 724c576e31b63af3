package dto

import (
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest carries one sales entry submission.
type CreateRecordRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Date      string          `json:"date" binding:"required,saledate"` // YYYY-MM-DD
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Target    decimal.Decimal `json:"target" binding:"required"`
}

// BatchEntryRequest is one row of a batch submission. Rows are validated
// individually; a bad row is skipped and reported, never aborting the batch.
type BatchEntryRequest struct {
	Name      string          `json:"name"`
	ProductID string          `json:"productID"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Target    decimal.Decimal `json:"target"`
}

// BatchRequest wraps the submitted batch rows.
type BatchRequest struct {
	Entries []BatchEntryRequest `json:"entries" binding:"required"`
}

// RecordQueryParams are the query filters for listing records.
type RecordQueryParams struct {
	OwnerID   string `form:"ownerID"`
	StartDate string `form:"startDate"` // inclusive, YYYY-MM-DD
	EndDate   string `form:"endDate"`   // inclusive, YYYY-MM-DD
}

// RecordResponse is the public view of a sales record.
type RecordResponse struct {
	RecordID       int64           `json:"recordID"`
	OwnerID        string          `json:"ownerID"`
	OwnerName      string          `json:"ownerName"`
	ProductID      string          `json:"productID"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Target         decimal.Decimal `json:"target"`
	CompletionRate decimal.Decimal `json:"completionRate"`
}

// ToRecordResponse converts a domain.SalesRecord to its public view.
func ToRecordResponse(record domain.SalesRecord) RecordResponse {
	return RecordResponse{
		RecordID:       record.RecordID,
		OwnerID:        record.OwnerID,
		OwnerName:      record.OwnerName,
		ProductID:      record.ProductID,
		Date:           record.SaleDate.Format("2006-01-02"),
		Amount:         record.Amount,
		Target:         record.Target,
		CompletionRate: record.CompletionRate,
	}
}

// ToRecordListResponse converts a slice of records.
func ToRecordListResponse(records []domain.SalesRecord) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i, record := range records {
		responses[i] = ToRecordResponse(record)
	}
	return responses
}
