package repositories

import (
	"context"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
)

// RecordRepository persists sales records.
type RecordRepository interface {
	// SaveRecord inserts one record and fills in the generated RecordID and
	// CreatedAt on the passed struct.
	SaveRecord(ctx context.Context, record *domain.SalesRecord) error
	// DeleteRecordForOwner deletes the record only when it belongs to the
	// given owner. Returns apperrors.ErrNotFound when no row matched,
	// whether the record does not exist or is owned by someone else.
	DeleteRecordForOwner(ctx context.Context, recordID int64, ownerID string) error
	// FindRecords returns the filtered records ordered by sale_date DESC,
	// record_id DESC (stable newest-first tie-break for same-date entries).
	FindRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.SalesRecord, error)
	// FindRecentRecords returns the owner's newest records by insertion order.
	FindRecentRecords(ctx context.Context, ownerID string, limit int) ([]domain.SalesRecord, error)
}
