package services

import (
	"context"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	"github.com/salestrackhq/salestrack_app/internal/dto"
)

// RecordSvcFacade is the record service surface used by handlers.
type RecordSvcFacade interface {
	// AddRecord validates and persists one sales entry for the owner,
	// recomputing the completion rate from amount and target.
	AddRecord(ctx context.Context, owner *domain.Account, req dto.CreateRecordRequest) (*domain.SalesRecord, error)

	// AddBatch inserts entries for multiple named people, auto-provisioning
	// unknown names. Admin only. Per-entry failures are reported in the
	// result, not raised.
	AddBatch(ctx context.Context, actor *domain.Account, entries []dto.BatchEntryRequest) (*domain.BatchResult, error)

	// DeleteRecord deletes the record when it belongs to ownerID, otherwise
	// fails with apperrors.ErrNotFound (covers both nonexistent and
	// foreign-owned records).
	DeleteRecord(ctx context.Context, recordID int64, ownerID string) error

	// QueryRecords lists records scoped to the actor: non-admins always see
	// their own records; admins may scope to any owner or, when the rollup
	// feature is enabled, to all owners.
	QueryRecords(ctx context.Context, actor *domain.Account, filter domain.RecordFilter) ([]domain.SalesRecord, error)

	// RecentRecords returns the actor's newest entries by insertion order.
	RecentRecords(ctx context.Context, actor *domain.Account, limit int) ([]domain.SalesRecord, error)
}
