package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portsrepo "github.com/salestrackhq/salestrack_app/internal/core/ports/repositories"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/dto"
)

const saleDateLayout = "2006-01-02"

type recordService struct {
	BaseService
	recordRepo  portsrepo.RecordRepository
	provisioner portssvc.AccountProvisionerSvc
	// adminRollup allows admins to query across all owners.
	adminRollup bool
}

// RecordServiceOption is a functional option for configuring the record service.
type RecordServiceOption func(*recordService)

// WithAdminRollup toggles the all-owners admin view.
func WithAdminRollup(enabled bool) RecordServiceOption {
	return func(s *recordService) {
		s.adminRollup = enabled
	}
}

// NewRecordService creates the record service. The provisioner resolves
// batch-entry names to accounts, creating them when needed.
func NewRecordService(recordRepo portsrepo.RecordRepository, provisioner portssvc.AccountProvisionerSvc, options ...RecordServiceOption) portssvc.RecordSvcFacade {
	svc := &recordService{
		recordRepo:  recordRepo,
		provisioner: provisioner,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure recordService implements the facade
var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// validateEntry checks the common entry fields and parses the date.
// Amount must be positive; a zero amount is an empty submission, not a sale.
func validateEntry(productID, date string, amount, target decimal.Decimal) (time.Time, error) {
	if strings.TrimSpace(productID) == "" {
		return time.Time{}, fmt.Errorf("product is required: %w", apperrors.ErrValidation)
	}
	saleDate, err := time.Parse(saleDateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", apperrors.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return time.Time{}, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return time.Time{}, fmt.Errorf("target must be positive: %w", apperrors.ErrValidation)
	}
	return saleDate, nil
}

func (s *recordService) AddRecord(ctx context.Context, owner *domain.Account, req dto.CreateRecordRequest) (*domain.SalesRecord, error) {
	saleDate, err := validateEntry(req.ProductID, req.Date, req.Amount, req.Target)
	if err != nil {
		return nil, err
	}

	record := &domain.SalesRecord{
		OwnerID:   owner.AccountID,
		OwnerName: owner.DisplayName, // snapshot at insert time
		ProductID: strings.TrimSpace(req.ProductID),
		SaleDate:  saleDate,
		Amount:    req.Amount,
		Target:    req.Target,
		// Recomputed here regardless of anything the caller sent.
		CompletionRate: CompletionRate(req.Amount, req.Target),
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save sales record", slog.String("owner_id", owner.AccountID))
		return nil, fmt.Errorf("failed to add record: %w", err)
	}

	s.LogInfo(ctx, "Sales record added",
		slog.Int64("record_id", record.RecordID),
		slog.String("owner_id", owner.AccountID))
	return record, nil
}

func (s *recordService) AddBatch(ctx context.Context, actor *domain.Account, entries []dto.BatchEntryRequest) (*domain.BatchResult, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("batch entry is admin only: %w", apperrors.ErrForbidden)
	}

	result := &domain.BatchResult{Skipped: []domain.BatchSkip{}}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)

		// A fully blank row is a spacer in the form, not an error.
		if name == "" && strings.TrimSpace(entry.ProductID) == "" && entry.Amount.IsZero() && entry.Target.IsZero() {
			continue
		}
		if name == "" {
			result.Skipped = append(result.Skipped, domain.BatchSkip{Name: name, Reason: "name is required"})
			continue
		}

		saleDate, err := validateEntry(entry.ProductID, entry.Date, entry.Amount, entry.Target)
		if err != nil {
			result.Skipped = append(result.Skipped, domain.BatchSkip{Name: name, Reason: err.Error()})
			continue
		}

		owner, provisioned, err := s.provisioner.ResolveByDisplayName(ctx, name, actor.AccountID)
		if err != nil {
			result.Skipped = append(result.Skipped, domain.BatchSkip{Name: name, Reason: "could not resolve account: " + err.Error()})
			continue
		}
		if provisioned {
			s.LogInfo(ctx, "Batch entry provisioned a new account",
				slog.String("name", name),
				slog.String("account_id", owner.AccountID))
		}

		record := &domain.SalesRecord{
			OwnerID:        owner.AccountID,
			OwnerName:      owner.DisplayName,
			ProductID:      strings.TrimSpace(entry.ProductID),
			SaleDate:       saleDate,
			Amount:         entry.Amount,
			Target:         entry.Target,
			CompletionRate: CompletionRate(entry.Amount, entry.Target),
		}
		if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
			// One bad row never aborts the rest of the batch.
			s.LogError(ctx, err, "Batch entry insert failed", slog.String("name", name))
			result.Skipped = append(result.Skipped, domain.BatchSkip{Name: name, Reason: "insert failed"})
			continue
		}
		result.InsertedCount++
	}

	s.LogInfo(ctx, "Batch entry processed",
		slog.Int("inserted", result.InsertedCount),
		slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, recordID int64, ownerID string) error {
	if err := s.recordRepo.DeleteRecordForOwner(ctx, recordID, ownerID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Sales record deleted",
		slog.Int64("record_id", recordID),
		slog.String("owner_id", ownerID))
	return nil
}

// scopeFilter clamps the filter to what the actor may see: non-admins are
// always limited to their own records, and the all-owners view is only
// available to admins when the rollup feature is on.
func (s *recordService) scopeFilter(actor *domain.Account, filter domain.RecordFilter) (domain.RecordFilter, error) {
	if actor.IsAdmin {
		if filter.OwnerID == nil && !s.adminRollup {
			ownID := actor.AccountID
			filter.OwnerID = &ownID
		}
		return filter, nil
	}
	if filter.OwnerID != nil && *filter.OwnerID != actor.AccountID {
		return filter, fmt.Errorf("cannot query another owner's records: %w", apperrors.ErrForbidden)
	}
	ownID := actor.AccountID
	filter.OwnerID = &ownID
	return filter, nil
}

func (s *recordService) QueryRecords(ctx context.Context, actor *domain.Account, filter domain.RecordFilter) ([]domain.SalesRecord, error) {
	filter, err := s.scopeFilter(actor, filter)
	if err != nil {
		return nil, err
	}
	records, err := s.recordRepo.FindRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to query sales records")
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	return records, nil
}

func (s *recordService) RecentRecords(ctx context.Context, actor *domain.Account, limit int) ([]domain.SalesRecord, error) {
	records, err := s.recordRepo.FindRecentRecords(ctx, actor.AccountID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to query recent sales records")
		return nil, fmt.Errorf("failed to query recent records: %w", err)
	}
	return records, nil
}
