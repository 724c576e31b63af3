package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portsrepo "github.com/salestrackhq/salestrack_app/internal/core/ports/repositories"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
)

// defaultTopProducts caps the product ranking when the caller gives no limit.
const defaultTopProducts = 5

type reportingService struct {
	BaseService
	recordRepo  portsrepo.RecordRepository
	adminRollup bool
}

// ReportingServiceOption is a functional option for configuring the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingAdminRollup toggles the all-owners admin view for reports.
func WithReportingAdminRollup(enabled bool) ReportingServiceOption {
	return func(s *reportingService) {
		s.adminRollup = enabled
	}
}

// NewReportingService creates the reporting service. Every report fetches
// one snapshot of records from the repository and derives the result with
// the pure aggregation functions; no report holds state between calls.
func NewReportingService(recordRepo portsrepo.RecordRepository, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{recordRepo: recordRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the facade
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// snapshot applies actor scoping and fetches the records a report runs on.
func (s *reportingService) snapshot(ctx context.Context, actor *domain.Account, filter domain.RecordFilter) ([]domain.SalesRecord, error) {
	if actor.IsAdmin {
		if filter.OwnerID == nil && !s.adminRollup {
			ownID := actor.AccountID
			filter.OwnerID = &ownID
		}
	} else {
		if filter.OwnerID != nil && *filter.OwnerID != actor.AccountID {
			return nil, fmt.Errorf("cannot report on another owner's records: %w", apperrors.ErrForbidden)
		}
		ownID := actor.AccountID
		filter.OwnerID = &ownID
	}

	records, err := s.recordRepo.FindRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch record snapshot for report")
		return nil, fmt.Errorf("failed to fetch records for report: %w", err)
	}
	return records, nil
}

func (s *reportingService) Totals(ctx context.Context, actor *domain.Account, filter domain.RecordFilter) (*domain.ReportTotals, error) {
	records, err := s.snapshot(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	totals := Totals(records)
	s.LogInfo(ctx, "Totals report generated", slog.Int("record_count", len(records)))
	return &totals, nil
}

func (s *reportingService) ByOwner(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, groupBy domain.OwnerGroupKey) ([]domain.OwnerSummary, error) {
	if groupBy != domain.GroupByOwnerID && groupBy != domain.GroupByOwnerName {
		return nil, fmt.Errorf("groupBy must be %q or %q: %w", domain.GroupByOwnerID, domain.GroupByOwnerName, apperrors.ErrValidation)
	}
	records, err := s.snapshot(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	ranked := RankOwners(GroupRecords(records, groupBy))
	s.LogInfo(ctx, "By-owner report generated",
		slog.String("group_by", string(groupBy)),
		slog.Int("group_count", len(ranked)))
	return ranked, nil
}

func (s *reportingService) Trend(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, granularity domain.Granularity) ([]domain.TrendPoint, error) {
	if granularity != domain.GranularityDay && granularity != domain.GranularityMonth {
		return nil, fmt.Errorf("granularity must be %q or %q: %w", domain.GranularityDay, domain.GranularityMonth, apperrors.ErrValidation)
	}
	records, err := s.snapshot(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	points := TimeBuckets(records, granularity)
	s.LogInfo(ctx, "Trend report generated",
		slog.String("granularity", string(granularity)),
		slog.Int("bucket_count", len(points)))
	return points, nil
}

func (s *reportingService) TopProducts(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, limit int) ([]domain.ProductTotal, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	records, err := s.snapshot(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	products := TopProducts(records, limit)
	s.LogInfo(ctx, "Top products report generated", slog.Int("product_count", len(products)))
	return products, nil
}

func (s *reportingService) Summary(ctx context.Context, actor *domain.Account) (*domain.DashboardSummary, error) {
	ownID := actor.AccountID
	records, err := s.recordRepo.FindRecords(ctx, domain.RecordFilter{OwnerID: &ownID})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch records for dashboard summary")
		return nil, fmt.Errorf("failed to fetch records for summary: %w", err)
	}
	summary := SummaryMetrics(records, time.Now())
	return &summary, nil
}

func (s *reportingService) ExportCSV(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, w io.Writer) error {
	records, err := s.snapshot(ctx, actor, filter)
	if err != nil {
		return err
	}
	if err := WriteRecordsCSV(w, records); err != nil {
		s.LogError(ctx, err, "Failed to write CSV export")
		return fmt.Errorf("failed to write export: %w", err)
	}
	s.LogInfo(ctx, "CSV export generated", slog.Int("row_count", len(records)))
	return nil
}
