package services

import (
	"context"
	"io"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
)

// ReportingSvcFacade computes aggregate reports over a snapshot of records
// fetched once per call. All computations are pure functions of that
// snapshot; no report reads the store twice.
type ReportingSvcFacade interface {
	// Totals returns the weighted aggregate over the scoped records.
	Totals(ctx context.Context, actor *domain.Account, filter domain.RecordFilter) (*domain.ReportTotals, error)

	// ByOwner returns per-owner sums ranked by completion rate, grouped by
	// account ID or by owner name snapshot.
	ByOwner(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, groupBy domain.OwnerGroupKey) ([]domain.OwnerSummary, error)

	// Trend returns day or month buckets over the scoped records.
	Trend(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, granularity domain.Granularity) ([]domain.TrendPoint, error)

	// TopProducts returns the highest-grossing products, at most limit rows.
	TopProducts(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, limit int) ([]domain.ProductTotal, error)

	// Summary returns today / this month / lifetime amount sums for the actor.
	Summary(ctx context.Context, actor *domain.Account) (*domain.DashboardSummary, error)

	// ExportCSV streams the scoped records as delimited text. Currency and
	// percentage formatting is applied at render time only.
	ExportCSV(ctx context.Context, actor *domain.Account, filter domain.RecordFilter, w io.Writer) error
}
