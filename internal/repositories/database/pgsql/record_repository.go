package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portsrepo "github.com/salestrackhq/salestrack_app/internal/core/ports/repositories"
	"github.com/salestrackhq/salestrack_app/internal/models"
)

type PgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(db *pgxpool.Pool) portsrepo.RecordRepository {
	return &PgxRecordRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxRecordRepository implements portsrepo.RecordRepository
var _ portsrepo.RecordRepository = (*PgxRecordRepository)(nil)

func toDomainRecord(m models.SalesRecord) domain.SalesRecord {
	return domain.SalesRecord{
		RecordID:       m.RecordID,
		OwnerID:        m.OwnerID,
		OwnerName:      m.OwnerName,
		ProductID:      m.ProductID,
		SaleDate:       m.SaleDate,
		Amount:         m.Amount,
		Target:         m.Target,
		CompletionRate: m.CompletionRate,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record *domain.SalesRecord) error {
	query := `
        INSERT INTO sales_records (owner_id, owner_name, product_id, sale_date, amount, target, completion_rate)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING record_id, created_at;
    `
	err := r.Pool.QueryRow(ctx, query,
		record.OwnerID,
		record.OwnerName,
		record.ProductID,
		record.SaleDate,
		record.Amount,
		record.Target,
		record.CompletionRate,
	).Scan(&record.RecordID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save sales record: %w", classifyStoreErr(err))
	}
	return nil
}

func (r *PgxRecordRepository) DeleteRecordForOwner(ctx context.Context, recordID int64, ownerID string) error {
	// Ownership is part of the predicate: a foreign-owned record and a
	// nonexistent one are indistinguishable to the caller.
	query := `DELETE FROM sales_records WHERE record_id = $1 AND owner_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, recordID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete sales record %d: %w", recordID, classifyStoreErr(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("record %d not found or not owned: %w", recordID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRecordRepository) FindRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.SalesRecord, error) {
	var sb strings.Builder
	sb.WriteString(`
        SELECT record_id, owner_id, owner_name, product_id, sale_date, amount, target, completion_rate, created_at
        FROM sales_records
        WHERE 1=1`)

	args := []any{}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		fmt.Fprintf(&sb, " AND owner_id = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		fmt.Fprintf(&sb, " AND sale_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		fmt.Fprintf(&sb, " AND sale_date <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY sale_date DESC, record_id DESC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales records: %w", classifyStoreErr(err))
	}
	defer rows.Close()

	return scanRecordRows(rows)
}

func (r *PgxRecordRepository) FindRecentRecords(ctx context.Context, ownerID string, limit int) ([]domain.SalesRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
        SELECT record_id, owner_id, owner_name, product_id, sale_date, amount, target, completion_rate, created_at
        FROM sales_records
        WHERE owner_id = $1
        ORDER BY record_id DESC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sales records: %w", classifyStoreErr(err))
	}
	defer rows.Close()

	return scanRecordRows(rows)
}

func scanRecordRows(rows pgx.Rows) ([]domain.SalesRecord, error) {
	records := []domain.SalesRecord{}
	for rows.Next() {
		var m models.SalesRecord
		err := rows.Scan(
			&m.RecordID,
			&m.OwnerID,
			&m.OwnerName,
			&m.ProductID,
			&m.SaleDate,
			&m.Amount,
			&m.Target,
			&m.CompletionRate,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales record row: %w", err)
		}
		records = append(records, toDomainRecord(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sales record rows: %w", classifyStoreErr(rows.Err()))
	}
	return records, nil
}
