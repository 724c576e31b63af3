package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	"github.com/salestrackhq/salestrack_app/internal/core/services"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func makeRecord(t *testing.T, ownerID, ownerName, productID, date string, amount, target int64) domain.SalesRecord {
	t.Helper()
	return domain.SalesRecord{
		OwnerID:        ownerID,
		OwnerName:      ownerName,
		ProductID:      productID,
		SaleDate:       mustDate(t, date),
		Amount:         decimal.NewFromInt(amount),
		Target:         decimal.NewFromInt(target),
		CompletionRate: services.CompletionRate(decimal.NewFromInt(amount), decimal.NewFromInt(target)),
	}
}

func TestCompletionRate(t *testing.T) {
	t.Run("zero target yields zero, not an error", func(t *testing.T) {
		rate := services.CompletionRate(decimal.NewFromInt(100), decimal.Zero)
		assert.True(t, rate.IsZero())
	})

	t.Run("half", func(t *testing.T) {
		rate := services.CompletionRate(decimal.NewFromInt(100), decimal.NewFromInt(200))
		assert.True(t, rate.Equal(decimal.NewFromFloat(0.5)), "got %s", rate)
	})

	t.Run("over-achievement exceeds 1", func(t *testing.T) {
		rate := services.CompletionRate(decimal.NewFromInt(300), decimal.NewFromInt(200))
		assert.True(t, rate.Equal(decimal.NewFromFloat(1.5)), "got %s", rate)
	})
}

func TestTotals_Empty(t *testing.T) {
	totals := services.Totals(nil)
	assert.True(t, totals.AmountSum.IsZero())
	assert.True(t, totals.TargetSum.IsZero())
	assert.True(t, totals.CompletionRate.IsZero())
}

func TestTotals_WeightedNotAveraged(t *testing.T) {
	// Per-record rates are 1.0 and 0.5, so their average would be 0.75.
	// The weighted rate is (10+500)/(10+1000), roughly 0.50495: the small
	// target must not pull the aggregate up.
	records := []domain.SalesRecord{
		makeRecord(t, "a", "A", "p1", "2026-03-01", 10, 10),
		makeRecord(t, "a", "A", "p2", "2026-03-02", 500, 1000),
	}
	totals := services.Totals(records)
	assert.True(t, totals.AmountSum.Equal(decimal.NewFromInt(510)))
	assert.True(t, totals.TargetSum.Equal(decimal.NewFromInt(1010)))

	expected := decimal.NewFromInt(510).DivRound(decimal.NewFromInt(1010), 6)
	assert.True(t, totals.CompletionRate.Equal(expected), "got %s", totals.CompletionRate)

	average := decimal.NewFromFloat(0.75)
	assert.False(t, totals.CompletionRate.Equal(average), "weighted rate must not be the per-record average")
}

func TestTotals_Additivity(t *testing.T) {
	first := []domain.SalesRecord{
		makeRecord(t, "a", "A", "p1", "2026-03-01", 100, 200),
	}
	second := []domain.SalesRecord{
		makeRecord(t, "b", "B", "p2", "2026-03-02", 50, 100),
		makeRecord(t, "b", "B", "p3", "2026-03-03", 25, 50),
	}
	combined := append(append([]domain.SalesRecord{}, first...), second...)

	tf := services.Totals(first)
	ts := services.Totals(second)
	tc := services.Totals(combined)

	assert.True(t, tc.AmountSum.Equal(tf.AmountSum.Add(ts.AmountSum)))
	assert.True(t, tc.TargetSum.Equal(tf.TargetSum.Add(ts.TargetSum)))
}

func TestGroupRecords_KeyingDiverges(t *testing.T) {
	// Two accounts share the display name "Kim"; id keying keeps them
	// apart, name keying merges them into one row.
	records := []domain.SalesRecord{
		makeRecord(t, "acc-1", "Kim", "p1", "2026-03-01", 100, 200),
		makeRecord(t, "acc-2", "Kim", "p2", "2026-03-01", 50, 100),
		makeRecord(t, "acc-3", "Lee", "p3", "2026-03-01", 30, 60),
	}

	byID := services.GroupRecords(records, domain.GroupByOwnerID)
	require.Len(t, byID, 3)
	assert.Equal(t, "acc-1", byID[0].GroupKey)
	assert.Equal(t, "acc-2", byID[1].GroupKey)

	byName := services.GroupRecords(records, domain.GroupByOwnerName)
	require.Len(t, byName, 2)
	assert.Equal(t, "Kim", byName[0].GroupKey)
	assert.True(t, byName[0].AmountSum.Equal(decimal.NewFromInt(150)))
	assert.True(t, byName[0].TargetSum.Equal(decimal.NewFromInt(300)))
}

func TestRankOwners_MinStyleTies(t *testing.T) {
	groups := []domain.OwnerSummary{
		{GroupKey: "a", CompletionRate: decimal.NewFromFloat(1.0)},
		{GroupKey: "b", CompletionRate: decimal.NewFromFloat(0.5)},
		{GroupKey: "c", CompletionRate: decimal.NewFromFloat(1.0)},
	}

	ranked := services.RankOwners(groups)
	require.Len(t, ranked, 3)

	// Two tied at rank 1, the next rank is 3, never 2.
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, "b", ranked[2].GroupKey)
}

func TestRankOwners_DoesNotMutateInput(t *testing.T) {
	groups := []domain.OwnerSummary{
		{GroupKey: "low", CompletionRate: decimal.NewFromFloat(0.1)},
		{GroupKey: "high", CompletionRate: decimal.NewFromFloat(0.9)},
	}
	_ = services.RankOwners(groups)
	assert.Equal(t, "low", groups[0].GroupKey, "input order must be preserved")
	assert.Equal(t, 0, groups[0].Rank)
}

func TestTimeBuckets(t *testing.T) {
	records := []domain.SalesRecord{
		makeRecord(t, "a", "A", "p1", "2026-03-02", 10, 20),
		makeRecord(t, "a", "A", "p2", "2026-03-01", 5, 10),
		makeRecord(t, "a", "A", "p3", "2026-03-02", 15, 30),
		makeRecord(t, "a", "A", "p4", "2026-04-01", 7, 14),
	}

	t.Run("daily buckets ascend and sum", func(t *testing.T) {
		points := services.TimeBuckets(records, domain.GranularityDay)
		require.Len(t, points, 3)
		assert.Equal(t, "2026-03-01", points[0].Bucket)
		assert.Equal(t, "2026-03-02", points[1].Bucket)
		assert.Equal(t, "2026-04-01", points[2].Bucket)
		assert.True(t, points[1].AmountSum.Equal(decimal.NewFromInt(25)))
	})

	t.Run("monthly buckets merge days", func(t *testing.T) {
		points := services.TimeBuckets(records, domain.GranularityMonth)
		require.Len(t, points, 2)
		assert.Equal(t, "2026-03", points[0].Bucket)
		assert.True(t, points[0].AmountSum.Equal(decimal.NewFromInt(30)))
		assert.Equal(t, "2026-04", points[1].Bucket)
	})
}

func TestTopProducts(t *testing.T) {
	records := []domain.SalesRecord{
		makeRecord(t, "a", "A", "widget", "2026-03-01", 100, 200),
		makeRecord(t, "a", "A", "gadget", "2026-03-01", 300, 400),
		makeRecord(t, "a", "A", "widget", "2026-03-02", 50, 100),
		makeRecord(t, "a", "A", "anvil", "2026-03-02", 150, 200),
	}

	t.Run("ranks by amount descending", func(t *testing.T) {
		products := services.TopProducts(records, 10)
		require.Len(t, products, 3)
		assert.Equal(t, "gadget", products[0].ProductID)
		assert.Equal(t, "anvil", products[1].ProductID)
		assert.Equal(t, "widget", products[2].ProductID)
		assert.True(t, products[2].AmountSum.Equal(decimal.NewFromInt(150)))
	})

	t.Run("ties break by product ID ascending", func(t *testing.T) {
		tied := []domain.SalesRecord{
			makeRecord(t, "a", "A", "zeta", "2026-03-01", 100, 100),
			makeRecord(t, "a", "A", "alpha", "2026-03-01", 100, 100),
		}
		products := services.TopProducts(tied, 10)
		require.Len(t, products, 2)
		assert.Equal(t, "alpha", products[0].ProductID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		products := services.TopProducts(records, 2)
		require.Len(t, products, 2)
		assert.Equal(t, "gadget", products[0].ProductID)
	})
}

func TestSummaryMetrics(t *testing.T) {
	now := mustDate(t, "2026-03-15")
	records := []domain.SalesRecord{
		makeRecord(t, "a", "A", "p1", "2026-03-15", 10, 20), // today
		makeRecord(t, "a", "A", "p2", "2026-03-01", 5, 10),  // this month
		makeRecord(t, "a", "A", "p3", "2026-02-10", 7, 14),  // older
	}

	summary := services.SummaryMetrics(records, now)
	assert.True(t, summary.TodayAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, summary.MonthAmount.Equal(decimal.NewFromInt(15)))
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(22)))
}
