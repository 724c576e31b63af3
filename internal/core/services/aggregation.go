package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
)

// Pure aggregation functions over a record snapshot. Every report fetches
// its records once and derives everything here; nothing in this file
// touches the store.

// completionRateScale is the precision kept for derived completion rates.
const completionRateScale = 6

// CompletionRate computes amount/target, 0 when target is zero.
// Division never happens with a zero divisor, so the result can neither be
// an infinity nor a NaN.
func CompletionRate(amount, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		return decimal.Zero
	}
	return amount.DivRound(target, completionRateScale)
}

// Totals computes the weighted aggregate over records: sums of amount and
// target, and completion rate amountSum/targetSum. Averaging the
// per-record rates would overweight small targets; the weighted form is
// the one the dashboard shows.
func Totals(records []domain.SalesRecord) domain.ReportTotals {
	amountSum := decimal.Zero
	targetSum := decimal.Zero
	for _, r := range records {
		amountSum = amountSum.Add(r.Amount)
		targetSum = targetSum.Add(r.Target)
	}
	return domain.ReportTotals{
		AmountSum:      amountSum,
		TargetSum:      targetSum,
		CompletionRate: CompletionRate(amountSum, targetSum),
	}
}

// GroupRecords groups records by owner, keyed either by account ID or by
// the owner name snapshot, and computes the weighted rate per group.
// Name keying merges accounts that share a display name; both views are
// exposed and the caller chooses. Groups come back in first-seen order.
func GroupRecords(records []domain.SalesRecord, groupBy domain.OwnerGroupKey) []domain.OwnerSummary {
	keyOf := func(r domain.SalesRecord) string { return r.OwnerID }
	if groupBy == domain.GroupByOwnerName {
		keyOf = func(r domain.SalesRecord) string { return r.OwnerName }
	}

	index := map[string]int{}
	groups := []domain.OwnerSummary{}
	for _, r := range records {
		key := keyOf(r)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.OwnerSummary{
				GroupKey:  key,
				OwnerName: r.OwnerName,
				AmountSum: decimal.Zero,
				TargetSum: decimal.Zero,
			})
		}
		groups[i].AmountSum = groups[i].AmountSum.Add(r.Amount)
		groups[i].TargetSum = groups[i].TargetSum.Add(r.Target)
	}

	for i := range groups {
		groups[i].CompletionRate = CompletionRate(groups[i].AmountSum, groups[i].TargetSum)
	}
	return groups
}

// RankOwners sorts groups by completion rate descending and assigns
// MIN-style ranks: tied rates share the smallest eligible rank, and the
// next distinct rate's rank is one more than the count of strictly better
// entries. Rates [1.0, 1.0, 0.5] rank as [1, 1, 3], not [1, 1, 2].
func RankOwners(groups []domain.OwnerSummary) []domain.OwnerSummary {
	ranked := make([]domain.OwnerSummary, len(groups))
	copy(ranked, groups)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompletionRate.GreaterThan(ranked[j].CompletionRate)
	})

	for i := range ranked {
		if i > 0 && ranked[i].CompletionRate.Equal(ranked[i-1].CompletionRate) {
			ranked[i].Rank = ranked[i-1].Rank
			continue
		}
		ranked[i].Rank = i + 1
	}
	return ranked
}

// TimeBuckets sums records into calendar buckets, daily or monthly,
// ascending by bucket. Bucket labels are "2006-01-02" for days and
// "2006-01" for months.
func TimeBuckets(records []domain.SalesRecord, granularity domain.Granularity) []domain.TrendPoint {
	layout := "2006-01-02"
	if granularity == domain.GranularityMonth {
		layout = "2006-01"
	}

	index := map[string]int{}
	points := []domain.TrendPoint{}
	for _, r := range records {
		bucket := r.SaleDate.Format(layout)
		i, ok := index[bucket]
		if !ok {
			i = len(points)
			index[bucket] = i
			points = append(points, domain.TrendPoint{
				Bucket:    bucket,
				AmountSum: decimal.Zero,
				TargetSum: decimal.Zero,
			})
		}
		points[i].AmountSum = points[i].AmountSum.Add(r.Amount)
		points[i].TargetSum = points[i].TargetSum.Add(r.Target)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Bucket < points[j].Bucket })
	return points
}

// TopProducts ranks products by total amount descending, product ID
// ascending on ties, returning at most limit rows.
func TopProducts(records []domain.SalesRecord, limit int) []domain.ProductTotal {
	index := map[string]int{}
	products := []domain.ProductTotal{}
	for _, r := range records {
		i, ok := index[r.ProductID]
		if !ok {
			i = len(products)
			index[r.ProductID] = i
			products = append(products, domain.ProductTotal{ProductID: r.ProductID, AmountSum: decimal.Zero})
		}
		products[i].AmountSum = products[i].AmountSum.Add(r.Amount)
	}

	sort.Slice(products, func(i, j int) bool {
		if !products[i].AmountSum.Equal(products[j].AmountSum) {
			return products[i].AmountSum.GreaterThan(products[j].AmountSum)
		}
		return products[i].ProductID < products[j].ProductID
	})

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products
}

// SummaryMetrics computes the dashboard headline sums: today's amount,
// this month's amount and the lifetime amount, relative to now.
func SummaryMetrics(records []domain.SalesRecord, now time.Time) domain.DashboardSummary {
	today := now.Format("2006-01-02")
	month := now.Format("2006-01")

	summary := domain.DashboardSummary{
		TodayAmount: decimal.Zero,
		MonthAmount: decimal.Zero,
		TotalAmount: decimal.Zero,
	}
	for _, r := range records {
		day := r.SaleDate.Format("2006-01-02")
		summary.TotalAmount = summary.TotalAmount.Add(r.Amount)
		if day == today {
			summary.TodayAmount = summary.TodayAmount.Add(r.Amount)
		}
		if day[:7] == month {
			summary.MonthAmount = summary.MonthAmount.Add(r.Amount)
		}
	}
	return summary
}
