package domain

import "github.com/shopspring/decimal"

// OwnerGroupKey selects how by-owner aggregation groups records.
type OwnerGroupKey string

const (
	// GroupByOwnerID groups by the stable account ID.
	GroupByOwnerID OwnerGroupKey = "id"
	// GroupByOwnerName groups by the denormalized owner name snapshot.
	// Accounts sharing a display name merge into one row; this reproduces
	// the historical "report by human identity" view.
	GroupByOwnerName OwnerGroupKey = "name"
)

// Granularity selects the calendar bucket size for trend reports.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// ReportTotals is the weighted aggregate over a record set. CompletionRate
// is amountSum/targetSum (0 when targetSum is 0), never an average of
// per-record rates.
type ReportTotals struct {
	AmountSum      decimal.Decimal `json:"amountSum"`
	TargetSum      decimal.Decimal `json:"targetSum"`
	CompletionRate decimal.Decimal `json:"completionRate"`
}

// OwnerSummary is one group row in the by-owner report.
type OwnerSummary struct {
	GroupKey       string          `json:"groupKey"` // account ID or name snapshot, depending on keying
	OwnerName      string          `json:"ownerName"`
	AmountSum      decimal.Decimal `json:"amountSum"`
	TargetSum      decimal.Decimal `json:"targetSum"`
	CompletionRate decimal.Decimal `json:"completionRate"`
	Rank           int             `json:"rank"` // MIN-style: ties share the best eligible rank
}

// TrendPoint is one calendar bucket in the trend report.
type TrendPoint struct {
	Bucket    string          `json:"bucket"` // "2006-01-02" for day, "2006-01" for month
	AmountSum decimal.Decimal `json:"amountSum"`
	TargetSum decimal.Decimal `json:"targetSum"`
}

// ProductTotal is one row of the top-products ranking.
type ProductTotal struct {
	ProductID string          `json:"productID"`
	AmountSum decimal.Decimal `json:"amountSum"`
}

// DashboardSummary holds the headline metrics of the dashboard:
// today's, this month's and lifetime amount sums.
type DashboardSummary struct {
	TodayAmount decimal.Decimal `json:"todayAmount"`
	MonthAmount decimal.Decimal `json:"monthAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
