package dto

import (
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportQueryParams scope a report request. OwnerID is only honored for
// admins; omitting it as an admin requests the all-owners rollup.
type ReportQueryParams struct {
	OwnerID   string `form:"ownerID"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// TotalsResponse is the weighted aggregate report.
type TotalsResponse struct {
	AmountSum      decimal.Decimal `json:"amountSum"`
	TargetSum      decimal.Decimal `json:"targetSum"`
	CompletionRate decimal.Decimal `json:"completionRate"`
}

// OwnerSummaryResponse is one ranked row of the by-owner report.
type OwnerSummaryResponse struct {
	Rank           int             `json:"rank"`
	GroupKey       string          `json:"groupKey"`
	OwnerName      string          `json:"ownerName"`
	AmountSum      decimal.Decimal `json:"amountSum"`
	TargetSum      decimal.Decimal `json:"targetSum"`
	CompletionRate decimal.Decimal `json:"completionRate"`
}

// ByOwnerResponse wraps the ranked by-owner rows.
type ByOwnerResponse struct {
	GroupBy string                 `json:"groupBy"`
	Rows    []OwnerSummaryResponse `json:"rows"`
}

// TrendResponse wraps the time-bucketed trend rows.
type TrendResponse struct {
	Granularity string               `json:"granularity"`
	Points      []TrendPointResponse `json:"points"`
}

// TrendPointResponse is one calendar bucket.
type TrendPointResponse struct {
	Bucket    string          `json:"bucket"`
	AmountSum decimal.Decimal `json:"amountSum"`
	TargetSum decimal.Decimal `json:"targetSum"`
}

// TopProductsResponse wraps the product ranking rows.
type TopProductsResponse struct {
	Products []ProductTotalResponse `json:"products"`
}

// ProductTotalResponse is one row of the product ranking.
type ProductTotalResponse struct {
	ProductID string          `json:"productID"`
	AmountSum decimal.Decimal `json:"amountSum"`
}

// SummaryResponse carries the dashboard headline metrics.
type SummaryResponse struct {
	TodayAmount decimal.Decimal `json:"todayAmount"`
	MonthAmount decimal.Decimal `json:"monthAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ToByOwnerResponse converts ranked owner summaries.
func ToByOwnerResponse(groups []domain.OwnerSummary, groupBy domain.OwnerGroupKey) ByOwnerResponse {
	rows := make([]OwnerSummaryResponse, len(groups))
	for i, g := range groups {
		rows[i] = OwnerSummaryResponse{
			Rank:           g.Rank,
			GroupKey:       g.GroupKey,
			OwnerName:      g.OwnerName,
			AmountSum:      g.AmountSum,
			TargetSum:      g.TargetSum,
			CompletionRate: g.CompletionRate,
		}
	}
	return ByOwnerResponse{GroupBy: string(groupBy), Rows: rows}
}

// ToTrendResponse converts trend points.
func ToTrendResponse(points []domain.TrendPoint, granularity domain.Granularity) TrendResponse {
	rows := make([]TrendPointResponse, len(points))
	for i, p := range points {
		rows[i] = TrendPointResponse{Bucket: p.Bucket, AmountSum: p.AmountSum, TargetSum: p.TargetSum}
	}
	return TrendResponse{Granularity: string(granularity), Points: rows}
}

// ToTopProductsResponse converts product totals.
func ToTopProductsResponse(products []domain.ProductTotal) TopProductsResponse {
	rows := make([]ProductTotalResponse, len(products))
	for i, p := range products {
		rows[i] = ProductTotalResponse{ProductID: p.ProductID, AmountSum: p.AmountSum}
	}
	return TopProductsResponse{Products: rows}
}
