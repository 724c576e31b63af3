package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/dto"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	accountService   portssvc.AccountSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, as portssvc.AccountSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, accountService: as}
}

// registerReportingRoutes registers routes for reports and the export feed.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newReportingHandler(reportingService, accountService)

	reports := rg.Group("/reports")
	{
		reports.GET("/totals", h.getTotals)
		reports.GET("/by-owner", h.getByOwner)
		reports.GET("/trend", h.getTrend)
		reports.GET("/top-products", h.getTopProducts)
		reports.GET("/summary", h.getSummary)
	}
	rg.GET("/records/export", h.exportRecords)
}

// bindFilter parses the shared report query parameters.
func (h *reportingHandler) bindFilter(c *gin.Context) (domain.RecordFilter, bool) {
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return domain.RecordFilter{}, false
	}
	filter, err := parseRecordFilter(params.OwnerID, params.StartDate, params.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return domain.RecordFilter{}, false
	}
	return filter, true
}

// getTotals godoc
// @Summary Aggregate totals report
// @Description Sums amount and target over the scoped records; the completion rate is weighted (amountSum/targetSum), not an average of per-record rates.
// @Tags reports
// @Produce json
// @Param ownerID query string false "Owner account ID (admin only)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.TotalsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/totals [get]
func (h *reportingHandler) getTotals(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	totals, err := h.reportingService.Totals(c.Request.Context(), actor, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TotalsResponse{
		AmountSum:      totals.AmountSum,
		TargetSum:      totals.TargetSum,
		CompletionRate: totals.CompletionRate,
	})
}

// getByOwner godoc
// @Summary Ranked by-owner report
// @Description Groups records per owner and ranks by completion rate, MIN-style on ties. groupBy=name reproduces the historical name-keyed view.
// @Tags reports
// @Produce json
// @Param groupBy query string false "Grouping key: id or name" default(id)
// @Param ownerID query string false "Owner account ID (admin only)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.ByOwnerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-owner [get]
func (h *reportingHandler) getByOwner(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	groupBy := domain.OwnerGroupKey(c.DefaultQuery("groupBy", string(domain.GroupByOwnerID)))

	groups, err := h.reportingService.ByOwner(c.Request.Context(), actor, filter, groupBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToByOwnerResponse(groups, groupBy))
}

// getTrend godoc
// @Summary Time-bucketed trend report
// @Description Buckets records by calendar day or month and sums amount and target per bucket.
// @Tags reports
// @Produce json
// @Param granularity query string false "Bucket size: day or month" default(day)
// @Param ownerID query string false "Owner account ID (admin only)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrendResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/trend [get]
func (h *reportingHandler) getTrend(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	granularity := domain.Granularity(c.DefaultQuery("granularity", string(domain.GranularityDay)))

	points, err := h.reportingService.Trend(c.Request.Context(), actor, filter, granularity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrendResponse(points, granularity))
}

// getTopProducts godoc
// @Summary Top products report
// @Description Ranks products by total amount descending.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(5)
// @Param ownerID query string false "Owner account ID (admin only)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.TopProductsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-products [get]
func (h *reportingHandler) getTopProducts(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
		return
	}

	products, err := h.reportingService.TopProducts(c.Request.Context(), actor, filter, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopProductsResponse(products))
}

// getSummary godoc
// @Summary Dashboard summary metrics
// @Description Returns today's, this month's and lifetime amount sums for the caller.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		TodayAmount: summary.TodayAmount,
		MonthAmount: summary.MonthAmount,
		TotalAmount: summary.TotalAmount,
	})
}

// exportRecords godoc
// @Summary Export sales records as CSV
// @Description Streams the scoped records as delimited text with render-time currency and percentage formatting.
// @Tags records
// @Produce text/csv
// @Param ownerID query string false "Owner account ID (admin only)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/export [get]
func (h *reportingHandler) exportRecords(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	filename := "sales_records_" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.reportingService.ExportCSV(c.Request.Context(), actor, filter, c.Writer); err != nil {
		respondServiceError(c, err)
		return
	}
}
