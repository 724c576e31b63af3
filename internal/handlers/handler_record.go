package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/dto"
	"github.com/salestrackhq/salestrack_app/internal/platform/config"
)

// recordHandler handles HTTP requests for sales records.
type recordHandler struct {
	recordService  portssvc.RecordSvcFacade
	accountService portssvc.AccountSvcFacade
}

func newRecordHandler(rs portssvc.RecordSvcFacade, as portssvc.AccountSvcFacade) *recordHandler {
	return &recordHandler{recordService: rs, accountService: as}
}

// registerRecordRoutes registers routes for sales record CRUD. The batch
// entry route is only mounted when the deployment enables the feature.
func registerRecordRoutes(rg *gin.RouterGroup, cfg *config.Config, recordService portssvc.RecordSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newRecordHandler(recordService, accountService)

	records := rg.Group("/records")
	{
		records.POST("/", h.createRecord)
		records.GET("/", h.listRecords)
		records.GET("/recent", h.recentRecords)
		records.DELETE("/:recordID", h.deleteRecord)
		if cfg.EnableBatchEntry {
			records.POST("/batch", h.createBatch)
		}
	}
}

// createRecord godoc
// @Summary Add a sales record
// @Description Persists one sales entry; the completion rate is computed server-side from amount and target.
// @Tags records
// @Accept json
// @Produce json
// @Param record body dto.CreateRecordRequest true "Sales entry"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.recordService.AddRecord(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(*record))
}

// listRecords godoc
// @Summary List sales records
// @Description Lists records filtered by owner and inclusive date range, newest first. Non-admins only see their own records.
// @Tags records
// @Produce json
// @Param ownerID query string false "Owner account ID (admin only)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}

	var params dto.RecordQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	filter, err := parseRecordFilter(params.OwnerID, params.StartDate, params.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	records, err := h.recordService.QueryRecords(c.Request.Context(), actor, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordListResponse(records))
}

// recentRecords godoc
// @Summary List recent sales records
// @Description Returns the actor's newest entries by insertion order.
// @Tags records
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {array} dto.RecordResponse
// @Security BearerAuth
// @Router /records/recent [get]
func (h *recordHandler) recentRecords(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
		return
	}

	records, err := h.recordService.RecentRecords(c.Request.Context(), actor, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordListResponse(records))
}

// deleteRecord godoc
// @Summary Delete a sales record
// @Description Deletes a record owned by the caller. A nonexistent or foreign-owned record yields 404, never a silent success.
// @Tags records
// @Param recordID path int true "Record ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Not found or not owned"
// @Security BearerAuth
// @Router /records/{recordID} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}

	recordID, err := strconv.ParseInt(c.Param("recordID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "recordID must be an integer"})
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID, actor.AccountID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// createBatch godoc
// @Summary Batch entry of sales records
// @Description Inserts entries for multiple named people, auto-provisioning unknown names. Admin only. Bad rows are skipped and reported, never aborting the batch.
// @Tags records
// @Accept json
// @Produce json
// @Param batch body dto.BatchRequest true "Batch rows"
// @Success 200 {object} domain.BatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/batch [post]
func (h *recordHandler) createBatch(c *gin.Context) {
	actor, ok := currentAccount(c, h.accountService)
	if !ok {
		return
	}

	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.recordService.AddBatch(c.Request.Context(), actor, req.Entries)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
