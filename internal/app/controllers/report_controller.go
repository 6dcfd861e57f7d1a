package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/app/services"
	"github.com/okanc/campusspace/internal/middleware"
)

// ReportController serves dashboard statistics and the allocation report
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// Stats retrieves the dashboard counters
// @Summary Dashboard statistics
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse}
// @Router /stats [get]
func (c *ReportController) Stats(ctx *gin.Context) {
	stats, err := c.reportService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}

// RecentAllocations retrieves the latest room assignments
// @Summary Recent allocations
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows (default 5)"
// @Success 200 {object} dto.APIResponse{data=[]dto.RecentAllocationRow}
// @Router /allocations/recent [get]
func (c *ReportController) RecentAllocations(ctx *gin.Context) {
	var limit uint64
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit").
				WithField("limit")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	rows, err := c.reportService.RecentAllocations(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rows, Timestamp: time.Now()})
}

// FacultyReport retrieves the allocation status of all faculty
// @Summary Faculty allocation report
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyReportRow}
// @Router /reports/faculty [get]
func (c *ReportController) FacultyReport(ctx *gin.Context) {
	rows, err := c.reportService.FacultyReport(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rows, Timestamp: time.Now()})
}

// FacultyReportCSV streams the allocation report as a CSV download
// @Summary Faculty allocation report (CSV)
// @Tags reports
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Router /reports/faculty.csv [get]
func (c *ReportController) FacultyReportCSV(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="faculty_report.csv"`)

	if err := c.reportService.WriteFacultyReportCSV(ctx, ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
}
