package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/app/services"
	"github.com/okanc/campusspace/internal/middleware"
)

// FacultyController handles faculty record operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// CreateFaculty adds a faculty member
// @Summary Create a faculty member
// @Description Adds a faculty member; when a room is requested it is claimed in the same transaction
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Department or room not found"
// @Failure 409 {object} dto.ErrorResponse "Requested room is occupied"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid faculty data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx, middleware.CapabilityFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: faculty, Timestamp: time.Now()})
}

// GetFaculty retrieves a faculty member
// @Summary Get a faculty member
// @Tags faculty
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFaculty(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: faculty, Timestamp: time.Now()})
}

// ListFaculty lists faculty, optionally filtered
// @Summary List faculty
// @Description Lists faculty; supports departmentId, name and unassigned query filters
// @Tags faculty
// @Produce json
// @Param departmentId query int false "Filter by department"
// @Param name query string false "Name substring match"
// @Param unassigned query bool false "Only members without a room"
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	filter := models.FacultyFilter{}

	if deptStr := ctx.Query("departmentId"); deptStr != "" {
		departmentID, err := strconv.ParseInt(deptStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department ID").
				WithField("departmentId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.DepartmentID = departmentID
	}
	filter.NameContains = ctx.Query("name")
	filter.UnassignedOnly = ctx.Query("unassigned") == "true"

	members, err := c.facultyService.ListFaculty(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: members, Timestamp: time.Now()})
}

// UpdateFaculty changes a faculty member's profile or room
// @Summary Update a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Requested room is occupied"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid faculty data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := c.facultyService.UpdateFaculty(ctx, middleware.CapabilityFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: faculty, Timestamp: time.Now()})
}

// DeleteFaculty removes a faculty member
// @Summary Delete a faculty member
// @Description Removes the member, releasing their room and any department headship atomically
// @Tags faculty
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, middleware.CapabilityFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty deleted successfully"},
		Timestamp: time.Now(),
	})
}
