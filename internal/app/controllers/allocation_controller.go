package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/app/services"
	"github.com/okanc/campusspace/internal/middleware"
)

// AllocationController exposes the room assignment operations
type AllocationController struct {
	allocationService services.AllocationService
}

// NewAllocationController creates a new AllocationController
func NewAllocationController(allocationService services.AllocationService) *AllocationController {
	return &AllocationController{allocationService: allocationService}
}

// Assign gives a free room to a faculty member
// @Summary Assign a room
// @Description Assigns a vacant room to a member who holds none; both sides of the link change atomically
// @Tags allocations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignRequest true "Assignment"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty or room not found"
// @Failure 409 {object} dto.ErrorResponse "Room occupied or member already holds a room"
// @Router /allocations [post]
func (c *AllocationController) Assign(ctx *gin.Context) {
	var req dto.AssignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid assignment data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	cap := middleware.CapabilityFromContext(ctx)
	if err := c.allocationService.Assign(ctx, cap, req.FacultyID, req.RoomNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Room assigned successfully"},
		Timestamp: time.Now(),
	})
}

// Transfer moves a faculty member to another room
// @Summary Transfer to another room
// @Description Releases the held room (if any) and claims the new one in a single transaction
// @Tags allocations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.TransferRequest true "Target room"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty or room not found"
// @Failure 409 {object} dto.ErrorResponse "Target room occupied"
// @Router /faculty/{id}/room [put]
func (c *AllocationController) Transfer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid transfer data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	cap := middleware.CapabilityFromContext(ctx)
	if err := c.allocationService.Transfer(ctx, cap, id, req.RoomNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Room transferred successfully"},
		Timestamp: time.Now(),
	})
}

// Unassign releases a faculty member's room
// @Summary Release a room
// @Description Frees whatever room the member holds; releasing a member with no room succeeds without effect
// @Tags allocations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id}/room [delete]
func (c *AllocationController) Unassign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	cap := middleware.CapabilityFromContext(ctx)
	if err := c.allocationService.Unassign(ctx, cap, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Room released successfully"},
		Timestamp: time.Now(),
	})
}
