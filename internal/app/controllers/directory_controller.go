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

// DirectoryController exposes the campus hierarchy
type DirectoryController struct {
	directoryService services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService services.DirectoryService) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier").
			WithField(name).
			WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListCampuses lists all campuses
// @Summary List campuses
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Campus}
// @Router /campuses [get]
func (c *DirectoryController) ListCampuses(ctx *gin.Context) {
	campuses, err := c.directoryService.ListCampuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: campuses, Timestamp: time.Now()})
}

// ListBlocks lists the blocks of a campus
// @Summary List blocks of a campus
// @Tags directory
// @Produce json
// @Param id path int true "Campus ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Block}
// @Router /campuses/{id}/blocks [get]
func (c *DirectoryController) ListBlocks(ctx *gin.Context) {
	campusID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	blocks, err := c.directoryService.ListBlocks(ctx, campusID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: blocks, Timestamp: time.Now()})
}

// ListBuildings lists the buildings of a block
// @Summary List buildings of a block
// @Tags directory
// @Produce json
// @Param id path int true "Block ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Building}
// @Router /blocks/{id}/buildings [get]
func (c *DirectoryController) ListBuildings(ctx *gin.Context) {
	blockID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	buildings, err := c.directoryService.ListBuildings(ctx, blockID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: buildings, Timestamp: time.Now()})
}

// ListFloors lists the floors of a building
// @Summary List floors of a building
// @Tags directory
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Floor}
// @Router /buildings/{id}/floors [get]
func (c *DirectoryController) ListFloors(ctx *gin.Context) {
	buildingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	floors, err := c.directoryService.ListFloors(ctx, buildingID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: floors, Timestamp: time.Now()})
}

// CreateCampus adds a campus
// @Summary Create a campus
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampusRequest true "Campus information"
// @Success 201 {object} dto.APIResponse{data=models.Campus}
// @Router /campuses [post]
func (c *DirectoryController) CreateCampus(ctx *gin.Context) {
	var req dto.CreateCampusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid campus data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	campus, err := c.directoryService.CreateCampus(ctx, middleware.CapabilityFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: campus, Timestamp: time.Now()})
}

// CreateBlock adds a block under a campus
// @Summary Create a block
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlockRequest true "Block information"
// @Success 201 {object} dto.APIResponse{data=models.Block}
// @Router /blocks [post]
func (c *DirectoryController) CreateBlock(ctx *gin.Context) {
	var req dto.CreateBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid block data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	block, err := c.directoryService.CreateBlock(ctx, middleware.CapabilityFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: block, Timestamp: time.Now()})
}

// CreateBuilding adds a building under a block
// @Summary Create a building
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBuildingRequest true "Building information"
// @Success 201 {object} dto.APIResponse{data=models.Building}
// @Router /buildings [post]
func (c *DirectoryController) CreateBuilding(ctx *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid building data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	building, err := c.directoryService.CreateBuilding(ctx, middleware.CapabilityFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: building, Timestamp: time.Now()})
}

// CreateFloor adds a floor under a building
// @Summary Create a floor
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFloorRequest true "Floor information"
// @Success 201 {object} dto.APIResponse{data=models.Floor}
// @Router /floors [post]
func (c *DirectoryController) CreateFloor(ctx *gin.Context) {
	var req dto.CreateFloorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid floor data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	floor, err := c.directoryService.CreateFloor(ctx, middleware.CapabilityFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: floor, Timestamp: time.Now()})
}

// DeleteCampus removes an empty campus
// @Summary Delete a campus
// @Tags directory
// @Security BearerAuth
// @Param id path int true "Campus ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Campus still has blocks"
// @Router /campuses/{id} [delete]
func (c *DirectoryController) DeleteCampus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.directoryService.DeleteCampus(ctx, middleware.CapabilityFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Campus deleted successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteBlock removes an empty block
// @Summary Delete a block
// @Tags directory
// @Security BearerAuth
// @Param id path int true "Block ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Block still has buildings"
// @Router /blocks/{id} [delete]
func (c *DirectoryController) DeleteBlock(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.directoryService.DeleteBlock(ctx, middleware.CapabilityFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Block deleted successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteBuilding removes an empty building
// @Summary Delete a building
// @Tags directory
// @Security BearerAuth
// @Param id path int true "Building ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Building still has floors"
// @Router /buildings/{id} [delete]
func (c *DirectoryController) DeleteBuilding(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.directoryService.DeleteBuilding(ctx, middleware.CapabilityFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Building deleted successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteFloor removes an empty floor
// @Summary Delete a floor
// @Tags directory
// @Security BearerAuth
// @Param floorNo path int true "Floor number"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Floor still has rooms"
// @Router /floors/{floorNo} [delete]
func (c *DirectoryController) DeleteFloor(ctx *gin.Context) {
	floorNo, ok := parseIDParam(ctx, "floorNo")
	if !ok {
		return
	}

	if err := c.directoryService.DeleteFloor(ctx, middleware.CapabilityFromContext(ctx), floorNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Floor deleted successfully"},
		Timestamp: time.Now(),
	})
}
