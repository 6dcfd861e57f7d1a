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

// RoomController handles room catalog operations
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

func roomToResponse(room *models.Room, path string) dto.RoomResponse {
	return dto.RoomResponse{
		RoomNo:       room.RoomNo,
		LocationCode: room.LocationCode,
		Type:         string(room.Type),
		Occupied:     room.Occupied,
		FloorNo:      room.FloorNo,
		Path:         path,
	}
}

// CreateRoom registers a new room
// @Summary Create a room
// @Description Registers a new vacant room; the location code is derived from the floor when omitted
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.ErrorResponse "Floor not found"
// @Failure 409 {object} dto.ErrorResponse "Room number already taken"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid room data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	room, err := c.roomService.CreateRoom(ctx, middleware.CapabilityFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      roomToResponse(room, ""),
		Timestamp: time.Now(),
	})
}

// GetRoom retrieves a room with its resolved path
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param roomNo path int true "Room number"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{roomNo} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	roomNo, ok := parseIDParam(ctx, "roomNo")
	if !ok {
		return
	}

	room, path, err := c.roomService.GetRoom(ctx, roomNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      roomToResponse(room, path),
		Timestamp: time.Now(),
	})
}

// ListRooms lists rooms, optionally filtered
// @Summary List rooms
// @Description Lists rooms; supports floorNo, type and available query filters
// @Tags rooms
// @Produce json
// @Param floorNo query int false "Filter by floor"
// @Param type query string false "Filter by room type"
// @Param available query bool false "Only vacant rooms"
// @Success 200 {object} dto.APIResponse{data=[]models.Room}
// @Router /rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	filter := models.RoomFilter{}

	if floorStr := ctx.Query("floorNo"); floorStr != "" {
		floorNo, err := strconv.ParseInt(floorStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid floor number").
				WithField("floorNo")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.FloorNo = floorNo
	}
	filter.Type = models.RoomType(ctx.Query("type"))
	filter.AvailableOnly = ctx.Query("available") == "true"

	rooms, err := c.roomService.ListRooms(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rooms, Timestamp: time.Now()})
}

// UpdateRoom changes room attributes
// @Summary Update a room
// @Description Changes type, location code, floor or room number; occupancy cannot be set here
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomNo path int true "Room number"
// @Param request body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{roomNo} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	roomNo, ok := parseIDParam(ctx, "roomNo")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.ValidationErrorDetail(err, "Invalid room data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	room, err := c.roomService.UpdateRoom(ctx, middleware.CapabilityFromContext(ctx), roomNo, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      roomToResponse(room, ""),
		Timestamp: time.Now(),
	})
}

// DeleteRoom removes a vacant room
// @Summary Delete a room
// @Tags rooms
// @Security BearerAuth
// @Param roomNo path int true "Room number"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room is occupied"
// @Router /rooms/{roomNo} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	roomNo, ok := parseIDParam(ctx, "roomNo")
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx, middleware.CapabilityFromContext(ctx), roomNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Room deleted successfully"},
		Timestamp: time.Now(),
	})
}
