package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okanc/campusspace/internal/app/models/dto"
	"github.com/okanc/campusspace/internal/pkg/apperrors"
	"github.com/okanc/campusspace/internal/pkg/dberrors"
	"github.com/okanc/campusspace/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Controllers
// funnel every service error through here so the status mapping lives
// in one place.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case isNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case isConflict(err):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConflict, message)))

	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrRoomAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, message)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))

	case isStorageUnavailable(err):
		// Callers get the taxonomy only; the detail stays in the log.
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Storage unavailable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStorageUnavailable, "Storage unavailable")))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

func isNotFound(err error) bool {
	return apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrCampusNotFound,
		apperrors.ErrBlockNotFound,
		apperrors.ErrBuildingNotFound,
		apperrors.ErrFloorNotFound,
		apperrors.ErrRoomNotFound,
		apperrors.ErrFacultyNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrUserNotFound,
	)
}

// isStorageUnavailable covers both the explicit sentinel and raw
// connection failures surfacing from a repository query.
func isStorageUnavailable(err error) bool {
	return errors.Is(err, apperrors.ErrStorageUnavailable) || dberrors.IsConnectionError(err)
}

func isConflict(err error) bool {
	return apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrRoomOccupied,
		apperrors.ErrRoomHeld,
		apperrors.ErrFacultyHasRoom,
		apperrors.ErrAlreadyHeadsDepartment,
		apperrors.ErrDepartmentHasFaculty,
		apperrors.ErrHasDependents,
	)
}
