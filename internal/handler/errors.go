package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/service"
)

// respondServiceError maps service errors onto HTTP status codes. Business
// rejections are 400 with the single reason string; scoping and lookups are
// 404; duplicate identifiers are 409; anything unexpected is a generic 500.
func respondServiceError(c *gin.Context, err error) {
	if verr, ok := service.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
		return
	}

	switch {
	case errors.Is(err, service.ErrLibraryNotFound),
		errors.Is(err, service.ErrFloorNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrMaterialNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrFloorNumberTaken),
		errors.Is(err, service.ErrRoomIDTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
