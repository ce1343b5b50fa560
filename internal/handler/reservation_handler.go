package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/dto"
	"studyrooms/internal/middleware"
	"studyrooms/internal/service"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// RegisterRoutes wires the reservation endpoints. Every route requires an
// authenticated caller; scoping to the caller's own reservations happens in
// the service.
func (h *ReservationHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.Use(authRequired)
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:reservation_id", h.Get)
	rg.PUT("/:reservation_id", h.Update)
	rg.PATCH("/:reservation_id", h.Patch)
	rg.DELETE("/:reservation_id", h.Delete)
}

func (h *ReservationHandler) List(c *gin.Context) {
	callerID, staff := middleware.CallerIdentity(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	reservations, err := h.svc.List(ctx, callerID, staff)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := dto.FromReservations(reservations)
	c.JSON(http.StatusOK, dto.ReservationListResponse{Items: items, Total: len(items)})
}

// Create books a room for the caller. The owner is taken from the access
// token, never from the payload.
func (h *ReservationHandler) Create(c *gin.Context) {
	callerID, _ := middleware.CallerIdentity(c)

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reservation, err := h.svc.Create(ctx, callerID, service.ReservationInput{
		RoomID:       req.Room,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       req.Status,
		Purpose:      req.Purpose,
		NumAttendees: req.NumAttendees,
		Notes:        req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromReservation(reservation))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	callerID, staff := middleware.CallerIdentity(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	reservation, err := h.svc.Get(ctx, callerID, staff, c.Param("reservation_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReservation(reservation))
}

func (h *ReservationHandler) Update(c *gin.Context) {
	callerID, staff := middleware.CallerIdentity(c)

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reservation, err := h.svc.Update(ctx, callerID, staff, c.Param("reservation_id"), service.ReservationInput{
		RoomID:       req.Room,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       req.Status,
		Purpose:      req.Purpose,
		NumAttendees: req.NumAttendees,
		Notes:        req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReservation(reservation))
}

func (h *ReservationHandler) Patch(c *gin.Context) {
	callerID, staff := middleware.CallerIdentity(c)

	var req dto.PatchReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reservation, err := h.svc.Patch(ctx, callerID, staff, c.Param("reservation_id"), service.ReservationPatch{
		RoomID:       req.Room,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       req.Status,
		Purpose:      req.Purpose,
		NumAttendees: req.NumAttendees,
		Notes:        req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReservation(reservation))
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	callerID, staff := middleware.CallerIdentity(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, callerID, staff, c.Param("reservation_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
