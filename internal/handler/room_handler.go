package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/cache"
	"studyrooms/internal/dto"
	"studyrooms/internal/middleware"
	"studyrooms/internal/service"
)

type RoomHandler struct {
	svc   service.RoomService
	cache *cache.Client
}

func NewRoomHandler(svc service.RoomService, cacheClient *cache.Client) *RoomHandler {
	return &RoomHandler{svc: svc, cache: cacheClient}
}

func (h *RoomHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:room_id", h.Get)
	rg.GET("/:room_id/availability", h.Availability)
	rg.POST("", authRequired, middleware.RequireStaff(), h.Create)
	rg.PUT("/:room_id", authRequired, middleware.RequireStaff(), h.Update)
	rg.DELETE("/:room_id", authRequired, middleware.RequireStaff(), h.Delete)
}

// List returns rooms, filtered with ?floor=<id> and ?status=<s>.
func (h *RoomHandler) List(c *gin.Context) {
	floorID, ok := queryID(c, "floor")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rooms, err := h.svc.List(ctx, floorID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	room, err := h.svc.Get(ctx, c.Param("room_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// Availability reports whether a room is bookable on a date together with
// that day's pending and confirmed reservations. Rendered payloads are
// cached per room and date; reservation writes invalidate them.
func (h *RoomHandler) Availability(c *gin.Context) {
	roomID := c.Param("room_id")
	date := c.Query("date")

	dateKey := date
	if dateKey == "" {
		dateKey = time.Now().Format("2006-01-02")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if payload, ok := h.cache.GetAvailability(ctx, roomID, dateKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	availability, err := h.svc.CheckAvailability(ctx, roomID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.AvailabilityResponse{
		Room:         availability.Room.RoomID,
		Date:         availability.Date,
		IsAvailable:  availability.IsAvailable,
		Reservations: dto.FromReservations(availability.Reservations),
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.cache.SetAvailability(ctx, roomID, availability.Date, payload)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	room, err := h.svc.Create(ctx, roomInput(&req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	room, err := h.svc.Update(ctx, c.Param("room_id"), roomInput(&req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("room_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func roomInput(req *dto.RoomRequest) service.RoomInput {
	return service.RoomInput{
		RoomID:        req.RoomID,
		FloorID:       req.Floor,
		Capacity:      req.Capacity,
		HasWhiteboard: req.HasWhiteboard,
		HasMonitor:    req.HasMonitor,
		HasWindow:     req.HasWindow,
		Status:        req.Status,
		PositionX:     req.PositionX,
		PositionY:     req.PositionY,
		Width:         req.Width,
		Height:        req.Height,
	}
}
