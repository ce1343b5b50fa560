package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/dto"
	"studyrooms/internal/middleware"
	"studyrooms/internal/service"
)

type FloorHandler struct {
	svc service.FloorService
}

func NewFloorHandler(svc service.FloorService) *FloorHandler {
	return &FloorHandler{svc: svc}
}

func (h *FloorHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", authRequired, middleware.RequireStaff(), h.Create)
	rg.PUT("/:id", authRequired, middleware.RequireStaff(), h.Update)
	rg.DELETE("/:id", authRequired, middleware.RequireStaff(), h.Delete)
}

// List returns all floors, or a single library's floors with ?library=<id>.
func (h *FloorHandler) List(c *gin.Context) {
	libraryID, ok := queryID(c, "library")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	floors, err := h.svc.List(ctx, libraryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, floors)
}

func (h *FloorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	floor, err := h.svc.Get(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, floor)
}

func (h *FloorHandler) Create(c *gin.Context) {
	var req dto.FloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	floor, err := h.svc.Create(ctx, service.FloorInput{
		LibraryID:   req.Library,
		Number:      req.Number,
		Description: req.Description,
		FloorMap:    req.FloorMap,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, floor)
}

func (h *FloorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.FloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	floor, err := h.svc.Update(ctx, id, service.FloorInput{
		LibraryID:   req.Library,
		Number:      req.Number,
		Description: req.Description,
		FloorMap:    req.FloorMap,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, floor)
}

func (h *FloorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
