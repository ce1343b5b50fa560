package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/dto"
	"studyrooms/internal/middleware"
	"studyrooms/internal/service"
)

type MaterialHandler struct {
	svc service.MaterialService
}

func NewMaterialHandler(svc service.MaterialService) *MaterialHandler {
	return &MaterialHandler{svc: svc}
}

func (h *MaterialHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.POST("", authRequired, middleware.RequireStaff(), h.Create)
	rg.DELETE("/:id", authRequired, middleware.RequireStaff(), h.Delete)
}

func (h *MaterialHandler) List(c *gin.Context) {
	libraryID, ok := queryID(c, "library")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	materials, err := h.svc.List(ctx, libraryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var req dto.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	material, err := h.svc.Create(ctx, service.MaterialInput{
		LibraryID: req.Library,
		Name:      req.Name,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
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
