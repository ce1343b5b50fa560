package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/cache"
	"studyrooms/internal/service"
)

type StatsHandler struct {
	svc   service.StatsService
	cache *cache.Client
}

func NewStatsHandler(svc service.StatsService, cacheClient *cache.Client) *StatsHandler {
	return &StatsHandler{svc: svc, cache: cacheClient}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Summary)
}

// Summary serves the public demo payload. The rendered JSON is cached whole;
// reservation writes invalidate it.
func (h *StatsHandler) Summary(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if payload, ok := h.cache.GetSummary(ctx); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	summary, err := h.svc.Summary(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if payload, err := json.Marshal(summary); err == nil {
		h.cache.SetSummary(ctx, payload)
	}
	c.JSON(http.StatusOK, summary)
}
