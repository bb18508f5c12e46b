package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a7datt963-hub/dooollarr/internal/apierror"
	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Statistics godoc
// @Summary Windowed sales aggregates for a manager
// @Tags statistics
// @Produce json
// @Param manager_code query string true "Manager code"
// @Param filter_type query string false "daily | weekly | monthly | custom"
// @Success 200 {object} dto.StatisticsResponse
// @Router /api/statistics [get]
func (h *StatsHandler) Statistics(c *gin.Context) {
	var q dto.StatisticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("manager_code_required"))
		return
	}
	resp, err := h.svc.Statistics(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) Export(c *gin.Context) {
	var q dto.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("manager_code_required"))
		return
	}
	resp, err := h.svc.Export(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
