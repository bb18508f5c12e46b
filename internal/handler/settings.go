package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a7datt963-hub/dooollarr/internal/apierror"
	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

type SettingsHandler struct {
	svc   service.SettingsService
	sales service.SaleService
}

func NewSettingsHandler(svc service.SettingsService, sales service.SaleService) *SettingsHandler {
	return &SettingsHandler{svc: svc, sales: sales}
}

// Get returns the settings for the scope, creating the default record on
// first read.
func (h *SettingsHandler) Get(c *gin.Context) {
	var filter dto.SettingsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	settings, err := h.svc.Get(c.Request.Context(), filter.ManagerCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var q dto.UpdateSettingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("currency_required"))
		return
	}
	if err := h.svc.UpdateCurrency(c.Request.Context(), q.ManagerCode, q.Currency); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "settings_updated"})
}

// ResetProfits zeroes profit on every matching sale — manager-scoped, or all
// sales when no manager_code is given.
func (h *SettingsHandler) ResetProfits(c *gin.Context) {
	if err := h.sales.ResetProfits(c.Request.Context(), optionalQuery(c, "manager_code")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profits_reset"})
}

// ResetAll wipes all data owned by the manager.
func (h *SettingsHandler) ResetAll(c *gin.Context) {
	managerCode := c.Query("manager_code")
	if managerCode == "" {
		c.JSON(http.StatusBadRequest, apierror.New("manager_code_required"))
		return
	}
	if err := h.svc.ResetAll(c.Request.Context(), managerCode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all_data_deleted"})
}
