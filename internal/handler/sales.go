package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a7datt963-hub/dooollarr/internal/apierror"
	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Create godoc
// @Summary Record a completed sale, decrementing stock per line item
// @Tags sales
// @Accept json
// @Produce json
// @Success 200 {object} model.Sale
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	sales, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if sales == nil {
		sales = []model.Sale{}
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SalesHandler) GetByID(c *gin.Context) {
	sale, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

// DeleteAll removes every sale owned by the manager. manager_code is
// required — there is no "delete everything" variant.
func (h *SalesHandler) DeleteAll(c *gin.Context) {
	managerCode := c.Query("manager_code")
	if managerCode == "" {
		c.JSON(http.StatusBadRequest, apierror.New("manager_code_required"))
		return
	}
	if err := h.svc.DeleteAll(c.Request.Context(), managerCode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sales_deleted"})
}
