package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a7datt963-hub/dooollarr/internal/apierror"
	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

type EmployeesHandler struct{ svc service.EmployeeService }

func NewEmployeesHandler(svc service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{svc: svc}
}

func (h *EmployeesHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EmployeesHandler) List(c *gin.Context) {
	var filter dto.EmployeeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("manager_code_required"))
		return
	}
	employees, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

// UpdateStatus takes the new status as a query parameter. Any string is
// accepted; the value set is deliberately open.
func (h *EmployeesHandler) UpdateStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, apierror.New("status_required"))
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status_updated"})
}

func (h *EmployeesHandler) UpdatePermissions(c *gin.Context) {
	var req dto.UpdatePermissionsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdatePermissions(c.Request.Context(), req.EmployeeID, req.Permissions); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "permissions_updated"})
}

func (h *EmployeesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee_deleted"})
}
