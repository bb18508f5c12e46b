package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

type ManagersHandler struct{ svc service.ManagerService }

func NewManagersHandler(svc service.ManagerService) *ManagersHandler {
	return &ManagersHandler{svc: svc}
}

// Create issues a new manager account with a freshly generated code.
func (h *ManagersHandler) Create(c *gin.Context) {
	m, err := h.svc.Create(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ManagersHandler) GetByCode(c *gin.Context) {
	m, err := h.svc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// RegenerateCode rotates the manager code. Products and sales follow the new
// code; employees are deleted and must be re-registered.
func (h *ManagersHandler) RegenerateCode(c *gin.Context) {
	newCode, err := h.svc.RegenerateCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RegenerateCodeResponse{NewCode: newCode})
}

// ActivatePro godoc
// @Summary Redeem a single-use activation code to unlock the pro tier
// @Tags managers
// @Accept json
// @Produce json
// @Success 200 {object} model.Manager
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/managers/activate [post]
func (h *ManagersHandler) ActivatePro(c *gin.Context) {
	var req dto.ActivateProRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.ActivatePro(c.Request.Context(), req.Code, req.ManagerCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
