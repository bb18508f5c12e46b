package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

// barcodeCacheTTL bounds staleness of cached barcode lookups; writes do not
// invalidate the cache.
const barcodeCacheTTL = 5 * time.Minute

type ProductsHandler struct {
	svc service.ProductService
	rdb *redis.Client
}

func NewProductsHandler(svc service.ProductService, rdb *redis.Client) *ProductsHandler {
	return &ProductsHandler{svc: svc, rdb: rdb}
}

// Create godoc
// @Summary Create a product (free tier capped at 25 items per manager)
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {object} model.Product
// @Failure 400 {object} apierror.APIError
// @Router /api/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) List(c *gin.Context) {
	filter := dto.ProductFilter{ManagerCode: optionalQuery(c, "manager_code")}
	products, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) GetByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetByBarcode serves scanner lookups, the hottest read in the system.
// Results are cached in Redis best-effort; a cache or Redis failure falls
// through to the store.
func (h *ProductsHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	managerCode := optionalQuery(c, "manager_code")
	ctx := c.Request.Context()

	cacheKey := "barcode:" + barcode
	if managerCode != nil {
		cacheKey += ":" + *managerCode
	}

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var p model.Product
			if jsonErr := json.Unmarshal(cached, &p); jsonErr == nil {
				c.JSON(http.StatusOK, p)
				return
			}
		}
	}

	p, err := h.svc.GetByBarcode(ctx, barcode, managerCode)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if b, jsonErr := json.Marshal(p); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, barcodeCacheTTL).Err()
		}
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product_deleted"})
}
