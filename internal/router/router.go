package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/config"
	"github.com/a7datt963-hub/dooollarr/internal/handler"
	"github.com/a7datt963-hub/dooollarr/internal/middleware"
	"github.com/a7datt963-hub/dooollarr/internal/repository"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	managerRepo := repository.NewManagerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	activationRepo := repository.NewActivationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo, managerRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo)
	managerSvc := service.NewManagerService(managerRepo, productRepo, saleRepo, employeeRepo, activationRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, managerRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, productRepo, saleRepo, employeeRepo)
	statsSvc := service.NewStatsService(saleRepo, productRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc, rdb)
	salesH := handler.NewSalesHandler(saleSvc)
	managersH := handler.NewManagersHandler(managerSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc, saleSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.POST("/products", productsH.Create)
		api.GET("/products", productsH.List)
		api.GET("/products/:id", productsH.GetByID)
		api.GET("/products/barcode/:barcode", productsH.GetByBarcode)
		api.PUT("/products/:id", productsH.Update)
		api.DELETE("/products/:id", productsH.Delete)

		api.POST("/sales", salesH.Create)
		api.GET("/sales", salesH.List)
		api.GET("/sales/:id", salesH.GetByID)
		api.DELETE("/sales", salesH.DeleteAll)

		api.POST("/managers", managersH.Create)
		api.GET("/managers/:code", managersH.GetByCode)
		api.PUT("/managers/:code/regenerate", managersH.RegenerateCode)
		api.POST("/managers/activate", managersH.ActivatePro)

		api.POST("/employees", employeesH.Create)
		api.GET("/employees", employeesH.List)
		api.PUT("/employees/:id/status", employeesH.UpdateStatus)
		api.PUT("/employees/permissions", employeesH.UpdatePermissions)
		api.DELETE("/employees/:id", employeesH.Delete)

		api.GET("/settings", settingsH.Get)
		api.PUT("/settings", settingsH.Update)
		api.POST("/settings/reset-profits", settingsH.ResetProfits)
		api.DELETE("/settings/reset-all", settingsH.ResetAll)

		api.GET("/statistics", statsH.Statistics)
		api.GET("/export", statsH.Export)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
