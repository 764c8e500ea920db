// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/asset-registry/backend/internal/integration/entrypoint/controller"
	"github.com/asset-registry/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	assetController      *controller.AssetController
	categoryController   *controller.CategoryController
	supplierController   *controller.SupplierController
	locationController   *controller.LocationController
	assetModelController *controller.AssetModelController
	importController     *controller.ImportController
	extractRateLimiter   *middleware.RateLimiter
	allowedOrigins       []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	assetController *controller.AssetController,
	categoryController *controller.CategoryController,
	supplierController *controller.SupplierController,
	locationController *controller.LocationController,
	assetModelController *controller.AssetModelController,
	importController *controller.ImportController,
	extractRateLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:     healthController,
		assetController:      assetController,
		categoryController:   categoryController,
		supplierController:   supplierController,
		locationController:   locationController,
		assetModelController: assetModelController,
		importController:     importController,
		extractRateLimiter:   extractRateLimiter,
		allowedOrigins:       allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = r.allowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	r.engine.Use(cors.New(corsConfig))

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.assetController != nil {
			assets := v1.Group("/assets")
			{
				assets.GET("", r.assetController.List)
				assets.POST("", r.assetController.Create)
				assets.GET("/:id", r.assetController.Get)
				assets.PUT("/:id", r.assetController.Update)
				assets.DELETE("/:id", r.assetController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.supplierController != nil {
			suppliers := v1.Group("/suppliers")
			{
				suppliers.GET("", r.supplierController.List)
				suppliers.POST("", r.supplierController.Create)
				suppliers.DELETE("/:id", r.supplierController.Delete)
			}
		}

		if r.locationController != nil {
			locations := v1.Group("/locations")
			{
				locations.GET("", r.locationController.List)
				locations.POST("", r.locationController.Create)
				locations.DELETE("/:id", r.locationController.Delete)
			}
		}

		if r.assetModelController != nil {
			models := v1.Group("/asset-models")
			{
				models.GET("", r.assetModelController.List)
				models.POST("", r.assetModelController.Create)
				models.DELETE("/:id", r.assetModelController.Delete)
			}
		}

		if r.importController != nil {
			imports := v1.Group("/imports")
			{
				// Extraction may call an external AI service, so it is rate limited
				if r.extractRateLimiter != nil {
					imports.POST("/extract", r.extractRateLimiter.Middleware(), r.importController.Extract)
				} else {
					imports.POST("/extract", r.importController.Extract)
				}
				imports.POST("/plan", r.importController.Plan)
				imports.POST("/commit", r.importController.Commit)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
