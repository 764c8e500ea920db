// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/asset-registry/backend/config"
	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/application/usecase/asset"
	"github.com/asset-registry/backend/internal/application/usecase/assetmodel"
	"github.com/asset-registry/backend/internal/application/usecase/category"
	"github.com/asset-registry/backend/internal/application/usecase/importer"
	"github.com/asset-registry/backend/internal/application/usecase/location"
	"github.com/asset-registry/backend/internal/application/usecase/supplier"
	"github.com/asset-registry/backend/internal/infra/server/router"
	"github.com/asset-registry/backend/internal/integration/adapters"
	"github.com/asset-registry/backend/internal/integration/email"
	"github.com/asset-registry/backend/internal/integration/email/templates"
	"github.com/asset-registry/backend/internal/integration/entrypoint/controller"
	"github.com/asset-registry/backend/internal/integration/entrypoint/middleware"
	"github.com/asset-registry/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client is optional; nil disables the extraction cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	assetRepo := persistence.NewAssetRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	supplierRepo := persistence.NewSupplierRepository(db)
	locationRepo := persistence.NewLocationRepository(db)
	modelRepo := persistence.NewAssetModelRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	parser := adapters.NewNFeXMLParser()
	extraction := adapters.NewGeminiExtractionService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	var extractionCache adapter.ExtractionCache
	if redisClient != nil {
		extractionCache = adapters.NewRedisExtractionCache(redisClient, cfg.Redis.CacheTTL)
	}

	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create asset use cases
	listAssetsUseCase := asset.NewListAssetsUseCase(assetRepo, categoryRepo)
	getAssetUseCase := asset.NewGetAssetUseCase(assetRepo, categoryRepo)
	createAssetUseCase := asset.NewCreateAssetUseCase(assetRepo, categoryRepo, supplierRepo, locationRepo, modelRepo)
	updateAssetUseCase := asset.NewUpdateAssetUseCase(assetRepo, categoryRepo, supplierRepo, locationRepo, modelRepo)
	deleteAssetUseCase := asset.NewDeleteAssetUseCase(assetRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, assetRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, assetRepo)

	// Create catalog use cases
	listSuppliersUseCase := supplier.NewListSuppliersUseCase(supplierRepo)
	createSupplierUseCase := supplier.NewCreateSupplierUseCase(supplierRepo)
	deleteSupplierUseCase := supplier.NewDeleteSupplierUseCase(supplierRepo, assetRepo)

	listLocationsUseCase := location.NewListLocationsUseCase(locationRepo)
	createLocationUseCase := location.NewCreateLocationUseCase(locationRepo)
	deleteLocationUseCase := location.NewDeleteLocationUseCase(locationRepo, assetRepo)

	listModelsUseCase := assetmodel.NewListAssetModelsUseCase(modelRepo)
	createModelUseCase := assetmodel.NewCreateAssetModelUseCase(modelRepo)
	deleteModelUseCase := assetmodel.NewDeleteAssetModelUseCase(modelRepo, assetRepo)

	// Create import use cases
	extractUseCase := importer.NewExtractInvoiceUseCase(parser, extraction, extractionCache, supplierRepo)
	planUseCase := importer.NewPlanImportUseCase()
	commitUseCase := importer.NewCommitImportUseCase(assetRepo, categoryRepo, supplierRepo, locationRepo, modelRepo, emailService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	assetController := controller.NewAssetController(
		listAssetsUseCase,
		getAssetUseCase,
		createAssetUseCase,
		updateAssetUseCase,
		deleteAssetUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	supplierController := controller.NewSupplierController(
		listSuppliersUseCase,
		createSupplierUseCase,
		deleteSupplierUseCase,
	)

	locationController := controller.NewLocationController(
		listLocationsUseCase,
		createLocationUseCase,
		deleteLocationUseCase,
	)

	assetModelController := controller.NewAssetModelController(
		listModelsUseCase,
		createModelUseCase,
		deleteModelUseCase,
	)

	importController := controller.NewImportController(
		extractUseCase,
		planUseCase,
		commitUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var extractRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		extractRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		extractRateLimiter = middleware.NewRateLimiterWithConfig(10, 1*time.Minute)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		assetController,
		categoryController,
		supplierController,
		locationController,
		assetModelController,
		importController,
		extractRateLimiter,
		cfg.Server.AllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
