// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/usecase/asset"
	"github.com/asset-registry/backend/internal/application/usecase/assetmodel"
	"github.com/asset-registry/backend/internal/application/usecase/category"
	"github.com/asset-registry/backend/internal/application/usecase/importer"
	"github.com/asset-registry/backend/internal/application/usecase/location"
	"github.com/asset-registry/backend/internal/application/usecase/supplier"
	"github.com/asset-registry/backend/internal/infra/server/router"
	"github.com/asset-registry/backend/internal/integration/adapters"
	"github.com/asset-registry/backend/internal/integration/entrypoint/controller"
	"github.com/asset-registry/backend/internal/integration/entrypoint/middleware"
	"github.com/asset-registry/backend/internal/integration/persistence"
	"github.com/asset-registry/backend/internal/integration/persistence/model"
	"github.com/asset-registry/backend/test/integration/mock"
)

// testContext carries per-scenario state: the HTTP client, seeded record IDs
// used for placeholder substitution, and the last response.
type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	timeMock   *mock.Time
	serverPort int

	currentCategoryID uuid.UUID
	currentSupplierID uuid.UUID
	currentLocationID uuid.UUID
	currentModelID    uuid.UUID
	currentAssetID    uuid.UUID
	lastCreatedID     uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		timeMock:   mock.NewTime(),
		serverPort: testServerPort,
		db: mock.NewDb("asset_registry", map[string]any{
			"categories":   &model.CategoryModel{},
			"suppliers":    &model.SupplierModel{},
			"locations":    &model.LocationModel{},
			"asset_models": &model.AssetModelModel{},
			"assets":       &model.AssetModel{},
			"email_queue":  &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return c, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Fixture steps
	ctx.Given(`^a category "([^"]*)" exists with linear depreciation over (\d+) years and (\d+)% residual value$`, test.aLinearCategoryExists)
	ctx.Given(`^a category "([^"]*)" exists without depreciation parameters$`, test.aBareCategoryExists)
	ctx.Given(`^a supplier "([^"]*)" exists with tax id "([^"]*)"$`, test.aSupplierExistsWithTaxID)
	ctx.Given(`^a location "([^"]*)" exists$`, test.aLocationExists)
	ctx.Given(`^an asset model "([^"]*)" exists$`, test.anAssetModelExists)
	ctx.Given(`^an asset "([^"]*)" exists with tag "([^"]*)" purchased on "([^"]*)" for "([^"]*)"$`, test.anAssetExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentCategoryID = uuid.Nil
	t.currentSupplierID = uuid.Nil
	t.currentLocationID = uuid.Nil
	t.currentModelID = uuid.Nil
	t.currentAssetID = uuid.Nil
	t.lastCreatedID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

// startServer boots the full HTTP stack once, backed by the in-memory
// database and a miniredis extraction cache. The AI fallback is left
// unconfigured so extraction exercises only the native XML path.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			assetRepo := persistence.NewAssetRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			supplierRepo := persistence.NewSupplierRepository(testDB.DbConn)
			locationRepo := persistence.NewLocationRepository(testDB.DbConn)
			modelRepo := persistence.NewAssetModelRepository(testDB.DbConn)

			invoiceParser := adapters.NewNFeXMLParser()
			extractionCache := adapters.NewRedisExtractionCache(mock.NewRedis(), time.Hour)

			listAssetsUseCase := asset.NewListAssetsUseCase(assetRepo, categoryRepo)
			getAssetUseCase := asset.NewGetAssetUseCase(assetRepo, categoryRepo)
			createAssetUseCase := asset.NewCreateAssetUseCase(assetRepo, categoryRepo, supplierRepo, locationRepo, modelRepo)
			updateAssetUseCase := asset.NewUpdateAssetUseCase(assetRepo, categoryRepo, supplierRepo, locationRepo, modelRepo)
			deleteAssetUseCase := asset.NewDeleteAssetUseCase(assetRepo)

			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, assetRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, assetRepo)

			listSuppliersUseCase := supplier.NewListSuppliersUseCase(supplierRepo)
			createSupplierUseCase := supplier.NewCreateSupplierUseCase(supplierRepo)
			deleteSupplierUseCase := supplier.NewDeleteSupplierUseCase(supplierRepo, assetRepo)

			listLocationsUseCase := location.NewListLocationsUseCase(locationRepo)
			createLocationUseCase := location.NewCreateLocationUseCase(locationRepo)
			deleteLocationUseCase := location.NewDeleteLocationUseCase(locationRepo, assetRepo)

			listModelsUseCase := assetmodel.NewListAssetModelsUseCase(modelRepo)
			createModelUseCase := assetmodel.NewCreateAssetModelUseCase(modelRepo)
			deleteModelUseCase := assetmodel.NewDeleteAssetModelUseCase(modelRepo, assetRepo)

			extractUseCase := importer.NewExtractInvoiceUseCase(invoiceParser, nil, extractionCache, supplierRepo)
			planUseCase := importer.NewPlanImportUseCase()
			commitUseCase := importer.NewCommitImportUseCase(assetRepo, categoryRepo, supplierRepo, locationRepo, modelRepo, nil)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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
			modelController := controller.NewAssetModelController(
				listModelsUseCase,
				createModelUseCase,
				deleteModelUseCase,
			)
			importController := controller.NewImportController(
				extractUseCase,
				planUseCase,
				commitUseCase,
			)

			extractRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)

			r := router.NewRouter(
				healthController,
				assetController,
				categoryController,
				supplierController,
				locationController,
				modelController,
				importController,
				extractRateLimiter,
				[]string{"*"},
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
