package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/usecase/assetmodel"
	"github.com/asset-registry/backend/internal/application/usecase/location"
	"github.com/asset-registry/backend/internal/application/usecase/supplier"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
	"github.com/asset-registry/backend/internal/integration/entrypoint/dto"
)

// SupplierController handles supplier endpoints.
type SupplierController struct {
	listUseCase   *supplier.ListSuppliersUseCase
	createUseCase *supplier.CreateSupplierUseCase
	deleteUseCase *supplier.DeleteSupplierUseCase
}

// NewSupplierController creates a new supplier controller instance.
func NewSupplierController(
	listUseCase *supplier.ListSuppliersUseCase,
	createUseCase *supplier.CreateSupplierUseCase,
	deleteUseCase *supplier.DeleteSupplierUseCase,
) *SupplierController {
	return &SupplierController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /suppliers requests.
func (c *SupplierController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve suppliers",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(output.Suppliers))
}

// Create handles POST /suppliers requests.
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), supplier.CreateSupplierInput{
		Name:  req.Name,
		TaxID: req.TaxID,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(output.Supplier))
}

// Delete handles DELETE /suppliers/:id requests.
func (c *SupplierController) Delete(ctx *gin.Context) {
	supplierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid supplier ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), supplier.DeleteSupplierInput{ID: supplierID}); err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// LocationController handles location endpoints.
type LocationController struct {
	listUseCase   *location.ListLocationsUseCase
	createUseCase *location.CreateLocationUseCase
	deleteUseCase *location.DeleteLocationUseCase
}

// NewLocationController creates a new location controller instance.
func NewLocationController(
	listUseCase *location.ListLocationsUseCase,
	createUseCase *location.CreateLocationUseCase,
	deleteUseCase *location.DeleteLocationUseCase,
) *LocationController {
	return &LocationController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /locations requests.
func (c *LocationController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve locations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationListResponse(output.Locations))
}

// Create handles POST /locations requests.
func (c *LocationController) Create(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), location.CreateLocationInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLocationResponse(output.Location))
}

// Delete handles DELETE /locations/:id requests.
func (c *LocationController) Delete(ctx *gin.Context) {
	locationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid location ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), location.DeleteLocationInput{ID: locationID}); err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssetModelController handles asset model endpoints.
type AssetModelController struct {
	listUseCase   *assetmodel.ListAssetModelsUseCase
	createUseCase *assetmodel.CreateAssetModelUseCase
	deleteUseCase *assetmodel.DeleteAssetModelUseCase
}

// NewAssetModelController creates a new asset model controller instance.
func NewAssetModelController(
	listUseCase *assetmodel.ListAssetModelsUseCase,
	createUseCase *assetmodel.CreateAssetModelUseCase,
	deleteUseCase *assetmodel.DeleteAssetModelUseCase,
) *AssetModelController {
	return &AssetModelController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /asset-models requests.
func (c *AssetModelController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve asset models",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetModelListResponse(output.Models))
}

// Create handles POST /asset-models requests.
func (c *AssetModelController) Create(ctx *gin.Context) {
	var req dto.CreateAssetModelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), assetmodel.CreateAssetModelInput{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetModelResponse(output.Model))
}

// Delete handles DELETE /asset-models/:id requests.
func (c *AssetModelController) Delete(ctx *gin.Context) {
	modelID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset model ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), assetmodel.DeleteAssetModelInput{ID: modelID}); err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCatalogError handles catalog errors and returns appropriate HTTP responses.
func handleCatalogError(ctx *gin.Context, err error) {
	var assetErr *domainerror.AssetError
	if errors.As(err, &assetErr) {
		ctx.JSON(assetErrorStatus(assetErr.Code), dto.ErrorResponse{
			Error: assetErr.Message,
			Code:  string(assetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
