package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/usecase/asset"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
	"github.com/asset-registry/backend/internal/integration/entrypoint/dto"
)

// AssetController handles asset endpoints.
type AssetController struct {
	listUseCase   *asset.ListAssetsUseCase
	getUseCase    *asset.GetAssetUseCase
	createUseCase *asset.CreateAssetUseCase
	updateUseCase *asset.UpdateAssetUseCase
	deleteUseCase *asset.DeleteAssetUseCase
}

// NewAssetController creates a new asset controller instance.
func NewAssetController(
	listUseCase *asset.ListAssetsUseCase,
	getUseCase *asset.GetAssetUseCase,
	createUseCase *asset.CreateAssetUseCase,
	updateUseCase *asset.UpdateAssetUseCase,
	deleteUseCase *asset.DeleteAssetUseCase,
) *AssetController {
	return &AssetController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /assets requests. An optional as_of query parameter
// (YYYY-MM-DD) sets the valuation date.
func (c *AssetController) List(ctx *gin.Context) {
	input := asset.ListAssetsInput{}

	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		asOf, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "as_of must be a YYYY-MM-DD date",
			})
			return
		}
		input.AsOf = asOf
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve assets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetListResponse(output.Assets))
}

// Get handles GET /assets/:id requests.
func (c *AssetController) Get(ctx *gin.Context) {
	assetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset ID format",
		})
		return
	}

	input := asset.GetAssetInput{ID: assetID}
	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		asOf, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "as_of must be a YYYY-MM-DD date",
			})
			return
		}
		input.AsOf = asOf
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToValuedAssetResponse(output.Asset))
}

// Create handles POST /assets requests.
func (c *AssetController) Create(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input, err := buildAssetInput(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(output.Asset))
}

// Update handles PUT /assets/:id requests.
func (c *AssetController) Update(ctx *gin.Context) {
	assetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset ID format",
		})
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input, err := buildAssetInput(dto.CreateAssetRequest(req))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), asset.UpdateAssetInput{
		ID:                         assetID,
		Name:                       input.Name,
		AssetTag:                   input.AssetTag,
		InvoiceNumber:              input.InvoiceNumber,
		CategoryID:                 input.CategoryID,
		SupplierID:                 input.SupplierID,
		LocationID:                 input.LocationID,
		ModelID:                    input.ModelID,
		PurchaseDate:               input.PurchaseDate,
		PurchaseValue:              input.PurchaseValue,
		PreviouslyDepreciatedValue: input.PreviouslyDepreciatedValue,
		ApplyDepreciationRules:     input.ApplyDepreciationRules,
		ImageDataURIs:              input.ImageDataURIs,
		InvoiceFileDataURI:         input.InvoiceFileDataURI,
		InvoiceFileName:            input.InvoiceFileName,
		AdditionalInfo:             input.AdditionalInfo,
	})
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(output.Asset))
}

// Delete handles DELETE /assets/:id requests.
func (c *AssetController) Delete(ctx *gin.Context) {
	assetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), asset.DeleteAssetInput{ID: assetID}); err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// buildAssetInput converts the wire request into a create input, parsing
// dates, decimals and UUIDs.
func buildAssetInput(req dto.CreateAssetRequest) (*asset.CreateAssetInput, error) {
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return nil, errors.New("purchase_date must be a YYYY-MM-DD date")
	}

	purchaseValue, err := decimal.NewFromString(req.PurchaseValue)
	if err != nil {
		return nil, errors.New("purchase_value must be a decimal string")
	}

	prevDep := decimal.Zero
	if req.PreviouslyDepreciatedValue != "" {
		prevDep, err = decimal.NewFromString(req.PreviouslyDepreciatedValue)
		if err != nil {
			return nil, errors.New("previously_depreciated_value must be a decimal string")
		}
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, errors.New("category_id must be a UUID")
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, errors.New("supplier_id must be a UUID")
	}

	var locationID *uuid.UUID
	if req.LocationID != nil {
		id, err := uuid.Parse(*req.LocationID)
		if err != nil {
			return nil, errors.New("location_id must be a UUID")
		}
		locationID = &id
	}

	var modelID *uuid.UUID
	if req.ModelID != nil {
		id, err := uuid.Parse(*req.ModelID)
		if err != nil {
			return nil, errors.New("model_id must be a UUID")
		}
		modelID = &id
	}

	applyRules := true
	if req.ApplyDepreciationRules != nil {
		applyRules = *req.ApplyDepreciationRules
	}

	return &asset.CreateAssetInput{
		Name:                       req.Name,
		AssetTag:                   req.AssetTag,
		InvoiceNumber:              req.InvoiceNumber,
		CategoryID:                 categoryID,
		SupplierID:                 supplierID,
		LocationID:                 locationID,
		ModelID:                    modelID,
		PurchaseDate:               purchaseDate,
		PurchaseValue:              purchaseValue,
		PreviouslyDepreciatedValue: prevDep,
		ApplyDepreciationRules:     applyRules,
		ImageDataURIs:              req.ImageDataURIs,
		InvoiceFileDataURI:         req.InvoiceFileDataURI,
		InvoiceFileName:            req.InvoiceFileName,
		AdditionalInfo:             req.AdditionalInfo,
	}, nil
}

// handleAssetError handles asset errors and returns appropriate HTTP responses.
func (c *AssetController) handleAssetError(ctx *gin.Context, err error) {
	var assetErr *domainerror.AssetError
	if errors.As(err, &assetErr) {
		ctx.JSON(assetErrorStatus(assetErr.Code), dto.ErrorResponse{
			Error: assetErr.Message,
			Code:  string(assetErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(categoryErrorStatus(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// assetErrorStatus maps asset error codes to HTTP status codes.
func assetErrorStatus(code domainerror.AssetErrorCode) int {
	switch code {
	case domainerror.ErrCodeAssetNotFound,
		domainerror.ErrCodeSupplierNotFound,
		domainerror.ErrCodeLocationNotFound,
		domainerror.ErrCodeAssetModelNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSupplierInUse,
		domainerror.ErrCodeLocationInUse,
		domainerror.ErrCodeAssetModelInUse:
		return http.StatusConflict
	case domainerror.ErrCodeAssetNameRequired,
		domainerror.ErrCodeAssetTagRequired,
		domainerror.ErrCodeNegativePurchaseValue,
		domainerror.ErrCodeNegativeDepreciatedValue,
		domainerror.ErrCodeDepreciatedValueExceedsPurchase,
		domainerror.ErrCodeCatalogNameRequired,
		domainerror.ErrCodeInvalidTaxID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
