// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/usecase/category"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
	"github.com/asset-registry/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCategoryName),
		})
		return
	}

	input, err := buildCategoryInput(req.Name, req.DepreciationMethod, req.UsefulLifeInYears,
		req.ResidualValuePercentage, req.DepreciationRateType, req.DepreciationRateValue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PUT /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input, err := buildCategoryInput(req.Name, req.DepreciationMethod, req.UsefulLifeInYears,
		req.ResidualValuePercentage, req.DepreciationRateType, req.DepreciationRateValue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		ID:                      categoryID,
		Name:                    input.Name,
		DepreciationMethod:      input.DepreciationMethod,
		UsefulLifeInYears:       input.UsefulLifeInYears,
		ResidualValuePercentage: input.ResidualValuePercentage,
		DepreciationRateType:    input.DepreciationRateType,
		DepreciationRateValue:   input.DepreciationRateValue,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: categoryID}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// buildCategoryInput converts wire fields into a create input, parsing the
// decimal strings.
func buildCategoryInput(
	name, method string,
	usefulLife *int,
	residualPct string,
	rateType *string,
	rateValue *string,
) (*category.CreateCategoryInput, error) {
	residual := decimal.Zero
	if residualPct != "" {
		var err error
		residual, err = decimal.NewFromString(residualPct)
		if err != nil {
			return nil, errors.New("residual_value_percentage must be a decimal string")
		}
	}

	var entityRateType *entity.DepreciationRateType
	if rateType != nil {
		rt := entity.DepreciationRateType(*rateType)
		entityRateType = &rt
	}

	var entityRateValue *decimal.Decimal
	if rateValue != nil {
		rv, err := decimal.NewFromString(*rateValue)
		if err != nil {
			return nil, errors.New("depreciation_rate_value must be a decimal string")
		}
		entityRateValue = &rv
	}

	return &category.CreateCategoryInput{
		Name:                    name,
		DepreciationMethod:      entity.DepreciationMethod(method),
		UsefulLifeInYears:       usefulLife,
		ResidualValuePercentage: residual,
		DepreciationRateType:    entityRateType,
		DepreciationRateValue:   entityRateValue,
	}, nil
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
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

// categoryErrorStatus maps category error codes to HTTP status codes.
func categoryErrorStatus(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidDepreciationMethod,
		domainerror.ErrCodeInvalidUsefulLife,
		domainerror.ErrCodeInvalidResidualPercentage,
		domainerror.ErrCodeInvalidRateType,
		domainerror.ErrCodeInvalidRateValue,
		domainerror.ErrCodeMissingCategoryName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
