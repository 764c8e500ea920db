package dto

import (
	"time"

	"github.com/asset-registry/backend/internal/application/usecase/category"
	"github.com/asset-registry/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name                    string  `json:"name" binding:"required,min=1,max=100"`
	DepreciationMethod      string  `json:"depreciation_method" binding:"required,oneof=linear reducing_balance"`
	UsefulLifeInYears       *int    `json:"useful_life_in_years,omitempty" binding:"omitempty,min=1"`
	ResidualValuePercentage string  `json:"residual_value_percentage,omitempty"`
	DepreciationRateType    *string `json:"depreciation_rate_type,omitempty" binding:"omitempty,oneof=annual monthly"`
	DepreciationRateValue   *string `json:"depreciation_rate_value,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name                    string  `json:"name" binding:"required,min=1,max=100"`
	DepreciationMethod      string  `json:"depreciation_method" binding:"required,oneof=linear reducing_balance"`
	UsefulLifeInYears       *int    `json:"useful_life_in_years,omitempty" binding:"omitempty,min=1"`
	ResidualValuePercentage string  `json:"residual_value_percentage,omitempty"`
	DepreciationRateType    *string `json:"depreciation_rate_type,omitempty" binding:"omitempty,oneof=annual monthly"`
	DepreciationRateValue   *string `json:"depreciation_rate_value,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	DepreciationMethod      string    `json:"depreciation_method"`
	UsefulLifeInYears       *int      `json:"useful_life_in_years,omitempty"`
	ResidualValuePercentage string    `json:"residual_value_percentage"`
	DepreciationRateType    *string   `json:"depreciation_rate_type,omitempty"`
	DepreciationRateValue   *string   `json:"depreciation_rate_value,omitempty"`
	AssetCount              int64     `json:"asset_count"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	var rateType *string
	if cat.DepreciationRateType != nil {
		s := string(*cat.DepreciationRateType)
		rateType = &s
	}

	var rateValue *string
	if cat.DepreciationRateValue != nil {
		s := cat.DepreciationRateValue.String()
		rateValue = &s
	}

	return CategoryResponse{
		ID:                      cat.ID.String(),
		Name:                    cat.Name,
		DepreciationMethod:      string(cat.DepreciationMethod),
		UsefulLifeInYears:       cat.UsefulLifeInYears,
		ResidualValuePercentage: cat.ResidualValuePercentage.String(),
		DepreciationRateType:    rateType,
		DepreciationRateValue:   rateValue,
		CreatedAt:               cat.CreatedAt,
		UpdatedAt:               cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories with usage counts to a CategoryListResponse.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, cu := range output.Categories {
		resp := ToCategoryResponse(cu.Category)
		resp.AssetCount = cu.AssetCount
		categories[i] = resp
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
