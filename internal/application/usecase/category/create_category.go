// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name                    string
	DepreciationMethod      entity.DepreciationMethod
	UsefulLifeInYears       *int
	ResidualValuePercentage decimal.Decimal
	DepreciationRateType    *entity.DepreciationRateType
	DepreciationRateValue   *decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			"category name must not be blank",
			nil,
		)
	}

	if err := validateDepreciationConfig(input.DepreciationMethod, input.UsefulLifeInYears, input.ResidualValuePercentage, input.DepreciationRateType, input.DepreciationRateValue); err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(
		input.Name,
		input.DepreciationMethod,
		input.UsefulLifeInYears,
		input.ResidualValuePercentage,
		input.DepreciationRateType,
		input.DepreciationRateValue,
	)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateDepreciationConfig checks the depreciation rule ranges shared by
// create and update. A category may legitimately lack both a useful life and
// an explicit rate; it is then unvaluable until configured, which valuation
// reports per-asset.
func validateDepreciationConfig(
	method entity.DepreciationMethod,
	usefulLife *int,
	residualPct decimal.Decimal,
	rateType *entity.DepreciationRateType,
	rateValue *decimal.Decimal,
) error {
	if method != entity.DepreciationMethodLinear && method != entity.DepreciationMethodReducingBalance {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidDepreciationMethod,
			"depreciation method must be 'linear' or 'reducing_balance'",
			domainerror.ErrInvalidDepreciationMethod,
		)
	}

	if usefulLife != nil && *usefulLife < 1 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidUsefulLife,
			"useful life must be at least 1 year",
			domainerror.ErrInvalidUsefulLife,
		)
	}

	if residualPct.IsNegative() || residualPct.GreaterThan(decimal.NewFromInt(100)) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidResidualPercentage,
			"residual value percentage must be between 0 and 100",
			domainerror.ErrInvalidResidualPercentage,
		)
	}

	if rateType != nil && *rateType != entity.DepreciationRateTypeAnnual && *rateType != entity.DepreciationRateTypeMonthly {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidRateType,
			"depreciation rate type must be 'annual' or 'monthly'",
			domainerror.ErrInvalidRateType,
		)
	}

	if rateValue != nil && !rateValue.IsPositive() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidRateValue,
			"depreciation rate value must be greater than zero",
			domainerror.ErrInvalidRateValue,
		)
	}

	return nil
}
