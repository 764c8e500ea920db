package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	ID                      uuid.UUID
	Name                    string
	DepreciationMethod      entity.DepreciationMethod
	UsefulLifeInYears       *int
	ResidualValuePercentage decimal.Decimal
	DepreciationRateType    *entity.DepreciationRateType
	DepreciationRateValue   *decimal.Decimal
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %s does not exist", input.ID),
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

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

	category.Name = input.Name
	category.DepreciationMethod = input.DepreciationMethod
	category.UsefulLifeInYears = input.UsefulLifeInYears
	category.ResidualValuePercentage = input.ResidualValuePercentage
	category.DepreciationRateType = input.DepreciationRateType
	category.DepreciationRateValue = input.DepreciationRateValue
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
