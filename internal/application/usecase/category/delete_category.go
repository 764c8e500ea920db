package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion. A category referenced by at
// least one asset cannot be deleted.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	assetRepo    adapter.AssetRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, assetRepo adapter.AssetRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		assetRepo:    assetRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %s does not exist", input.ID),
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to load category: %w", err)
	}

	count, err := uc.assetRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count assets for category: %w", err)
	}
	if count > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category %q is referenced by %d asset(s)", category.Name, count),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
