package category

import (
	"context"
	"fmt"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithUsage
}

// ListCategoriesUseCase handles listing categories with asset usage counts.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	assetRepo    adapter.AssetRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, assetRepo adapter.AssetRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		assetRepo:    assetRepo,
	}
}

// Execute performs the listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]*entity.CategoryWithUsage, 0, len(categories))
	for _, cat := range categories {
		count, err := uc.assetRepo.CountByCategory(ctx, cat.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count assets for category %s: %w", cat.ID, err)
		}
		result = append(result, &entity.CategoryWithUsage{
			Category:   cat,
			AssetCount: count,
		})
	}

	return &ListCategoriesOutput{
		Categories: result,
	}, nil
}
