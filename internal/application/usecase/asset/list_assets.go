package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
	"github.com/asset-registry/backend/internal/domain/valuation"
)

// ListAssetsInput represents the input for listing assets with valuations.
type ListAssetsInput struct {
	AsOf time.Time // Valuation date; zero value means "now"
}

// ListAssetsOutput represents the output of listing assets.
type ListAssetsOutput struct {
	Assets []*entity.AssetWithValuation
}

// ListAssetsUseCase lists every asset with its book value computed at the
// valuation date. Valuation failures are per-asset: the affected asset is
// returned as unvaluable and the listing continues.
type ListAssetsUseCase struct {
	assetRepo    adapter.AssetRepository
	categoryRepo adapter.CategoryRepository
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assetRepo adapter.AssetRepository, categoryRepo adapter.CategoryRepository) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the listing.
func (uc *ListAssetsUseCase) Execute(ctx context.Context, input ListAssetsInput) (*ListAssetsOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	assets, err := uc.assetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	categoryIDs := make([]uuid.UUID, 0, len(assets))
	seen := make(map[uuid.UUID]bool)
	for _, a := range assets {
		if !seen[a.CategoryID] {
			seen[a.CategoryID] = true
			categoryIDs = append(categoryIDs, a.CategoryID)
		}
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	result := make([]*entity.AssetWithValuation, 0, len(assets))
	for _, a := range assets {
		result = append(result, valuate(a, categories[a.CategoryID], asOf))
	}

	return &ListAssetsOutput{
		Assets: result,
	}, nil
}

// valuate computes the book value of one asset, degrading configuration
// problems into an unvaluable marker instead of an error.
func valuate(asset *entity.Asset, category *entity.Category, asOf time.Time) *entity.AssetWithValuation {
	if category == nil {
		slog.Warn("Asset references missing category, reporting as unvaluable",
			"asset_id", asset.ID,
			"category_id", asset.CategoryID,
		)
		return &entity.AssetWithValuation{
			Asset:          asset,
			Valuable:       false,
			ValuationIssue: string(domainerror.ErrCodeCategoryNotFound),
		}
	}

	value, err := valuation.CurrentValue(asset, category, asOf)
	if err != nil {
		var valErr *domainerror.ValuationError
		issue := string(domainerror.ErrCodeDepreciationRateNotConfigured)
		if errors.As(err, &valErr) {
			issue = string(valErr.Code)
		}
		return &entity.AssetWithValuation{
			Asset:          asset,
			Valuable:       false,
			ValuationIssue: issue,
		}
	}

	return &entity.AssetWithValuation{
		Asset:        asset,
		CurrentValue: value,
		Valuable:     true,
	}
}
