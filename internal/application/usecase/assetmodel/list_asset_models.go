package assetmodel

import (
	"context"
	"fmt"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
)

// ListAssetModelsOutput represents the output of listing asset models.
type ListAssetModelsOutput struct {
	Models []*entity.AssetModel
}

// ListAssetModelsUseCase handles listing asset models.
type ListAssetModelsUseCase struct {
	modelRepo adapter.AssetModelRepository
}

// NewListAssetModelsUseCase creates a new ListAssetModelsUseCase instance.
func NewListAssetModelsUseCase(modelRepo adapter.AssetModelRepository) *ListAssetModelsUseCase {
	return &ListAssetModelsUseCase{modelRepo: modelRepo}
}

// Execute performs the listing.
func (uc *ListAssetModelsUseCase) Execute(ctx context.Context) (*ListAssetModelsOutput, error) {
	models, err := uc.modelRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset models: %w", err)
	}

	return &ListAssetModelsOutput{Models: models}, nil
}
