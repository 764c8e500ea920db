// Package assetmodel contains asset-model-related use cases.
package assetmodel

import (
	"context"
	"fmt"
	"strings"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// CreateAssetModelInput represents the input for asset model creation.
type CreateAssetModelInput struct {
	Name         string
	Manufacturer string
}

// CreateAssetModelOutput represents the output of asset model creation.
type CreateAssetModelOutput struct {
	Model *entity.AssetModel
}

// CreateAssetModelUseCase handles asset model creation.
type CreateAssetModelUseCase struct {
	modelRepo adapter.AssetModelRepository
}

// NewCreateAssetModelUseCase creates a new CreateAssetModelUseCase instance.
func NewCreateAssetModelUseCase(modelRepo adapter.AssetModelRepository) *CreateAssetModelUseCase {
	return &CreateAssetModelUseCase{modelRepo: modelRepo}
}

// Execute performs the asset model creation.
func (uc *CreateAssetModelUseCase) Execute(ctx context.Context, input CreateAssetModelInput) (*CreateAssetModelOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeCatalogNameRequired,
			"asset model name must not be blank",
			domainerror.ErrCatalogNameRequired,
		)
	}

	model := entity.NewAssetModel(input.Name, input.Manufacturer)
	if err := uc.modelRepo.Create(ctx, model); err != nil {
		return nil, fmt.Errorf("failed to create asset model: %w", err)
	}

	return &CreateAssetModelOutput{Model: model}, nil
}
