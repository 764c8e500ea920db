// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// AssetRepository defines the interface for asset persistence operations.
type AssetRepository interface {
	// Create appends a new asset to the registry.
	Create(ctx context.Context, asset *entity.Asset) error

	// FindByID retrieves an asset by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)

	// FindAll retrieves every asset in the registry.
	FindAll(ctx context.Context) ([]*entity.Asset, error)

	// Update updates an existing asset.
	Update(ctx context.Context, asset *entity.Asset) error

	// Delete removes an asset from the registry.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCategory returns how many assets reference the given category.
	// Used as a precondition check before destructive catalog operations.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountBySupplier returns how many assets reference the given supplier.
	CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)

	// CountByLocation returns how many assets reference the given location.
	CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error)

	// CountByModel returns how many assets reference the given asset model.
	CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error)
}
