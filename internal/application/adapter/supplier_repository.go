// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// SupplierRepository defines the interface for supplier persistence operations.
type SupplierRepository interface {
	// Create creates a new supplier in the database.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByTaxID retrieves a supplier by its digits-only CNPJ.
	// Callers must normalize the tax id before lookup.
	FindByTaxID(ctx context.Context, taxID string) (*entity.Supplier, error)

	// FindAll retrieves all suppliers.
	FindAll(ctx context.Context) ([]*entity.Supplier, error)

	// Update updates an existing supplier in the database.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// Delete removes a supplier from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationRepository defines the interface for location persistence operations.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindAll(ctx context.Context) ([]*entity.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetModelRepository defines the interface for asset model persistence operations.
type AssetModelRepository interface {
	Create(ctx context.Context, model *entity.AssetModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AssetModel, error)
	FindAll(ctx context.Context) ([]*entity.AssetModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
