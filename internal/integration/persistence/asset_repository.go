// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
	"github.com/asset-registry/backend/internal/integration/persistence/model"
)

// assetRepository implements the adapter.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository instance.
func NewAssetRepository(db *gorm.DB) adapter.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// Create appends a new asset to the registry.
func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetModel := model.AssetFromEntity(asset)
	result := r.db.WithContext(ctx).Create(assetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an asset by its ID.
func (r *assetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var assetModel model.AssetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&assetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAssetNotFound
		}
		return nil, result.Error
	}
	return assetModel.ToEntity(), nil
}

// FindAll retrieves every asset, newest purchases first.
func (r *assetRepository) FindAll(ctx context.Context) ([]*entity.Asset, error) {
	var assetModels []model.AssetModel
	result := r.db.WithContext(ctx).Order("purchase_date DESC, created_at DESC").Find(&assetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	assets := make([]*entity.Asset, 0, len(assetModels))
	for i := range assetModels {
		assets = append(assets, assetModels[i].ToEntity())
	}
	return assets, nil
}

// Update updates an existing asset.
func (r *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	assetModel := model.AssetFromEntity(asset)
	result := r.db.WithContext(ctx).Save(assetModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAssetNotFound
	}
	return nil
}

// Delete removes an asset from the registry.
func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AssetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAssetNotFound
	}
	return nil
}

// CountByCategory returns how many assets reference the given category.
func (r *assetRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "category_id", categoryID)
}

// CountBySupplier returns how many assets reference the given supplier.
func (r *assetRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "supplier_id", supplierID)
}

// CountByLocation returns how many assets reference the given location.
func (r *assetRepository) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "location_id", locationID)
}

// CountByModel returns how many assets reference the given asset model.
func (r *assetRepository) CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "model_id", modelID)
}

func (r *assetRepository) countBy(ctx context.Context, column string, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.AssetModel{}).Where(column+" = ?", id).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
