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

// locationRepository implements the adapter.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository instance.
func NewLocationRepository(db *gorm.DB) adapter.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create creates a new location in the database.
func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationModel := model.LocationFromEntity(location)
	result := r.db.WithContext(ctx).Create(locationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a location by its ID.
func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationModel model.LocationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&locationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLocationNotFound
		}
		return nil, result.Error
	}
	return locationModel.ToEntity(), nil
}

// FindAll retrieves all locations ordered by name.
func (r *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []model.LocationModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&locationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for i := range locationModels {
		locations = append(locations, locationModels[i].ToEntity())
	}
	return locations, nil
}

// Delete removes a location from the database.
func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LocationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLocationNotFound
	}
	return nil
}

// assetModelRepository implements the adapter.AssetModelRepository interface.
type assetModelRepository struct {
	db *gorm.DB
}

// NewAssetModelRepository creates a new asset model repository instance.
func NewAssetModelRepository(db *gorm.DB) adapter.AssetModelRepository {
	return &assetModelRepository{
		db: db,
	}
}

// Create creates a new asset model in the database.
func (r *assetModelRepository) Create(ctx context.Context, am *entity.AssetModel) error {
	record := model.AssetModelFromEntity(am)
	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an asset model by its ID.
func (r *assetModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AssetModel, error) {
	var record model.AssetModelModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAssetModelNotFound
		}
		return nil, result.Error
	}
	return record.ToEntity(), nil
}

// FindAll retrieves all asset models ordered by name.
func (r *assetModelRepository) FindAll(ctx context.Context) ([]*entity.AssetModel, error) {
	var records []model.AssetModelModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	assetModels := make([]*entity.AssetModel, 0, len(records))
	for i := range records {
		assetModels = append(assetModels, records[i].ToEntity())
	}
	return assetModels, nil
}

// Delete removes an asset model from the database.
func (r *assetModelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AssetModelModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAssetModelNotFound
	}
	return nil
}
