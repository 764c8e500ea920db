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

// supplierRepository implements the adapter.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository instance.
func NewSupplierRepository(db *gorm.DB) adapter.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create creates a new supplier in the database.
func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierModel := model.SupplierFromEntity(supplier)
	result := r.db.WithContext(ctx).Create(supplierModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a supplier by its ID.
func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierModel model.SupplierModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&supplierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSupplierNotFound
		}
		return nil, result.Error
	}
	return supplierModel.ToEntity(), nil
}

// FindByTaxID retrieves a supplier by its digits-only CNPJ.
func (r *supplierRepository) FindByTaxID(ctx context.Context, taxID string) (*entity.Supplier, error) {
	var supplierModel model.SupplierModel
	result := r.db.WithContext(ctx).Where("tax_id = ?", taxID).First(&supplierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSupplierNotFound
		}
		return nil, result.Error
	}
	return supplierModel.ToEntity(), nil
}

// FindAll retrieves all suppliers ordered by name.
func (r *supplierRepository) FindAll(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []model.SupplierModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&supplierModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for i := range supplierModels {
		suppliers = append(suppliers, supplierModels[i].ToEntity())
	}
	return suppliers, nil
}

// Update updates an existing supplier in the database.
func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplierModel := model.SupplierFromEntity(supplier)
	result := r.db.WithContext(ctx).Save(supplierModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSupplierNotFound
	}
	return nil
}

// Delete removes a supplier from the database.
func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SupplierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSupplierNotFound
	}
	return nil
}
