package steps

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	"github.com/asset-registry/backend/internal/integration/persistence/model"
)

func (t *testContext) aLinearCategoryExists(name string, usefulLife, residualPct int) error {
	id := uuid.New()
	t.currentCategoryID = id

	record := &model.CategoryModel{
		ID:                      id,
		Name:                    name,
		DepreciationMethod:      string(entity.DepreciationMethodLinear),
		UsefulLifeInYears:       &usefulLife,
		ResidualValuePercentage: decimal.NewFromInt(int64(residualPct)),
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}

	return t.db.DbConn.Create(record).Error
}

func (t *testContext) aBareCategoryExists(name string) error {
	id := uuid.New()
	t.currentCategoryID = id

	record := &model.CategoryModel{
		ID:                      id,
		Name:                    name,
		DepreciationMethod:      string(entity.DepreciationMethodLinear),
		ResidualValuePercentage: decimal.Zero,
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}

	return t.db.DbConn.Create(record).Error
}

func (t *testContext) aSupplierExistsWithTaxID(name, taxID string) error {
	id := uuid.New()
	t.currentSupplierID = id

	record := &model.SupplierModel{
		ID:        id,
		Name:      name,
		TaxID:     entity.NormalizeTaxID(taxID),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return t.db.DbConn.Create(record).Error
}

func (t *testContext) aLocationExists(name string) error {
	id := uuid.New()
	t.currentLocationID = id

	record := &model.LocationModel{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return t.db.DbConn.Create(record).Error
}

func (t *testContext) anAssetModelExists(name string) error {
	id := uuid.New()
	t.currentModelID = id

	record := &model.AssetModelModel{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return t.db.DbConn.Create(record).Error
}

// anAssetExists seeds an asset under the most recently seeded category and
// supplier.
func (t *testContext) anAssetExists(name, tag, purchaseDate, purchaseValue string) error {
	date, err := time.Parse("2006-01-02", purchaseDate)
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(purchaseValue)
	if err != nil {
		return err
	}

	id := uuid.New()
	t.currentAssetID = id

	record := &model.AssetModel{
		ID:                         id,
		Name:                       name,
		AssetTag:                   tag,
		CategoryID:                 t.currentCategoryID,
		SupplierID:                 t.currentSupplierID,
		PurchaseDate:               date,
		PurchaseValue:              value,
		PreviouslyDepreciatedValue: decimal.Zero,
		ApplyDepreciationRules:     true,
		CreatedAt:                  time.Now(),
		UpdatedAt:                  time.Now(),
	}

	return t.db.DbConn.Create(record).Error
}
