package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

type fakeAssetRepo struct {
	created   []*entity.Asset
	byID      map[uuid.UUID]*entity.Asset
	updated   []*entity.Asset
	deleted   []uuid.UUID
	createErr error
	counts    map[uuid.UUID]int64
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{
		byID:   make(map[uuid.UUID]*entity.Asset),
		counts: make(map[uuid.UUID]int64),
	}
}

func (r *fakeAssetRepo) Create(_ context.Context, asset *entity.Asset) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, asset)
	r.byID[asset.ID] = asset
	return nil
}

func (r *fakeAssetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Asset, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrAssetNotFound
	}
	return a, nil
}

func (r *fakeAssetRepo) FindAll(_ context.Context) ([]*entity.Asset, error) {
	all := make([]*entity.Asset, 0, len(r.byID))
	for _, a := range r.byID {
		all = append(all, a)
	}
	return all, nil
}

func (r *fakeAssetRepo) Update(_ context.Context, asset *entity.Asset) error {
	if _, ok := r.byID[asset.ID]; !ok {
		return domainerror.ErrAssetNotFound
	}
	r.byID[asset.ID] = asset
	r.updated = append(r.updated, asset)
	return nil
}

func (r *fakeAssetRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return domainerror.ErrAssetNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeAssetRepo) CountByCategory(_ context.Context, id uuid.UUID) (int64, error) {
	return r.counts[id], nil
}

func (r *fakeAssetRepo) CountBySupplier(_ context.Context, id uuid.UUID) (int64, error) {
	return r.counts[id], nil
}

func (r *fakeAssetRepo) CountByLocation(_ context.Context, id uuid.UUID) (int64, error) {
	return r.counts[id], nil
}

func (r *fakeAssetRepo) CountByModel(_ context.Context, id uuid.UUID) (int64, error) {
	return r.counts[id], nil
}

type fakeCategoryRepo struct {
	byID map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Category, error) {
	found := make(map[uuid.UUID]*entity.Category)
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			found[id] = c
		}
	}
	return found, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	all := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		all = append(all, c)
	}
	return all, nil
}

func (r *fakeCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.byID {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeSupplierRepo struct {
	byID map[uuid.UUID]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrSupplierNotFound
	}
	return s, nil
}

func (r *fakeSupplierRepo) FindByTaxID(_ context.Context, taxID string) (*entity.Supplier, error) {
	for _, s := range r.byID {
		if s.TaxID == taxID {
			return s, nil
		}
	}
	return nil, domainerror.ErrSupplierNotFound
}

func (r *fakeSupplierRepo) FindAll(_ context.Context) ([]*entity.Supplier, error) {
	all := make([]*entity.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		all = append(all, s)
	}
	return all, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeLocationRepo struct {
	byID map[uuid.UUID]*entity.Location
}

func (r *fakeLocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.byID[l.ID] = l
	return nil
}

func (r *fakeLocationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Location, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrLocationNotFound
	}
	return l, nil
}

func (r *fakeLocationRepo) FindAll(_ context.Context) ([]*entity.Location, error) {
	return nil, nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeModelRepo struct {
	byID map[uuid.UUID]*entity.AssetModel
}

func (r *fakeModelRepo) Create(_ context.Context, m *entity.AssetModel) error {
	r.byID[m.ID] = m
	return nil
}

func (r *fakeModelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AssetModel, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrAssetModelNotFound
	}
	return m, nil
}

func (r *fakeModelRepo) FindAll(_ context.Context) ([]*entity.AssetModel, error) {
	return nil, nil
}

func (r *fakeModelRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

// assetFixture wires a create use case over in-memory repositories with one
// category, supplier, location and model already registered.
type assetFixture struct {
	assets     *fakeAssetRepo
	categories *fakeCategoryRepo
	suppliers  *fakeSupplierRepo
	locations  *fakeLocationRepo
	models     *fakeModelRepo
	category   *entity.Category
	supplier   *entity.Supplier
	location   *entity.Location
	model      *entity.AssetModel
	uc         *CreateAssetUseCase
}

func newAssetFixture() *assetFixture {
	life := 5
	category := entity.NewCategory("Informatica", entity.DepreciationMethodLinear, &life, decimal.NewFromInt(10), nil, nil)
	supplier := entity.NewSupplier("TechParts Distribuidora Ltda", "12345678000195", "fiscal@techparts.com.br", "")
	location := entity.NewLocation("Escritorio SP", "")
	model := entity.NewAssetModel("Latitude 5440", "Dell")

	f := &assetFixture{
		assets:     newFakeAssetRepo(),
		categories: &fakeCategoryRepo{byID: map[uuid.UUID]*entity.Category{category.ID: category}},
		suppliers:  &fakeSupplierRepo{byID: map[uuid.UUID]*entity.Supplier{supplier.ID: supplier}},
		locations:  &fakeLocationRepo{byID: map[uuid.UUID]*entity.Location{location.ID: location}},
		models:     &fakeModelRepo{byID: map[uuid.UUID]*entity.AssetModel{model.ID: model}},
		category:   category,
		supplier:   supplier,
		location:   location,
		model:      model,
	}
	f.uc = NewCreateAssetUseCase(f.assets, f.categories, f.suppliers, f.locations, f.models)
	return f
}

func (f *assetFixture) validInput() CreateAssetInput {
	return CreateAssetInput{
		Name:                       "Notebook Latitude 5440",
		AssetTag:                   "NB-0042",
		InvoiceNumber:              "12345",
		CategoryID:                 f.category.ID,
		SupplierID:                 f.supplier.ID,
		PurchaseDate:               time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		PurchaseValue:              decimal.RequireFromString("4500.00"),
		PreviouslyDepreciatedValue: decimal.Zero,
		ApplyDepreciationRules:     true,
	}
}

func assertAssetErrorCode(t *testing.T, err error, code domainerror.AssetErrorCode) *domainerror.AssetError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var assetErr *domainerror.AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("expected AssetError, got %T: %v", err, err)
	}
	if assetErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, assetErr.Code)
	}
	return assetErr
}

func assertCategoryErrorCode(t *testing.T, err error, code domainerror.CategoryErrorCode) *domainerror.CategoryError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CategoryError, got %T: %v", err, err)
	}
	if catErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, catErr.Code)
	}
	return catErr
}

func TestCreateAssetUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and persists an asset", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.LocationID = &f.location.ID
		input.ModelID = &f.model.ID
		input.AdditionalInfo = "garantia de 3 anos"

		out, err := f.uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.assets.created) != 1 {
			t.Fatalf("expected 1 persisted asset, got %d", len(f.assets.created))
		}

		a := out.Asset
		if a.ID == uuid.Nil {
			t.Error("expected asset to receive an ID")
		}
		if a.Name != "Notebook Latitude 5440" || a.AssetTag != "NB-0042" {
			t.Errorf("unexpected identity: %q / %q", a.Name, a.AssetTag)
		}
		if a.CategoryID != f.category.ID || a.SupplierID != f.supplier.ID {
			t.Error("expected catalog references to be carried onto the asset")
		}
		if a.LocationID == nil || *a.LocationID != f.location.ID {
			t.Error("expected location reference to be set")
		}
		if a.ModelID == nil || *a.ModelID != f.model.ID {
			t.Error("expected model reference to be set")
		}
		if a.AdditionalInfo != "garantia de 3 anos" {
			t.Errorf("unexpected additional info: %q", a.AdditionalInfo)
		}
		if !a.ApplyDepreciationRules {
			t.Error("expected depreciation rules to apply")
		}
	})

	t.Run("location and model are optional", func(t *testing.T) {
		f := newAssetFixture()

		out, err := f.uc.Execute(ctx, f.validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Asset.LocationID != nil || out.Asset.ModelID != nil {
			t.Error("expected optional references to stay nil")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.Name = "   "

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeAssetNameRequired)
		if len(f.assets.created) != 0 {
			t.Error("expected nothing persisted")
		}
	})

	t.Run("rejects blank asset tag", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.AssetTag = ""

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeAssetTagRequired)
	})

	t.Run("rejects negative purchase value", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.PurchaseValue = decimal.RequireFromString("-1")

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeNegativePurchaseValue)
	})

	t.Run("rejects negative previously depreciated value", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.PreviouslyDepreciatedValue = decimal.RequireFromString("-0.01")

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeNegativeDepreciatedValue)
	})

	t.Run("rejects previously depreciated value above purchase value", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.PreviouslyDepreciatedValue = decimal.RequireFromString("4500.01")

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeDepreciatedValueExceedsPurchase)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.CategoryID = uuid.New()

		_, err := f.uc.Execute(ctx, input)
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})

	t.Run("rejects unknown supplier", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		input.SupplierID = uuid.New()

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeSupplierNotFound)
	})

	t.Run("rejects unknown location", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		unknown := uuid.New()
		input.LocationID = &unknown

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeLocationNotFound)
	})

	t.Run("rejects unknown asset model", func(t *testing.T) {
		f := newAssetFixture()
		input := f.validInput()
		unknown := uuid.New()
		input.ModelID = &unknown

		_, err := f.uc.Execute(ctx, input)
		assertAssetErrorCode(t, err, domainerror.ErrCodeAssetModelNotFound)
	})
}
