package importer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

type fakeAssetRepo struct {
	created   []*entity.Asset
	failAfter int // Create fails once this many assets exist; -1 disables
}

func (r *fakeAssetRepo) Create(_ context.Context, asset *entity.Asset) error {
	if r.failAfter >= 0 && len(r.created) >= r.failAfter {
		return errors.New("connection reset by peer")
	}
	r.created = append(r.created, asset)
	return nil
}

func (r *fakeAssetRepo) FindByID(context.Context, uuid.UUID) (*entity.Asset, error) {
	return nil, domainerror.ErrAssetNotFound
}

func (r *fakeAssetRepo) FindAll(context.Context) ([]*entity.Asset, error) {
	return r.created, nil
}

func (r *fakeAssetRepo) Update(context.Context, *entity.Asset) error { return nil }
func (r *fakeAssetRepo) Delete(context.Context, uuid.UUID) error     { return nil }

func (r *fakeAssetRepo) CountByCategory(context.Context, uuid.UUID) (int64, error) { return 0, nil }
func (r *fakeAssetRepo) CountBySupplier(context.Context, uuid.UUID) (int64, error) { return 0, nil }
func (r *fakeAssetRepo) CountByLocation(context.Context, uuid.UUID) (int64, error) { return 0, nil }
func (r *fakeAssetRepo) CountByModel(context.Context, uuid.UUID) (int64, error)    { return 0, nil }

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return nil }

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Category, error) {
	found := make(map[uuid.UUID]*entity.Category, len(ids))
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			found[id] = c
		}
	}
	return found, nil
}

func (r *fakeCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) ExistsByName(context.Context, string) (bool, error)  { return false, nil }
func (r *fakeCategoryRepo) Update(context.Context, *entity.Category) error      { return nil }
func (r *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type fakeSupplierRepo struct {
	byTaxID map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(context.Context, *entity.Supplier) error { return nil }

func (r *fakeSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	for _, s := range r.byTaxID {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrSupplierNotFound
}

func (r *fakeSupplierRepo) FindByTaxID(_ context.Context, taxID string) (*entity.Supplier, error) {
	if s, ok := r.byTaxID[taxID]; ok {
		return s, nil
	}
	return nil, domainerror.ErrSupplierNotFound
}

func (r *fakeSupplierRepo) FindAll(context.Context) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(context.Context, *entity.Supplier) error      { return nil }
func (r *fakeSupplierRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type fakeLocationRepo struct {
	locations map[uuid.UUID]*entity.Location
}

func (r *fakeLocationRepo) Create(context.Context, *entity.Location) error { return nil }

func (r *fakeLocationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Location, error) {
	if l, ok := r.locations[id]; ok {
		return l, nil
	}
	return nil, domainerror.ErrLocationNotFound
}

func (r *fakeLocationRepo) FindAll(context.Context) ([]*entity.Location, error) { return nil, nil }
func (r *fakeLocationRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type fakeModelRepo struct {
	models map[uuid.UUID]*entity.AssetModel
}

func (r *fakeModelRepo) Create(context.Context, *entity.AssetModel) error { return nil }

func (r *fakeModelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AssetModel, error) {
	if m, ok := r.models[id]; ok {
		return m, nil
	}
	return nil, domainerror.ErrAssetModelNotFound
}

func (r *fakeModelRepo) FindAll(context.Context) ([]*entity.AssetModel, error) { return nil, nil }
func (r *fakeModelRepo) Delete(context.Context, uuid.UUID) error               { return nil }

type fakeEmailService struct {
	queued []adapter.QueueImportSummaryInput
	err    error
}

func (s *fakeEmailService) QueueImportSummaryEmail(_ context.Context, input adapter.QueueImportSummaryInput) error {
	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, input)
	return nil
}

type commitFixture struct {
	useCase    *CommitImportUseCase
	assetRepo  *fakeAssetRepo
	email      *fakeEmailService
	supplierID uuid.UUID
	categoryID uuid.UUID
}

func newCommitFixture() *commitFixture {
	supplierID := uuid.New()
	categoryID := uuid.New()
	usefulLife := 5

	assetRepo := &fakeAssetRepo{failAfter: -1}
	email := &fakeEmailService{}

	useCase := NewCommitImportUseCase(
		assetRepo,
		&fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{
			categoryID: {
				ID:                 categoryID,
				Name:               "Informatica",
				DepreciationMethod: entity.DepreciationMethodLinear,
				UsefulLifeInYears:  &usefulLife,
			},
		}},
		&fakeSupplierRepo{byTaxID: map[string]*entity.Supplier{
			"12345678000195": {
				ID:    supplierID,
				Name:  "TechParts Distribuidora Ltda",
				TaxID: "12345678000195",
			},
		}},
		&fakeLocationRepo{},
		&fakeModelRepo{},
		email,
	)

	return &commitFixture{
		useCase:    useCase,
		assetRepo:  assetRepo,
		email:      email,
		supplierID: supplierID,
		categoryID: categoryID,
	}
}

func (f *commitFixture) item(tag string) CommitItem {
	return CommitItem{
		SourceDescription:      "Notebook Latitude 5440",
		PurchaseValue:          decimal.RequireFromString("4550.00"),
		AssetTag:               tag,
		CategoryID:             f.categoryID,
		ApplyDepreciationRules: true,
	}
}

func (f *commitFixture) input(items ...CommitItem) CommitImportInput {
	return CommitImportInput{
		SupplierTaxID: "12.345.678/0001-95",
		SupplierName:  "TechParts Distribuidora Ltda",
		InvoiceNumber: "12345",
		EmissionDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Items:         items,
	}
}

func TestCommitImportUseCase_Execute(t *testing.T) {
	t.Run("creates one asset per item", func(t *testing.T) {
		f := newCommitFixture()

		output, err := f.useCase.Execute(context.Background(), f.input(f.item("AT-0101"), f.item("AT-0102")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Assets) != 2 {
			t.Fatalf("expected 2 assets, got %d", len(output.Assets))
		}
		if len(f.assetRepo.created) != 2 {
			t.Fatalf("expected 2 persisted assets, got %d", len(f.assetRepo.created))
		}

		first := output.Assets[0]
		if first.SupplierID != f.supplierID {
			t.Errorf("expected supplier %s, got %s", f.supplierID, first.SupplierID)
		}
		if first.InvoiceNumber != "12345" {
			t.Errorf("expected invoice number 12345, got %q", first.InvoiceNumber)
		}
		// No explicit name: the invoice line description carries over.
		if first.Name != "Notebook Latitude 5440" {
			t.Errorf("expected name from source description, got %q", first.Name)
		}
	})

	t.Run("explicit name overrides the source description", func(t *testing.T) {
		f := newCommitFixture()
		item := f.item("AT-0101")
		item.Name = "Notebook da recepcao"

		output, err := f.useCase.Execute(context.Background(), f.input(item))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Assets[0].Name != "Notebook da recepcao" {
			t.Errorf("expected explicit name, got %q", output.Assets[0].Name)
		}
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		f := newCommitFixture()

		_, err := f.useCase.Execute(context.Background(), f.input())
		assertCommitErrorCode(t, err, domainerror.ErrCodeEmptySelection)
	})

	t.Run("unregistered supplier halts the batch with its identity", func(t *testing.T) {
		f := newCommitFixture()
		input := f.input(f.item("AT-0101"))
		input.SupplierTaxID = "99.999.999/0001-99"
		input.SupplierName = "Fornecedor Desconhecido"

		_, err := f.useCase.Execute(context.Background(), input)
		importErr := assertCommitErrorCode(t, err, domainerror.ErrCodeInvoiceSupplierNotFound)

		if importErr.SupplierTaxID != "99999999000199" {
			t.Errorf("expected normalized tax id in error, got %q", importErr.SupplierTaxID)
		}
		if importErr.SupplierName != "Fornecedor Desconhecido" {
			t.Errorf("expected supplier name in error, got %q", importErr.SupplierName)
		}
		if len(f.assetRepo.created) != 0 {
			t.Errorf("expected no persisted assets, got %d", len(f.assetRepo.created))
		}
	})

	t.Run("a bad row fails the whole batch before persistence", func(t *testing.T) {
		f := newCommitFixture()
		bad := f.item("AT-0102")
		bad.CategoryID = uuid.New() // Not registered

		_, err := f.useCase.Execute(context.Background(), f.input(f.item("AT-0101"), bad))
		importErr := assertCommitErrorCode(t, err, domainerror.ErrCodeImportRowInvalid)

		if importErr.Row != 1 {
			t.Errorf("expected row 1, got %d", importErr.Row)
		}
		if len(f.assetRepo.created) != 0 {
			t.Errorf("expected no persisted assets, got %d", len(f.assetRepo.created))
		}
	})

	t.Run("rejects a blank asset tag", func(t *testing.T) {
		f := newCommitFixture()

		_, err := f.useCase.Execute(context.Background(), f.input(f.item("   ")))
		importErr := assertCommitErrorCode(t, err, domainerror.ErrCodeImportRowInvalid)
		if importErr.Row != 0 {
			t.Errorf("expected row 0, got %d", importErr.Row)
		}
	})

	t.Run("rejects previous depreciation above the purchase value", func(t *testing.T) {
		f := newCommitFixture()
		item := f.item("AT-0101")
		item.PreviouslyDepreciatedValue = decimal.RequireFromString("5000.00")

		_, err := f.useCase.Execute(context.Background(), f.input(item))
		assertCommitErrorCode(t, err, domainerror.ErrCodeImportRowInvalid)
	})

	t.Run("rejects excess previous depreciation on a frozen row", func(t *testing.T) {
		f := newCommitFixture()
		item := f.item("AT-0101")
		item.ApplyDepreciationRules = false
		item.PreviouslyDepreciatedValue = decimal.RequireFromString("5000.00")

		_, err := f.useCase.Execute(context.Background(), f.input(item))
		assertCommitErrorCode(t, err, domainerror.ErrCodeImportRowInvalid)
		if len(f.assetRepo.created) != 0 {
			t.Errorf("expected nothing persisted, got %d assets", len(f.assetRepo.created))
		}
	})

	t.Run("rejects a negative purchase value", func(t *testing.T) {
		f := newCommitFixture()
		item := f.item("AT-0101")
		item.PurchaseValue = decimal.RequireFromString("-1.00")
		item.PreviouslyDepreciatedValue = decimal.Zero

		_, err := f.useCase.Execute(context.Background(), f.input(item))
		importErr := assertCommitErrorCode(t, err, domainerror.ErrCodeImportRowInvalid)
		if importErr.Row != 0 {
			t.Errorf("expected row 0, got %d", importErr.Row)
		}
	})

	t.Run("mid-batch persistence failure reports progress", func(t *testing.T) {
		f := newCommitFixture()
		f.assetRepo.failAfter = 1

		_, err := f.useCase.Execute(context.Background(), f.input(f.item("AT-0101"), f.item("AT-0102")))
		importErr := assertCommitErrorCode(t, err, domainerror.ErrCodeImportPersistenceError)

		if importErr.Row != 1 {
			t.Errorf("expected row 1, got %d", importErr.Row)
		}
		if !strings.Contains(importErr.Message, "1 already created") {
			t.Errorf("expected progress in message, got %q", importErr.Message)
		}
	})

	t.Run("queues a summary notification when a recipient is set", func(t *testing.T) {
		f := newCommitFixture()
		input := f.input(f.item("AT-0101"), f.item("AT-0102"))
		input.NotifyEmail = "financeiro@example.com"
		input.NotifyName = "Financeiro"

		if _, err := f.useCase.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(f.email.queued) != 1 {
			t.Fatalf("expected 1 queued email, got %d", len(f.email.queued))
		}
		queued := f.email.queued[0]
		if queued.AssetCount != 2 {
			t.Errorf("expected asset count 2, got %d", queued.AssetCount)
		}
		if queued.TotalValue != "9100.00" {
			t.Errorf("expected total 9100.00, got %q", queued.TotalValue)
		}
		if queued.SupplierName != "TechParts Distribuidora Ltda" {
			t.Errorf("unexpected supplier name %q", queued.SupplierName)
		}
	})

	t.Run("skips notification without a recipient", func(t *testing.T) {
		f := newCommitFixture()

		if _, err := f.useCase.Execute(context.Background(), f.input(f.item("AT-0101"))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.email.queued) != 0 {
			t.Errorf("expected no queued emails, got %d", len(f.email.queued))
		}
	})

	t.Run("notification failure does not fail the commit", func(t *testing.T) {
		f := newCommitFixture()
		f.email.err = errors.New("provider down")
		input := f.input(f.item("AT-0101"))
		input.NotifyEmail = "financeiro@example.com"

		output, err := f.useCase.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Assets) != 1 {
			t.Errorf("expected 1 asset, got %d", len(output.Assets))
		}
	})
}

func assertCommitErrorCode(t *testing.T, err error, code domainerror.ImportErrorCode) *domainerror.ImportError {
	t.Helper()

	var importErr *domainerror.ImportError
	if !errors.As(err, &importErr) {
		t.Fatalf("expected an ImportError, got %v", err)
	}
	if importErr.Code != code {
		t.Errorf("expected code %s, got %s", code, importErr.Code)
	}
	return importErr
}
