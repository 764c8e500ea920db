package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// CommitItem is one planned task plus the user-supplied per-asset metadata.
type CommitItem struct {
	SourceDescription          string
	PurchaseValue              decimal.Decimal // Unit cost plus allocated freight share
	Name                       string          // Defaults to SourceDescription when blank
	AssetTag                   string
	CategoryID                 uuid.UUID
	LocationID                 *uuid.UUID
	ModelID                    *uuid.UUID
	ApplyDepreciationRules     bool
	PreviouslyDepreciatedValue decimal.Decimal
	AdditionalInfo             string
}

// CommitImportInput represents the input for committing an import batch.
type CommitImportInput struct {
	SupplierTaxID string // As extracted; normalized to digits before matching
	SupplierName  string // For the error message when the supplier is unregistered
	InvoiceNumber string
	EmissionDate  time.Time
	NotifyEmail   string // Optional recipient for the batch summary notification
	NotifyName    string
	Items         []CommitItem
}

// CommitImportOutput represents the output of committing an import batch.
type CommitImportOutput struct {
	Assets []*entity.Asset
}

// CommitImportUseCase reconciles planned tasks into asset records. Every row
// is validated before any asset is persisted, so a validation failure leaves
// the registry untouched. Persistence itself is a sequence of independent
// appends; a mid-batch repository failure reports how many assets were
// already created so the caller can retry only the remainder.
type CommitImportUseCase struct {
	assetRepo    adapter.AssetRepository
	categoryRepo adapter.CategoryRepository
	supplierRepo adapter.SupplierRepository
	locationRepo adapter.LocationRepository
	modelRepo    adapter.AssetModelRepository
	emailService adapter.EmailService // Optional; nil disables notifications
}

// NewCommitImportUseCase creates a new CommitImportUseCase instance.
func NewCommitImportUseCase(
	assetRepo adapter.AssetRepository,
	categoryRepo adapter.CategoryRepository,
	supplierRepo adapter.SupplierRepository,
	locationRepo adapter.LocationRepository,
	modelRepo adapter.AssetModelRepository,
	emailService adapter.EmailService,
) *CommitImportUseCase {
	return &CommitImportUseCase{
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		locationRepo: locationRepo,
		modelRepo:    modelRepo,
		emailService: emailService,
	}
}

// Execute performs the reconciliation and commit.
func (uc *CommitImportUseCase) Execute(ctx context.Context, input CommitImportInput) (*CommitImportOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptySelection,
			"import batch contains no items",
			domainerror.ErrEmptySelection,
		)
	}

	supplier, err := uc.resolveSupplier(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := uc.validateRows(ctx, input.Items); err != nil {
		return nil, err
	}

	assets := make([]*entity.Asset, 0, len(input.Items))
	total := decimal.Zero
	for i, item := range input.Items {
		name := item.Name
		if strings.TrimSpace(name) == "" {
			name = item.SourceDescription
		}

		asset := entity.NewAsset(
			name,
			item.AssetTag,
			input.InvoiceNumber,
			item.CategoryID,
			supplier.ID,
			item.LocationID,
			item.ModelID,
			input.EmissionDate,
			item.PurchaseValue,
			item.PreviouslyDepreciatedValue,
			item.ApplyDepreciationRules,
		)
		asset.AdditionalInfo = item.AdditionalInfo

		if err := uc.assetRepo.Create(ctx, asset); err != nil {
			return nil, domainerror.NewImportRowError(
				domainerror.ErrCodeImportPersistenceError,
				fmt.Sprintf("failed to persist asset %d of %d (%d already created; retry the remaining rows)",
					i+1, len(input.Items), len(assets)),
				i,
				err,
			)
		}

		assets = append(assets, asset)
		total = total.Add(item.PurchaseValue)
	}

	slog.Info("Import batch committed",
		"supplier_id", supplier.ID,
		"invoice_number", input.InvoiceNumber,
		"asset_count", len(assets),
	)

	uc.notify(ctx, input, supplier, len(assets), total)

	return &CommitImportOutput{
		Assets: assets,
	}, nil
}

// resolveSupplier matches the invoice CNPJ to a registered supplier. No match
// halts the batch before anything is created: the caller registers the
// supplier and retries, avoiding partial imports under a wrong supplier.
func (uc *CommitImportUseCase) resolveSupplier(ctx context.Context, input CommitImportInput) (*entity.Supplier, error) {
	taxID := entity.NormalizeTaxID(input.SupplierTaxID)

	supplier, err := uc.supplierRepo.FindByTaxID(ctx, taxID)
	if err == nil {
		return supplier, nil
	}
	if !errors.Is(err, domainerror.ErrSupplierNotFound) {
		return nil, fmt.Errorf("failed to resolve supplier by tax id: %w", err)
	}

	importErr := &domainerror.ImportError{
		Code:          domainerror.ErrCodeInvoiceSupplierNotFound,
		Message:       fmt.Sprintf("no registered supplier with CNPJ %s; register %q and retry", taxID, input.SupplierName),
		Row:           -1,
		SupplierName:  input.SupplierName,
		SupplierTaxID: taxID,
		Err:           domainerror.ErrInvoiceSupplierNotFound,
	}
	return nil, importErr
}

// validateRows checks every row before any persistence happens.
func (uc *CommitImportUseCase) validateRows(ctx context.Context, items []CommitItem) error {
	categoryIDs := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool)
	for _, item := range items {
		if item.CategoryID != uuid.Nil && !seen[item.CategoryID] {
			seen[item.CategoryID] = true
			categoryIDs = append(categoryIDs, item.CategoryID)
		}
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return fmt.Errorf("failed to load categories for validation: %w", err)
	}

	resolvedLocations := make(map[uuid.UUID]bool)
	resolvedModels := make(map[uuid.UUID]bool)

	for i, item := range items {
		if strings.TrimSpace(item.AssetTag) == "" {
			return domainerror.NewImportRowError(
				domainerror.ErrCodeImportRowInvalid,
				fmt.Sprintf("row %d: asset tag must not be blank", i+1),
				i,
				domainerror.ErrImportRowInvalid,
			)
		}

		if item.CategoryID == uuid.Nil || categories[item.CategoryID] == nil {
			return domainerror.NewImportRowError(
				domainerror.ErrCodeImportRowInvalid,
				fmt.Sprintf("row %d: category %s does not exist", i+1, item.CategoryID),
				i,
				domainerror.ErrCategoryNotFound,
			)
		}

		if item.PurchaseValue.IsNegative() {
			return domainerror.NewImportRowError(
				domainerror.ErrCodeImportRowInvalid,
				fmt.Sprintf("row %d: purchase value must be zero or positive", i+1),
				i,
				domainerror.ErrNegativePurchaseValue,
			)
		}

		if item.PreviouslyDepreciatedValue.IsNegative() {
			return domainerror.NewImportRowError(
				domainerror.ErrCodeImportRowInvalid,
				fmt.Sprintf("row %d: previously depreciated value must be zero or positive", i+1),
				i,
				domainerror.ErrNegativeDepreciatedValue,
			)
		}

		if item.PreviouslyDepreciatedValue.GreaterThan(item.PurchaseValue) {
			return domainerror.NewImportRowError(
				domainerror.ErrCodeImportRowInvalid,
				fmt.Sprintf("row %d: previously depreciated value %s exceeds purchase value %s",
					i+1, item.PreviouslyDepreciatedValue.StringFixed(2), item.PurchaseValue.StringFixed(2)),
				i,
				domainerror.ErrDepreciatedValueExceedsPurchase,
			)
		}

		if item.LocationID != nil && !resolvedLocations[*item.LocationID] {
			if _, err := uc.locationRepo.FindByID(ctx, *item.LocationID); err != nil {
				return domainerror.NewImportRowError(
					domainerror.ErrCodeImportRowInvalid,
					fmt.Sprintf("row %d: location %s does not exist", i+1, *item.LocationID),
					i,
					domainerror.ErrLocationNotFound,
				)
			}
			resolvedLocations[*item.LocationID] = true
		}

		if item.ModelID != nil && !resolvedModels[*item.ModelID] {
			if _, err := uc.modelRepo.FindByID(ctx, *item.ModelID); err != nil {
				return domainerror.NewImportRowError(
					domainerror.ErrCodeImportRowInvalid,
					fmt.Sprintf("row %d: asset model %s does not exist", i+1, *item.ModelID),
					i,
					domainerror.ErrAssetModelNotFound,
				)
			}
			resolvedModels[*item.ModelID] = true
		}
	}

	return nil
}

// notify queues the batch summary email. Notification failures never fail the
// import; the assets are already committed.
func (uc *CommitImportUseCase) notify(ctx context.Context, input CommitImportInput, supplier *entity.Supplier, count int, total decimal.Decimal) {
	if uc.emailService == nil || input.NotifyEmail == "" {
		return
	}

	err := uc.emailService.QueueImportSummaryEmail(ctx, adapter.QueueImportSummaryInput{
		RecipientEmail: input.NotifyEmail,
		RecipientName:  input.NotifyName,
		SupplierName:   supplier.Name,
		InvoiceNumber:  input.InvoiceNumber,
		AssetCount:     count,
		TotalValue:     total.StringFixed(2),
	})
	if err != nil {
		slog.Warn("Failed to queue import summary email", "error", err)
	}
}
