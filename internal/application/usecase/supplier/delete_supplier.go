package supplier

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// DeleteSupplierInput represents the input for supplier deletion.
type DeleteSupplierInput struct {
	ID uuid.UUID
}

// DeleteSupplierUseCase handles supplier deletion. A supplier referenced by at
// least one asset cannot be deleted.
type DeleteSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
	assetRepo    adapter.AssetRepository
}

// NewDeleteSupplierUseCase creates a new DeleteSupplierUseCase instance.
func NewDeleteSupplierUseCase(supplierRepo adapter.SupplierRepository, assetRepo adapter.AssetRepository) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{
		supplierRepo: supplierRepo,
		assetRepo:    assetRepo,
	}
}

// Execute performs the supplier deletion.
func (uc *DeleteSupplierUseCase) Execute(ctx context.Context, input DeleteSupplierInput) error {
	if _, err := uc.supplierRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSupplierNotFound) {
			return domainerror.NewAssetError(
				domainerror.ErrCodeSupplierNotFound,
				fmt.Sprintf("supplier %s does not exist", input.ID),
				domainerror.ErrSupplierNotFound,
			)
		}
		return fmt.Errorf("failed to load supplier: %w", err)
	}

	count, err := uc.assetRepo.CountBySupplier(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count assets for supplier: %w", err)
	}
	if count > 0 {
		return domainerror.NewAssetError(
			domainerror.ErrCodeSupplierInUse,
			fmt.Sprintf("supplier is referenced by %d asset(s)", count),
			domainerror.ErrSupplierInUse,
		)
	}

	if err := uc.supplierRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	return nil
}
