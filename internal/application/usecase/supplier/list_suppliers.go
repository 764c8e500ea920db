package supplier

import (
	"context"
	"fmt"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
)

// ListSuppliersOutput represents the output of listing suppliers.
type ListSuppliersOutput struct {
	Suppliers []*entity.Supplier
}

// ListSuppliersUseCase handles listing suppliers.
type ListSuppliersUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewListSuppliersUseCase creates a new ListSuppliersUseCase instance.
func NewListSuppliersUseCase(supplierRepo adapter.SupplierRepository) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute performs the listing.
func (uc *ListSuppliersUseCase) Execute(ctx context.Context) (*ListSuppliersOutput, error) {
	suppliers, err := uc.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	return &ListSuppliersOutput{
		Suppliers: suppliers,
	}, nil
}
