// Package supplier contains supplier-related use cases.
package supplier

import (
	"context"
	"fmt"
	"strings"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// CNPJLength is the number of digits in a Brazilian CNPJ.
const CNPJLength = 14

// CreateSupplierInput represents the input for supplier creation.
type CreateSupplierInput struct {
	Name  string
	TaxID string // CNPJ, punctuation allowed; normalized to digits
	Email string
	Phone string
}

// CreateSupplierOutput represents the output of supplier creation.
type CreateSupplierOutput struct {
	Supplier *entity.Supplier
}

// CreateSupplierUseCase handles supplier creation.
type CreateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewCreateSupplierUseCase creates a new CreateSupplierUseCase instance.
func NewCreateSupplierUseCase(supplierRepo adapter.SupplierRepository) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute performs the supplier creation.
func (uc *CreateSupplierUseCase) Execute(ctx context.Context, input CreateSupplierInput) (*CreateSupplierOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeCatalogNameRequired,
			"supplier name must not be blank",
			domainerror.ErrCatalogNameRequired,
		)
	}

	taxID := entity.NormalizeTaxID(input.TaxID)
	if taxID != "" && len(taxID) != CNPJLength {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeInvalidTaxID,
			fmt.Sprintf("CNPJ must have %d digits, got %d", CNPJLength, len(taxID)),
			domainerror.ErrInvalidTaxID,
		)
	}

	supplier := entity.NewSupplier(input.Name, taxID, input.Email, input.Phone)

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return &CreateSupplierOutput{
		Supplier: supplier,
	}, nil
}
