// Package importer contains the invoice-import pipeline use cases: extraction,
// planning and reconciliation.
package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// ExtractInvoiceInput represents the input for invoice extraction.
type ExtractInvoiceInput struct {
	Raw []byte // Invoice content: NF-e XML, or free text for the AI fallback
}

// ExtractInvoiceOutput represents the output of invoice extraction.
type ExtractInvoiceOutput struct {
	Document   *entity.InvoiceDocument
	SupplierID *uuid.UUID // Registered supplier matching the invoice CNPJ, nil when unmatched
	FromCache  bool
}

// ExtractInvoiceUseCase turns raw invoice content into a normalized
// InvoiceDocument. Native NF-e XML is decoded directly; anything else falls
// back to the AI extraction service. Results are cached by content digest so
// re-uploading the same invoice never re-extracts.
type ExtractInvoiceUseCase struct {
	parser       adapter.InvoiceParser
	extraction   adapter.InvoiceExtractionService
	cache        adapter.ExtractionCache
	supplierRepo adapter.SupplierRepository
}

// NewExtractInvoiceUseCase creates a new ExtractInvoiceUseCase instance.
// The cache may be nil, in which case every call extracts.
func NewExtractInvoiceUseCase(
	parser adapter.InvoiceParser,
	extraction adapter.InvoiceExtractionService,
	cache adapter.ExtractionCache,
	supplierRepo adapter.SupplierRepository,
) *ExtractInvoiceUseCase {
	return &ExtractInvoiceUseCase{
		parser:       parser,
		extraction:   extraction,
		cache:        cache,
		supplierRepo: supplierRepo,
	}
}

// Execute performs the extraction.
func (uc *ExtractInvoiceUseCase) Execute(ctx context.Context, input ExtractInvoiceInput) (*ExtractInvoiceOutput, error) {
	if len(input.Raw) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvoiceNotParsable,
			"invoice content is empty",
			domainerror.ErrInvoiceNotParsable,
		)
	}

	digest := sha256.Sum256(input.Raw)
	key := hex.EncodeToString(digest[:])

	if uc.cache != nil {
		doc, found, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Extraction cache lookup failed, proceeding without cache", "error", err)
		} else if found {
			supplierID, err := uc.resolveSupplier(ctx, doc.SupplierTaxID)
			if err != nil {
				return nil, err
			}
			return &ExtractInvoiceOutput{
				Document:   doc,
				SupplierID: supplierID,
				FromCache:  true,
			}, nil
		}
	}

	doc, err := uc.extract(ctx, input.Raw)
	if err != nil {
		return nil, err
	}

	doc.SupplierTaxID = entity.NormalizeTaxID(doc.SupplierTaxID)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, doc); err != nil {
			slog.Warn("Failed to cache extraction result", "error", err)
		}
	}

	supplierID, err := uc.resolveSupplier(ctx, doc.SupplierTaxID)
	if err != nil {
		return nil, err
	}

	return &ExtractInvoiceOutput{
		Document:   doc,
		SupplierID: supplierID,
	}, nil
}

// extract tries the native XML path first, then the AI fallback.
func (uc *ExtractInvoiceUseCase) extract(ctx context.Context, raw []byte) (*entity.InvoiceDocument, error) {
	doc, parseErr := uc.parser.Parse(raw)
	if parseErr == nil {
		return doc, nil
	}

	if uc.extraction == nil || !uc.extraction.IsAvailable() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvoiceNotParsable,
			"content is not NF-e XML and no extraction fallback is configured",
			errors.Join(domainerror.ErrInvoiceNotParsable, parseErr),
		)
	}

	slog.Info("Invoice is not native NF-e XML, using AI extraction fallback")

	doc, err := uc.extraction.Extract(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}
	return doc, nil
}

// resolveSupplier matches the invoice CNPJ against registered suppliers.
// No match is not an error at extraction time: the caller shows the supplier
// creation prompt and reconciliation enforces the match later.
func (uc *ExtractInvoiceUseCase) resolveSupplier(ctx context.Context, taxID string) (*uuid.UUID, error) {
	if taxID == "" {
		return nil, nil
	}

	supplier, err := uc.supplierRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSupplierNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve supplier by tax id: %w", err)
	}

	return &supplier.ID, nil
}
