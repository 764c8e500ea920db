// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// InvoiceParser decodes native NF-e XML into an InvoiceDocument.
type InvoiceParser interface {
	// Parse decodes raw NF-e XML. It returns a domain error when the payload
	// is not recognizable NF-e XML, so callers can fall back to AI extraction.
	Parse(raw []byte) (*entity.InvoiceDocument, error)
}

// InvoiceExtractionService extracts structured invoice data from inputs the
// native XML parser cannot handle (DANFE text, OCR dumps).
type InvoiceExtractionService interface {
	// IsAvailable checks if the extraction service is properly configured.
	IsAvailable() bool

	// Extract produces a normalized InvoiceDocument from raw invoice content.
	Extract(ctx context.Context, raw []byte) (*entity.InvoiceDocument, error)
}

// ExtractionCache stores extraction results keyed by input digest, so
// re-uploading the same invoice is idempotent and skips the extraction call.
type ExtractionCache interface {
	// Get returns the cached document for the key, or found=false on a miss.
	Get(ctx context.Context, key string) (doc *entity.InvoiceDocument, found bool, err error)

	// Set stores the document under the key.
	Set(ctx context.Context, key string, doc *entity.InvoiceDocument) error
}
