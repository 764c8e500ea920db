// Package error defines domain-specific errors for the Asset Registry application.
package error

import "errors"

// Invoice-import domain errors. These are batch-level preconditions: they are
// raised before any persistence happens and reject the entire import attempt.
var (
	// ErrEmptySelection is returned when no invoice units are selected for import.
	ErrEmptySelection = errors.New("no invoice units selected for import")

	// ErrSelectionOutOfRange is returned when a selected quantity is negative or
	// exceeds the invoice line quantity.
	ErrSelectionOutOfRange = errors.New("selected quantity out of range for invoice line")

	// ErrInvoiceSupplierNotFound is returned when the invoice's supplier tax id
	// does not match any registered supplier.
	ErrInvoiceSupplierNotFound = errors.New("invoice supplier not registered")

	// ErrImportRowInvalid is returned when a per-asset metadata row fails validation.
	ErrImportRowInvalid = errors.New("import row metadata invalid")

	// ErrInvalidFreightScope is returned when the freight scope is not a known variant.
	ErrInvalidFreightScope = errors.New("invalid freight allocation scope")

	// ErrInvoiceNotParsable is returned when the input cannot be decoded as NF-e XML
	// and no extraction fallback is available.
	ErrInvoiceNotParsable = errors.New("invoice could not be parsed")

	// ErrExtractionUnavailable is returned when the AI extraction service is not configured.
	ErrExtractionUnavailable = errors.New("invoice extraction service unavailable")

	// ErrExtractionInvalid is returned when the extraction output fails schema validation.
	ErrExtractionInvalid = errors.New("extracted invoice data failed validation")

	// ErrRateLimited is returned when extraction requests exceed the rate limit.
	ErrRateLimited = errors.New("too many requests")
)

// ImportErrorCode defines error codes for invoice-import errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptySelection          ImportErrorCode = "IMP-010001"
	ErrCodeSelectionOutOfRange     ImportErrorCode = "IMP-010002"
	ErrCodeInvoiceSupplierNotFound ImportErrorCode = "IMP-010003"
	ErrCodeImportRowInvalid        ImportErrorCode = "IMP-010004"
	ErrCodeInvalidFreightScope     ImportErrorCode = "IMP-010005"

	// External service errors (02XXXX)
	ErrCodeInvoiceNotParsable     ImportErrorCode = "IMP-020001"
	ErrCodeExtractionUnavailable  ImportErrorCode = "IMP-020002"
	ErrCodeExtractionInvalid      ImportErrorCode = "IMP-020003"
	ErrCodeRateLimited            ImportErrorCode = "IMP-020004"
	ErrCodeImportPersistenceError ImportErrorCode = "IMP-020005"
)

// ImportError represents an invoice-import error with enough context for the
// caller to show an actionable message: the failing row (when per-row) and the
// supplier identity extracted from the invoice (when supplier resolution fails).
type ImportError struct {
	Code          ImportErrorCode
	Message       string
	Row           int // Zero-based row index; -1 when the error is not row-scoped
	SupplierName  string
	SupplierTaxID string
	Err           error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Row:     -1,
		Err:     err,
	}
}

// NewImportRowError creates a new ImportError scoped to a single metadata row.
func NewImportRowError(code ImportErrorCode, message string, row int, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Row:     row,
		Err:     err,
	}
}
