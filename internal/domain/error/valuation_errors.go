// Package error defines domain-specific errors for the Asset Registry application.
package error

import "errors"

// Valuation domain errors. These are per-asset: a caller rendering many assets
// shows the affected one as unvaluable and continues, it never aborts a listing.
var (
	// ErrDepreciationRateNotConfigured is returned when a category has neither a
	// useful life nor an explicit depreciation rate.
	ErrDepreciationRateNotConfigured = errors.New("category has no useful life or depreciation rate configured")

	// ErrUnsupportedDepreciationMethod is returned when the category requests a
	// depreciation method with no computation path.
	ErrUnsupportedDepreciationMethod = errors.New("depreciation method is not supported")
)

// ValuationErrorCode defines error codes for valuation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValuationErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeDepreciationRateNotConfigured ValuationErrorCode = "VAL-010001"
	ErrCodeUnsupportedMethod             ValuationErrorCode = "VAL-010002"
)

// ValuationError represents a valuation error with code and the name of the
// category whose configuration caused it.
type ValuationError struct {
	Code         ValuationErrorCode
	Message      string
	CategoryName string
	Err          error
}

// Error implements the error interface.
func (e *ValuationError) Error() string {
	msg := e.Message
	if e.CategoryName != "" {
		msg += " (category: " + e.CategoryName + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ValuationError) Unwrap() error {
	return e.Err
}

// NewValuationError creates a new ValuationError for the given category.
func NewValuationError(code ValuationErrorCode, message, categoryName string, err error) *ValuationError {
	return &ValuationError{
		Code:         code,
		Message:      message,
		CategoryName: categoryName,
		Err:          err,
	}
}
