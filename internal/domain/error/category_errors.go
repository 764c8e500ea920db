// Package error defines domain-specific errors for the Asset Registry application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryInUse is returned when deleting a category still referenced by assets.
	ErrCategoryInUse = errors.New("category is referenced by existing assets")

	// ErrInvalidDepreciationMethod is returned when the depreciation method is not a known variant.
	ErrInvalidDepreciationMethod = errors.New("invalid depreciation method")

	// ErrInvalidUsefulLife is returned when the useful life is below one year.
	ErrInvalidUsefulLife = errors.New("useful life must be at least one year")

	// ErrInvalidResidualPercentage is returned when the residual percentage is outside 0-100.
	ErrInvalidResidualPercentage = errors.New("residual value percentage must be between 0 and 100")

	// ErrInvalidRateType is returned when the depreciation rate type is not annual or monthly.
	ErrInvalidRateType = errors.New("invalid depreciation rate type")

	// ErrInvalidRateValue is returned when the explicit depreciation rate is not positive.
	ErrInvalidRateValue = errors.New("depreciation rate value must be positive")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound          CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists        CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryInUse             CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidDepreciationMethod CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidUsefulLife         CategoryErrorCode = "CAT-010005"
	ErrCodeInvalidResidualPercentage CategoryErrorCode = "CAT-010006"
	ErrCodeInvalidRateType           CategoryErrorCode = "CAT-010007"
	ErrCodeInvalidRateValue          CategoryErrorCode = "CAT-010008"
	ErrCodeMissingCategoryName       CategoryErrorCode = "CAT-010009"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
