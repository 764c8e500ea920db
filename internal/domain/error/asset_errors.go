// Package error defines domain-specific errors for the Asset Registry application.
package error

import "errors"

// Asset domain errors.
var (
	// ErrAssetNotFound is returned when an asset is not found in the system.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetNameRequired is returned when the asset name is blank.
	ErrAssetNameRequired = errors.New("asset name is required")

	// ErrAssetTagRequired is returned when the asset tag is blank.
	ErrAssetTagRequired = errors.New("asset tag is required")

	// ErrNegativePurchaseValue is returned when the purchase value is below zero.
	ErrNegativePurchaseValue = errors.New("purchase value cannot be negative")

	// ErrNegativeDepreciatedValue is returned when the previously depreciated value is below zero.
	ErrNegativeDepreciatedValue = errors.New("previously depreciated value cannot be negative")

	// ErrDepreciatedValueExceedsPurchase is returned when the previously depreciated
	// value is greater than the purchase value.
	ErrDepreciatedValueExceedsPurchase = errors.New("previously depreciated value exceeds purchase value")

	// ErrSupplierNotFound is returned when the referenced supplier does not exist.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrLocationNotFound is returned when the referenced location does not exist.
	ErrLocationNotFound = errors.New("location not found")

	// ErrAssetModelNotFound is returned when the referenced asset model does not exist.
	ErrAssetModelNotFound = errors.New("asset model not found")

	// ErrSupplierInUse is returned when deleting a supplier still referenced by assets.
	ErrSupplierInUse = errors.New("supplier is referenced by existing assets")

	// ErrLocationInUse is returned when deleting a location still referenced by assets.
	ErrLocationInUse = errors.New("location is referenced by existing assets")

	// ErrAssetModelInUse is returned when deleting an asset model still referenced by assets.
	ErrAssetModelInUse = errors.New("asset model is referenced by existing assets")

	// ErrCatalogNameRequired is returned when a catalog entry (supplier, location,
	// asset model) is created with a blank name.
	ErrCatalogNameRequired = errors.New("name is required")

	// ErrInvalidTaxID is returned when a supplier tax id does not have the CNPJ digit count.
	ErrInvalidTaxID = errors.New("invalid CNPJ")
)

// AssetErrorCode defines error codes for asset errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAssetNotFound                   AssetErrorCode = "AST-010001"
	ErrCodeAssetNameRequired               AssetErrorCode = "AST-010002"
	ErrCodeAssetTagRequired                AssetErrorCode = "AST-010003"
	ErrCodeNegativePurchaseValue           AssetErrorCode = "AST-010004"
	ErrCodeNegativeDepreciatedValue        AssetErrorCode = "AST-010005"
	ErrCodeDepreciatedValueExceedsPurchase AssetErrorCode = "AST-010006"
	ErrCodeSupplierNotFound                AssetErrorCode = "AST-010007"
	ErrCodeLocationNotFound                AssetErrorCode = "AST-010008"
	ErrCodeAssetModelNotFound              AssetErrorCode = "AST-010009"
	ErrCodeSupplierInUse                   AssetErrorCode = "AST-010010"
	ErrCodeLocationInUse                   AssetErrorCode = "AST-010011"
	ErrCodeAssetModelInUse                 AssetErrorCode = "AST-010012"
	ErrCodeCatalogNameRequired             AssetErrorCode = "AST-010013"
	ErrCodeInvalidTaxID                    AssetErrorCode = "AST-010014"
)

// AssetError represents an asset error with code and message.
type AssetError struct {
	Code    AssetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssetError) Unwrap() error {
	return e.Err
}

// NewAssetError creates a new AssetError with the given code and message.
func NewAssetError(code AssetErrorCode, message string, err error) *AssetError {
	return &AssetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
