// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepreciationMethod represents the depreciation algorithm applied to a category.
type DepreciationMethod string

const (
	// DepreciationMethodLinear is straight-line depreciation down to the residual floor.
	DepreciationMethodLinear DepreciationMethod = "linear"
	// DepreciationMethodReducingBalance is declared as a valid option but has
	// no computation path; valuation reports it as unsupported.
	DepreciationMethodReducingBalance DepreciationMethod = "reducing_balance"
)

// DepreciationRateType represents the period unit of an explicit depreciation rate.
type DepreciationRateType string

const (
	DepreciationRateTypeAnnual  DepreciationRateType = "annual"
	DepreciationRateTypeMonthly DepreciationRateType = "monthly"
)

// Category represents an asset category carrying depreciation configuration.
type Category struct {
	ID                      uuid.UUID
	Name                    string
	DepreciationMethod      DepreciationMethod
	UsefulLifeInYears       *int // Required for the linear method unless an explicit rate is set
	ResidualValuePercentage decimal.Decimal
	DepreciationRateType    *DepreciationRateType
	DepreciationRateValue   *decimal.Decimal // Percent per period; takes precedence over the life-derived rate
	CreatedAt               time.Time
	UpdatedAt               time.Time
	DeletedAt               *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(
	name string,
	method DepreciationMethod,
	usefulLifeInYears *int,
	residualValuePercentage decimal.Decimal,
	rateType *DepreciationRateType,
	rateValue *decimal.Decimal,
) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:                      uuid.New(),
		Name:                    name,
		DepreciationMethod:      method,
		UsefulLifeInYears:       usefulLifeInYears,
		ResidualValuePercentage: residualValuePercentage,
		DepreciationRateType:    rateType,
		DepreciationRateValue:   rateValue,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// CategoryWithUsage represents a category with the number of assets referencing it.
type CategoryWithUsage struct {
	Category   *Category
	AssetCount int64
}
