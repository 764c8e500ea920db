// Package valuation computes asset book values from category depreciation rules.
//
// Book value is a pure function of the asset's stored facts plus the valuation
// date: it is computed on every read and never stored, so there is no stale
// derived value to invalidate.
package valuation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// Mean calendar period lengths in days. Using fractional elapsed periods keeps
// the book value continuous day to day instead of stepping once per period.
var (
	daysPerYear  = decimal.NewFromFloat(365.25)
	daysPerMonth = decimal.NewFromFloat(30.4375)
	hundred      = decimal.NewFromInt(100)
	one          = decimal.NewFromInt(1)
)

// CurrentValue computes the asset's book value at asOf under the category's
// depreciation rules. It is deterministic and has no side effects.
//
// The result always lies in [residual floor, depreciable base]: depreciation
// never pushes the value below the residual floor, and a valuation date before
// the purchase date yields the undepreciated base.
func CurrentValue(asset *entity.Asset, category *entity.Category, asOf time.Time) (decimal.Decimal, error) {
	base := asset.PurchaseValue.Sub(asset.PreviouslyDepreciatedValue)
	if base.IsNegative() {
		// Callers reject this state at edit time; clamp rather than go negative.
		base = decimal.Zero
	}

	if !asset.ApplyDepreciationRules {
		// Inventory-only asset: value frozen forever.
		return base, nil
	}

	if category.DepreciationMethod != entity.DepreciationMethodLinear {
		return decimal.Zero, domainerror.NewValuationError(
			domainerror.ErrCodeUnsupportedMethod,
			"depreciation method \""+string(category.DepreciationMethod)+"\" has no computation path",
			category.Name,
			domainerror.ErrUnsupportedDepreciationMethod,
		)
	}

	rate, periodDays, err := effectiveRate(category)
	if err != nil {
		return decimal.Zero, err
	}

	residualFloor := asset.PurchaseValue.Mul(category.ResidualValuePercentage).Div(hundred)
	depreciableAmount := base.Sub(residualFloor)
	if depreciableAmount.IsNegative() {
		depreciableAmount = decimal.Zero
	}

	periods := elapsedPeriods(asset.PurchaseDate, asOf, periodDays)

	// Depreciated fraction of the erodible amount, capped at 1 so the value
	// never drops below the residual floor.
	fraction := rate.Mul(periods).Div(hundred)
	if fraction.GreaterThan(one) {
		fraction = one
	}

	elapsedDepreciation := depreciableAmount.Mul(fraction)

	return base.Sub(elapsedDepreciation), nil
}

// effectiveRate resolves the periodic percentage rate and the period length.
// An explicit rate takes precedence over the life-derived straight-line rate.
func effectiveRate(category *entity.Category) (rate, periodDays decimal.Decimal, err error) {
	if category.DepreciationRateValue != nil {
		periodDays = daysPerYear
		if category.DepreciationRateType != nil && *category.DepreciationRateType == entity.DepreciationRateTypeMonthly {
			periodDays = daysPerMonth
		}
		return *category.DepreciationRateValue, periodDays, nil
	}

	if category.UsefulLifeInYears != nil && *category.UsefulLifeInYears >= 1 {
		rate = hundred.Div(decimal.NewFromInt(int64(*category.UsefulLifeInYears)))
		return rate, daysPerYear, nil
	}

	return decimal.Zero, decimal.Zero, domainerror.NewValuationError(
		domainerror.ErrCodeDepreciationRateNotConfigured,
		"cannot derive a depreciation rate",
		category.Name,
		domainerror.ErrDepreciationRateNotConfigured,
	)
}

// elapsedPeriods returns the fractional number of periods between purchase and
// asOf. Valuation dates before the purchase date count as zero periods.
func elapsedPeriods(purchaseDate, asOf time.Time, periodDays decimal.Decimal) decimal.Decimal {
	if !asOf.After(purchaseDate) {
		return decimal.Zero
	}

	days := decimal.NewFromFloat(asOf.Sub(purchaseDate).Hours() / 24)
	return days.Div(periodDays)
}
