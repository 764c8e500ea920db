package valuation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

func linearCategory(usefulLife int, residualPct string) *entity.Category {
	return &entity.Category{
		Name:                    "Informatica",
		DepreciationMethod:      entity.DepreciationMethodLinear,
		UsefulLifeInYears:       &usefulLife,
		ResidualValuePercentage: decimal.RequireFromString(residualPct),
	}
}

func testAsset(purchaseValue string, purchaseDate time.Time) *entity.Asset {
	return &entity.Asset{
		Name:                       "Notebook",
		AssetTag:                   "AT-0001",
		PurchaseDate:               purchaseDate,
		PurchaseValue:              decimal.RequireFromString(purchaseValue),
		PreviouslyDepreciatedValue: decimal.Zero,
		ApplyDepreciationRules:     true,
	}
}

// afterYears returns purchase plus n periods of the mean year length used by
// the valuation, so elapsed periods come out as whole numbers.
func afterYears(purchase time.Time, n int) time.Time {
	return purchase.Add(time.Duration(n) * time.Duration(365.25*24) * time.Hour)
}

func TestCurrentValue_LinearDepreciation(t *testing.T) {
	purchase := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("two elapsed years erode two annual shares", func(t *testing.T) {
		// 1000 purchase, 10% residual: 900 erodes at 180 per year.
		value, err := CurrentValue(testAsset("1000.00", purchase), linearCategory(5, "10"), afterYears(purchase, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("640")) {
			t.Errorf("expected book value 640, got %s", value)
		}
	})

	t.Run("valuation date before purchase yields the full base", func(t *testing.T) {
		value, err := CurrentValue(testAsset("1000.00", purchase), linearCategory(5, "10"), purchase.AddDate(-1, 0, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected book value 1000, got %s", value)
		}
	})

	t.Run("value never drops below the residual floor", func(t *testing.T) {
		value, err := CurrentValue(testAsset("1000.00", purchase), linearCategory(5, "10"), afterYears(purchase, 20))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected book value clamped at 100, got %s", value)
		}
	})

	t.Run("book value is non-increasing over time", func(t *testing.T) {
		asset := testAsset("1000.00", purchase)
		category := linearCategory(5, "10")

		previous := decimal.RequireFromString("1000")
		for months := 1; months <= 90; months += 3 {
			asOf := purchase.AddDate(0, months, 0)
			value, err := CurrentValue(asset, category, asOf)
			if err != nil {
				t.Fatalf("unexpected error at month %d: %v", months, err)
			}
			if value.GreaterThan(previous) {
				t.Fatalf("book value increased at month %d: %s > %s", months, value, previous)
			}
			previous = value
		}
	})
}

func TestCurrentValue_PreviousDepreciation(t *testing.T) {
	purchase := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("previously depreciated value reduces the base", func(t *testing.T) {
		asset := testAsset("1000.00", purchase)
		asset.PreviouslyDepreciatedValue = decimal.RequireFromString("200.00")

		value, err := CurrentValue(asset, linearCategory(5, "10"), purchase)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("800")) {
			t.Errorf("expected book value 800, got %s", value)
		}
	})

	t.Run("residual floor stays relative to the original purchase value", func(t *testing.T) {
		asset := testAsset("1000.00", purchase)
		asset.PreviouslyDepreciatedValue = decimal.RequireFromString("200.00")

		value, err := CurrentValue(asset, linearCategory(5, "10"), afterYears(purchase, 20))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected book value clamped at 100, got %s", value)
		}
	})
}

func TestCurrentValue_FrozenAsset(t *testing.T) {
	purchase := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	asset := testAsset("1000.00", purchase)
	asset.ApplyDepreciationRules = false

	value, err := CurrentValue(asset, linearCategory(5, "10"), afterYears(purchase, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("expected frozen book value 1000, got %s", value)
	}
}

func TestCurrentValue_ExplicitRate(t *testing.T) {
	purchase := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("explicit monthly rate takes precedence over useful life", func(t *testing.T) {
		rateType := entity.DepreciationRateTypeMonthly
		rateValue := decimal.RequireFromString("10")
		usefulLife := 5
		category := &entity.Category{
			Name:                    "Informatica",
			DepreciationMethod:      entity.DepreciationMethodLinear,
			UsefulLifeInYears:       &usefulLife,
			ResidualValuePercentage: decimal.Zero,
			DepreciationRateType:    &rateType,
			DepreciationRateValue:   &rateValue,
		}

		// One mean month elapsed at 10% per month.
		oneMonth := purchase.Add(time.Duration(30.4375 * 24 * float64(time.Hour)))
		value, err := CurrentValue(testAsset("1000.00", purchase), category, oneMonth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("900")) {
			t.Errorf("expected book value 900, got %s", value)
		}
	})
}

func TestCurrentValue_Errors(t *testing.T) {
	purchase := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("category without rate parameters", func(t *testing.T) {
		category := &entity.Category{
			Name:                    "Sem Regras",
			DepreciationMethod:      entity.DepreciationMethodLinear,
			ResidualValuePercentage: decimal.Zero,
		}

		_, err := CurrentValue(testAsset("1000.00", purchase), category, afterYears(purchase, 1))
		var valErr *domainerror.ValuationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected a ValuationError, got %v", err)
		}
		if valErr.Code != domainerror.ErrCodeDepreciationRateNotConfigured {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDepreciationRateNotConfigured, valErr.Code)
		}
	})

	t.Run("reducing balance has no computation path", func(t *testing.T) {
		usefulLife := 5
		category := &entity.Category{
			Name:                    "Veiculos",
			DepreciationMethod:      entity.DepreciationMethodReducingBalance,
			UsefulLifeInYears:       &usefulLife,
			ResidualValuePercentage: decimal.Zero,
		}

		_, err := CurrentValue(testAsset("1000.00", purchase), category, afterYears(purchase, 1))
		var valErr *domainerror.ValuationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected a ValuationError, got %v", err)
		}
		if valErr.Code != domainerror.ErrCodeUnsupportedMethod {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnsupportedMethod, valErr.Code)
		}
	})

	t.Run("frozen asset skips rule validation entirely", func(t *testing.T) {
		asset := testAsset("1000.00", purchase)
		asset.ApplyDepreciationRules = false

		category := &entity.Category{
			Name:               "Sem Regras",
			DepreciationMethod: entity.DepreciationMethodReducingBalance,
		}

		value, err := CurrentValue(asset, category, afterYears(purchase, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected frozen book value 1000, got %s", value)
		}
	})
}
