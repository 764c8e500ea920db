// Package importplan contains the pure planning logic of the invoice import
// wizard: freight allocation across invoice lines and expansion of selected
// line quantities into individual import tasks.
package importplan

import (
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// FreightScope selects the denominator used to proportion freight.
type FreightScope string

const (
	// FreightScopeAllItems proportions freight over every line on the invoice,
	// including lines the user did not select for import. Unselected lines keep
	// their (unused) share, so imported assets absorb only part of the freight.
	FreightScopeAllItems FreightScope = "all_invoice_items"

	// FreightScopeImportedOnly proportions freight over selected lines only, so
	// the freight total is fully absorbed by the imported assets.
	FreightScopeImportedOnly FreightScope = "imported_items_only"
)

// IsValid reports whether the scope is a known variant.
func (s FreightScope) IsValid() bool {
	return s == FreightScopeAllItems || s == FreightScopeImportedOnly
}

// AllocateFreight distributes freightTotal across invoice lines proportionally
// to each line's own total value, and divides each line's share by its unit
// count. The returned slice has one per-unit freight amount per line, indexed
// like lines.
//
// The line's TotalValue is authoritative for proportioning; it is never
// recomputed from quantity and unit value. Lines with zero quantity or zero
// total value get a zero share. The allocator holds no state: identical inputs
// always produce identical shares.
func AllocateFreight(freightTotal decimal.Decimal, lines []entity.InvoiceProduct, selected map[int]int, scope FreightScope) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(lines))
	for i := range shares {
		shares[i] = decimal.Zero
	}

	if freightTotal.IsZero() || freightTotal.IsNegative() {
		return shares
	}

	denominator := decimal.Zero
	for i, line := range lines {
		if scope == FreightScopeImportedOnly && selected[i] <= 0 {
			continue
		}
		denominator = denominator.Add(line.TotalValue)
	}

	if denominator.IsZero() {
		return shares
	}

	for i, line := range lines {
		if line.Quantity == 0 || line.TotalValue.IsZero() {
			continue
		}
		if scope == FreightScopeImportedOnly && selected[i] <= 0 {
			continue
		}
		lineShare := line.TotalValue.Div(denominator).Mul(freightTotal)
		shares[i] = lineShare.Div(decimal.NewFromInt(int64(line.Quantity)))
	}

	return shares
}
