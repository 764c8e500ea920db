package importplan

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
)

func invoiceLine(description string, quantity int, unitValue, totalValue string) entity.InvoiceProduct {
	return entity.InvoiceProduct{
		Description: description,
		Quantity:    quantity,
		UnitValue:   decimal.RequireFromString(unitValue),
		TotalValue:  decimal.RequireFromString(totalValue),
	}
}

func TestFreightScope_IsValid(t *testing.T) {
	if !FreightScopeAllItems.IsValid() {
		t.Error("expected all_invoice_items to be valid")
	}
	if !FreightScopeImportedOnly.IsValid() {
		t.Error("expected imported_items_only to be valid")
	}
	if FreightScope("selected").IsValid() {
		t.Error("expected unknown scope to be invalid")
	}
}

func TestAllocateFreight(t *testing.T) {
	lines := []entity.InvoiceProduct{
		invoiceLine("Cabo de rede", 2, "150.00", "300.00"),
		invoiceLine("Switch 24p", 7, "100.00", "700.00"),
	}
	freight := decimal.RequireFromString("50.00")

	t.Run("proportions over every invoice line", func(t *testing.T) {
		shares := AllocateFreight(freight, lines, map[int]int{0: 2, 1: 7}, FreightScopeAllItems)

		if len(shares) != 2 {
			t.Fatalf("expected one share per line, got %d", len(shares))
		}
		// Line 0 carries 300/1000 of the freight, split over 2 units.
		if !shares[0].Equal(decimal.RequireFromString("7.5")) {
			t.Errorf("expected per-unit share 7.5 for line 0, got %s", shares[0])
		}
		if !shares[1].Equal(decimal.RequireFromString("5")) {
			t.Errorf("expected per-unit share 5 for line 1, got %s", shares[1])
		}
	})

	t.Run("per-unit shares reassemble into the freight total", func(t *testing.T) {
		shares := AllocateFreight(freight, lines, map[int]int{0: 2, 1: 7}, FreightScopeAllItems)

		total := decimal.Zero
		for i, line := range lines {
			total = total.Add(shares[i].Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		if !total.Equal(freight) {
			t.Errorf("expected shares to sum to %s, got %s", freight, total)
		}
	})

	t.Run("unselected lines keep their unused share under all_invoice_items", func(t *testing.T) {
		shares := AllocateFreight(freight, lines, map[int]int{0: 2}, FreightScopeAllItems)

		if !shares[0].Equal(decimal.RequireFromString("7.5")) {
			t.Errorf("expected per-unit share 7.5 for line 0, got %s", shares[0])
		}
		if !shares[1].Equal(decimal.RequireFromString("5")) {
			t.Errorf("expected line 1 to keep its share, got %s", shares[1])
		}
	})

	t.Run("imported_items_only concentrates freight on the selection", func(t *testing.T) {
		shares := AllocateFreight(freight, lines, map[int]int{0: 2}, FreightScopeImportedOnly)

		// Line 0 is the whole denominator: 50 over 2 units.
		if !shares[0].Equal(decimal.RequireFromString("25")) {
			t.Errorf("expected per-unit share 25 for line 0, got %s", shares[0])
		}
		if !shares[1].IsZero() {
			t.Errorf("expected zero share for unselected line 1, got %s", shares[1])
		}
	})

	t.Run("zero freight allocates nothing", func(t *testing.T) {
		shares := AllocateFreight(decimal.Zero, lines, map[int]int{0: 2, 1: 7}, FreightScopeAllItems)

		for i, share := range shares {
			if !share.IsZero() {
				t.Errorf("expected zero share for line %d, got %s", i, share)
			}
		}
	})

	t.Run("negative freight allocates nothing", func(t *testing.T) {
		shares := AllocateFreight(decimal.RequireFromString("-10"), lines, map[int]int{0: 2}, FreightScopeAllItems)

		for i, share := range shares {
			if !share.IsZero() {
				t.Errorf("expected zero share for line %d, got %s", i, share)
			}
		}
	})

	t.Run("lines with zero quantity or zero value get no share", func(t *testing.T) {
		withFreebie := append(lines, invoiceLine("Brinde", 0, "0.00", "0.00"))
		shares := AllocateFreight(freight, withFreebie, map[int]int{0: 2, 1: 7}, FreightScopeAllItems)

		if !shares[2].IsZero() {
			t.Errorf("expected zero share for zero-quantity line, got %s", shares[2])
		}
	})

	t.Run("all-zero denominator yields zero shares", func(t *testing.T) {
		zeroLines := []entity.InvoiceProduct{invoiceLine("Amostra", 1, "0.00", "0.00")}
		shares := AllocateFreight(freight, zeroLines, map[int]int{0: 1}, FreightScopeAllItems)

		if !shares[0].IsZero() {
			t.Errorf("expected zero share, got %s", shares[0])
		}
	})

	t.Run("identical inputs produce identical shares", func(t *testing.T) {
		first := AllocateFreight(freight, lines, map[int]int{0: 1, 1: 3}, FreightScopeImportedOnly)
		second := AllocateFreight(freight, lines, map[int]int{0: 1, 1: 3}, FreightScopeImportedOnly)

		for i := range first {
			if !first[i].Equal(second[i]) {
				t.Errorf("share %d differs between runs: %s vs %s", i, first[i], second[i])
			}
		}
	})
}
