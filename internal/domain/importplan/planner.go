package importplan

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// Task is one unit of one invoice line, expanded for individual per-asset
// metadata entry. Tasks are transient: they exist only during an import
// wizard session and are never persisted.
type Task struct {
	LineIndex         int
	SourceDescription string
	PurchaseValue     decimal.Decimal // Unit value plus the unit's allocated freight share
}

// Plan expands the selected quantities of each invoice line into import tasks.
//
// Partial selection is first-class: a line with quantity 10 and 3 selected
// produces exactly 3 tasks, leaving 7 units ignored. Selections outside
// [0, line quantity] are rejected rather than clamped; clamping belongs at the
// UI edge, and a silently mis-expanded batch is worse than an error. Task
// order follows invoice line order; units of one line are interchangeable.
func Plan(lines []entity.InvoiceProduct, selected map[int]int, perUnitFreight []decimal.Decimal) ([]Task, error) {
	for idx, qty := range selected {
		if idx < 0 || idx >= len(lines) {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeSelectionOutOfRange,
				fmt.Sprintf("selection references line %d but the invoice has %d lines", idx, len(lines)),
				domainerror.ErrSelectionOutOfRange,
			)
		}
		if qty < 0 || qty > lines[idx].Quantity {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeSelectionOutOfRange,
				fmt.Sprintf("selected quantity %d for line %d must be between 0 and %d", qty, idx, lines[idx].Quantity),
				domainerror.ErrSelectionOutOfRange,
			)
		}
	}

	var tasks []Task
	for i, line := range lines {
		qty := selected[i]
		if qty == 0 {
			continue
		}

		unitCost := line.UnitValue
		if perUnitFreight != nil && i < len(perUnitFreight) {
			unitCost = unitCost.Add(perUnitFreight[i])
		}

		for u := 0; u < qty; u++ {
			tasks = append(tasks, Task{
				LineIndex:         i,
				SourceDescription: line.Description,
				PurchaseValue:     unitCost,
			})
		}
	}

	if len(tasks) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptySelection,
			"no invoice units selected for import",
			domainerror.ErrEmptySelection,
		)
	}

	return tasks, nil
}
