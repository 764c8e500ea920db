package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
	"github.com/asset-registry/backend/internal/domain/importplan"
)

// PlanImportInput represents the input for import planning.
type PlanImportInput struct {
	Document           *entity.InvoiceDocument
	SelectedQuantities map[int]int // Line index -> units to import; partial selection allowed
	AllocateFreight    bool
	FreightScope       importplan.FreightScope
}

// PlannedTask is one import preparation task: a single unit of a single
// invoice line, priced at unit value plus its allocated freight share.
type PlannedTask struct {
	LineIndex         int
	SourceDescription string
	PurchaseValue     decimal.Decimal
	InvoiceNumber     string
	PurchaseDate      time.Time
}

// PlanImportOutput represents the output of import planning.
type PlanImportOutput struct {
	Tasks          []PlannedTask
	PerUnitFreight []decimal.Decimal // Per line, indexed like Document.Products
	IgnoredUnits   int               // Units on the invoice left out of this import
}

// PlanImportUseCase expands the user's line selection into per-unit import
// tasks. It is pure planning: nothing is persisted and re-running with the
// same inputs yields identical tasks.
type PlanImportUseCase struct{}

// NewPlanImportUseCase creates a new PlanImportUseCase instance.
func NewPlanImportUseCase() *PlanImportUseCase {
	return &PlanImportUseCase{}
}

// Execute performs the planning.
func (uc *PlanImportUseCase) Execute(input PlanImportInput) (*PlanImportOutput, error) {
	if input.AllocateFreight && !input.FreightScope.IsValid() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvalidFreightScope,
			"freight scope must be 'all_invoice_items' or 'imported_items_only'",
			domainerror.ErrInvalidFreightScope,
		)
	}

	lines := input.Document.Products

	var perUnitFreight []decimal.Decimal
	if input.AllocateFreight {
		perUnitFreight = importplan.AllocateFreight(
			input.Document.FreightValue,
			lines,
			input.SelectedQuantities,
			input.FreightScope,
		)
	} else {
		perUnitFreight = make([]decimal.Decimal, len(lines))
		for i := range perUnitFreight {
			perUnitFreight[i] = decimal.Zero
		}
	}

	tasks, err := importplan.Plan(lines, input.SelectedQuantities, perUnitFreight)
	if err != nil {
		return nil, err
	}

	planned := make([]PlannedTask, 0, len(tasks))
	for _, t := range tasks {
		planned = append(planned, PlannedTask{
			LineIndex:         t.LineIndex,
			SourceDescription: t.SourceDescription,
			PurchaseValue:     t.PurchaseValue,
			InvoiceNumber:     input.Document.InvoiceNumber,
			PurchaseDate:      input.Document.EmissionDate,
		})
	}

	ignored := 0
	for i, line := range lines {
		ignored += line.Quantity - input.SelectedQuantities[i]
	}

	return &PlanImportOutput{
		Tasks:          planned,
		PerUnitFreight: perUnitFreight,
		IgnoredUnits:   ignored,
	}, nil
}
