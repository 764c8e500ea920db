package importplan

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

func TestPlan(t *testing.T) {
	lines := []entity.InvoiceProduct{
		invoiceLine("Notebook Latitude 5440", 2, "4500.00", "9000.00"),
		invoiceLine("Monitor 24 Pol", 3, "900.00", "2700.00"),
	}

	t.Run("expands each selected unit into its own task", func(t *testing.T) {
		tasks, err := Plan(lines, map[int]int{0: 2, 1: 3}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 5 {
			t.Fatalf("expected 5 tasks, got %d", len(tasks))
		}
		for i, task := range tasks[:2] {
			if task.LineIndex != 0 {
				t.Errorf("task %d: expected line index 0, got %d", i, task.LineIndex)
			}
			if task.SourceDescription != "Notebook Latitude 5440" {
				t.Errorf("task %d: unexpected description %q", i, task.SourceDescription)
			}
			if !task.PurchaseValue.Equal(decimal.RequireFromString("4500.00")) {
				t.Errorf("task %d: expected purchase value 4500.00, got %s", i, task.PurchaseValue)
			}
		}
		for i, task := range tasks[2:] {
			if task.LineIndex != 1 {
				t.Errorf("task %d: expected line index 1, got %d", i+2, task.LineIndex)
			}
		}
	})

	t.Run("partial selection leaves the rest of the line out", func(t *testing.T) {
		tasks, err := Plan(lines, map[int]int{1: 1}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
		if tasks[0].SourceDescription != "Monitor 24 Pol" {
			t.Errorf("unexpected description %q", tasks[0].SourceDescription)
		}
	})

	t.Run("per-unit freight is folded into the task price", func(t *testing.T) {
		freight := []decimal.Decimal{decimal.RequireFromString("7.50"), decimal.RequireFromString("5.00")}
		tasks, err := Plan(lines, map[int]int{0: 1, 1: 1}, freight)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tasks[0].PurchaseValue.Equal(decimal.RequireFromString("4507.50")) {
			t.Errorf("expected purchase value 4507.50, got %s", tasks[0].PurchaseValue)
		}
		if !tasks[1].PurchaseValue.Equal(decimal.RequireFromString("905.00")) {
			t.Errorf("expected purchase value 905.00, got %s", tasks[1].PurchaseValue)
		}
	})

	t.Run("rejects a selection index outside the invoice", func(t *testing.T) {
		_, err := Plan(lines, map[int]int{4: 1}, nil)
		assertImportErrorCode(t, err, domainerror.ErrCodeSelectionOutOfRange)
	})

	t.Run("rejects selecting more units than the line has", func(t *testing.T) {
		_, err := Plan(lines, map[int]int{0: 3}, nil)
		assertImportErrorCode(t, err, domainerror.ErrCodeSelectionOutOfRange)
	})

	t.Run("rejects a negative selection", func(t *testing.T) {
		_, err := Plan(lines, map[int]int{0: -1}, nil)
		assertImportErrorCode(t, err, domainerror.ErrCodeSelectionOutOfRange)
	})

	t.Run("rejects an empty selection", func(t *testing.T) {
		_, err := Plan(lines, map[int]int{}, nil)
		assertImportErrorCode(t, err, domainerror.ErrCodeEmptySelection)
	})

	t.Run("rejects an all-zero selection", func(t *testing.T) {
		_, err := Plan(lines, map[int]int{0: 0, 1: 0}, nil)
		assertImportErrorCode(t, err, domainerror.ErrCodeEmptySelection)
	})
}

func assertImportErrorCode(t *testing.T, err error, code domainerror.ImportErrorCode) {
	t.Helper()

	var importErr *domainerror.ImportError
	if !errors.As(err, &importErr) {
		t.Fatalf("expected an ImportError, got %v", err)
	}
	if importErr.Code != code {
		t.Errorf("expected code %s, got %s", code, importErr.Code)
	}
}
