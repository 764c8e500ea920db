// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDocument is the normalized output of invoice extraction (native NF-e
// XML decoding or the AI fallback). It is transient: it lives only during an
// import wizard session and is never persisted.
type InvoiceDocument struct {
	SupplierTaxID string // CNPJ, digits-only
	SupplierName  string
	InvoiceNumber string
	EmissionDate  time.Time
	TotalValue    decimal.Decimal
	FreightValue  decimal.Decimal
	Products      []InvoiceProduct
}

// InvoiceProduct is one line item of an invoice.
//
// TotalValue is the authoritative line total used for freight proportioning.
// It is not required to equal Quantity*UnitValue (invoice rounding), so
// consumers must use it as-is and never recompute it.
type InvoiceProduct struct {
	Description string
	Quantity    int
	UnitValue   decimal.Decimal
	TotalValue  decimal.Decimal
}
