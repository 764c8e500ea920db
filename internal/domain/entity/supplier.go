// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplier represents a vendor that invoices purchased assets.
type Supplier struct {
	ID        uuid.UUID
	Name      string
	TaxID     string // CNPJ, stored digits-only
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewSupplier creates a new Supplier entity. The tax id is normalized to digits.
func NewSupplier(name, taxID, email, phone string) *Supplier {
	now := time.Now().UTC()

	return &Supplier{
		ID:        uuid.New(),
		Name:      name,
		TaxID:     NormalizeTaxID(taxID),
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeTaxID strips every non-digit character from a CNPJ/CPF.
// Invoices commonly decorate tax ids with punctuation ("12.345.678/0001-95").
func NormalizeTaxID(taxID string) string {
	var sb strings.Builder
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
