package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

type fakeParser struct {
	doc *entity.InvoiceDocument
	err error
}

func (p *fakeParser) Parse([]byte) (*entity.InvoiceDocument, error) {
	return p.doc, p.err
}

type fakeExtractionService struct {
	available bool
	doc       *entity.InvoiceDocument
	err       error
	calls     int
}

func (s *fakeExtractionService) IsAvailable() bool { return s.available }

func (s *fakeExtractionService) Extract(context.Context, []byte) (*entity.InvoiceDocument, error) {
	s.calls++
	return s.doc, s.err
}

type fakeExtractionCache struct {
	store  map[string]*entity.InvoiceDocument
	getErr error
	sets   int
}

func (c *fakeExtractionCache) Get(_ context.Context, key string) (*entity.InvoiceDocument, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	doc, ok := c.store[key]
	return doc, ok, nil
}

func (c *fakeExtractionCache) Set(_ context.Context, key string, doc *entity.InvoiceDocument) error {
	c.sets++
	c.store[key] = doc
	return nil
}

func sampleDocument() *entity.InvoiceDocument {
	return &entity.InvoiceDocument{
		SupplierTaxID: "12345678000195",
		SupplierName:  "TechParts Distribuidora Ltda",
		InvoiceNumber: "12345",
		EmissionDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalValue:    decimal.RequireFromString("11850.00"),
		FreightValue:  decimal.RequireFromString("150.00"),
		Products: []entity.InvoiceProduct{
			{
				Description: "Notebook Latitude 5440",
				Quantity:    2,
				UnitValue:   decimal.RequireFromString("4500.00"),
				TotalValue:  decimal.RequireFromString("9000.00"),
			},
		},
	}
}

func digestOf(raw []byte) string {
	digest := sha256.Sum256(raw)
	return hex.EncodeToString(digest[:])
}

func registeredSuppliers() *fakeSupplierRepo {
	return &fakeSupplierRepo{byTaxID: map[string]*entity.Supplier{
		"12345678000195": {
			ID:    uuid.New(),
			Name:  "TechParts Distribuidora Ltda",
			TaxID: "12345678000195",
		},
	}}
}

func TestExtractInvoiceUseCase_Execute(t *testing.T) {
	raw := []byte("<nfeProc>...</nfeProc>")

	t.Run("native XML path resolves the supplier", func(t *testing.T) {
		cache := &fakeExtractionCache{store: map[string]*entity.InvoiceDocument{}}
		useCase := NewExtractInvoiceUseCase(&fakeParser{doc: sampleDocument()}, nil, cache, registeredSuppliers())

		output, err := useCase.Execute(context.Background(), ExtractInvoiceInput{Raw: raw})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.FromCache {
			t.Error("expected a cache miss on first extraction")
		}
		if output.Document.InvoiceNumber != "12345" {
			t.Errorf("unexpected invoice number %q", output.Document.InvoiceNumber)
		}
		if output.SupplierID == nil {
			t.Fatal("expected the registered supplier to be resolved")
		}
		if cache.sets != 1 {
			t.Errorf("expected the result to be cached once, got %d sets", cache.sets)
		}
	})

	t.Run("unregistered supplier is not an extraction error", func(t *testing.T) {
		useCase := NewExtractInvoiceUseCase(&fakeParser{doc: sampleDocument()}, nil, nil, &fakeSupplierRepo{byTaxID: map[string]*entity.Supplier{}})

		output, err := useCase.Execute(context.Background(), ExtractInvoiceInput{Raw: raw})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SupplierID != nil {
			t.Errorf("expected no supplier match, got %s", output.SupplierID)
		}
	})

	t.Run("identical content hits the cache", func(t *testing.T) {
		cache := &fakeExtractionCache{store: map[string]*entity.InvoiceDocument{
			digestOf(raw): sampleDocument(),
		}}
		extraction := &fakeExtractionService{available: true}
		parser := &fakeParser{err: domainerror.NewImportError(domainerror.ErrCodeInvoiceNotParsable, "not XML", domainerror.ErrInvoiceNotParsable)}
		useCase := NewExtractInvoiceUseCase(parser, extraction, cache, registeredSuppliers())

		output, err := useCase.Execute(context.Background(), ExtractInvoiceInput{Raw: raw})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.FromCache {
			t.Error("expected the cached document")
		}
		if extraction.calls != 0 {
			t.Errorf("expected no extraction calls on a cache hit, got %d", extraction.calls)
		}
	})

	t.Run("cache failure degrades to extraction", func(t *testing.T) {
		cache := &fakeExtractionCache{store: map[string]*entity.InvoiceDocument{}, getErr: errors.New("redis down")}
		useCase := NewExtractInvoiceUseCase(&fakeParser{doc: sampleDocument()}, nil, cache, registeredSuppliers())

		output, err := useCase.Execute(context.Background(), ExtractInvoiceInput{Raw: raw})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.FromCache {
			t.Error("expected a fresh extraction when the cache fails")
		}
	})

	t.Run("falls back to AI extraction when parsing fails", func(t *testing.T) {
		doc := sampleDocument()
		doc.SupplierTaxID = "12.345.678/0001-95" // AI output may keep punctuation
		parser := &fakeParser{err: domainerror.NewImportError(domainerror.ErrCodeInvoiceNotParsable, "not XML", domainerror.ErrInvoiceNotParsable)}
		extraction := &fakeExtractionService{available: true, doc: doc}
		useCase := NewExtractInvoiceUseCase(parser, extraction, nil, registeredSuppliers())

		output, err := useCase.Execute(context.Background(), ExtractInvoiceInput{Raw: []byte("DANFE texto")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if extraction.calls != 1 {
			t.Errorf("expected 1 extraction call, got %d", extraction.calls)
		}
		if output.Document.SupplierTaxID != "12345678000195" {
			t.Errorf("expected a normalized tax id, got %q", output.Document.SupplierTaxID)
		}
		if output.SupplierID == nil {
			t.Error("expected the supplier to resolve after normalization")
		}
	})

	t.Run("unparsable content without a fallback", func(t *testing.T) {
		parser := &fakeParser{err: domainerror.NewImportError(domainerror.ErrCodeInvoiceNotParsable, "not XML", domainerror.ErrInvoiceNotParsable)}
		useCase := NewExtractInvoiceUseCase(parser, &fakeExtractionService{available: false}, nil, registeredSuppliers())

		_, err := useCase.Execute(context.Background(), ExtractInvoiceInput{Raw: []byte("DANFE texto")})
		assertCommitErrorCode(t, err, domainerror.ErrCodeInvoiceNotParsable)
	})

	t.Run("empty content is rejected up front", func(t *testing.T) {
		useCase := NewExtractInvoiceUseCase(&fakeParser{}, nil, nil, registeredSuppliers())

		_, err := useCase.Execute(context.Background(), ExtractInvoiceInput{})
		assertCommitErrorCode(t, err, domainerror.ErrCodeInvoiceNotParsable)
	})
}
