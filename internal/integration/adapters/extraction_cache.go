package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
)

const extractionCacheKeyPrefix = "invoice:extraction:"

// cachedInvoice is the wire form of an InvoiceDocument in the cache. Decimals
// are stored as strings to round-trip exactly.
type cachedInvoice struct {
	SupplierTaxID string          `json:"supplier_tax_id"`
	SupplierName  string          `json:"supplier_name"`
	InvoiceNumber string          `json:"invoice_number"`
	EmissionDate  time.Time       `json:"emission_date"`
	TotalValue    string          `json:"total_value"`
	FreightValue  string          `json:"freight_value"`
	Products      []cachedProduct `json:"products"`
}

type cachedProduct struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitValue   string `json:"unit_value"`
	TotalValue  string `json:"total_value"`
}

// RedisExtractionCache stores extraction results in Redis keyed by input
// digest, so re-uploading the same invoice skips the extraction call.
type RedisExtractionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisExtractionCache creates a new Redis-backed extraction cache.
func NewRedisExtractionCache(client *redis.Client, ttl time.Duration) *RedisExtractionCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisExtractionCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached document for the key, or found=false on a miss.
func (c *RedisExtractionCache) Get(ctx context.Context, key string) (*entity.InvoiceDocument, bool, error) {
	payload, err := c.client.Get(ctx, extractionCacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cached cachedInvoice
	if err := json.Unmarshal(payload, &cached); err != nil {
		// A corrupt entry is treated as a miss; the caller re-extracts.
		return nil, false, nil
	}

	doc, err := cached.toDocument()
	if err != nil {
		return nil, false, nil
	}
	return doc, true, nil
}

// Set stores the document under the key.
func (c *RedisExtractionCache) Set(ctx context.Context, key string, doc *entity.InvoiceDocument) error {
	payload, err := json.Marshal(fromDocument(doc))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, extractionCacheKeyPrefix+key, payload, c.ttl).Err()
}

func (c *cachedInvoice) toDocument() (*entity.InvoiceDocument, error) {
	totalValue, err := decimal.NewFromString(c.TotalValue)
	if err != nil {
		return nil, err
	}
	freightValue, err := decimal.NewFromString(c.FreightValue)
	if err != nil {
		return nil, err
	}

	products := make([]entity.InvoiceProduct, 0, len(c.Products))
	for _, p := range c.Products {
		unitValue, err := decimal.NewFromString(p.UnitValue)
		if err != nil {
			return nil, err
		}
		lineTotal, err := decimal.NewFromString(p.TotalValue)
		if err != nil {
			return nil, err
		}
		products = append(products, entity.InvoiceProduct{
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitValue:   unitValue,
			TotalValue:  lineTotal,
		})
	}

	return &entity.InvoiceDocument{
		SupplierTaxID: c.SupplierTaxID,
		SupplierName:  c.SupplierName,
		InvoiceNumber: c.InvoiceNumber,
		EmissionDate:  c.EmissionDate,
		TotalValue:    totalValue,
		FreightValue:  freightValue,
		Products:      products,
	}, nil
}

func fromDocument(doc *entity.InvoiceDocument) *cachedInvoice {
	products := make([]cachedProduct, 0, len(doc.Products))
	for _, p := range doc.Products {
		products = append(products, cachedProduct{
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitValue:   p.UnitValue.String(),
			TotalValue:  p.TotalValue.String(),
		})
	}

	return &cachedInvoice{
		SupplierTaxID: doc.SupplierTaxID,
		SupplierName:  doc.SupplierName,
		InvoiceNumber: doc.InvoiceNumber,
		EmissionDate:  doc.EmissionDate,
		TotalValue:    doc.TotalValue.String(),
		FreightValue:  doc.FreightValue.String(),
		Products:      products,
	}
}
