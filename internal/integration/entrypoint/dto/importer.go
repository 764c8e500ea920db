package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/usecase/importer"
	"github.com/asset-registry/backend/internal/domain/entity"
)

// ExtractInvoiceRequest represents the request body for invoice extraction.
// Content is base64-encoded so XML and binary dumps survive JSON transport.
type ExtractInvoiceRequest struct {
	Content string `json:"content" binding:"required"`
}

// InvoiceProductDTO is one invoice line item on the wire.
type InvoiceProductDTO struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitValue   string `json:"unit_value"`
	TotalValue  string `json:"total_value"`
}

// InvoiceDocumentDTO is the wire form of an extracted invoice. The import
// wizard is stateless: this document round-trips from the extract response
// into the plan and commit requests.
type InvoiceDocumentDTO struct {
	SupplierTaxID string              `json:"supplier_tax_id"`
	SupplierName  string              `json:"supplier_name"`
	InvoiceNumber string              `json:"invoice_number"`
	EmissionDate  string              `json:"emission_date"` // YYYY-MM-DD
	TotalValue    string              `json:"total_value"`
	FreightValue  string              `json:"freight_value"`
	Products      []InvoiceProductDTO `json:"products"`
}

// ExtractInvoiceResponse represents the response for invoice extraction.
type ExtractInvoiceResponse struct {
	Document   InvoiceDocumentDTO `json:"document"`
	SupplierID *string            `json:"supplier_id,omitempty"` // Registered supplier matching the invoice CNPJ
	FromCache  bool               `json:"from_cache"`
}

// PlanImportRequest represents the request body for import planning.
type PlanImportRequest struct {
	Document           InvoiceDocumentDTO `json:"document" binding:"required"`
	SelectedQuantities map[int]int        `json:"selected_quantities" binding:"required"`
	AllocateFreight    bool               `json:"allocate_freight"`
	FreightScope       string             `json:"freight_scope,omitempty"`
}

// PlannedTaskDTO is one per-unit import task on the wire.
type PlannedTaskDTO struct {
	LineIndex         int    `json:"line_index"`
	SourceDescription string `json:"source_description"`
	PurchaseValue     string `json:"purchase_value"`
	InvoiceNumber     string `json:"invoice_number"`
	PurchaseDate      string `json:"purchase_date"` // YYYY-MM-DD
}

// PlanImportResponse represents the response for import planning.
type PlanImportResponse struct {
	Tasks          []PlannedTaskDTO `json:"tasks"`
	PerUnitFreight []string         `json:"per_unit_freight"` // Per line, indexed like document.products
	IgnoredUnits   int              `json:"ignored_units"`
}

// CommitItemDTO is one planned task plus user-supplied metadata.
type CommitItemDTO struct {
	SourceDescription          string  `json:"source_description"`
	PurchaseValue              string  `json:"purchase_value" binding:"required"`
	Name                       string  `json:"name,omitempty"`
	AssetTag                   string  `json:"asset_tag" binding:"required"`
	CategoryID                 string  `json:"category_id" binding:"required,uuid"`
	LocationID                 *string `json:"location_id,omitempty" binding:"omitempty,uuid"`
	ModelID                    *string `json:"model_id,omitempty" binding:"omitempty,uuid"`
	ApplyDepreciationRules     *bool   `json:"apply_depreciation_rules,omitempty"` // Defaults to true
	PreviouslyDepreciatedValue string  `json:"previously_depreciated_value,omitempty"`
	AdditionalInfo             string  `json:"additional_info,omitempty"`
}

// CommitImportRequest represents the request body for committing an import batch.
type CommitImportRequest struct {
	SupplierTaxID string          `json:"supplier_tax_id" binding:"required"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	EmissionDate  string          `json:"emission_date" binding:"required"` // YYYY-MM-DD
	NotifyEmail   string          `json:"notify_email,omitempty" binding:"omitempty,email"`
	NotifyName    string          `json:"notify_name,omitempty"`
	Items         []CommitItemDTO `json:"items" binding:"required"`
}

// CommitImportResponse represents the response for a committed import batch.
type CommitImportResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// ToInvoiceDocumentDTO converts a domain InvoiceDocument to its wire form.
func ToInvoiceDocumentDTO(doc *entity.InvoiceDocument) InvoiceDocumentDTO {
	products := make([]InvoiceProductDTO, len(doc.Products))
	for i, p := range doc.Products {
		products[i] = InvoiceProductDTO{
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitValue:   p.UnitValue.String(),
			TotalValue:  p.TotalValue.String(),
		}
	}

	return InvoiceDocumentDTO{
		SupplierTaxID: doc.SupplierTaxID,
		SupplierName:  doc.SupplierName,
		InvoiceNumber: doc.InvoiceNumber,
		EmissionDate:  doc.EmissionDate.Format("2006-01-02"),
		TotalValue:    doc.TotalValue.String(),
		FreightValue:  doc.FreightValue.String(),
		Products:      products,
	}
}

// ToInvoiceDocument converts the wire form back into a domain InvoiceDocument.
func (d InvoiceDocumentDTO) ToInvoiceDocument() (*entity.InvoiceDocument, error) {
	emissionDate, err := time.Parse("2006-01-02", d.EmissionDate)
	if err != nil {
		return nil, err
	}

	totalValue, err := decimal.NewFromString(d.TotalValue)
	if err != nil {
		return nil, err
	}

	freightValue, err := decimal.NewFromString(d.FreightValue)
	if err != nil {
		return nil, err
	}

	products := make([]entity.InvoiceProduct, len(d.Products))
	for i, p := range d.Products {
		unitValue, err := decimal.NewFromString(p.UnitValue)
		if err != nil {
			return nil, err
		}
		lineTotal, err := decimal.NewFromString(p.TotalValue)
		if err != nil {
			return nil, err
		}
		products[i] = entity.InvoiceProduct{
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitValue:   unitValue,
			TotalValue:  lineTotal,
		}
	}

	return &entity.InvoiceDocument{
		SupplierTaxID: d.SupplierTaxID,
		SupplierName:  d.SupplierName,
		InvoiceNumber: d.InvoiceNumber,
		EmissionDate:  emissionDate,
		TotalValue:    totalValue,
		FreightValue:  freightValue,
		Products:      products,
	}, nil
}

// ToExtractInvoiceResponse converts the extraction output to its wire form.
func ToExtractInvoiceResponse(output *importer.ExtractInvoiceOutput) ExtractInvoiceResponse {
	var supplierID *string
	if output.SupplierID != nil {
		s := output.SupplierID.String()
		supplierID = &s
	}

	return ExtractInvoiceResponse{
		Document:   ToInvoiceDocumentDTO(output.Document),
		SupplierID: supplierID,
		FromCache:  output.FromCache,
	}
}

// ToPlanImportResponse converts the planning output to its wire form.
func ToPlanImportResponse(output *importer.PlanImportOutput) PlanImportResponse {
	tasks := make([]PlannedTaskDTO, len(output.Tasks))
	for i, t := range output.Tasks {
		tasks[i] = PlannedTaskDTO{
			LineIndex:         t.LineIndex,
			SourceDescription: t.SourceDescription,
			PurchaseValue:     t.PurchaseValue.StringFixed(2),
			InvoiceNumber:     t.InvoiceNumber,
			PurchaseDate:      t.PurchaseDate.Format("2006-01-02"),
		}
	}

	freight := make([]string, len(output.PerUnitFreight))
	for i, f := range output.PerUnitFreight {
		freight[i] = f.String()
	}

	return PlanImportResponse{
		Tasks:          tasks,
		PerUnitFreight: freight,
		IgnoredUnits:   output.IgnoredUnits,
	}
}

// ToCommitItems converts wire commit items to use case inputs.
func ToCommitItems(items []CommitItemDTO) ([]importer.CommitItem, error) {
	out := make([]importer.CommitItem, len(items))
	for i, item := range items {
		purchaseValue, err := decimal.NewFromString(item.PurchaseValue)
		if err != nil {
			return nil, err
		}

		prevDep := decimal.Zero
		if item.PreviouslyDepreciatedValue != "" {
			prevDep, err = decimal.NewFromString(item.PreviouslyDepreciatedValue)
			if err != nil {
				return nil, err
			}
		}

		categoryID, err := uuid.Parse(item.CategoryID)
		if err != nil {
			return nil, err
		}

		var locationID *uuid.UUID
		if item.LocationID != nil {
			id, err := uuid.Parse(*item.LocationID)
			if err != nil {
				return nil, err
			}
			locationID = &id
		}

		var modelID *uuid.UUID
		if item.ModelID != nil {
			id, err := uuid.Parse(*item.ModelID)
			if err != nil {
				return nil, err
			}
			modelID = &id
		}

		applyRules := true
		if item.ApplyDepreciationRules != nil {
			applyRules = *item.ApplyDepreciationRules
		}

		out[i] = importer.CommitItem{
			SourceDescription:          item.SourceDescription,
			PurchaseValue:              purchaseValue,
			Name:                       item.Name,
			AssetTag:                   item.AssetTag,
			CategoryID:                 categoryID,
			LocationID:                 locationID,
			ModelID:                    modelID,
			ApplyDepreciationRules:     applyRules,
			PreviouslyDepreciatedValue: prevDep,
			AdditionalInfo:             item.AdditionalInfo,
		}
	}
	return out, nil
}

// ToCommitImportResponse converts committed assets to the wire form.
func ToCommitImportResponse(output *importer.CommitImportOutput) CommitImportResponse {
	assets := make([]AssetResponse, len(output.Assets))
	for i, a := range output.Assets {
		assets[i] = ToAssetResponse(a)
	}
	return CommitImportResponse{
		Assets: assets,
	}
}
