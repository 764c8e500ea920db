package dto

import (
	"time"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// CreateAssetRequest represents the request body for manual asset creation.
type CreateAssetRequest struct {
	Name                       string   `json:"name" binding:"required,min=1,max=255"`
	AssetTag                   string   `json:"asset_tag" binding:"required,min=1,max=100"`
	InvoiceNumber              string   `json:"invoice_number,omitempty"`
	CategoryID                 string   `json:"category_id" binding:"required,uuid"`
	SupplierID                 string   `json:"supplier_id" binding:"required,uuid"`
	LocationID                 *string  `json:"location_id,omitempty" binding:"omitempty,uuid"`
	ModelID                    *string  `json:"model_id,omitempty" binding:"omitempty,uuid"`
	PurchaseDate               string   `json:"purchase_date" binding:"required"` // YYYY-MM-DD
	PurchaseValue              string   `json:"purchase_value" binding:"required"`
	PreviouslyDepreciatedValue string   `json:"previously_depreciated_value,omitempty"`
	ApplyDepreciationRules     *bool    `json:"apply_depreciation_rules,omitempty"` // Defaults to true
	ImageDataURIs              []string `json:"image_data_uris,omitempty"`
	InvoiceFileDataURI         string   `json:"invoice_file_data_uri,omitempty"`
	InvoiceFileName            string   `json:"invoice_file_name,omitempty"`
	AdditionalInfo             string   `json:"additional_info,omitempty"`
}

// UpdateAssetRequest represents the request body for asset update.
type UpdateAssetRequest struct {
	Name                       string   `json:"name" binding:"required,min=1,max=255"`
	AssetTag                   string   `json:"asset_tag" binding:"required,min=1,max=100"`
	InvoiceNumber              string   `json:"invoice_number,omitempty"`
	CategoryID                 string   `json:"category_id" binding:"required,uuid"`
	SupplierID                 string   `json:"supplier_id" binding:"required,uuid"`
	LocationID                 *string  `json:"location_id,omitempty" binding:"omitempty,uuid"`
	ModelID                    *string  `json:"model_id,omitempty" binding:"omitempty,uuid"`
	PurchaseDate               string   `json:"purchase_date" binding:"required"` // YYYY-MM-DD
	PurchaseValue              string   `json:"purchase_value" binding:"required"`
	PreviouslyDepreciatedValue string   `json:"previously_depreciated_value,omitempty"`
	ApplyDepreciationRules     *bool    `json:"apply_depreciation_rules,omitempty"`
	ImageDataURIs              []string `json:"image_data_uris,omitempty"`
	InvoiceFileDataURI         string   `json:"invoice_file_data_uri,omitempty"`
	InvoiceFileName            string   `json:"invoice_file_name,omitempty"`
	AdditionalInfo             string   `json:"additional_info,omitempty"`
}

// AssetResponse represents a single asset in API responses. Monetary values
// are decimal strings; CurrentValue is computed at the valuation date and
// omitted when the category configuration makes it uncomputable.
type AssetResponse struct {
	ID                         string    `json:"id"`
	Name                       string    `json:"name"`
	AssetTag                   string    `json:"asset_tag"`
	InvoiceNumber              string    `json:"invoice_number,omitempty"`
	CategoryID                 string    `json:"category_id"`
	SupplierID                 string    `json:"supplier_id"`
	LocationID                 *string   `json:"location_id,omitempty"`
	ModelID                    *string   `json:"model_id,omitempty"`
	PurchaseDate               string    `json:"purchase_date"`
	PurchaseValue              string    `json:"purchase_value"`
	PreviouslyDepreciatedValue string    `json:"previously_depreciated_value"`
	ApplyDepreciationRules     bool      `json:"apply_depreciation_rules"`
	CurrentValue               *string   `json:"current_value,omitempty"`
	ValuationIssue             string    `json:"valuation_issue,omitempty"`
	ImageDataURIs              []string  `json:"image_data_uris,omitempty"`
	InvoiceFileDataURI         string    `json:"invoice_file_data_uri,omitempty"`
	InvoiceFileName            string    `json:"invoice_file_name,omitempty"`
	AdditionalInfo             string    `json:"additional_info,omitempty"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// AssetListResponse represents the response for listing assets.
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// ToAssetResponse converts a domain Asset entity to an AssetResponse DTO.
func ToAssetResponse(asset *entity.Asset) AssetResponse {
	var locationID *string
	if asset.LocationID != nil {
		s := asset.LocationID.String()
		locationID = &s
	}

	var modelID *string
	if asset.ModelID != nil {
		s := asset.ModelID.String()
		modelID = &s
	}

	return AssetResponse{
		ID:                         asset.ID.String(),
		Name:                       asset.Name,
		AssetTag:                   asset.AssetTag,
		InvoiceNumber:              asset.InvoiceNumber,
		CategoryID:                 asset.CategoryID.String(),
		SupplierID:                 asset.SupplierID.String(),
		LocationID:                 locationID,
		ModelID:                    modelID,
		PurchaseDate:               asset.PurchaseDate.Format("2006-01-02"),
		PurchaseValue:              asset.PurchaseValue.StringFixed(2),
		PreviouslyDepreciatedValue: asset.PreviouslyDepreciatedValue.StringFixed(2),
		ApplyDepreciationRules:     asset.ApplyDepreciationRules,
		ImageDataURIs:              asset.ImageDataURIs,
		InvoiceFileDataURI:         asset.InvoiceFileDataURI,
		InvoiceFileName:            asset.InvoiceFileName,
		AdditionalInfo:             asset.AdditionalInfo,
		CreatedAt:                  asset.CreatedAt,
		UpdatedAt:                  asset.UpdatedAt,
	}
}

// ToValuedAssetResponse converts an asset with its computed book value.
func ToValuedAssetResponse(av *entity.AssetWithValuation) AssetResponse {
	resp := ToAssetResponse(av.Asset)
	if av.Valuable {
		value := av.CurrentValue.StringFixed(2)
		resp.CurrentValue = &value
	} else {
		resp.ValuationIssue = av.ValuationIssue
	}
	return resp
}

// ToAssetListResponse converts a list of valued assets to an AssetListResponse.
func ToAssetListResponse(assets []*entity.AssetWithValuation) AssetListResponse {
	out := make([]AssetResponse, len(assets))
	for i, av := range assets {
		out[i] = ToValuedAssetResponse(av)
	}
	return AssetListResponse{
		Assets: out,
	}
}
