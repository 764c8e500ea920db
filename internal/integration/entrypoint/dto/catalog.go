package dto

import (
	"time"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// CreateSupplierRequest represents the request body for supplier creation.
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	TaxID string `json:"tax_id,omitempty"` // CNPJ, punctuation allowed
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// SupplierResponse represents a single supplier in API responses.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse represents the response for listing suppliers.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain Supplier entity to a SupplierResponse DTO.
func ToSupplierResponse(supplier *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        supplier.ID.String(),
		Name:      supplier.Name,
		TaxID:     supplier.TaxID,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}

// ToSupplierListResponse converts a list of suppliers to a SupplierListResponse.
func ToSupplierListResponse(suppliers []*entity.Supplier) SupplierListResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		out[i] = ToSupplierResponse(s)
	}
	return SupplierListResponse{
		Suppliers: out,
	}
}

// CreateLocationRequest represents the request body for location creation.
type CreateLocationRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
}

// LocationResponse represents a single location in API responses.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationListResponse represents the response for listing locations.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToLocationResponse converts a domain Location entity to a LocationResponse DTO.
func ToLocationResponse(location *entity.Location) LocationResponse {
	return LocationResponse{
		ID:          location.ID.String(),
		Name:        location.Name,
		Description: location.Description,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}

// ToLocationListResponse converts a list of locations to a LocationListResponse.
func ToLocationListResponse(locations []*entity.Location) LocationListResponse {
	out := make([]LocationResponse, len(locations))
	for i, l := range locations {
		out[i] = ToLocationResponse(l)
	}
	return LocationListResponse{
		Locations: out,
	}
}

// CreateAssetModelRequest represents the request body for asset model creation.
type CreateAssetModelRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

// AssetModelResponse represents a single asset model in API responses.
type AssetModelResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssetModelListResponse represents the response for listing asset models.
type AssetModelListResponse struct {
	Models []AssetModelResponse `json:"models"`
}

// ToAssetModelResponse converts a domain AssetModel entity to an AssetModelResponse DTO.
func ToAssetModelResponse(am *entity.AssetModel) AssetModelResponse {
	return AssetModelResponse{
		ID:           am.ID.String(),
		Name:         am.Name,
		Manufacturer: am.Manufacturer,
		CreatedAt:    am.CreatedAt,
		UpdatedAt:    am.UpdatedAt,
	}
}

// ToAssetModelListResponse converts a list of asset models to an AssetModelListResponse.
func ToAssetModelListResponse(models []*entity.AssetModel) AssetModelListResponse {
	out := make([]AssetModelResponse, len(models))
	for i, m := range models {
		out[i] = ToAssetModelResponse(m)
	}
	return AssetModelListResponse{
		Models: out,
	}
}
