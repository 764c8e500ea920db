package location

import (
	"context"
	"fmt"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
)

// ListLocationsOutput represents the output of listing locations.
type ListLocationsOutput struct {
	Locations []*entity.Location
}

// ListLocationsUseCase handles listing locations.
type ListLocationsUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewListLocationsUseCase creates a new ListLocationsUseCase instance.
func NewListLocationsUseCase(locationRepo adapter.LocationRepository) *ListLocationsUseCase {
	return &ListLocationsUseCase{locationRepo: locationRepo}
}

// Execute performs the listing.
func (uc *ListLocationsUseCase) Execute(ctx context.Context) (*ListLocationsOutput, error) {
	locations, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return &ListLocationsOutput{Locations: locations}, nil
}
