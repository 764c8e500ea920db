// Package location contains location-related use cases.
package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// CreateLocationInput represents the input for location creation.
type CreateLocationInput struct {
	Name        string
	Description string
}

// CreateLocationOutput represents the output of location creation.
type CreateLocationOutput struct {
	Location *entity.Location
}

// CreateLocationUseCase handles location creation.
type CreateLocationUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewCreateLocationUseCase creates a new CreateLocationUseCase instance.
func NewCreateLocationUseCase(locationRepo adapter.LocationRepository) *CreateLocationUseCase {
	return &CreateLocationUseCase{locationRepo: locationRepo}
}

// Execute performs the location creation.
func (uc *CreateLocationUseCase) Execute(ctx context.Context, input CreateLocationInput) (*CreateLocationOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeCatalogNameRequired,
			"location name must not be blank",
			domainerror.ErrCatalogNameRequired,
		)
	}

	location := entity.NewLocation(input.Name, input.Description)
	if err := uc.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return &CreateLocationOutput{Location: location}, nil
}
