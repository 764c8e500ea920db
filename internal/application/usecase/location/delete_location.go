package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// DeleteLocationInput represents the input for location deletion.
type DeleteLocationInput struct {
	ID uuid.UUID
}

// DeleteLocationUseCase handles location deletion with an in-use precondition.
type DeleteLocationUseCase struct {
	locationRepo adapter.LocationRepository
	assetRepo    adapter.AssetRepository
}

// NewDeleteLocationUseCase creates a new DeleteLocationUseCase instance.
func NewDeleteLocationUseCase(locationRepo adapter.LocationRepository, assetRepo adapter.AssetRepository) *DeleteLocationUseCase {
	return &DeleteLocationUseCase{
		locationRepo: locationRepo,
		assetRepo:    assetRepo,
	}
}

// Execute performs the location deletion.
func (uc *DeleteLocationUseCase) Execute(ctx context.Context, input DeleteLocationInput) error {
	if _, err := uc.locationRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrLocationNotFound) {
			return domainerror.NewAssetError(
				domainerror.ErrCodeLocationNotFound,
				fmt.Sprintf("location %s does not exist", input.ID),
				domainerror.ErrLocationNotFound,
			)
		}
		return fmt.Errorf("failed to load location: %w", err)
	}

	count, err := uc.assetRepo.CountByLocation(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count assets for location: %w", err)
	}
	if count > 0 {
		return domainerror.NewAssetError(
			domainerror.ErrCodeLocationInUse,
			fmt.Sprintf("location is referenced by %d asset(s)", count),
			domainerror.ErrLocationInUse,
		)
	}

	if err := uc.locationRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}
