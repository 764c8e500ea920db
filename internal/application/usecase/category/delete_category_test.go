package category

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// countingAssetRepo satisfies the asset repository interface for use cases
// that only care about reference counts.
type countingAssetRepo struct {
	countByCategory map[uuid.UUID]int64
}

func (r *countingAssetRepo) Create(_ context.Context, _ *entity.Asset) error { return nil }

func (r *countingAssetRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Asset, error) {
	return nil, domainerror.ErrAssetNotFound
}

func (r *countingAssetRepo) FindAll(_ context.Context) ([]*entity.Asset, error) { return nil, nil }

func (r *countingAssetRepo) Update(_ context.Context, _ *entity.Asset) error { return nil }

func (r *countingAssetRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *countingAssetRepo) CountByCategory(_ context.Context, id uuid.UUID) (int64, error) {
	return r.countByCategory[id], nil
}

func (r *countingAssetRepo) CountBySupplier(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *countingAssetRepo) CountByLocation(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *countingAssetRepo) CountByModel(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	life := 10
	seed := func() (*fakeCategoryRepo, *entity.Category) {
		repo := newFakeCategoryRepo()
		category := entity.NewCategory("Moveis e Utensilios", entity.DepreciationMethodLinear, &life, decimal.NewFromInt(10), nil, nil)
		repo.byID[category.ID] = category
		return repo, category
	}

	t.Run("deletes an unreferenced category", func(t *testing.T) {
		repo, category := seed()
		uc := NewDeleteCategoryUseCase(repo, &countingAssetRepo{countByCategory: map[uuid.UUID]int64{}})

		if err := uc.Execute(ctx, DeleteCategoryInput{ID: category.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.byID[category.ID]; ok {
			t.Error("expected category to be removed")
		}
	})

	t.Run("refuses to delete a category in use", func(t *testing.T) {
		repo, category := seed()
		assets := &countingAssetRepo{countByCategory: map[uuid.UUID]int64{category.ID: 3}}
		uc := NewDeleteCategoryUseCase(repo, assets)

		err := uc.Execute(ctx, DeleteCategoryInput{ID: category.ID})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryInUse)
		if _, ok := repo.byID[category.ID]; !ok {
			t.Error("expected category to survive the failed delete")
		}
	})

	t.Run("reports a missing category", func(t *testing.T) {
		repo, _ := seed()
		uc := NewDeleteCategoryUseCase(repo, &countingAssetRepo{countByCategory: map[uuid.UUID]int64{}})

		err := uc.Execute(ctx, DeleteCategoryInput{ID: uuid.New()})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})
}
