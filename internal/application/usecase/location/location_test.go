package location

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

type fakeLocationRepo struct {
	byID map[uuid.UUID]*entity.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{byID: make(map[uuid.UUID]*entity.Location)}
}

func (r *fakeLocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.byID[l.ID] = l
	return nil
}

func (r *fakeLocationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Location, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrLocationNotFound
	}
	return l, nil
}

func (r *fakeLocationRepo) FindAll(_ context.Context) ([]*entity.Location, error) {
	all := make([]*entity.Location, 0, len(r.byID))
	for _, l := range r.byID {
		all = append(all, l)
	}
	return all, nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return domainerror.ErrLocationNotFound
	}
	delete(r.byID, id)
	return nil
}

type countingAssetRepo struct {
	countByLocation map[uuid.UUID]int64
}

func (r *countingAssetRepo) Create(_ context.Context, _ *entity.Asset) error { return nil }

func (r *countingAssetRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Asset, error) {
	return nil, domainerror.ErrAssetNotFound
}

func (r *countingAssetRepo) FindAll(_ context.Context) ([]*entity.Asset, error) { return nil, nil }

func (r *countingAssetRepo) Update(_ context.Context, _ *entity.Asset) error { return nil }

func (r *countingAssetRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *countingAssetRepo) CountByCategory(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *countingAssetRepo) CountBySupplier(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *countingAssetRepo) CountByLocation(_ context.Context, id uuid.UUID) (int64, error) {
	return r.countByLocation[id], nil
}

func (r *countingAssetRepo) CountByModel(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func assertLocationErrorCode(t *testing.T, err error, code domainerror.AssetErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var assetErr *domainerror.AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("expected AssetError, got %T: %v", err, err)
	}
	if assetErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, assetErr.Code)
	}
}

func TestCreateLocationUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and persists a location", func(t *testing.T) {
		repo := newFakeLocationRepo()
		uc := NewCreateLocationUseCase(repo)

		out, err := uc.Execute(ctx, CreateLocationInput{Name: "Escritorio SP", Description: "Sede"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Location.Name != "Escritorio SP" {
			t.Errorf("unexpected name: %q", out.Location.Name)
		}
		if _, ok := repo.byID[out.Location.ID]; !ok {
			t.Error("expected location to be persisted")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateLocationUseCase(newFakeLocationRepo())

		_, err := uc.Execute(ctx, CreateLocationInput{Name: "  "})
		assertLocationErrorCode(t, err, domainerror.ErrCodeCatalogNameRequired)
	})
}

func TestDeleteLocationUseCase(t *testing.T) {
	ctx := context.Background()

	seed := func() (*fakeLocationRepo, *entity.Location) {
		repo := newFakeLocationRepo()
		loc := entity.NewLocation("Deposito RJ", "")
		repo.byID[loc.ID] = loc
		return repo, loc
	}

	t.Run("deletes an unreferenced location", func(t *testing.T) {
		repo, loc := seed()
		uc := NewDeleteLocationUseCase(repo, &countingAssetRepo{countByLocation: map[uuid.UUID]int64{}})

		if err := uc.Execute(ctx, DeleteLocationInput{ID: loc.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.byID[loc.ID]; ok {
			t.Error("expected location to be removed")
		}
	})

	t.Run("refuses to delete a location in use", func(t *testing.T) {
		repo, loc := seed()
		assets := &countingAssetRepo{countByLocation: map[uuid.UUID]int64{loc.ID: 2}}
		uc := NewDeleteLocationUseCase(repo, assets)

		err := uc.Execute(ctx, DeleteLocationInput{ID: loc.ID})
		assertLocationErrorCode(t, err, domainerror.ErrCodeLocationInUse)
	})

	t.Run("reports a missing location", func(t *testing.T) {
		repo, _ := seed()
		uc := NewDeleteLocationUseCase(repo, &countingAssetRepo{countByLocation: map[uuid.UUID]int64{}})

		err := uc.Execute(ctx, DeleteLocationInput{ID: uuid.New()})
		assertLocationErrorCode(t, err, domainerror.ErrCodeLocationNotFound)
	})
}
