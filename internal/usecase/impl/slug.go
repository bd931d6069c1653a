package impl

import (
	"context"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
)

// createWithUniqueSlug runs create with cafe.Slug set to the first free candidate of
// base, base-2, base-3, ... Candidates already taken are skipped, and a collision
// reported by the store (a concurrent writer won) moves on to the next one.
func createWithUniqueSlug(
	ctx context.Context,
	cafeRepo repository.CafeRepository,
	cafe *entity.Cafe,
	maxAttempts int,
	create func(ctx context.Context) error,
) (string, error) {
	base := cafe.Slug
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for n := 1; n <= maxAttempts; n++ {
		candidate := entity.SlugWithSuffix(base, n)

		exists, err := cafeRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if exists {
			continue
		}

		cafe.Slug = candidate
		err = create(ctx)
		if errors.Is(err, repository.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return "", errors.Wrap(domainerrors.ErrCafeCreationFailed, err.Error())
		}

		return candidate, nil
	}

	cafe.Slug = base

	return "", domainerrors.ErrSlugConflict.WithDetails("no free slug for " + base)
}
