package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type cafeRepository struct {
	store *Store
}

// NewCafeRepository creates a new in-memory cafe repository.
func NewCafeRepository(store *Store) repository.CafeRepository {
	return &cafeRepository{store: store}
}

// CreateCafe implements repository.CafeRepository.
func (r *cafeRepository) CreateCafe(ctx context.Context, cafe *entity.Cafe) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.slugs[cafe.Slug]; taken {
		return repository.ErrSlugTaken
	}

	s.remember(ctx, cafe.ID)
	s.cafes[cafe.ID] = cafe.Clone()
	s.slugs[cafe.Slug] = cafe.ID

	return nil
}

// FindCafeByID implements repository.CafeRepository.
func (r *cafeRepository) FindCafeByID(_ context.Context, id uuid.UUID) (*entity.Cafe, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cafe, ok := s.cafes[id]
	if !ok {
		return nil, repository.ErrCafeNotFound
	}

	return cafe.Clone(), nil
}

// FindCafeBySlug implements repository.CafeRepository.
func (r *cafeRepository) FindCafeBySlug(_ context.Context, slug string) (*entity.Cafe, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.slugs[slug]
	if !ok {
		return nil, repository.ErrCafeNotFound
	}

	return s.cafes[id].Clone(), nil
}

// SlugExists implements repository.CafeRepository.
func (r *cafeRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.slugs[slug]

	return ok, nil
}

// UpdateCafe implements repository.CafeRepository.
func (r *cafeRepository) UpdateCafe(ctx context.Context, id uuid.UUID, update *repository.CafeUpdate) (*entity.Cafe, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cafe, ok := s.cafes[id]
	if !ok {
		return nil, repository.ErrCafeNotFound
	}
	s.remember(ctx, id)

	applyUpdate(cafe, update)
	cafe.UpdatedAt = s.now().UTC()

	return cafe.Clone(), nil
}

func applyUpdate(cafe *entity.Cafe, update *repository.CafeUpdate) {
	if update == nil {
		return
	}
	if update.Name != nil {
		cafe.Name = *update.Name
	}
	if update.Description != nil {
		cafe.Description = *update.Description
	}
	if update.Address != nil {
		cafe.Address = *update.Address
	}
	if update.Phone != nil {
		cafe.Phone = *update.Phone
	}
	if update.Website != nil {
		cafe.Website = *update.Website
	}
	if update.PriceRange != nil {
		cafe.PriceRange = *update.PriceRange
	}
	if update.Location != nil {
		cafe.Location = *update.Location
	}
	if update.Features != nil {
		cafe.Features = update.Features.Clone()
	}
	if update.Photos != nil {
		cafe.Photos = append([]string(nil), update.Photos...)
	}
	if update.Tags != nil {
		cafe.Tags = append([]string(nil), update.Tags...)
	}
	if update.OpeningHours != nil {
		hours := make(map[string]entity.OpeningHours, len(update.OpeningHours))
		for day, h := range update.OpeningHours {
			hours[day] = h
		}
		cafe.OpeningHours = hours
	}
}

// SetModeration implements repository.CafeRepository.
func (r *cafeRepository) SetModeration(ctx context.Context, id uuid.UUID, verified, featured bool) (*entity.Cafe, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cafe, ok := s.cafes[id]
	if !ok {
		return nil, repository.ErrCafeNotFound
	}
	s.remember(ctx, id)

	cafe.Verified = verified
	cafe.Featured = featured
	cafe.UpdatedAt = s.now().UTC()

	return cafe.Clone(), nil
}

// VerifyAllPending implements repository.CafeRepository.
func (r *cafeRepository) VerifyAllPending(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	now := s.now().UTC()
	for id, cafe := range s.cafes {
		if cafe.Verified {
			continue
		}
		s.remember(ctx, id)
		cafe.Verified = true
		cafe.UpdatedAt = now
		count++
	}

	return count, nil
}

// RefreshRatingSummary implements repository.CafeRepository.
// Reviews are read and the summary written under one store lock.
func (r *cafeRepository) RefreshRatingSummary(ctx context.Context, id uuid.UUID) (entity.RatingSummary, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cafe, ok := s.cafes[id]
	if !ok {
		return entity.RatingSummary{}, repository.ErrCafeNotFound
	}
	s.remember(ctx, id)

	reviews := s.reviews[id]
	ratings := make([]int, len(reviews))
	for i, review := range reviews {
		ratings[i] = review.Rating
	}
	summary := entity.SummarizeRatings(ratings)

	cafe.AverageRating = summary.AverageRating
	cafe.TotalReviews = summary.TotalReviews

	return summary, nil
}

// DeleteCafe implements repository.CafeRepository.
func (r *cafeRepository) DeleteCafe(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cafe, ok := s.cafes[id]
	if !ok {
		return repository.ErrCafeNotFound
	}
	s.remember(ctx, id)

	delete(s.slugs, cafe.Slug)
	delete(s.cafes, id)
	delete(s.reviews, id)
	delete(s.contacts, id)

	return nil
}

// QueryCafes implements repository.CafeRepository.
func (r *cafeRepository) QueryCafes(_ context.Context, filter repository.CafeFilter, sort repository.CafeSort, skip, limit int) ([]*entity.Cafe, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := s.match(filter)
	sortCafes(matches, sort, filter.Near)

	start, end := window(len(matches), skip, limit)
	out := make([]*entity.Cafe, 0, end-start)
	for _, m := range matches[start:end] {
		out = append(out, m.cafe.Clone())
	}

	return out, nil
}

// CountCafes implements repository.CafeRepository.
func (r *cafeRepository) CountCafes(_ context.Context, filter repository.CafeFilter) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.match(filter))), nil
}

// FindMarkers implements repository.CafeRepository.
func (r *cafeRepository) FindMarkers(_ context.Context) ([]entity.CafeMarker, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := s.match(repository.CafeFilter{VerifiedOnly: true})
	sortCafes(matches, repository.CafeSort{Field: repository.SortByCreatedAt, Desc: true}, nil)

	markers := make([]entity.CafeMarker, 0, len(matches))
	for _, m := range matches {
		markers = append(markers, entity.MarkerOf(m.cafe))
	}

	return markers, nil
}

// SaveSubmitterContact implements repository.CafeRepository.
func (r *cafeRepository) SaveSubmitterContact(ctx context.Context, contact *entity.SubmitterContact) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cafes[contact.CafeID]; !ok {
		return repository.ErrCafeNotFound
	}
	s.remember(ctx, contact.CafeID)

	cp := *contact
	s.contacts[contact.CafeID] = &cp

	return nil
}

type cafeMatch struct {
	cafe     *entity.Cafe
	distance float64
}

// match must be called with s.mu held.
func (s *Store) match(filter repository.CafeFilter) []cafeMatch {
	var (
		center orb.Point
		bound  orb.Bound
	)
	if filter.Near != nil {
		center = orb.Point{filter.Near.Center.Lng, filter.Near.Center.Lat}
		bound = geo.NewBoundAroundPoint(center, filter.Near.RadiusMeters)
	}
	search := strings.ToLower(filter.Search)

	matches := make([]cafeMatch, 0, len(s.cafes))
	for _, cafe := range s.cafes {
		if filter.VerifiedOnly && !cafe.Verified {
			continue
		}
		if filter.PriceRange != "" && cafe.PriceRange != filter.PriceRange {
			continue
		}
		if !cafe.Features.HasAll(filter.Features) {
			continue
		}
		if search != "" && !matchesSearch(cafe, search) {
			continue
		}

		m := cafeMatch{cafe: cafe}
		if filter.Near != nil {
			point := orb.Point{cafe.Location.Lng, cafe.Location.Lat}
			if !bound.Contains(point) {
				continue
			}
			m.distance = geo.Distance(center, point)
			if m.distance > filter.Near.RadiusMeters {
				continue
			}
		}
		matches = append(matches, m)
	}

	return matches
}

func matchesSearch(cafe *entity.Cafe, needle string) bool {
	if strings.Contains(strings.ToLower(cafe.Name), needle) ||
		strings.Contains(strings.ToLower(cafe.Description), needle) {
		return true
	}

	return slices.ContainsFunc(cafe.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

// sortCafes orders by featured desc, the requested field, createdAt desc, then id.
func sortCafes(matches []cafeMatch, sort repository.CafeSort, near *repository.GeoFilter) {
	slices.SortFunc(matches, func(a, b cafeMatch) int {
		if a.cafe.Featured != b.cafe.Featured {
			if a.cafe.Featured {
				return -1
			}

			return 1
		}

		if c := compareField(a, b, sort.Field, near != nil); c != 0 {
			if sort.Desc {
				return -c
			}

			return c
		}

		if c := b.cafe.CreatedAt.Compare(a.cafe.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.cafe.ID.String(), b.cafe.ID.String())
	})
}

func compareField(a, b cafeMatch, field repository.SortField, hasCenter bool) int {
	switch field {
	case repository.SortByRating:
		return cmp.Compare(a.cafe.AverageRating, b.cafe.AverageRating)
	case repository.SortByReviews:
		return cmp.Compare(a.cafe.TotalReviews, b.cafe.TotalReviews)
	case repository.SortByName:
		return strings.Compare(strings.ToLower(a.cafe.Name), strings.ToLower(b.cafe.Name))
	case repository.SortByCreatedAt:
		return a.cafe.CreatedAt.Compare(b.cafe.CreatedAt)
	case repository.SortByDistance:
		if !hasCenter {
			return cmp.Compare(a.cafe.AverageRating, b.cafe.AverageRating)
		}

		return cmp.Compare(a.distance, b.distance)
	default:
		return 0
	}
}
