package usecase

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitCafeInput is a public cafe submission. Name, Address, OwnerName and OwnerPhone are required.
type SubmitCafeInput struct {
	Name        string
	Address     string
	Phone       string
	Website     string
	Description string
	PriceRange  entity.PriceRange
	Photos      []string
	Features    entity.FeatureSet
	Location    *entity.Location

	OwnerName  string
	OwnerPhone string
}

// EditCafeInput carries operator edits; nil fields are left unchanged.
type EditCafeInput struct {
	Name         *string
	Description  *string
	Address      *string
	Phone        *string
	Website      *string
	PriceRange   *entity.PriceRange
	Features     entity.FeatureSet
	Photos       []string
	Tags         []string
	Location     *entity.Location
	OpeningHours map[string]entity.OpeningHours
}

// ModerationUsecase drives the pending -> verified -> featured lifecycle.
// Every operation except SubmitCafe requires the operator capability.
type ModerationUsecase interface {
	SubmitCafe(ctx context.Context, input *SubmitCafeInput) (*entity.Cafe, error)
	VerifyCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) (*entity.Cafe, error)
	FeatureCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) (*entity.Cafe, error)
	UnfeatureCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) (*entity.Cafe, error)
	EditCafe(ctx context.Context, id uuid.UUID, input *EditCafeInput, capability entity.Capability) (*entity.Cafe, error)
	DeleteCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) error
	VerifyAll(ctx context.Context, capability entity.Capability) (int64, error)
}
