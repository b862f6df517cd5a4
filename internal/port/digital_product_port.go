package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
)

type DigitalProductRepository interface {
	GetDigitalProduct(ctx context.Context, id uuid.UUID) (domain.DigitalProduct, error)
	ListDigitalProducts(ctx context.Context, filter domain.DigitalProductFilter, page domain.Page) ([]domain.DigitalProduct, int64, error)

	InsertDigitalProduct(ctx context.Context, dp domain.DigitalProduct) (uuid.UUID, error)

	SoftDeleteDigitalProduct(ctx context.Context, id uuid.UUID) error

	// DeleteDigitalProduct hard-deletes, used only by saga compensations.
	DeleteDigitalProduct(ctx context.Context, id uuid.UUID) error
}

// MediaRepository is the sole write path for media rows.
type MediaRepository interface {
	ListMedias(ctx context.Context, digitalProductID uuid.UUID) ([]domain.Media, error)

	// EnsureMedias persists the batch idempotently: each distinct
	// (fileID, type) pair exists exactly once afterwards, no matter how often
	// the batch or an overlapping batch is submitted. Returns the full current
	// set and the subset this call actually inserted; only the latter may be
	// deleted on rollback.
	EnsureMedias(ctx context.Context, digitalProductID uuid.UUID, batch []domain.Media) (all, created []domain.Media, err error)

	// DeleteMedias hard-deletes by id, used only by saga compensations.
	DeleteMedias(ctx context.Context, ids []uuid.UUID) error
}
