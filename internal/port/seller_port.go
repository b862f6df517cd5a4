package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
)

// SellerResolver is the access-control boundary: it maps a caller identity to
// the seller it may act as, or domain.ErrUnauthorized.
type SellerResolver interface {
	ResolveSellerForCaller(ctx context.Context, authIdentityID string) (domain.Seller, error)
}

type SellerRepository interface {
	SellerResolver

	GetSeller(ctx context.Context, id uuid.UUID) (domain.Seller, error)
	ListSellers(ctx context.Context, page domain.Page) ([]domain.Seller, int64, error)

	InsertSeller(ctx context.Context, seller domain.Seller) (uuid.UUID, error)
	InsertMember(ctx context.Context, member domain.Member) (uuid.UUID, error)
	InsertOnboarding(ctx context.Context, onboarding domain.SellerOnboarding) (uuid.UUID, error)

	// Hard deletes, used only by saga compensations.
	DeleteSeller(ctx context.Context, id uuid.UUID) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
	DeleteOnboarding(ctx context.Context, id uuid.UUID) error
}
