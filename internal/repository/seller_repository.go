package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/INFIxChatnify/mercur/internal/db"
	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

type sellerRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewSeller(pool *pgxpool.Pool) port.SellerRepository {
	return &sellerRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewSellerWithTx(tx pgx.Tx) port.SellerRepository {
	return &sellerRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// ResolveSellerForCaller maps a caller identity to the seller it belongs to
// through seller membership. Unknown identities come back as
// domain.ErrUnauthorized, not ErrNotFound: the caller asked to act as a
// seller, not to look one up.
func (r *sellerRepository) ResolveSellerForCaller(ctx context.Context, authIdentityID string) (domain.Seller, error) {
	var seller domain.Seller

	if authIdentityID == "" {
		return seller, domain.ErrUnauthorized
	}

	row, err := r.q.GetSellerByAuthIdentity(ctx, authIdentityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return seller, domain.ErrUnauthorized
		}
		return seller, fmt.Errorf("q.GetSellerByAuthIdentity: %w", err)
	}

	return mapDBSellerToDomain(row), nil
}

func (r *sellerRepository) GetSeller(ctx context.Context, id uuid.UUID) (domain.Seller, error) {
	var seller domain.Seller

	if id == uuid.Nil {
		return seller, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetSeller(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return seller, fmt.Errorf("q.GetSeller: %w", ErrNotFound)
		}
		return seller, fmt.Errorf("q.GetSeller: %w", err)
	}

	return mapDBSellerToDomain(row), nil
}

func (r *sellerRepository) ListSellers(ctx context.Context, page domain.Page) ([]domain.Seller, int64, error) {
	page = page.Normalize()

	rows, err := r.q.ListSellers(ctx, db.ListSellersParams{
		RowLimit:  int32(page.Limit),
		RowOffset: int32(page.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.ListSellers: %w", err)
	}

	count, err := r.q.CountSellers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("q.CountSellers: %w", err)
	}

	sellers := make([]domain.Seller, 0, len(rows))
	for _, row := range rows {
		sellers = append(sellers, mapDBSellerToDomain(row))
	}

	return sellers, count, nil
}

func (r *sellerRepository) InsertSeller(ctx context.Context, seller domain.Seller) (uuid.UUID, error) {
	if seller.Name == "" {
		return uuid.Nil, domain.Validation("name", "is empty")
	}

	handle := seller.Handle
	if handle == "" {
		handle = domain.ToHandle(seller.Name)
	}

	id, err := r.q.InsertSeller(ctx, db.InsertSellerParams{
		Name:   seller.Name,
		Handle: handle,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertSeller: %w", err)
	}

	return id, nil
}

func (r *sellerRepository) InsertMember(ctx context.Context, member domain.Member) (uuid.UUID, error) {
	if member.SellerID == uuid.Nil {
		return uuid.Nil, domain.Validation("sellerId", "is empty")
	}
	if member.AuthIdentityID == "" {
		return uuid.Nil, domain.Validation("authIdentityId", "is empty")
	}

	id, err := r.q.InsertMember(ctx, db.InsertMemberParams{
		SellerID:       member.SellerID,
		Name:           member.Name,
		Email:          member.Email,
		Role:           member.Role,
		AuthIdentityID: member.AuthIdentityID,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertMember: %w", err)
	}

	return id, nil
}

func (r *sellerRepository) InsertOnboarding(ctx context.Context, onboarding domain.SellerOnboarding) (uuid.UUID, error) {
	if onboarding.SellerID == uuid.Nil {
		return uuid.Nil, domain.Validation("sellerId", "is empty")
	}

	id, err := r.q.InsertSellerOnboarding(ctx, db.InsertSellerOnboardingParams{
		SellerID:  onboarding.SellerID,
		Completed: onboarding.Completed,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertSellerOnboarding: %w", err)
	}

	return id, nil
}

func (r *sellerRepository) DeleteSeller(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	rows, err := r.q.DeleteSeller(ctx, id)
	if err != nil {
		return fmt.Errorf("q.DeleteSeller: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("q.DeleteSeller: %w", ErrNotFound)
	}

	return nil
}

func (r *sellerRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	rows, err := r.q.DeleteMember(ctx, id)
	if err != nil {
		return fmt.Errorf("q.DeleteMember: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("q.DeleteMember: %w", ErrNotFound)
	}

	return nil
}

func (r *sellerRepository) DeleteOnboarding(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	rows, err := r.q.DeleteSellerOnboarding(ctx, id)
	if err != nil {
		return fmt.Errorf("q.DeleteSellerOnboarding: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("q.DeleteSellerOnboarding: %w", ErrNotFound)
	}

	return nil
}

func mapDBSellerToDomain(row db.Seller) domain.Seller {
	return domain.Seller{
		ID:        row.ID,
		Name:      row.Name,
		Handle:    row.Handle,
		CreatedAt: row.CreatedAt,
		DeletedAt: row.DeletedAt,
	}
}
