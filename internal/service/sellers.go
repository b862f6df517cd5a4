package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

// SellerService is a thin read surface over the seller store, for admin listings.
type SellerService struct {
	sellers port.SellerRepository
}

func NewSellerService(sellers port.SellerRepository) (SellerService, error) {
	if sellers == nil {
		return SellerService{}, fmt.Errorf("sellers is nil")
	}

	return SellerService{sellers: sellers}, nil
}

func (s SellerService) GetSeller(ctx context.Context, id uuid.UUID) (domain.Seller, error) {
	return s.sellers.GetSeller(ctx, id)
}

func (s SellerService) ListSellers(ctx context.Context, page domain.Page) ([]domain.Seller, int64, error) {
	return s.sellers.ListSellers(ctx, page)
}
