package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
)

type ProductRepository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)

	// InsertProduct persists the product together with its variants.
	InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error)

	// DeleteProduct hard-deletes the product and its variants, used only by
	// saga compensations.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
