package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
)

type OrderRepository interface {
	GetOrder(ctx context.Context, id uuid.UUID) (domain.DigitalProductOrder, error)

	// InsertOrder persists the order together with its product links.
	InsertOrder(ctx context.Context, order domain.DigitalProductOrder) (uuid.UUID, error)

	// DeleteOrder hard-deletes the order and its links, used only by saga
	// compensations.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
