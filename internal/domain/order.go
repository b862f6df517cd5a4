package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusSent    OrderStatus = "sent"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending: {},
	OrderStatusSent:    {},
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid order status")
}

// DigitalProductOrder links a fulfilled purchase to the digital products it
// grants access to.
type DigitalProductOrder struct {
	ID         uuid.UUID
	Status     OrderStatus
	ProductIDs []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}
