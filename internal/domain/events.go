package domain

import "github.com/google/uuid"

// Domain event names. Emission is fire-and-forget, failures never roll back
// the operation that produced the event.
const (
	EventDigitalProductCreated      = "digital_product.created"
	EventDigitalProductOrderCreated = "digital_product_order.created"
	EventSellerCreated              = "seller.created"
	EventSellerRequestCreated       = "seller.request.created"
	EventProductRequestCreated      = "product.request.created"
	EventRequestUpdated             = "request.updated"
)

type DigitalProductCreatedPayload struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	SellerID         uuid.UUID `json:"seller_id"`
}

type RequestEventPayload struct {
	ID          uuid.UUID     `json:"id"`
	Type        RequestType   `json:"type"`
	Status      RequestStatus `json:"status"`
	SubmitterID string        `json:"submitter_id"`
}

type SellerCreatedPayload struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Handle string    `json:"handle"`
}

type OrderCreatedPayload struct {
	ID         uuid.UUID   `json:"id"`
	Status     OrderStatus `json:"status"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}
