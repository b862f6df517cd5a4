package domain

import (
	"time"

	"github.com/google/uuid"
)

// DigitalProduct is a sellable non-physical good. It owns its medias and is
// linked 1:1 to a product variant owned by the product catalog.
type DigitalProduct struct {
	ID               uuid.UUID
	Name             string
	ProductVariantID uuid.UUID
	Medias           []Media
	Metadata         map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
