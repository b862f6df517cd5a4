package domain

import (
	"github.com/google/uuid"
)

// DigitalProductFilter has AND semantics across fields, OR semantics within each field slice.
// An empty filter matches everything.
type DigitalProductFilter struct {
	IDs               []uuid.UUID
	ProductVariantIDs []uuid.UUID
	Names             []string
}

// Page is offset pagination for listings. Zero Limit means DefaultPageLimit.
type Page struct {
	Limit  int
	Offset int
}

const DefaultPageLimit = 20

func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
