package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusProposed  ProductStatus = "proposed"
	ProductStatusPublished ProductStatus = "published"
)

var validProductStatuses = map[ProductStatus]struct{}{
	ProductStatusDraft:     {},
	ProductStatusProposed:  {},
	ProductStatusPublished: {},
}

func ToProductStatus(s string) (ProductStatus, error) {
	status := ProductStatus(s)
	if _, ok := validProductStatuses[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid product status")
}

// Product is the parent catalog entity a digital product hangs off.
type Product struct {
	ID       uuid.UUID
	Title    string
	Handle   string
	Status   ProductStatus
	SellerID uuid.UUID
	Variants []ProductVariant

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// ProductVariant carries digital product defaults: inventory is not managed
// and backorders are allowed, there is nothing physical to run out of.
type ProductVariant struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	Title           string
	Price           Money
	ManageInventory bool
	AllowBackorder  bool

	CreatedAt time.Time
}
