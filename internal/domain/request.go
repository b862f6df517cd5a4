package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestType string

const (
	RequestTypeSeller  RequestType = "seller"
	RequestTypeProduct RequestType = "product"
)

var validRequestTypes = map[RequestType]struct{}{
	RequestTypeSeller:  {},
	RequestTypeProduct: {},
}

func ToRequestType(s string) (RequestType, error) {
	requestType := RequestType(s)
	if _, ok := validRequestTypes[requestType]; ok {
		return requestType, nil
	}

	return "", errors.New("invalid request type")
}

// Request is a pending action subject to review: creating a seller or a product.
// Data is the proposed entity's fields and is immutable after creation, except
// for the back-reference to the entity an approval materializes.
type Request struct {
	ID          uuid.UUID
	Type        RequestType
	Status      RequestStatus
	Data        json.RawMessage
	SubmitterID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SellerRequestData is the payload of a seller creation request.
type SellerRequestData struct {
	Seller struct {
		Name string `json:"name"`
	} `json:"seller"`
	Member struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"member"`
	SellerID string `json:"seller_id,omitempty"` // set on approval
}

// ProductRequestData is the payload of a product creation request. It carries
// the full proposed product, so an approval can materialize it with its
// variant instead of an empty shell.
type ProductRequestData struct {
	Title    string              `json:"title"`
	Price    ProductRequestPrice `json:"price"`
	Metadata map[string]string   `json:"metadata,omitempty"`

	ProductID string `json:"product_id,omitempty"` // set on approval
}

type ProductRequestPrice struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// WithEntityID returns a copy of data with the materialized entity id attached.
// The rest of the payload is left untouched.
func WithEntityID(data json.RawMessage, field string, id uuid.UUID) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	encoded, err := json.Marshal(id.String())
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}
	fields[field] = encoded

	updated, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return updated, nil
}
