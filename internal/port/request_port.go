package port

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
)

// RequestFilter has AND semantics across fields, OR semantics within each field slice.
type RequestFilter struct {
	Types        []domain.RequestType
	Statuses     []domain.RequestStatus
	SubmitterIDs []string
}

type RequestRepository interface {
	GetRequest(ctx context.Context, id uuid.UUID) (domain.Request, error)
	ListRequests(ctx context.Context, filter RequestFilter, page domain.Page) ([]domain.Request, int64, error)

	// FindOpenRequest returns the draft or pending request for the
	// (submitter, type) pair, or domain.ErrNotFound.
	FindOpenRequest(ctx context.Context, submitterID string, requestType domain.RequestType) (domain.Request, error)

	// FindLatestRequest returns the newest request for the (submitter, type)
	// pair regardless of status, or domain.ErrNotFound.
	FindLatestRequest(ctx context.Context, submitterID string, requestType domain.RequestType) (domain.Request, error)

	InsertRequest(ctx context.Context, request domain.Request) (uuid.UUID, error)

	// UpdateRequestStatus is the only permitted status mutation.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error

	// UpdateRequestData exists solely to attach the materialized entity id.
	UpdateRequestData(ctx context.Context, id uuid.UUID, data json.RawMessage) error
}
