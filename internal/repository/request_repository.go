package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/INFIxChatnify/mercur/internal/db"
	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

type requestRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewRequest(pool *pgxpool.Pool) port.RequestRepository {
	return &requestRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewRequestWithTx(tx pgx.Tx) port.RequestRepository {
	return &requestRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *requestRepository) GetRequest(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	var req domain.Request

	if id == uuid.Nil {
		return req, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return req, fmt.Errorf("q.GetRequest: %w", ErrNotFound)
		}
		return req, fmt.Errorf("q.GetRequest: %w", err)
	}

	req, err = mapDBRequestToDomain(row)
	if err != nil {
		return req, fmt.Errorf("mapDBRequestToDomain: %w", err)
	}

	return req, nil
}

func (r *requestRepository) ListRequests(ctx context.Context, filter port.RequestFilter, page domain.Page) ([]domain.Request, int64, error) {
	page = page.Normalize()

	types := lo.Map(filter.Types, func(t domain.RequestType, _ int) string { return string(t) })
	statuses := lo.Map(filter.Statuses, func(s domain.RequestStatus, _ int) string { return string(s) })

	rows, err := r.q.ListRequests(ctx, db.ListRequestsParams{
		Types:        nilSliceIfEmpty(types),
		Statuses:     nilSliceIfEmpty(statuses),
		SubmitterIds: nilSliceIfEmpty(filter.SubmitterIDs),
		RowLimit:     int32(page.Limit),
		RowOffset:    int32(page.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.ListRequests: %w", err)
	}

	count, err := r.q.CountRequests(ctx, db.CountRequestsParams{
		Types:        nilSliceIfEmpty(types),
		Statuses:     nilSliceIfEmpty(statuses),
		SubmitterIds: nilSliceIfEmpty(filter.SubmitterIDs),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.CountRequests: %w", err)
	}

	requests := make([]domain.Request, 0, len(rows))
	for _, row := range rows {
		req, err := mapDBRequestToDomain(row)
		if err != nil {
			return nil, 0, fmt.Errorf("mapDBRequestToDomain: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, count, nil
}

func (r *requestRepository) FindOpenRequest(ctx context.Context, submitterID string, requestType domain.RequestType) (domain.Request, error) {
	var req domain.Request

	if submitterID == "" {
		return req, fmt.Errorf("submitterID is empty")
	}

	row, err := r.q.FindOpenRequest(ctx, db.FindOpenRequestParams{
		SubmitterID: submitterID,
		Type:        string(requestType),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return req, fmt.Errorf("q.FindOpenRequest: %w", ErrNotFound)
		}
		return req, fmt.Errorf("q.FindOpenRequest: %w", err)
	}

	req, err = mapDBRequestToDomain(row)
	if err != nil {
		return req, fmt.Errorf("mapDBRequestToDomain: %w", err)
	}

	return req, nil
}

func (r *requestRepository) FindLatestRequest(ctx context.Context, submitterID string, requestType domain.RequestType) (domain.Request, error) {
	var req domain.Request

	if submitterID == "" {
		return req, fmt.Errorf("submitterID is empty")
	}

	row, err := r.q.FindLatestRequest(ctx, db.FindLatestRequestParams{
		SubmitterID: submitterID,
		Type:        string(requestType),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return req, fmt.Errorf("q.FindLatestRequest: %w", ErrNotFound)
		}
		return req, fmt.Errorf("q.FindLatestRequest: %w", err)
	}

	req, err = mapDBRequestToDomain(row)
	if err != nil {
		return req, fmt.Errorf("mapDBRequestToDomain: %w", err)
	}

	return req, nil
}

func (r *requestRepository) InsertRequest(ctx context.Context, request domain.Request) (uuid.UUID, error) {
	if request.SubmitterID == "" {
		return uuid.Nil, domain.Validation("submitterId", "is empty")
	}
	if _, err := domain.ToRequestType(string(request.Type)); err != nil {
		return uuid.Nil, domain.Validation("type", fmt.Sprintf("%q is not a request type", request.Type))
	}
	if _, err := domain.ToRequestStatus(string(request.Status)); err != nil {
		return uuid.Nil, domain.Validation("status", fmt.Sprintf("%q is not a request status", request.Status))
	}

	id, err := r.q.InsertRequest(ctx, db.InsertRequestParams{
		Type:        string(request.Type),
		Status:      string(request.Status),
		Data:        emptyJSONIfNil(request.Data),
		SubmitterID: request.SubmitterID,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertRequest: %w", err)
	}

	return id, nil
}

func (r *requestRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	cmdTag, err := r.q.UpdateRequestStatus(ctx, db.UpdateRequestStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateRequestStatus: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.UpdateRequestStatus: %w", ErrNotFound)
	}

	return nil
}

func (r *requestRepository) UpdateRequestData(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	cmdTag, err := r.q.UpdateRequestData(ctx, db.UpdateRequestDataParams{
		ID:   id,
		Data: emptyJSONIfNil(data),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateRequestData: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.UpdateRequestData: %w", ErrNotFound)
	}

	return nil
}

func mapDBRequestToDomain(row db.Request) (domain.Request, error) {
	var req domain.Request

	requestType, err := domain.ToRequestType(row.Type)
	if err != nil {
		return req, fmt.Errorf("domain.ToRequestType[%s]: %w", row.Type, err)
	}

	status, err := domain.ToRequestStatus(row.Status)
	if err != nil {
		return req, fmt.Errorf("domain.ToRequestStatus[%s]: %w", row.Status, err)
	}

	return domain.Request{
		ID:          row.ID,
		Type:        requestType,
		Status:      status,
		Data:        row.Data,
		SubmitterID: row.SubmitterID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func emptyJSONIfNil(j []byte) []byte {
	if j == nil {
		return []byte(`{}`)
	}
	return j
}
