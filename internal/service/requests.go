package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
	"github.com/INFIxChatnify/mercur/internal/workflow"
)

// RequestService owns the review lifecycle: open requests, submit drafts,
// decide pending ones. An approval materializes the requested entity before
// the status flips, so a failed materialization leaves the request pending
// and decidable again.
type RequestService struct {
	requests port.RequestRepository
	products port.ProductRepository
	resolver port.SellerResolver
	sellers  workflow.CreateSeller
	emitter  port.EventEmitter
	logger   zerolog.Logger
}

func NewRequestService(
	requests port.RequestRepository,
	products port.ProductRepository,
	resolver port.SellerResolver,
	sellers workflow.CreateSeller,
	emitter port.EventEmitter,
	logger zerolog.Logger,
) (RequestService, error) {
	var s RequestService

	if requests == nil {
		return s, fmt.Errorf("requests is nil")
	}
	if products == nil {
		return s, fmt.Errorf("products is nil")
	}
	if resolver == nil {
		return s, fmt.Errorf("resolver is nil")
	}
	if emitter == nil {
		return s, fmt.Errorf("emitter is nil")
	}

	return RequestService{
		requests: requests,
		products: products,
		resolver: resolver,
		sellers:  sellers,
		emitter:  emitter,
		logger:   logger,
	}, nil
}

type CreateRequestInput struct {
	Type        domain.RequestType
	Data        json.RawMessage
	SubmitterID string

	// Draft keeps the request editable, it must be submitted before review.
	Draft bool
}

func (s RequestService) CreateRequest(ctx context.Context, input CreateRequestInput) (domain.Request, error) {
	var req domain.Request

	if input.SubmitterID == "" {
		return req, domain.Validation("submitterId", "is empty")
	}
	if _, err := domain.ToRequestType(string(input.Type)); err != nil {
		return req, domain.Validation("type", fmt.Sprintf("%q is not a request type", input.Type))
	}

	// one open request per (submitter, type)
	_, err := s.requests.FindOpenRequest(ctx, input.SubmitterID, input.Type)
	if err == nil {
		return req, domain.ErrOpenRequestExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return req, fmt.Errorf("requests.FindOpenRequest: %w", err)
	}

	status := domain.RequestStatusPending
	if input.Draft {
		status = domain.RequestStatusDraft
	}

	id, err := s.requests.InsertRequest(ctx, domain.Request{
		Type:        input.Type,
		Status:      status,
		Data:        input.Data,
		SubmitterID: input.SubmitterID,
	})
	if err != nil {
		return req, fmt.Errorf("requests.InsertRequest: %w", err)
	}

	req, err = s.requests.GetRequest(ctx, id)
	if err != nil {
		return req, fmt.Errorf("requests.GetRequest: %w", err)
	}

	s.emit(ctx, requestCreatedEvent(req.Type), domain.RequestEventPayload{
		ID:          req.ID,
		Type:        req.Type,
		Status:      req.Status,
		SubmitterID: req.SubmitterID,
	})

	return req, nil
}

// SubmitRequest moves a draft into review.
func (s RequestService) SubmitRequest(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	var req domain.Request

	req, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return req, fmt.Errorf("requests.GetRequest: %w", err)
	}

	if _, err := req.Status.Transition(domain.RequestStatusPending); err != nil {
		return req, err
	}

	if err := s.requests.UpdateRequestStatus(ctx, id, domain.RequestStatusPending); err != nil {
		return req, fmt.Errorf("requests.UpdateRequestStatus: %w", err)
	}

	req.Status = domain.RequestStatusPending
	return req, nil
}

// DecideRequest approves or rejects a pending request. Approval materializes
// the target entity, attaches its id to the payload, then flips the status.
func (s RequestService) DecideRequest(ctx context.Context, id uuid.UUID, approve bool) (domain.Request, error) {
	var req domain.Request

	req, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return req, fmt.Errorf("requests.GetRequest: %w", err)
	}

	next := domain.RequestStatusRejected
	if approve {
		next = domain.RequestStatusApproved
	}

	if _, err := req.Status.Transition(next); err != nil {
		return req, err
	}

	if approve {
		if err := s.materialize(ctx, &req); err != nil {
			return req, fmt.Errorf("s.materialize: %w", err)
		}
	}

	if err := s.requests.UpdateRequestStatus(ctx, id, next); err != nil {
		return req, fmt.Errorf("requests.UpdateRequestStatus: %w", err)
	}
	req.Status = next

	s.emit(ctx, domain.EventRequestUpdated, domain.RequestEventPayload{
		ID:          req.ID,
		Type:        req.Type,
		Status:      req.Status,
		SubmitterID: req.SubmitterID,
	})

	return req, nil
}

func (s RequestService) ListRequests(ctx context.Context, filter port.RequestFilter, page domain.Page) ([]domain.Request, int64, error) {
	return s.requests.ListRequests(ctx, filter, page)
}

func (s RequestService) materialize(ctx context.Context, req *domain.Request) error {
	switch req.Type {
	case domain.RequestTypeSeller:
		return s.materializeSeller(ctx, req)
	case domain.RequestTypeProduct:
		return s.materializeProduct(ctx, req)
	default:
		return fmt.Errorf("unsupported request type: %s", req.Type)
	}
}

func (s RequestService) materializeSeller(ctx context.Context, req *domain.Request) error {
	var data domain.SellerRequestData
	if err := json.Unmarshal(req.Data, &data); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	// an earlier decision attempt already materialized the seller
	if data.SellerID != "" {
		return nil
	}

	seller, err := s.sellers.Run(ctx, workflow.CreateSellerInput{
		Name:           data.Seller.Name,
		MemberName:     data.Member.Name,
		MemberEmail:    data.Member.Email,
		AuthIdentityID: req.SubmitterID,
	})
	if err != nil {
		return fmt.Errorf("sellers.Run: %w", err)
	}

	return s.attachEntityID(ctx, req, "seller_id", seller.ID)
}

func (s RequestService) materializeProduct(ctx context.Context, req *domain.Request) error {
	var data domain.ProductRequestData
	if err := json.Unmarshal(req.Data, &data); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	// an earlier decision attempt already materialized the product
	if data.ProductID != "" {
		return nil
	}

	// the submitter id is the caller identity, not a seller id
	seller, err := s.resolver.ResolveSellerForCaller(ctx, req.SubmitterID)
	if err != nil {
		return fmt.Errorf("resolver.ResolveSellerForCaller: %w", err)
	}

	unit, err := currency.ParseISO(data.Price.Currency)
	if err != nil {
		return fmt.Errorf("currency.ParseISO[%s]: %w", data.Price.Currency, err)
	}

	productID, err := s.products.InsertProduct(ctx, domain.Product{
		Title:    data.Title,
		Status:   domain.ProductStatusPublished,
		SellerID: seller.ID,
		Variants: []domain.ProductVariant{
			{
				Title: data.Title,
				Price: domain.Money{
					Amount:   data.Price.Amount,
					Currency: unit,
				},
				ManageInventory: false,
				AllowBackorder:  true,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("products.InsertProduct: %w", err)
	}

	return s.attachEntityID(ctx, req, "product_id", productID)
}

func (s RequestService) attachEntityID(ctx context.Context, req *domain.Request, field string, id uuid.UUID) error {
	data, err := domain.WithEntityID(req.Data, field, id)
	if err != nil {
		return fmt.Errorf("domain.WithEntityID: %w", err)
	}

	if err := s.requests.UpdateRequestData(ctx, req.ID, data); err != nil {
		return fmt.Errorf("requests.UpdateRequestData: %w", err)
	}

	req.Data = data
	return nil
}

func (s RequestService) emit(ctx context.Context, name string, payload any) {
	if err := s.emitter.Emit(ctx, name, payload); err != nil {
		s.logger.Warn().Err(err).Str("event", name).Msg("emit event")
	}
}

func requestCreatedEvent(requestType domain.RequestType) string {
	if requestType == domain.RequestTypeSeller {
		return domain.EventSellerRequestCreated
	}
	return domain.EventProductRequestCreated
}
