package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
	"github.com/INFIxChatnify/mercur/internal/service"
	"github.com/INFIxChatnify/mercur/internal/workflow"
)

type mediaRequest struct {
	FileID   string `json:"file_id"`
	MimeType string `json:"mime_type"`
	Type     string `json:"type"`
}

type priceRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type createDigitalProductRequest struct {
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Medias   []mediaRequest    `json:"medias,omitempty"`

	ProductID       string       `json:"product_id,omitempty"`
	ProductTitle    string       `json:"product_title,omitempty"`
	Price           priceRequest `json:"price"`
	RequireApproval bool         `json:"require_approval,omitempty"`
}

type mediaResponse struct {
	ID       uuid.UUID `json:"id"`
	FileID   string    `json:"file_id"`
	MimeType string    `json:"mime_type"`
	Type     string    `json:"type"`
	URL      string    `json:"url,omitempty"`
}

type digitalProductResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	ProductVariantID uuid.UUID         `json:"product_variant_id"`
	Medias           []mediaResponse   `json:"medias"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type listResponse[T any] struct {
	Items  []T   `json:"items"`
	Count  int64 `json:"count"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func (s *Server) createDigitalProduct(w http.ResponseWriter, r *http.Request) (int, error) {
	var req createDigitalProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return http.StatusBadRequest, fmt.Errorf("decode body: %w", err)
	}

	input := workflow.CreateDigitalProductInput{
		AuthIdentityID:  r.Header.Get(identityHeader),
		Name:            req.Name,
		Metadata:        req.Metadata,
		ProductTitle:    req.ProductTitle,
		RequireApproval: req.RequireApproval,
	}

	for _, m := range req.Medias {
		mediaType, err := domain.ToMediaType(m.Type)
		if err != nil {
			return 0, domain.Validation("medias", fmt.Sprintf("%s: %s", m.FileID, err))
		}
		input.Medias = append(input.Medias, domain.Media{
			FileID:   m.FileID,
			MimeType: m.MimeType,
			Type:     mediaType,
		})
	}

	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return 0, domain.Validation("product_id", err.Error())
		}
		input.ProductID = productID
	}

	if req.Price.Amount != "" {
		price, err := parsePrice(req.Price)
		if err != nil {
			return 0, err
		}
		input.Price = price
	}

	dp, err := s.digitalProducts.CreateDigitalProduct(r.Context(), input)
	if errors.Is(err, domain.ErrRequestPending) {
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "pending_approval"})
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("create digital product: %w", err)
	}

	writeJSON(w, http.StatusCreated, mapDigitalProduct(dp))
	return 0, nil
}

func (s *Server) listDigitalProducts(w http.ResponseWriter, r *http.Request) (int, error) {
	page := parsePage(r)

	var filter domain.DigitalProductFilter
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Names = []string{name}
	}

	dps, count, err := s.digitalProducts.ListDigitalProducts(r.Context(), filter, page)
	if err != nil {
		return 0, fmt.Errorf("list digital products: %w", err)
	}

	writeJSON(w, http.StatusOK, listResponse[digitalProductResponse]{
		Items:  lo.Map(dps, func(dp domain.DigitalProduct, _ int) digitalProductResponse { return mapDigitalProduct(dp) }),
		Count:  count,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	return 0, nil
}

func (s *Server) getDigitalProduct(w http.ResponseWriter, r *http.Request) (int, error) {
	id, err := parseIDParam(r)
	if err != nil {
		return 0, err
	}

	dp, err := s.digitalProducts.GetDigitalProduct(r.Context(), id)
	if err != nil {
		return 0, fmt.Errorf("get digital product: %w", err)
	}

	writeJSON(w, http.StatusOK, mapDigitalProduct(dp))
	return 0, nil
}

func (s *Server) deleteDigitalProduct(w http.ResponseWriter, r *http.Request) (int, error) {
	id, err := parseIDParam(r)
	if err != nil {
		return 0, err
	}

	if err := s.digitalProducts.SoftDeleteDigitalProduct(r.Context(), id); err != nil {
		return 0, fmt.Errorf("delete digital product: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return 0, nil
}

type createRequestRequest struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Draft bool            `json:"draft,omitempty"`
}

type requestResponse struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Data        json.RawMessage `json:"data"`
	SubmitterID string          `json:"submitter_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) (int, error) {
	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return http.StatusBadRequest, fmt.Errorf("decode body: %w", err)
	}

	requestType, err := domain.ToRequestType(req.Type)
	if err != nil {
		return 0, domain.Validation("type", err.Error())
	}

	request, err := s.requests.CreateRequest(r.Context(), service.CreateRequestInput{
		Type:        requestType,
		Data:        req.Data,
		SubmitterID: r.Header.Get(identityHeader),
		Draft:       req.Draft,
	})
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	writeJSON(w, http.StatusCreated, mapRequest(request))
	return 0, nil
}

func (s *Server) submitRequest(w http.ResponseWriter, r *http.Request) (int, error) {
	id, err := parseIDParam(r)
	if err != nil {
		return 0, err
	}

	request, err := s.requests.SubmitRequest(r.Context(), id)
	if err != nil {
		return 0, fmt.Errorf("submit request: %w", err)
	}

	writeJSON(w, http.StatusOK, mapRequest(request))
	return 0, nil
}

func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) (int, error) {
	page := parsePage(r)

	var filter port.RequestFilter
	if t := r.URL.Query().Get("type"); t != "" {
		requestType, err := domain.ToRequestType(t)
		if err != nil {
			return 0, domain.Validation("type", err.Error())
		}
		filter.Types = []domain.RequestType{requestType}
	}
	if st := r.URL.Query().Get("status"); st != "" {
		status, err := domain.ToRequestStatus(st)
		if err != nil {
			return 0, domain.Validation("status", err.Error())
		}
		filter.Statuses = []domain.RequestStatus{status}
	}
	if sub := r.URL.Query().Get("submitter_id"); sub != "" {
		filter.SubmitterIDs = []string{sub}
	}

	requests, count, err := s.requests.ListRequests(r.Context(), filter, page)
	if err != nil {
		return 0, fmt.Errorf("list requests: %w", err)
	}

	writeJSON(w, http.StatusOK, listResponse[requestResponse]{
		Items:  lo.Map(requests, func(req domain.Request, _ int) requestResponse { return mapRequest(req) }),
		Count:  count,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	return 0, nil
}

type decideRequestRequest struct {
	Decision string `json:"decision"`
}

func (s *Server) decideRequest(w http.ResponseWriter, r *http.Request) (int, error) {
	id, err := parseIDParam(r)
	if err != nil {
		return 0, err
	}

	var req decideRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return http.StatusBadRequest, fmt.Errorf("decode body: %w", err)
	}

	var approve bool
	switch req.Decision {
	case "approve":
		approve = true
	case "reject":
		approve = false
	default:
		return 0, domain.Validation("decision", fmt.Sprintf("must be approve or reject, got %q", req.Decision))
	}

	request, err := s.requests.DecideRequest(r.Context(), id, approve)
	if err != nil {
		return 0, fmt.Errorf("decide request: %w", err)
	}

	writeJSON(w, http.StatusOK, mapRequest(request))
	return 0, nil
}

type sellerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Handle    string    `json:"handle"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) listSellers(w http.ResponseWriter, r *http.Request) (int, error) {
	page := parsePage(r)

	sellers, count, err := s.sellers.ListSellers(r.Context(), page)
	if err != nil {
		return 0, fmt.Errorf("list sellers: %w", err)
	}

	writeJSON(w, http.StatusOK, listResponse[sellerResponse]{
		Items: lo.Map(sellers, func(seller domain.Seller, _ int) sellerResponse {
			return sellerResponse{
				ID:        seller.ID,
				Name:      seller.Name,
				Handle:    seller.Handle,
				CreatedAt: seller.CreatedAt,
			}
		}),
		Count:  count,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	return 0, nil
}

type createOrderRequest struct {
	DigitalProductIDs []string `json:"digital_product_ids"`
}

type orderResponse struct {
	ID         uuid.UUID   `json:"id"`
	Status     string      `json:"status"`
	ProductIDs []uuid.UUID `json:"digital_product_ids"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) (int, error) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return http.StatusBadRequest, fmt.Errorf("decode body: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(req.DigitalProductIDs))
	for _, raw := range req.DigitalProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return 0, domain.Validation("digital_product_ids", err.Error())
		}
		ids = append(ids, id)
	}

	order, err := s.orders.Run(r.Context(), workflow.CreateOrderInput{DigitalProductIDs: ids})
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	writeJSON(w, http.StatusCreated, orderResponse{
		ID:         order.ID,
		Status:     string(order.Status),
		ProductIDs: order.ProductIDs,
		CreatedAt:  order.CreatedAt,
	})
	return 0, nil
}

func mapDigitalProduct(dp domain.DigitalProduct) digitalProductResponse {
	return digitalProductResponse{
		ID:               dp.ID,
		Name:             dp.Name,
		ProductVariantID: dp.ProductVariantID,
		Medias: lo.Map(dp.Medias, func(m domain.Media, _ int) mediaResponse {
			return mediaResponse{
				ID:       m.ID,
				FileID:   m.FileID,
				MimeType: m.MimeType,
				Type:     string(m.Type),
				URL:      m.URL,
			}
		}),
		Metadata:  dp.Metadata,
		CreatedAt: dp.CreatedAt,
	}
}

func mapRequest(req domain.Request) requestResponse {
	return requestResponse{
		ID:          req.ID,
		Type:        string(req.Type),
		Status:      string(req.Status),
		Data:        req.Data,
		SubmitterID: req.SubmitterID,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}

func parsePrice(p priceRequest) (domain.Money, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return domain.Money{}, domain.Validation("price.amount", err.Error())
	}

	unit, err := currency.ParseISO(p.Currency)
	if err != nil {
		return domain.Money{}, domain.Validation("price.currency", err.Error())
	}

	return domain.Money{Amount: amount, Currency: unit}, nil
}

func parseIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.Validation("id", err.Error())
	}
	return id, nil
}

func parsePage(r *http.Request) domain.Page {
	var page domain.Page
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		page.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		page.Offset = offset
	}
	return page.Normalize()
}
