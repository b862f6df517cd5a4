package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
	"github.com/INFIxChatnify/mercur/internal/saga"
)

// CreateDigitalProductInput is everything one saga run needs. Re-invoking with
// the same input after a partial failure is the supported retry path.
type CreateDigitalProductInput struct {
	AuthIdentityID string

	Name     string
	Metadata map[string]string
	Medias   []domain.Media

	// ProductID reuses an externally created product instead of creating one.
	ProductID    uuid.UUID
	ProductTitle string
	Price        domain.Money

	// RequireApproval gates the run behind a review: a pending request is
	// created and the saga halts with domain.ErrRequestPending.
	RequireApproval bool
}

type createDigitalProductState struct {
	input CreateDigitalProductInput

	seller           domain.Seller
	productID        uuid.UUID
	productVariantID uuid.UUID
	digitalProductID uuid.UUID
}

type CreateDigitalProduct struct {
	coordinator     saga.Coordinator[createDigitalProductState]
	digitalProducts port.DigitalProductRepository
}

func NewCreateDigitalProduct(
	sellers port.SellerResolver,
	products port.ProductRepository,
	digitalProducts port.DigitalProductRepository,
	medias port.MediaRepository,
	requests port.RequestRepository,
	emitter port.EventEmitter,
	logger zerolog.Logger,
) (CreateDigitalProduct, error) {
	var w CreateDigitalProduct

	if sellers == nil {
		return w, fmt.Errorf("sellers is nil")
	}
	if products == nil {
		return w, fmt.Errorf("products is nil")
	}
	if digitalProducts == nil {
		return w, fmt.Errorf("digitalProducts is nil")
	}
	if medias == nil {
		return w, fmt.Errorf("medias is nil")
	}
	if requests == nil {
		return w, fmt.Errorf("requests is nil")
	}
	if emitter == nil {
		return w, fmt.Errorf("emitter is nil")
	}

	steps, err := buildCreateDigitalProductSteps(sellers, products, digitalProducts, medias, requests, emitter, logger)
	if err != nil {
		return w, fmt.Errorf("buildCreateDigitalProductSteps: %w", err)
	}

	coordinator, err := saga.NewCoordinator("create_digital_product", logger, steps...)
	if err != nil {
		return w, fmt.Errorf("saga.NewCoordinator: %w", err)
	}

	return CreateDigitalProduct{
		coordinator:     coordinator,
		digitalProducts: digitalProducts,
	}, nil
}

// Run executes the saga and returns the created digital product. On failure
// every record the run created is compensated away before the error returns.
func (w CreateDigitalProduct) Run(ctx context.Context, input CreateDigitalProductInput) (domain.DigitalProduct, error) {
	var dp domain.DigitalProduct

	if input.Name == "" {
		return dp, domain.Validation("name", "is empty")
	}
	if input.ProductID == uuid.Nil && input.ProductTitle == "" {
		return dp, domain.Validation("productTitle", "is empty")
	}

	state := createDigitalProductState{input: input}

	if err := w.coordinator.Run(ctx, &state); err != nil {
		return dp, err
	}

	dp, err := w.digitalProducts.GetDigitalProduct(ctx, state.digitalProductID)
	if err != nil {
		return dp, fmt.Errorf("digitalProducts.GetDigitalProduct: %w", err)
	}

	return dp, nil
}

func buildCreateDigitalProductSteps(
	sellers port.SellerResolver,
	products port.ProductRepository,
	digitalProducts port.DigitalProductRepository,
	medias port.MediaRepository,
	requests port.RequestRepository,
	emitter port.EventEmitter,
	logger zerolog.Logger,
) ([]saga.Step[createDigitalProductState], error) {
	type state = createDigitalProductState

	var results []saga.Step[state]

	resolveSeller, err := saga.NewStep("resolve_seller",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			seller, err := sellers.ResolveSellerForCaller(ctx, s.input.AuthIdentityID)
			if err != nil {
				return nil, fmt.Errorf("sellers.ResolveSellerForCaller: %w", err)
			}

			s.seller = seller
			return nil, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, resolveSeller)

	// The pending request deliberately registers no compensation: it is the
	// durable review artifact and must survive the unwind the halt triggers.
	// Re-invoking the saga first consults the submitter's latest product
	// request: approved means the review is done and the run proceeds, an
	// open one means the review is still in flight, and only when neither
	// exists (or the last one was rejected) is a new request opened.
	reviewGate, err := saga.NewStep("review_gate",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			if !s.input.RequireApproval {
				return nil, nil
			}

			latest, err := requests.FindLatestRequest(ctx, s.input.AuthIdentityID, domain.RequestTypeProduct)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("requests.FindLatestRequest: %w", err)
			}

			if err == nil {
				switch {
				case latest.Status == domain.RequestStatusApproved:
					// reuse the product the approval materialized
					var approved domain.ProductRequestData
					if err := json.Unmarshal(latest.Data, &approved); err != nil {
						return nil, fmt.Errorf("json.Unmarshal: %w", err)
					}
					if s.input.ProductID == uuid.Nil && approved.ProductID != "" {
						productID, err := uuid.Parse(approved.ProductID)
						if err != nil {
							return nil, fmt.Errorf("uuid.Parse[%s]: %w", approved.ProductID, err)
						}
						s.input.ProductID = productID
					}
					return nil, nil
				case latest.Status.Open():
					// review still in flight, do not mint another request
					return nil, domain.ErrRequestPending
				}
			}

			title := s.input.ProductTitle
			if title == "" {
				title = s.input.Name
			}

			data, err := json.Marshal(domain.ProductRequestData{
				Title: title,
				Price: domain.ProductRequestPrice{
					Amount:   s.input.Price.Amount,
					Currency: s.input.Price.Currency.String(),
				},
				Metadata: s.input.Metadata,
			})
			if err != nil {
				return nil, fmt.Errorf("json.Marshal: %w", err)
			}

			requestID, err := requests.InsertRequest(ctx, domain.Request{
				Type:        domain.RequestTypeProduct,
				Status:      domain.RequestStatusPending,
				Data:        data,
				SubmitterID: s.input.AuthIdentityID,
			})
			if err != nil {
				return nil, fmt.Errorf("requests.InsertRequest: %w", err)
			}

			if err := emitter.Emit(ctx, domain.EventProductRequestCreated, domain.RequestEventPayload{
				ID:          requestID,
				Type:        domain.RequestTypeProduct,
				Status:      domain.RequestStatusPending,
				SubmitterID: s.input.AuthIdentityID,
			}); err != nil {
				logger.Warn().Err(err).Msg("emit product request created")
			}

			return nil, domain.ErrRequestPending
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, reviewGate)

	createProduct, err := saga.NewStep("create_product",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			// compose with an externally created product when given one
			if s.input.ProductID != uuid.Nil {
				product, err := products.GetProduct(ctx, s.input.ProductID)
				if err != nil {
					return nil, fmt.Errorf("products.GetProduct: %w", err)
				}
				if len(product.Variants) == 0 {
					return nil, domain.Validation("productId", "product has no variants")
				}

				s.productID = product.ID
				s.productVariantID = product.Variants[0].ID
				return nil, nil
			}

			productID, err := products.InsertProduct(ctx, domain.Product{
				Title:    s.input.ProductTitle,
				Status:   domain.ProductStatusProposed,
				SellerID: s.seller.ID,
				Variants: []domain.ProductVariant{
					{
						Title:           s.input.ProductTitle,
						Price:           s.input.Price,
						ManageInventory: false,
						AllowBackorder:  true,
					},
				},
			})
			if err != nil {
				return nil, fmt.Errorf("products.InsertProduct: %w", err)
			}

			product, err := products.GetProduct(ctx, productID)
			if err != nil {
				return nil, fmt.Errorf("products.GetProduct: %w", err)
			}
			if len(product.Variants) == 0 {
				return nil, fmt.Errorf("product[%s] has no variants", productID)
			}

			s.productID = product.ID
			s.productVariantID = product.Variants[0].ID

			return func(ctx context.Context, s *state) error {
				return products.DeleteProduct(ctx, s.productID)
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, createProduct)

	createDigitalProduct, err := saga.NewStep("create_digital_product",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			id, err := digitalProducts.InsertDigitalProduct(ctx, domain.DigitalProduct{
				Name:             s.input.Name,
				ProductVariantID: s.productVariantID,
				Metadata:         s.input.Metadata,
			})
			if err != nil {
				return nil, fmt.Errorf("digitalProducts.InsertDigitalProduct: %w", err)
			}

			s.digitalProductID = id

			return func(ctx context.Context, s *state) error {
				return digitalProducts.DeleteDigitalProduct(ctx, s.digitalProductID)
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, createDigitalProduct)

	ensureMedias, err := saga.NewStep("ensure_medias",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			if len(s.input.Medias) == 0 {
				return nil, nil
			}

			_, created, err := medias.EnsureMedias(ctx, s.digitalProductID, s.input.Medias)
			if err != nil {
				return nil, fmt.Errorf("medias.EnsureMedias: %w", err)
			}

			// undo only what this run inserted, earlier runs keep their rows
			createdIDs := lo.Map(created, func(m domain.Media, _ int) uuid.UUID { return m.ID })

			return func(ctx context.Context, _ *state) error {
				return medias.DeleteMedias(ctx, createdIDs)
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, ensureMedias)

	emitCreated, err := saga.NewStep("emit_created",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			if err := emitter.Emit(ctx, domain.EventDigitalProductCreated, domain.DigitalProductCreatedPayload{
				ID:               s.digitalProductID,
				Name:             s.input.Name,
				ProductVariantID: s.productVariantID,
				SellerID:         s.seller.ID,
			}); err != nil {
				// fire and forget, emission never rolls back the saga
				logger.Warn().Err(err).Msg("emit digital product created")
			}

			return nil, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, emitCreated)

	return results, nil
}
