package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
	"github.com/INFIxChatnify/mercur/internal/saga"
)

type CreateOrderInput struct {
	DigitalProductIDs []uuid.UUID
}

type createOrderState struct {
	input CreateOrderInput

	orderID uuid.UUID
}

// CreateOrder records a fulfilled purchase of digital products.
type CreateOrder struct {
	coordinator saga.Coordinator[createOrderState]
	orders      port.OrderRepository
}

func NewCreateOrder(
	orders port.OrderRepository,
	digitalProducts port.DigitalProductRepository,
	emitter port.EventEmitter,
	logger zerolog.Logger,
) (CreateOrder, error) {
	var w CreateOrder

	if orders == nil {
		return w, fmt.Errorf("orders is nil")
	}
	if digitalProducts == nil {
		return w, fmt.Errorf("digitalProducts is nil")
	}
	if emitter == nil {
		return w, fmt.Errorf("emitter is nil")
	}

	steps, err := buildCreateOrderSteps(orders, digitalProducts, emitter, logger)
	if err != nil {
		return w, fmt.Errorf("buildCreateOrderSteps: %w", err)
	}

	coordinator, err := saga.NewCoordinator("create_digital_product_order", logger, steps...)
	if err != nil {
		return w, fmt.Errorf("saga.NewCoordinator: %w", err)
	}

	return CreateOrder{
		coordinator: coordinator,
		orders:      orders,
	}, nil
}

func (w CreateOrder) Run(ctx context.Context, input CreateOrderInput) (domain.DigitalProductOrder, error) {
	var order domain.DigitalProductOrder

	if len(input.DigitalProductIDs) == 0 {
		return order, domain.Validation("digitalProductIds", "is empty")
	}

	state := createOrderState{input: input}

	if err := w.coordinator.Run(ctx, &state); err != nil {
		return order, err
	}

	order, err := w.orders.GetOrder(ctx, state.orderID)
	if err != nil {
		return order, fmt.Errorf("orders.GetOrder: %w", err)
	}

	return order, nil
}

func buildCreateOrderSteps(
	orders port.OrderRepository,
	digitalProducts port.DigitalProductRepository,
	emitter port.EventEmitter,
	logger zerolog.Logger,
) ([]saga.Step[createOrderState], error) {
	type state = createOrderState

	var results []saga.Step[state]

	checkProducts, err := saga.NewStep("check_products",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			for _, id := range s.input.DigitalProductIDs {
				if _, err := digitalProducts.GetDigitalProduct(ctx, id); err != nil {
					return nil, fmt.Errorf("digitalProducts.GetDigitalProduct[%s]: %w", id, err)
				}
			}

			return nil, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, checkProducts)

	createOrder, err := saga.NewStep("create_order",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			id, err := orders.InsertOrder(ctx, domain.DigitalProductOrder{
				Status:     domain.OrderStatusPending,
				ProductIDs: s.input.DigitalProductIDs,
			})
			if err != nil {
				return nil, fmt.Errorf("orders.InsertOrder: %w", err)
			}
			s.orderID = id

			return func(ctx context.Context, s *state) error {
				return orders.DeleteOrder(ctx, s.orderID)
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, createOrder)

	emitCreated, err := saga.NewStep("emit_created",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			if err := emitter.Emit(ctx, domain.EventDigitalProductOrderCreated, domain.OrderCreatedPayload{
				ID:         s.orderID,
				Status:     domain.OrderStatusPending,
				ProductIDs: s.input.DigitalProductIDs,
			}); err != nil {
				logger.Warn().Err(err).Msg("emit order created")
			}

			return nil, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, emitCreated)

	return results, nil
}
