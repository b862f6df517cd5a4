package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/INFIxChatnify/mercur/internal/db"
	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.DigitalProductOrder, error) {
	var order domain.DigitalProductOrder

	if id == uuid.Nil {
		return order, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order, fmt.Errorf("q.GetOrder: %w", ErrNotFound)
		}
		return order, fmt.Errorf("q.GetOrder: %w", err)
	}

	productIDs, err := r.q.GetOrderProducts(ctx, id)
	if err != nil {
		return order, fmt.Errorf("q.GetOrderProducts: %w", err)
	}

	order, err = mapDBOrderToDomain(row, productIDs)
	if err != nil {
		return order, fmt.Errorf("mapDBOrderToDomain: %w", err)
	}

	return order, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.DigitalProductOrder) (uuid.UUID, error) {
	if len(order.ProductIDs) == 0 {
		return uuid.Nil, domain.Validation("productIds", "is empty")
	}
	if _, err := domain.ToOrderStatus(string(order.Status)); err != nil {
		return uuid.Nil, domain.Validation("status", fmt.Sprintf("%q is not an order status", order.Status))
	}

	id, err := r.withTxUUID(ctx, func(q *db.Queries) (uuid.UUID, error) {
		orderID, err := q.InsertOrder(ctx, string(order.Status))
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for _, productID := range order.ProductIDs {
			if err := q.InsertOrderProduct(ctx, db.InsertOrderProductParams{
				OrderID:          orderID,
				DigitalProductID: productID,
			}); err != nil {
				return uuid.Nil, fmt.Errorf("q.InsertOrderProduct: %w", err)
			}
		}

		return orderID, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("r.withTxUUID: %w", err)
	}

	return id, nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	if err := r.withTxUnit(ctx, func(q *db.Queries) error {
		if _, err := q.DeleteOrderProducts(ctx, id); err != nil {
			return fmt.Errorf("q.DeleteOrderProducts: %w", err)
		}

		rows, err := q.DeleteOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("q.DeleteOrder: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("q.DeleteOrder: %w", ErrNotFound)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("r.withTxUnit: %w", err)
	}

	return nil
}

func (r *orderRepository) withTxUUID(ctx context.Context, fn func(q *db.Queries) (uuid.UUID, error)) (uuid.UUID, error) {
	if r.pool == nil {
		// created with NewOrderWithTx, q is already transaction scoped
		return fn(r.q)
	}
	return withTx(ctx, r.pool, fn)
}

func (r *orderRepository) withTxUnit(ctx context.Context, fn func(q *db.Queries) error) error {
	if r.pool == nil {
		return fn(r.q)
	}

	_, err := withTx(ctx, r.pool, func(q *db.Queries) (struct{}, error) {
		return struct{}{}, fn(q)
	})
	return err
}

func mapDBOrderToDomain(row db.DigitalProductOrder, productIDs []uuid.UUID) (domain.DigitalProductOrder, error) {
	status, err := domain.ToOrderStatus(row.Status)
	if err != nil {
		return domain.DigitalProductOrder{}, fmt.Errorf("domain.ToOrderStatus[%s]: %w", row.Status, err)
	}

	return domain.DigitalProductOrder{
		ID:         row.ID,
		Status:     status,
		ProductIDs: productIDs,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}
