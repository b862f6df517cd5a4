package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/currency"

	"github.com/INFIxChatnify/mercur/internal/db"
	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	var product domain.Product

	if id == uuid.Nil {
		return product, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product, fmt.Errorf("q.GetProduct: %w", ErrNotFound)
		}
		return product, fmt.Errorf("q.GetProduct: %w", err)
	}

	variantRows, err := r.q.GetProductVariants(ctx, id)
	if err != nil {
		return product, fmt.Errorf("q.GetProductVariants: %w", err)
	}

	product, err = mapDBProductToDomain(row, variantRows)
	if err != nil {
		return product, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error) {
	if product.Title == "" {
		return uuid.Nil, domain.Validation("title", "is empty")
	}
	if product.SellerID == uuid.Nil {
		return uuid.Nil, domain.Validation("sellerId", "is empty")
	}
	if _, err := domain.ToProductStatus(string(product.Status)); err != nil {
		return uuid.Nil, domain.Validation("status", fmt.Sprintf("%q is not a product status", product.Status))
	}

	handle := product.Handle
	if handle == "" {
		handle = domain.ToHandle(product.Title)
	}

	id, err := r.withTxUUID(ctx, func(q *db.Queries) (uuid.UUID, error) {
		productID, err := q.InsertProduct(ctx, db.InsertProductParams{
			Title:    product.Title,
			Handle:   handle,
			Status:   string(product.Status),
			SellerID: product.SellerID,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.InsertProduct: %w", err)
		}

		for _, variant := range product.Variants {
			if _, err := q.InsertProductVariant(ctx, db.InsertProductVariantParams{
				ProductID:       productID,
				Title:           variant.Title,
				PriceAmount:     variant.Price.Amount,
				PriceCurrency:   variant.Price.Currency.String(),
				ManageInventory: variant.ManageInventory,
				AllowBackorder:  variant.AllowBackorder,
			}); err != nil {
				return uuid.Nil, fmt.Errorf("q.InsertProductVariant: %w", err)
			}
		}

		return productID, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("r.withTxUUID: %w", err)
	}

	return id, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	if err := r.withTxUnit(ctx, func(q *db.Queries) error {
		if _, err := q.DeleteProductVariants(ctx, id); err != nil {
			return fmt.Errorf("q.DeleteProductVariants: %w", err)
		}

		rows, err := q.DeleteProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("q.DeleteProduct: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("q.DeleteProduct: %w", ErrNotFound)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("r.withTxUnit: %w", err)
	}

	return nil
}

func (r *productRepository) withTxUUID(ctx context.Context, fn func(q *db.Queries) (uuid.UUID, error)) (uuid.UUID, error) {
	if r.pool == nil {
		// created with NewProductWithTx, q is already transaction scoped
		return fn(r.q)
	}
	return withTx(ctx, r.pool, fn)
}

func (r *productRepository) withTxUnit(ctx context.Context, fn func(q *db.Queries) error) error {
	if r.pool == nil {
		return fn(r.q)
	}

	_, err := withTx(ctx, r.pool, func(q *db.Queries) (struct{}, error) {
		return struct{}{}, fn(q)
	})
	return err
}

func mapDBProductToDomain(row db.Product, variantRows []db.ProductVariant) (domain.Product, error) {
	status, err := domain.ToProductStatus(row.Status)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ToProductStatus[%s]: %w", row.Status, err)
	}

	variants := make([]domain.ProductVariant, 0, len(variantRows))
	for _, v := range variantRows {
		variant, err := mapDBProductVariantToDomain(v)
		if err != nil {
			return domain.Product{}, fmt.Errorf("mapDBProductVariantToDomain: %w", err)
		}
		variants = append(variants, variant)
	}

	return domain.Product{
		ID:        row.ID,
		Title:     row.Title,
		Handle:    row.Handle,
		Status:    status,
		SellerID:  row.SellerID,
		Variants:  variants,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}, nil
}

func mapDBProductVariantToDomain(row db.ProductVariant) (domain.ProductVariant, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.ProductVariant{}, fmt.Errorf("currency.ParseISO[%s]: %w", row.PriceCurrency, err)
	}

	return domain.ProductVariant{
		ID:        row.ID,
		ProductID: row.ProductID,
		Title:     row.Title,
		Price: domain.Money{
			Amount:   row.PriceAmount,
			Currency: parsedCurrency,
		},
		ManageInventory: row.ManageInventory,
		AllowBackorder:  row.AllowBackorder,
		CreatedAt:       row.CreatedAt,
	}, nil
}
