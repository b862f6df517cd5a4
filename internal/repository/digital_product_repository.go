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

// ErrNotFound aliases the domain sentinel so callers can match either way.
var ErrNotFound = domain.ErrNotFound

type digitalProductRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewDigitalProduct(pool *pgxpool.Pool) port.DigitalProductRepository {
	return &digitalProductRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewDigitalProductWithTx(tx pgx.Tx) port.DigitalProductRepository {
	return &digitalProductRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *digitalProductRepository) GetDigitalProduct(ctx context.Context, id uuid.UUID) (domain.DigitalProduct, error) {
	var dp domain.DigitalProduct

	if id == uuid.Nil {
		return dp, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetDigitalProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dp, fmt.Errorf("q.GetDigitalProduct: %w", ErrNotFound)
		}
		return dp, fmt.Errorf("q.GetDigitalProduct: %w", err)
	}

	dp, err = mapDBDigitalProductToDomain(row)
	if err != nil {
		return dp, fmt.Errorf("mapDBDigitalProductToDomain: %w", err)
	}

	dbMedias, err := r.q.ListMedias(ctx, id)
	if err != nil {
		return dp, fmt.Errorf("q.ListMedias: %w", err)
	}

	dp.Medias, err = mapDBMediasToDomain(dbMedias)
	if err != nil {
		return dp, fmt.Errorf("mapDBMediasToDomain: %w", err)
	}

	return dp, nil
}

func (r *digitalProductRepository) ListDigitalProducts(ctx context.Context, filter domain.DigitalProductFilter, page domain.Page) ([]domain.DigitalProduct, int64, error) {
	page = page.Normalize()

	rows, err := r.q.ListDigitalProducts(ctx, db.ListDigitalProductsParams{
		Ids:        nilSliceIfEmpty(filter.IDs),
		VariantIds: nilSliceIfEmpty(filter.ProductVariantIDs),
		Names:      nilSliceIfEmpty(filter.Names),
		RowLimit:   int32(page.Limit),
		RowOffset:  int32(page.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.ListDigitalProducts: %w", err)
	}

	count, err := r.q.CountDigitalProducts(ctx, db.CountDigitalProductsParams{
		Ids:        nilSliceIfEmpty(filter.IDs),
		VariantIds: nilSliceIfEmpty(filter.ProductVariantIDs),
		Names:      nilSliceIfEmpty(filter.Names),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.CountDigitalProducts: %w", err)
	}

	products := make([]domain.DigitalProduct, 0, len(rows))
	for _, row := range rows {
		dp, err := mapDBDigitalProductToDomain(row)
		if err != nil {
			return nil, 0, fmt.Errorf("mapDBDigitalProductToDomain: %w", err)
		}
		products = append(products, dp)
	}

	if len(products) == 0 {
		return products, count, nil
	}

	// one query for all medias of the page
	ids := lo.Map(products, func(dp domain.DigitalProduct, _ int) uuid.UUID { return dp.ID })

	dbMedias, err := r.q.ListMediasByDigitalProductIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("q.ListMediasByDigitalProductIDs: %w", err)
	}

	mediasByProduct := map[uuid.UUID][]domain.Media{}
	for _, row := range dbMedias {
		media, err := mapDBMediaToDomain(row)
		if err != nil {
			return nil, 0, fmt.Errorf("mapDBMediaToDomain: %w", err)
		}
		mediasByProduct[media.DigitalProductID] = append(mediasByProduct[media.DigitalProductID], media)
	}

	for i := range products {
		products[i].Medias = mediasByProduct[products[i].ID]
	}

	return products, count, nil
}

func (r *digitalProductRepository) InsertDigitalProduct(ctx context.Context, dp domain.DigitalProduct) (uuid.UUID, error) {
	if dp.Name == "" {
		return uuid.Nil, domain.Validation("name", "is empty")
	}
	if dp.ProductVariantID == uuid.Nil {
		return uuid.Nil, domain.Validation("productVariantId", "is empty")
	}

	metadata, err := json.Marshal(emptyMapIfNil(dp.Metadata))
	if err != nil {
		return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
	}

	id, err := r.q.InsertDigitalProduct(ctx, db.InsertDigitalProductParams{
		Name:             dp.Name,
		ProductVariantID: dp.ProductVariantID,
		Metadata:         metadata,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertDigitalProduct: %w", err)
	}

	return id, nil
}

func (r *digitalProductRepository) SoftDeleteDigitalProduct(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	cmdTag, err := r.q.SoftDeleteDigitalProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("q.SoftDeleteDigitalProduct: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.SoftDeleteDigitalProduct: %w", ErrNotFound)
	}

	return nil
}

func (r *digitalProductRepository) DeleteDigitalProduct(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	if _, err := r.q.DeleteDigitalProduct(ctx, id); err != nil {
		return fmt.Errorf("q.DeleteDigitalProduct: %w", err)
	}

	return nil
}

func mapDBDigitalProductToDomain(row db.DigitalProduct) (domain.DigitalProduct, error) {
	var dp domain.DigitalProduct

	metadata := map[string]string{}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
			return dp, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	return domain.DigitalProduct{
		ID:               row.ID,
		Name:             row.Name,
		ProductVariantID: row.ProductVariantID,
		Metadata:         metadata,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		DeletedAt:        row.DeletedAt,
	}, nil
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func emptyMapIfNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
