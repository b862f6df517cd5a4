package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/INFIxChatnify/mercur/internal/db"
	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

// SQLSTATE for unique_violation, raised when a concurrent writer wins the race
// past the read-then-write dedup check.
const uniqueViolationCode = "23505"

type mediaRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewMedia(pool *pgxpool.Pool) port.MediaRepository {
	return &mediaRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewMediaWithTx(tx pgx.Tx) port.MediaRepository {
	return &mediaRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *mediaRepository) ListMedias(ctx context.Context, digitalProductID uuid.UUID) ([]domain.Media, error) {
	if digitalProductID == uuid.Nil {
		return nil, fmt.Errorf("digitalProductID is empty")
	}

	dbMedias, err := r.q.ListMedias(ctx, digitalProductID)
	if err != nil {
		return nil, fmt.Errorf("q.ListMedias: %w", err)
	}

	medias, err := mapDBMediasToDomain(dbMedias)
	if err != nil {
		return nil, fmt.Errorf("mapDBMediasToDomain: %w", err)
	}

	return medias, nil
}

// EnsureMedias converges the product's media set towards the batch: after it
// returns without error, every distinct (fileID, type) pair of the batch exists
// exactly once. Re-running with the same or an overlapping batch is a no-op for
// pairs that already exist.
//
// The returned created slice holds only the rows this call inserted; a saga
// compensation must delete those and nothing else, so rows belonging to an
// earlier successful run survive the rollback.
func (r *mediaRepository) EnsureMedias(ctx context.Context, digitalProductID uuid.UUID, batch []domain.Media) (all, created []domain.Media, err error) {
	if digitalProductID == uuid.Nil {
		return nil, nil, fmt.Errorf("digitalProductID is empty")
	}

	for _, media := range batch {
		if media.FileID == "" {
			return nil, nil, domain.Validation("fileId", "is empty")
		}
		if _, err := domain.ToMediaType(string(media.Type)); err != nil {
			return nil, nil, domain.Validation("type", fmt.Sprintf("%q is not a media type", media.Type))
		}
	}

	// first seen wins on duplicate pairs within the same batch
	unique := lo.UniqBy(batch, domain.Media.Key)

	existing, err := r.ListMedias(ctx, digitalProductID)
	if err != nil {
		return nil, nil, fmt.Errorf("r.ListMedias: %w", err)
	}

	existingKeys := lo.SliceToMap(existing, func(m domain.Media) (domain.MediaKey, struct{}) {
		return m.Key(), struct{}{}
	})

	for _, media := range unique {
		if _, ok := existingKeys[media.Key()]; ok {
			continue
		}

		row, err := r.q.InsertMedia(ctx, db.InsertMediaParams{
			DigitalProductID: digitalProductID,
			FileID:           media.FileID,
			MimeType:         media.MimeType,
			Type:             string(media.Type),
		})
		if err != nil {
			// A concurrent writer satisfied this key between our read and this
			// insert. The net state is what we wanted, keep going.
			if isUniqueViolation(err) {
				continue
			}
			return nil, nil, fmt.Errorf("q.InsertMedia: %w", err)
		}

		inserted, err := mapDBMediaToDomain(row)
		if err != nil {
			return nil, nil, fmt.Errorf("mapDBMediaToDomain: %w", err)
		}
		created = append(created, inserted)
	}

	// Re-read so the result also reflects rows concurrent writers inserted.
	all, err = r.ListMedias(ctx, digitalProductID)
	if err != nil {
		return nil, nil, fmt.Errorf("r.ListMedias: %w", err)
	}

	return all, created, nil
}

func (r *mediaRepository) DeleteMedias(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := r.q.DeleteMedias(ctx, ids); err != nil {
		return fmt.Errorf("q.DeleteMedias: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func mapDBMediaToDomain(row db.DigitalProductMedia) (domain.Media, error) {
	mediaType, err := domain.ToMediaType(row.Type)
	if err != nil {
		return domain.Media{}, fmt.Errorf("domain.ToMediaType[%s]: %w", row.Type, err)
	}

	return domain.Media{
		ID:               row.ID,
		DigitalProductID: row.DigitalProductID,
		FileID:           row.FileID,
		MimeType:         row.MimeType,
		Type:             mediaType,
		CreatedAt:        row.CreatedAt,
		DeletedAt:        row.DeletedAt,
	}, nil
}

func mapDBMediasToDomain(rows []db.DigitalProductMedia) ([]domain.Media, error) {
	var medias []domain.Media

	for _, row := range rows {
		media, err := mapDBMediaToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapDBMediaToDomain: %w", err)
		}

		medias = append(medias, media)
	}

	return medias, nil
}
