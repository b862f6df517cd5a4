package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
	"github.com/INFIxChatnify/mercur/internal/workflow"
)

type DigitalProductService struct {
	create          workflow.CreateDigitalProduct
	digitalProducts port.DigitalProductRepository
	files           port.FileService
	logger          zerolog.Logger
}

func NewDigitalProductService(
	create workflow.CreateDigitalProduct,
	digitalProducts port.DigitalProductRepository,
	files port.FileService,
	logger zerolog.Logger,
) (DigitalProductService, error) {
	var s DigitalProductService

	if digitalProducts == nil {
		return s, fmt.Errorf("digitalProducts is nil")
	}
	if files == nil {
		return s, fmt.Errorf("files is nil")
	}

	return DigitalProductService{
		create:          create,
		digitalProducts: digitalProducts,
		files:           files,
		logger:          logger,
	}, nil
}

func (s DigitalProductService) CreateDigitalProduct(ctx context.Context, input workflow.CreateDigitalProductInput) (domain.DigitalProduct, error) {
	return s.create.Run(ctx, input)
}

func (s DigitalProductService) GetDigitalProduct(ctx context.Context, id uuid.UUID) (domain.DigitalProduct, error) {
	dp, err := s.digitalProducts.GetDigitalProduct(ctx, id)
	if err != nil {
		return dp, fmt.Errorf("digitalProducts.GetDigitalProduct: %w", err)
	}

	s.resolveURLs(ctx, dp.Medias)
	return dp, nil
}

func (s DigitalProductService) ListDigitalProducts(ctx context.Context, filter domain.DigitalProductFilter, page domain.Page) ([]domain.DigitalProduct, int64, error) {
	products, count, err := s.digitalProducts.ListDigitalProducts(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("digitalProducts.ListDigitalProducts: %w", err)
	}

	for i := range products {
		s.resolveURLs(ctx, products[i].Medias)
	}

	return products, count, nil
}

func (s DigitalProductService) SoftDeleteDigitalProduct(ctx context.Context, id uuid.UUID) error {
	return s.digitalProducts.SoftDeleteDigitalProduct(ctx, id)
}

// resolveURLs asks file storage for a URL per media. A failed lookup leaves
// that media without a URL instead of failing the whole read.
func (s DigitalProductService) resolveURLs(ctx context.Context, medias []domain.Media) {
	for i := range medias {
		info, err := s.files.RetrieveFile(ctx, medias[i].FileID)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("file_id", medias[i].FileID).
				Msg("retrieve file")
			continue
		}

		medias[i].URL = info.URL
	}
}
