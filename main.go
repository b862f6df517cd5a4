package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/INFIxChatnify/mercur/internal/api"
	"github.com/INFIxChatnify/mercur/internal/config"
	"github.com/INFIxChatnify/mercur/internal/event"
	"github.com/INFIxChatnify/mercur/internal/file"
	"github.com/INFIxChatnify/mercur/internal/repository"
	"github.com/INFIxChatnify/mercur/internal/service"
	"github.com/INFIxChatnify/mercur/internal/workflow"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run(logger zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logger.Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	sellers := repository.NewSeller(pool)
	products := repository.NewProduct(pool)
	digitalProducts := repository.NewDigitalProduct(pool)
	medias := repository.NewMedia(pool)
	requests := repository.NewRequest(pool)
	orders := repository.NewOrder(pool)

	emitter, err := event.NewKafkaEmitter(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return err
	}
	defer func() {
		if err := emitter.Close(); err != nil {
			logger.Warn().Err(err).Msg("close kafka emitter")
		}
	}()

	files, err := file.NewHTTPClient(cfg.FileServiceURL)
	if err != nil {
		return err
	}

	createDigitalProduct, err := workflow.NewCreateDigitalProduct(sellers, products, digitalProducts, medias, requests, emitter, logger)
	if err != nil {
		return err
	}

	createSeller, err := workflow.NewCreateSeller(sellers, emitter, logger)
	if err != nil {
		return err
	}

	createOrder, err := workflow.NewCreateOrder(orders, digitalProducts, emitter, logger)
	if err != nil {
		return err
	}

	digitalProductService, err := service.NewDigitalProductService(createDigitalProduct, digitalProducts, files, logger)
	if err != nil {
		return err
	}

	requestService, err := service.NewRequestService(requests, products, sellers, createSeller, emitter, logger)
	if err != nil {
		return err
	}

	sellerService, err := service.NewSellerService(sellers)
	if err != nil {
		return err
	}

	server := api.NewServer(digitalProductService, requestService, sellerService, createOrder, logger)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
