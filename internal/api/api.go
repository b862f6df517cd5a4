package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/service"
	"github.com/INFIxChatnify/mercur/internal/workflow"
)

// identityHeader carries the caller identity resolved by the upstream
// auth proxy. Resolution to a seller happens inside the workflows.
const identityHeader = "X-Auth-Identity"

type Server struct {
	digitalProducts service.DigitalProductService
	requests        service.RequestService
	sellers         service.SellerService
	orders          workflow.CreateOrder
	logger          zerolog.Logger
}

func NewServer(
	digitalProducts service.DigitalProductService,
	requests service.RequestService,
	sellers service.SellerService,
	orders workflow.CreateOrder,
	logger zerolog.Logger,
) *Server {
	return &Server{
		digitalProducts: digitalProducts,
		requests:        requests,
		sellers:         sellers,
		orders:          orders,
		logger:          logger,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/vendor/digital-products", func(r chi.Router) {
			r.Get("/", s.withError(s.listDigitalProducts))
			r.Post("/", s.withError(s.createDigitalProduct))
			r.Get("/{id}", s.withError(s.getDigitalProduct))
			r.Delete("/{id}", s.withError(s.deleteDigitalProduct))
		})

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", s.withError(s.createRequest))
			r.Post("/{id}/submit", s.withError(s.submitRequest))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/digital-products", s.withError(s.listDigitalProducts))
			r.Get("/requests", s.withError(s.listRequests))
			r.Post("/requests/{id}/decide", s.withError(s.decideRequest))
			r.Get("/sellers", s.withError(s.listSellers))
		})

		r.Post("/store/orders", s.withError(s.createOrder))
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

// withError adapts a handler returning (status, error) into http.HandlerFunc
// and maps domain errors onto statuses.
func (s *Server) withError(next func(w http.ResponseWriter, r *http.Request) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, err := next(w, r)
		if err == nil {
			return
		}

		if code == 0 || code == http.StatusOK {
			code = statusForError(err)
		}

		if code >= http.StatusInternalServerError {
			s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		}

		writeJSON(w, code, errorResponse{Error: publicMessage(err, code)})
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrOpenRequestExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(err error, code int) string {
	// internal failure details stay in the logs
	if code >= http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
