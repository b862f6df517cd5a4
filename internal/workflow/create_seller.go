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

type CreateSellerInput struct {
	Name string

	MemberName     string
	MemberEmail    string
	AuthIdentityID string
}

type createSellerState struct {
	input CreateSellerInput

	sellerID     uuid.UUID
	memberID     uuid.UUID
	onboardingID uuid.UUID
}

// CreateSeller materializes a seller account: the seller itself, its owner
// member bound to the caller identity, and a fresh onboarding record.
type CreateSeller struct {
	coordinator saga.Coordinator[createSellerState]
	sellers     port.SellerRepository
}

func NewCreateSeller(sellers port.SellerRepository, emitter port.EventEmitter, logger zerolog.Logger) (CreateSeller, error) {
	var w CreateSeller

	if sellers == nil {
		return w, fmt.Errorf("sellers is nil")
	}
	if emitter == nil {
		return w, fmt.Errorf("emitter is nil")
	}

	steps, err := buildCreateSellerSteps(sellers, emitter, logger)
	if err != nil {
		return w, fmt.Errorf("buildCreateSellerSteps: %w", err)
	}

	coordinator, err := saga.NewCoordinator("create_seller", logger, steps...)
	if err != nil {
		return w, fmt.Errorf("saga.NewCoordinator: %w", err)
	}

	return CreateSeller{
		coordinator: coordinator,
		sellers:     sellers,
	}, nil
}

func (w CreateSeller) Run(ctx context.Context, input CreateSellerInput) (domain.Seller, error) {
	var seller domain.Seller

	if input.Name == "" {
		return seller, domain.Validation("name", "is empty")
	}
	if input.MemberEmail == "" {
		return seller, domain.Validation("memberEmail", "is empty")
	}
	if input.AuthIdentityID == "" {
		return seller, domain.Validation("authIdentityId", "is empty")
	}

	state := createSellerState{input: input}

	if err := w.coordinator.Run(ctx, &state); err != nil {
		return seller, err
	}

	seller, err := w.sellers.GetSeller(ctx, state.sellerID)
	if err != nil {
		return seller, fmt.Errorf("sellers.GetSeller: %w", err)
	}

	return seller, nil
}

func buildCreateSellerSteps(sellers port.SellerRepository, emitter port.EventEmitter, logger zerolog.Logger) ([]saga.Step[createSellerState], error) {
	type state = createSellerState

	var results []saga.Step[state]

	createSeller, err := saga.NewStep("create_seller",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			id, err := sellers.InsertSeller(ctx, domain.Seller{Name: s.input.Name})
			if err != nil {
				return nil, fmt.Errorf("sellers.InsertSeller: %w", err)
			}
			s.sellerID = id

			return func(ctx context.Context, s *state) error {
				return sellers.DeleteSeller(ctx, s.sellerID)
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, createSeller)

	createMember, err := saga.NewStep("create_member",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			id, err := sellers.InsertMember(ctx, domain.Member{
				SellerID:       s.sellerID,
				Name:           s.input.MemberName,
				Email:          s.input.MemberEmail,
				Role:           "owner",
				AuthIdentityID: s.input.AuthIdentityID,
			})
			if err != nil {
				return nil, fmt.Errorf("sellers.InsertMember: %w", err)
			}
			s.memberID = id

			return func(ctx context.Context, s *state) error {
				return sellers.DeleteMember(ctx, s.memberID)
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, createMember)

	createOnboarding, err := saga.NewStep("create_onboarding",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			id, err := sellers.InsertOnboarding(ctx, domain.SellerOnboarding{
				SellerID:  s.sellerID,
				Completed: false,
			})
			if err != nil {
				return nil, fmt.Errorf("sellers.InsertOnboarding: %w", err)
			}
			s.onboardingID = id

			return func(ctx context.Context, s *state) error {
				return sellers.DeleteOnboarding(ctx, s.onboardingID)
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, createOnboarding)

	emitCreated, err := saga.NewStep("emit_created",
		func(ctx context.Context, s *state) (saga.Compensation[state], error) {
			if err := emitter.Emit(ctx, domain.EventSellerCreated, domain.SellerCreatedPayload{
				ID:     s.sellerID,
				Name:   s.input.Name,
				Handle: domain.ToHandle(s.input.Name),
			}); err != nil {
				logger.Warn().Err(err).Msg("emit seller created")
			}

			return nil, nil
		})
	if err != nil {
		return nil, fmt.Errorf("saga.NewStep: %w", err)
	}
	results = append(results, emitCreated)

	return results, nil
}
