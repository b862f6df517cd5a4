package workflow_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/workflow"
)

func newCreateSellerWorkflow(t *testing.T, sellers *fakeSellers, emitter *fakeEmitter) workflow.CreateSeller {
	t.Helper()

	w, err := workflow.NewCreateSeller(sellers, emitter, zerolog.Nop())
	require.NoError(t, err)
	return w
}

func validSellerInput() workflow.CreateSellerInput {
	return workflow.CreateSellerInput{
		Name:           "Acme Sounds",
		MemberName:     "Jo",
		MemberEmail:    "jo@acme.test",
		AuthIdentityID: "auth-jo",
	}
}

func TestCreateSeller(t *testing.T) {
	sellers := newFakeSellers()
	emitter := &fakeEmitter{}
	w := newCreateSellerWorkflow(t, sellers, emitter)

	seller, err := w.Run(t.Context(), validSellerInput())
	require.NoError(t, err)

	assert.Equal(t, "Acme Sounds", seller.Name)
	assert.Len(t, sellers.members, 1)
	assert.Len(t, sellers.onboardings, 1)

	// the new member resolves the caller identity to the seller
	resolved, err := sellers.ResolveSellerForCaller(t.Context(), "auth-jo")
	require.NoError(t, err)
	assert.Equal(t, seller.ID, resolved.ID)

	assert.Equal(t, []string{domain.EventSellerCreated}, emitter.names())
}

func TestCreateSellerRollback(t *testing.T) {
	tests := []struct {
		name    string
		failOp  string
		wantErr string
	}{
		{name: "member insert fails", failOp: "InsertMember", wantErr: "member"},
		{name: "onboarding insert fails", failOp: "InsertOnboarding", wantErr: "onboarding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sellers := newFakeSellers()
			emitter := &fakeEmitter{}
			w := newCreateSellerWorkflow(t, sellers, emitter)

			boom := errors.New(tt.wantErr + " down")
			sellers.fail[tt.failOp] = boom

			_, err := w.Run(t.Context(), validSellerInput())
			require.ErrorIs(t, err, boom)

			assert.Empty(t, sellers.sellers)
			assert.Empty(t, sellers.members)
			assert.Empty(t, sellers.onboardings)
			assert.Empty(t, emitter.names())
		})
	}
}

func TestCreateSellerValidation(t *testing.T) {
	w := newCreateSellerWorkflow(t, newFakeSellers(), &fakeEmitter{})

	tests := []struct {
		name string
		mod  func(*workflow.CreateSellerInput)
	}{
		{name: "empty name", mod: func(i *workflow.CreateSellerInput) { i.Name = "" }},
		{name: "empty email", mod: func(i *workflow.CreateSellerInput) { i.MemberEmail = "" }},
		{name: "empty identity", mod: func(i *workflow.CreateSellerInput) { i.AuthIdentityID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSellerInput()
			tt.mod(&input)

			_, err := w.Run(t.Context(), input)
			assert.True(t, domain.IsValidation(err))
		})
	}
}
