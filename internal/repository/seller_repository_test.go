package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
	"github.com/INFIxChatnify/mercur/internal/repository"
)

type sellerRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      port.SellerRepository
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestSellerRepositorySuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(sellerRepositorySuite))
}

// before all tests in the suite
func (suite *sellerRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewSeller(suite.pool)
}

// after all tests in the suite
func (suite *sellerRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *sellerRepositorySuite) TestInsertAndGetSeller() {
	ctx := suite.T().Context()

	tests := []struct {
		name       string
		seller     domain.Seller
		wantHandle string
		wantError  bool
	}{
		{
			name:       "explicit handle: kept",
			seller:     domain.Seller{Name: "Acme Inc", Handle: "acme"},
			wantHandle: "acme",
		},
		{
			name:       "no handle: derived from name",
			seller:     domain.Seller{Name: "Globex Digital Goods"},
			wantHandle: "globex-digital-goods",
		},
		{
			name:      "empty name: validation error",
			seller:    domain.Seller{},
			wantError: true,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			id, err := suite.repo.InsertSeller(ctx, tt.seller)
			if tt.wantError {
				suite.Error(err)
				return
			}
			suite.NoError(err)

			actual, err := suite.repo.GetSeller(ctx, id)
			suite.NoError(err)

			suite.Equal(tt.seller.Name, actual.Name)
			suite.Equal(tt.wantHandle, actual.Handle)
			suite.NotZero(actual.CreatedAt)
		})
	}
}

func (suite *sellerRepositorySuite) TestGetSellerNotFound() {
	ctx := suite.T().Context()

	_, err := suite.repo.GetSeller(ctx, uuid.New())
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *sellerRepositorySuite) TestResolveSellerForCaller() {
	ctx := suite.T().Context()

	authIdentityID := gofakeit.UUID()
	sellerID := suite.insertSellerWithMember(authIdentityID)

	tests := []struct {
		name           string
		authIdentityID string
		wantSellerID   uuid.UUID
		wantError      error
	}{
		{
			name:           "known identity: resolves to its seller",
			authIdentityID: authIdentityID,
			wantSellerID:   sellerID,
		},
		{
			name:           "unknown identity: unauthorized",
			authIdentityID: gofakeit.UUID(),
			wantError:      domain.ErrUnauthorized,
		},
		{
			name:           "empty identity: unauthorized",
			authIdentityID: "",
			wantError:      domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			seller, err := suite.repo.ResolveSellerForCaller(ctx, tt.authIdentityID)
			if tt.wantError != nil {
				suite.ErrorIs(err, tt.wantError)
				return
			}
			suite.NoError(err)
			suite.Equal(tt.wantSellerID, seller.ID)
		})
	}
}

func (suite *sellerRepositorySuite) TestListSellers() {
	ctx := suite.T().Context()

	for range 3 {
		_, err := suite.repo.InsertSeller(ctx, domain.Seller{Name: gofakeit.Company(), Handle: gofakeit.UUID()})
		suite.NoError(err)
	}

	sellers, count, err := suite.repo.ListSellers(ctx, domain.Page{Limit: 2})
	suite.NoError(err)

	suite.Len(sellers, 2)
	suite.GreaterOrEqual(count, int64(3))
}

func (suite *sellerRepositorySuite) TestMemberAndOnboardingLifecycle() {
	ctx := suite.T().Context()

	sellerID, err := suite.repo.InsertSeller(ctx, domain.Seller{Name: gofakeit.Company(), Handle: gofakeit.UUID()})
	suite.NoError(err)

	memberID, err := suite.repo.InsertMember(ctx, domain.Member{
		SellerID:       sellerID,
		Name:           gofakeit.Name(),
		Email:          gofakeit.Email(),
		Role:           "owner",
		AuthIdentityID: gofakeit.UUID(),
	})
	suite.NoError(err)

	onboardingID, err := suite.repo.InsertOnboarding(ctx, domain.SellerOnboarding{SellerID: sellerID})
	suite.NoError(err)

	// compensation order: onboarding, member, seller
	suite.NoError(suite.repo.DeleteOnboarding(ctx, onboardingID))
	suite.NoError(suite.repo.DeleteMember(ctx, memberID))
	suite.NoError(suite.repo.DeleteSeller(ctx, sellerID))

	_, err = suite.repo.GetSeller(ctx, sellerID)
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *sellerRepositorySuite) TestInsertMemberValidation() {
	ctx := suite.T().Context()

	_, err := suite.repo.InsertMember(ctx, domain.Member{AuthIdentityID: gofakeit.UUID()})
	suite.Error(err)

	_, err = suite.repo.InsertMember(ctx, domain.Member{SellerID: uuid.New()})
	suite.Error(err)
}

func (suite *sellerRepositorySuite) TestDeleteSellerNotFound() {
	ctx := suite.T().Context()

	suite.ErrorIs(suite.repo.DeleteSeller(ctx, uuid.New()), repository.ErrNotFound)
}

func (suite *sellerRepositorySuite) insertSellerWithMember(authIdentityID string) uuid.UUID {
	suite.T().Helper()
	ctx := suite.T().Context()

	sellerID, err := suite.repo.InsertSeller(ctx, domain.Seller{Name: gofakeit.Company(), Handle: gofakeit.UUID()})
	suite.Require().NoError(err)

	_, err = suite.repo.InsertMember(ctx, domain.Member{
		SellerID:       sellerID,
		Name:           gofakeit.Name(),
		Email:          gofakeit.Email(),
		Role:           "owner",
		AuthIdentityID: authIdentityID,
	})
	suite.Require().NoError(err)

	return sellerID
}
