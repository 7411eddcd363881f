package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
	domainmocks "github.com/avc/account-marketplace/internal/domain/mocks"
	"github.com/avc/account-marketplace/internal/repository/postgres"
)

type listingServiceMocks struct {
	listingRepo *domainmocks.ListingRepositoryMock
	pricing     *domainmocks.PricingServiceMock
	enrichment  *domainmocks.EnrichmentClientMock
}

func newListingService(t *testing.T) (*ListingService, *listingServiceMocks) {
	m := &listingServiceMocks{
		listingRepo: domainmocks.NewListingRepositoryMock(t),
		pricing:     domainmocks.NewPricingServiceMock(t),
		enrichment:  domainmocks.NewEnrichmentClientMock(t),
	}
	svc := NewListingService(m.listingRepo, m.pricing, m.enrichment, zap.NewNop())
	return svc, m
}

func fixedInput(price int64) domain.ListingInput {
	p := decimal.NewFromInt(price)
	return domain.ListingInput{
		Username:        "travel_hk",
		PricingStrategy: domain.PricingFixed,
		FixedPrice:      &p,
		ContactPhone:    "+85298765432",
		ContactEmail:    "seller@example.com",
		PaymentDetails:  "FPS 12345678",
	}
}

func TestListingService_Create(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Success with enrichment", func(t *testing.T) {
		svc, m := newListingService(t)
		avatar := "https://cdn.example.com/a.jpg"

		m.enrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
			Return(&domain.EnrichmentResult{FollowerCount: 50000, AvatarURL: &avatar}, nil).Once()
		m.listingRepo.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.SellerID == sellerID && l.Username == "travel_hk" &&
				l.FollowerCount == 50000 && l.LastSyncedAt != nil
		})).Return(&domain.Listing{ID: uuid.New(), Username: "travel_hk"}, nil).Once()

		listing, err := svc.Create(ctx, sellerID, fixedInput(8800))
		require.NoError(t, err)
		assert.Equal(t, "travel_hk", listing.Username)
	})

	t.Run("Enrichment unavailable does not block", func(t *testing.T) {
		svc, m := newListingService(t)

		m.enrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
			Return(nil, domain.ErrCollaboratorUnavailable).Once()
		m.listingRepo.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.FollowerCount == 0 && l.LastSyncedAt == nil
		})).Return(&domain.Listing{ID: uuid.New()}, nil).Once()

		_, err := svc.Create(ctx, sellerID, fixedInput(8800))
		require.NoError(t, err)
	})

	t.Run("Username taken", func(t *testing.T) {
		svc, m := newListingService(t)

		m.enrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
			Return(&domain.EnrichmentResult{}, nil).Once()
		m.listingRepo.EXPECT().CreateListing(mock.Anything, mock.Anything).
			Return(nil, postgres.ErrUsernameTaken).Once()

		_, err := svc.Create(ctx, sellerID, fixedInput(8800))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Fixed strategy requires positive price", func(t *testing.T) {
		svc, _ := newListingService(t)
		input := fixedInput(0)

		_, err := svc.Create(ctx, sellerID, input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Percentage rate out of range", func(t *testing.T) {
		svc, _ := newListingService(t)
		rate := decimal.NewFromInt(150)
		input := fixedInput(0)
		input.PricingStrategy = domain.PricingPercentage
		input.FixedPrice = nil
		input.PercentageRate = &rate

		_, err := svc.Create(ctx, sellerID, input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Strategy-foreign price field is dropped", func(t *testing.T) {
		svc, m := newListingService(t)
		rate := decimal.NewFromInt(10)
		stray := decimal.NewFromInt(999)
		input := fixedInput(0)
		input.PricingStrategy = domain.PricingPercentage
		input.FixedPrice = &stray
		input.PercentageRate = &rate

		m.enrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
			Return(&domain.EnrichmentResult{}, nil).Once()
		m.listingRepo.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.FixedPrice == nil && l.PercentageRate != nil
		})).Return(&domain.Listing{ID: uuid.New()}, nil).Once()

		_, err := svc.Create(ctx, sellerID, input)
		require.NoError(t, err)
	})
}

func TestListingService_Update(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Success keeps username", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := &domain.Listing{ID: uuid.New(), SellerID: sellerID, Username: "travel_hk"}
		input := fixedInput(9900)
		input.Username = "renamed" // Игнорируется

		m.listingRepo.EXPECT().GetListingByID(mock.Anything, listing.ID).Return(listing, nil).Once()
		m.listingRepo.EXPECT().UpdateListing(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.Username == "travel_hk" && l.FixedPrice != nil && l.FixedPrice.Equal(decimal.NewFromInt(9900))
		})).Return(nil).Once()

		updated, err := svc.Update(ctx, sellerID, listing.ID, input)
		require.NoError(t, err)
		assert.Equal(t, "travel_hk", updated.Username)
	})

	t.Run("Not the owner", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := &domain.Listing{ID: uuid.New(), SellerID: uuid.New()}

		m.listingRepo.EXPECT().GetListingByID(mock.Anything, listing.ID).Return(listing, nil).Once()

		_, err := svc.Update(ctx, sellerID, listing.ID, fixedInput(9900))
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newListingService(t)
		id := uuid.New()

		m.listingRepo.EXPECT().GetListingByID(mock.Anything, id).Return(nil, postgres.ErrListingNotFound).Once()

		_, err := svc.Update(ctx, sellerID, id, fixedInput(9900))
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}

func TestListingService_Sync(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := &domain.Listing{ID: uuid.New(), SellerID: sellerID, Username: "travel_hk", FollowerCount: 100}

		m.listingRepo.EXPECT().GetListingByID(mock.Anything, listing.ID).Return(listing, nil).Once()
		m.enrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
			Return(&domain.EnrichmentResult{FollowerCount: 54321}, nil).Once()
		m.listingRepo.EXPECT().UpdateEnrichment(mock.Anything, listing.ID, int64(54321), (*string)(nil), mock.Anything).
			Return(nil).Once()

		updated, err := svc.Sync(ctx, sellerID, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(54321), updated.FollowerCount)
		assert.NotNil(t, updated.LastSyncedAt)
	})

	t.Run("Collaborator unavailable", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := &domain.Listing{ID: uuid.New(), SellerID: sellerID, Username: "travel_hk"}

		m.listingRepo.EXPECT().GetListingByID(mock.Anything, listing.ID).Return(listing, nil).Once()
		m.enrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
			Return(nil, domain.ErrCollaboratorUnavailable).Once()

		_, err := svc.Sync(ctx, sellerID, listing.ID)
		assert.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)
	})
}

func TestListingService_Marketplace(t *testing.T) {
	ctx := context.Background()

	t.Run("Masks contact and resolves price", func(t *testing.T) {
		svc, m := newListingService(t)
		listings := []*domain.Listing{
			{ID: uuid.New(), Username: "travel_hk", ContactEmail: "seller@example.com", IsPublished: true},
			{ID: uuid.New(), Username: "foodie_hk", ContactEmail: "", IsPublished: true},
		}

		m.listingRepo.EXPECT().GetPublishedListings(mock.Anything).Return(listings, nil).Once()
		m.pricing.EXPECT().ResolvePrice(listings[0]).Return(decimal.NewFromInt(8800)).Once()
		m.pricing.EXPECT().ResolvePrice(listings[1]).Return(decimal.NewFromInt(1200)).Once()

		public, err := svc.Marketplace(ctx)
		require.NoError(t, err)
		require.Len(t, public, 2)

		assert.Equal(t, "se****@example.com", public[0].MaskedEmail)
		assert.True(t, public[0].Price.Equal(decimal.NewFromInt(8800)))
		// Пустой контакт маскируется заглушкой, а не пустой строкой
		assert.Equal(t, "******@****.com", public[1].MaskedEmail)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, m := newListingService(t)

		m.listingRepo.EXPECT().GetPublishedListings(mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.Marketplace(ctx)
		assert.Error(t, err)
	})
}

func TestListingService_GetPublic(t *testing.T) {
	ctx := context.Background()

	t.Run("Unpublished listing is not found", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := &domain.Listing{ID: uuid.New(), IsPublished: false}

		m.listingRepo.EXPECT().GetListingByID(mock.Anything, listing.ID).Return(listing, nil).Once()

		_, err := svc.GetPublic(ctx, listing.ID)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}
