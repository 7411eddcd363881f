package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/avc/account-marketplace/internal/repository/postgres"
	"github.com/avc/account-marketplace/internal/utils/mask"
)

// ListingService реализует domain.ListingService
type ListingService struct {
	listingRepo domain.ListingRepository
	pricing     domain.PricingService
	enrichment  domain.EnrichmentClient
	logger      *zap.Logger
}

// NewListingService создает новый ListingService
func NewListingService(
	listingRepo domain.ListingRepository,
	pricing domain.PricingService,
	enrichment domain.EnrichmentClient,
	logger *zap.Logger,
) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		pricing:     pricing,
		enrichment:  enrichment,
		logger:      logger,
	}
}

// Create создает листинг продавца. Счетчик подписчиков подтягивается
// из сервиса обогащения на лучших усилиях: его недоступность не мешает
// созданию, листинг досинхронизирует фоновый воркер.
func (s *ListingService) Create(ctx context.Context, sellerID uuid.UUID, input domain.ListingInput) (*domain.Listing, error) {
	if err := validateListingInput(&input, true); err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		SellerID:        sellerID,
		Username:        input.Username,
		PricingStrategy: input.PricingStrategy,
		FixedPrice:      input.FixedPrice,
		PercentageRate:  input.PercentageRate,
		ContactPhone:    input.ContactPhone,
		ContactEmail:    input.ContactEmail,
		PaymentDetails:  input.PaymentDetails,
	}

	if profile, err := s.enrichment.FetchProfile(ctx, input.Username); err != nil {
		s.logger.Warn("enrichment unavailable on listing create",
			zap.String("username", input.Username),
			zap.Error(err))
	} else {
		listing.FollowerCount = profile.FollowerCount
		listing.AvatarURL = profile.AvatarURL
		now := time.Now()
		listing.LastSyncedAt = &now
	}

	created, err := s.listingRepo.CreateListing(ctx, listing)
	if err != nil {
		if errors.Is(err, postgres.ErrUsernameTaken) {
			return nil, fmt.Errorf("%w: username %q is already listed", domain.ErrValidation, input.Username)
		}
		return nil, fmt.Errorf("listing service: failed to create listing %q: %w", input.Username, err)
	}

	return created, nil
}

// Update обновляет листинг продавца. Имя аккаунта после создания
// не меняется, остальные поля перезаписываются целиком.
func (s *ListingService) Update(ctx context.Context, sellerID, id uuid.UUID, input domain.ListingInput) (*domain.Listing, error) {
	if err := validateListingInput(&input, false); err != nil {
		return nil, err
	}

	listing, err := s.getOwned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	listing.PricingStrategy = input.PricingStrategy
	listing.FixedPrice = input.FixedPrice
	listing.PercentageRate = input.PercentageRate
	listing.ContactPhone = input.ContactPhone
	listing.ContactEmail = input.ContactEmail
	listing.PaymentDetails = input.PaymentDetails

	if err := s.listingRepo.UpdateListing(ctx, listing); err != nil {
		if errors.Is(err, postgres.ErrListingNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("listing service: failed to update listing %s: %w", id, err)
	}

	return listing, nil
}

// Delete удаляет листинг продавца. Заказы на него остаются
// финансовыми записями и не удаляются.
func (s *ListingService) Delete(ctx context.Context, sellerID, id uuid.UUID) error {
	if err := s.listingRepo.DeleteListing(ctx, id, sellerID); err != nil {
		if errors.Is(err, postgres.ErrListingNotFound) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("listing service: failed to delete listing %s: %w", id, err)
	}
	return nil
}

// SetPublished публикует или снимает листинг с витрины
func (s *ListingService) SetPublished(ctx context.Context, sellerID, id uuid.UUID, published bool) error {
	if err := s.listingRepo.SetPublished(ctx, id, sellerID, published); err != nil {
		if errors.Is(err, postgres.ErrListingNotFound) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("listing service: failed to set published for listing %s: %w", id, err)
	}
	return nil
}

// Sync принудительно обновляет подписчиков и аватар листинга
// из сервиса обогащения
func (s *ListingService) Sync(ctx context.Context, sellerID, id uuid.UUID) (*domain.Listing, error) {
	listing, err := s.getOwned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.enrichment.FetchProfile(ctx, listing.Username)
	if err != nil {
		return nil, fmt.Errorf("listing service: failed to sync listing %s: %w", id, err)
	}

	now := time.Now()
	if err := s.listingRepo.UpdateEnrichment(ctx, id, profile.FollowerCount, profile.AvatarURL, now); err != nil {
		return nil, fmt.Errorf("listing service: failed to store enrichment for listing %s: %w", id, err)
	}

	listing.FollowerCount = profile.FollowerCount
	listing.AvatarURL = profile.AvatarURL
	listing.LastSyncedAt = &now

	return listing, nil
}

// ListBySeller возвращает все листинги продавца, включая неопубликованные
func (s *ListingService) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Listing, error) {
	listings, err := s.listingRepo.GetListingsBySellerID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("listing service: failed to get seller listings: %w", err)
	}
	return listings, nil
}

// Marketplace возвращает витрину: опубликованные листинги с рассчитанной
// ценой и замаскированным контактом продавца
func (s *ListingService) Marketplace(ctx context.Context) ([]*domain.PublicListing, error) {
	listings, err := s.listingRepo.GetPublishedListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing service: failed to get published listings: %w", err)
	}

	public := make([]*domain.PublicListing, 0, len(listings))
	for _, listing := range listings {
		public = append(public, s.toPublic(listing))
	}

	return public, nil
}

// GetPublic возвращает публичную карточку листинга. Неопубликованный
// листинг для витрины не существует.
func (s *ListingService) GetPublic(ctx context.Context, id uuid.UUID) (*domain.PublicListing, error) {
	listing, err := s.listingRepo.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrListingNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("listing service: failed to get listing %s: %w", id, err)
	}

	if !listing.IsPublished {
		return nil, domain.ErrListingNotFound
	}

	return s.toPublic(listing), nil
}

func (s *ListingService) getOwned(ctx context.Context, sellerID, id uuid.UUID) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrListingNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("listing service: failed to get listing %s: %w", id, err)
	}

	if listing.SellerID != sellerID {
		return nil, domain.ErrUnauthorized
	}

	return listing, nil
}

func (s *ListingService) toPublic(listing *domain.Listing) *domain.PublicListing {
	return &domain.PublicListing{
		ID:              listing.ID,
		Username:        listing.Username,
		FollowerCount:   listing.FollowerCount,
		AvatarURL:       listing.AvatarURL,
		PricingStrategy: listing.PricingStrategy,
		Price:           s.pricing.ResolvePrice(listing),
		MaskedEmail:     mask.Email(listing.ContactEmail),
	}
}

// validateListingInput нормализует и проверяет входные данные листинга.
// Поле цены, не относящееся к выбранной стратегии, обнуляется.
func validateListingInput(input *domain.ListingInput, requireUsername bool) error {
	input.Username = strings.TrimSpace(input.Username)
	input.ContactPhone = strings.TrimSpace(input.ContactPhone)
	input.ContactEmail = strings.TrimSpace(input.ContactEmail)
	input.PaymentDetails = strings.TrimSpace(input.PaymentDetails)

	if requireUsername && input.Username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.ContactPhone == "" || input.ContactEmail == "" {
		return fmt.Errorf("%w: contact phone and email are required", domain.ErrValidation)
	}
	if input.PaymentDetails == "" {
		return fmt.Errorf("%w: payment details are required", domain.ErrValidation)
	}

	switch input.PricingStrategy {
	case domain.PricingFixed:
		if input.FixedPrice == nil || input.FixedPrice.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: fixed price must be positive", domain.ErrValidation)
		}
		input.PercentageRate = nil
	case domain.PricingPercentage:
		if input.PercentageRate == nil {
			return fmt.Errorf("%w: percentage rate is required", domain.ErrValidation)
		}
		if input.PercentageRate.LessThan(decimal.Zero) || input.PercentageRate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: percentage rate must be between 0 and 100", domain.ErrValidation)
		}
		input.FixedPrice = nil
	default:
		return fmt.Errorf("%w: unknown pricing strategy %q", domain.ErrValidation, input.PricingStrategy)
	}

	return nil
}
