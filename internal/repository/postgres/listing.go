package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const listingColumns = `id, seller_id, username, follower_count, avatar_url,
		pricing_strategy, fixed_price, percentage_rate,
		contact_phone, contact_email, payment_details,
		is_published, last_synced_at, created_at, updated_at`

// ListingRepository реализует domain.ListingRepository
type ListingRepository struct {
	db DBTX
}

// NewListingRepository создает новый ListingRepository
func NewListingRepository(db DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := row.Scan(
		&l.ID, &l.SellerID, &l.Username, &l.FollowerCount, &l.AvatarURL,
		&l.PricingStrategy, &l.FixedPrice, &l.PercentageRate,
		&l.ContactPhone, &l.ContactEmail, &l.PaymentDetails,
		&l.IsPublished, &l.LastSyncedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CreateListing создает новый листинг
func (r *ListingRepository) CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO listings (seller_id, username, follower_count, avatar_url,
			pricing_strategy, fixed_price, percentage_rate,
			contact_phone, contact_email, payment_details, is_published, last_synced_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		listing.SellerID, listing.Username, listing.FollowerCount, listing.AvatarURL,
		listing.PricingStrategy, listing.FixedPrice, listing.PercentageRate,
		listing.ContactPhone, listing.ContactEmail, listing.PaymentDetails,
		listing.IsPublished, listing.LastSyncedAt,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("repository: failed to create listing %q: %w", listing.Username, err)
	}

	return listing, nil
}

// GetListingByID получает листинг по ID
func (r *ListingRepository) GetListingByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing, err := scanListing(r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("repository: failed to get listing %s: %w", id, err)
	}

	return listing, nil
}

// GetListingsBySellerID получает все листинги продавца
func (r *ListingRepository) GetListingsBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*domain.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+` FROM listings
		 WHERE seller_id = $1
		 ORDER BY created_at DESC`,
		sellerID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get listings for seller %s: %w", sellerID, err)
	}

	return collectListings(rows)
}

// GetPublishedListings получает опубликованные листинги для витрины
func (r *ListingRepository) GetPublishedListings(ctx context.Context) ([]*domain.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+` FROM listings
		 WHERE is_published = true
		 ORDER BY follower_count DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get published listings: %w", err)
	}

	return collectListings(rows)
}

func collectListings(rows pgx.Rows) ([]*domain.Listing, error) {
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating listings: %w", err)
	}

	return listings, nil
}

// UpdateListing обновляет изменяемые поля листинга.
// Username после создания не меняется.
func (r *ListingRepository) UpdateListing(ctx context.Context, listing *domain.Listing) error {
	result, err := r.db.Exec(ctx,
		`UPDATE listings
		 SET pricing_strategy = $1, fixed_price = $2, percentage_rate = $3,
			contact_phone = $4, contact_email = $5, payment_details = $6,
			updated_at = now()
		 WHERE id = $7 AND seller_id = $8`,
		listing.PricingStrategy, listing.FixedPrice, listing.PercentageRate,
		listing.ContactPhone, listing.ContactEmail, listing.PaymentDetails,
		listing.ID, listing.SellerID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update listing %s: %w", listing.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrListingNotFound
	}

	return nil
}

// SetPublished переключает видимость листинга на витрине
func (r *ListingRepository) SetPublished(ctx context.Context, id, sellerID uuid.UUID, published bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE listings
		 SET is_published = $1, updated_at = now()
		 WHERE id = $2 AND seller_id = $3`,
		published, id, sellerID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set listing %s published=%t: %w", id, published, err)
	}

	if result.RowsAffected() == 0 {
		return ErrListingNotFound
	}

	return nil
}

// DeleteListing удаляет листинг продавца
func (r *ListingRepository) DeleteListing(ctx context.Context, id, sellerID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM listings WHERE id = $1 AND seller_id = $2`,
		id, sellerID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to delete listing %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrListingNotFound
	}

	return nil
}

// UpdateEnrichment записывает данные внешнего сервиса обогащения
func (r *ListingRepository) UpdateEnrichment(ctx context.Context, id uuid.UUID, followerCount int64, avatarURL *string, syncedAt time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE listings
		 SET follower_count = $1, avatar_url = $2, last_synced_at = $3, updated_at = now()
		 WHERE id = $4`,
		followerCount, avatarURL, syncedAt, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update enrichment for listing %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrListingNotFound
	}

	return nil
}

// GetStaleListings получает листинги, не синхронизированные после olderThan
func (r *ListingRepository) GetStaleListings(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+` FROM listings
		 WHERE last_synced_at IS NULL OR last_synced_at < $1
		 ORDER BY last_synced_at ASC NULLS FIRST
		 LIMIT $2`,
		olderThan, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get stale listings: %w", err)
	}

	return collectListings(rows)
}
