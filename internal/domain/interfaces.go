package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string, role Role, phone, email string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
}

// ListingRepository определяет методы для работы с листингами
type ListingRepository interface {
	CreateListing(ctx context.Context, listing *Listing) (*Listing, error)
	GetListingByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	GetListingsBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*Listing, error)
	GetPublishedListings(ctx context.Context) ([]*Listing, error)
	UpdateListing(ctx context.Context, listing *Listing) error
	SetPublished(ctx context.Context, id, sellerID uuid.UUID, published bool) error
	DeleteListing(ctx context.Context, id, sellerID uuid.UUID) error
	UpdateEnrichment(ctx context.Context, id uuid.UUID, followerCount int64, avatarURL *string, syncedAt time.Time) error
	GetStaleListings(ctx context.Context, olderThan time.Time, limit int) ([]*Listing, error)
}

// OrderRepository определяет методы для работы с заказами.
// Методы Mark* выполняют условное обновление по текущему статусу
// (compare-and-swap): ноль затронутых строк означает, что предусловие
// перехода больше не выполняется, и возвращается ErrInvalidTransition.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetOrdersByBuyerID(ctx context.Context, buyerID uuid.UUID) ([]*Order, error)
	GetOrdersBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*Order, error)
	GetAllOrders(ctx context.Context) ([]*Order, error)
	MarkAwaitingConfirmation(ctx context.Context, id uuid.UUID, screenshotURL *string) (*Order, error)
	MarkPaymentConfirmed(ctx context.Context, id uuid.UUID, notes *string) (*Order, error)
	MarkRefunded(ctx context.Context, id uuid.UUID, notes *string) (*Order, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (*Order, error)
	GetSellerEarnings(ctx context.Context, sellerID uuid.UUID) (*SellerEarnings, error)
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}

// SettingsRepository определяет методы для работы с настройками площадки
type SettingsRepository interface {
	GetSettings(ctx context.Context) (map[string]string, error)
	UpsertSetting(ctx context.Context, key, value string, updatedBy uuid.UUID) error
}

// AuditRepository определяет методы журнала действий
type AuditRepository interface {
	Append(ctx context.Context, entry *AuditEntry) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string, role Role, phone, email string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// ListingService определяет методы работы с листингами
type ListingService interface {
	Create(ctx context.Context, sellerID uuid.UUID, input ListingInput) (*Listing, error)
	Update(ctx context.Context, sellerID, id uuid.UUID, input ListingInput) (*Listing, error)
	Delete(ctx context.Context, sellerID, id uuid.UUID) error
	SetPublished(ctx context.Context, sellerID, id uuid.UUID, published bool) error
	Sync(ctx context.Context, sellerID, id uuid.UUID) (*Listing, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*Listing, error)
	Marketplace(ctx context.Context) ([]*PublicListing, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*PublicListing, error)
}

// OrderService определяет операции жизненного цикла заказа
type OrderService interface {
	CreateOrder(ctx context.Context, buyer Principal, listingID uuid.UUID, contact BuyerContact) (*Order, error)
	DeclarePaymentMade(ctx context.Context, requester Principal, orderID uuid.UUID, screenshotURL *string) (*Order, error)
	ConfirmPayment(ctx context.Context, requester Principal, orderID uuid.UUID, notes *string) (*Order, error)
	RefundOrder(ctx context.Context, requester Principal, orderID uuid.UUID, notes *string) (*Order, error)
	ConfirmCompletion(ctx context.Context, requester Principal, orderID uuid.UUID) (*Order, error)
	GetOrderView(ctx context.Context, requester Principal, orderID uuid.UUID) (*OrderView, error)
	ListForBuyer(ctx context.Context, requester Principal) ([]*OrderView, error)
	ListForSeller(ctx context.Context, requester Principal) ([]*OrderView, error)
	ListAll(ctx context.Context, requester Principal) ([]*OrderView, error)
}

// PricingService определяет расчет цены и платежные инструкции площадки
type PricingService interface {
	ResolvePrice(listing *Listing) decimal.Decimal
	PaymentInstructions(ctx context.Context) (*PaymentInstructions, error)
	UpdateSettings(ctx context.Context, requester Principal, values map[string]string) error
}

// PayoutService определяет сводки по выплатам и комиссиям
type PayoutService interface {
	SellerEarnings(ctx context.Context, sellerID uuid.UUID) (*SellerEarnings, error)
	PlatformStats(ctx context.Context, requester Principal) (*PlatformStats, error)
}

// EnrichmentClient определяет методы взаимодействия с сервисом обогащения
// (подписчики и аватар по имени аккаунта)
type EnrichmentClient interface {
	FetchProfile(ctx context.Context, username string) (*EnrichmentResult, error)
}

// EventSink принимает именованные события жизненного цикла заказа.
// Реализация не должна блокировать и не влияет на результат перехода.
type EventSink interface {
	Emit(ctx context.Context, event Event)
}
