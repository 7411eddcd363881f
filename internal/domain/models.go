package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role представляет роль пользователя на площадке
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid проверяет, что роль известна системе
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}

// Principal представляет аутентифицированного пользователя запроса.
// Авторизация выполняется по возможностям (владение заказом, админ-права),
// а не по взаимоисключающим ролям: продавец может покупать чужие листинги.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin сообщает, есть ли у принципала административные права
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPendingPayment       OrderStatus = "pending_payment"
	OrderStatusAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderStatusPaymentConfirmed     OrderStatus = "payment_confirmed"
	OrderStatusCompleted            OrderStatus = "completed"
	OrderStatusRefunded             OrderStatus = "refunded"
	// OrderStatusCancelled зарезервирован для отказа покупателя до оплаты.
	// Ни один публичный метод пока не переводит заказ в этот статус.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal сообщает, является ли статус конечным
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusRefunded || s == OrderStatusCancelled
}

// PricingStrategy представляет способ расчета цены листинга
type PricingStrategy string

const (
	PricingFixed      PricingStrategy = "fixed"
	PricingPercentage PricingStrategy = "percentage"
)

// User представляет пользователя системы
type User struct {
	ID           uuid.UUID `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Listing представляет аккаунт, выставленный продавцом на продажу
type Listing struct {
	ID              uuid.UUID        `json:"id"`
	SellerID        uuid.UUID        `json:"seller_id"`
	Username        string           `json:"username"` // Неизменяем после создания
	FollowerCount   int64            `json:"follower_count"`
	AvatarURL       *string          `json:"avatar_url,omitempty"`
	PricingStrategy PricingStrategy  `json:"pricing_strategy"`
	FixedPrice      *decimal.Decimal `json:"fixed_price,omitempty"`
	PercentageRate  *decimal.Decimal `json:"percentage_rate,omitempty"`
	ContactPhone    string           `json:"contact_phone,omitempty"`
	ContactEmail    string           `json:"contact_email,omitempty"`
	PaymentDetails  string           `json:"payment_details,omitempty"`
	IsPublished     bool             `json:"is_published"`
	LastSyncedAt    *time.Time       `json:"last_synced_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// PublicListing — проекция листинга для витрины: контакт продавца замаскирован,
// платежные реквизиты не раскрываются вовсе
type PublicListing struct {
	ID              uuid.UUID       `json:"id"`
	Username        string          `json:"username"`
	FollowerCount   int64           `json:"follower_count"`
	AvatarURL       *string         `json:"avatar_url,omitempty"`
	PricingStrategy PricingStrategy `json:"pricing_strategy"`
	Price           decimal.Decimal `json:"price"`
	MaskedEmail     string          `json:"masked_email"`
}

// Order представляет покупку листинга. Финансовые поля — снимок на момент
// создания и никогда не пересчитываются. Заказы не удаляются.
type Order struct {
	ID                   uuid.UUID       `json:"id"`
	ListingID            uuid.UUID       `json:"listing_id"`
	BuyerID              uuid.UUID       `json:"buyer_id"`
	SellerID             uuid.UUID       `json:"seller_id"`
	ListingPrice         decimal.Decimal `json:"listing_price"`
	PlatformFee          decimal.Decimal `json:"platform_fee"`
	SellerPayout         decimal.Decimal `json:"seller_payout"`
	Status               OrderStatus     `json:"status"`
	BuyerPhone           string          `json:"buyer_phone"`
	BuyerEmail           string          `json:"buyer_email"`
	PaymentScreenshotURL *string         `json:"payment_screenshot_url,omitempty"`
	AdminNotes           *string         `json:"admin_notes,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	ConfirmedAt          *time.Time      `json:"confirmed_at,omitempty"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
	RefundedAt           *time.Time      `json:"refunded_at,omitempty"`
}

// OrderView — проекция заказа с учетом политики раскрытия: чувствительные
// поля обнуляются, а не исключаются, чтобы форма ответа была стабильной
type OrderView struct {
	ID           uuid.UUID       `json:"id"`
	ListingID    uuid.UUID       `json:"listing_id"`
	Username     string          `json:"username"`
	Status       OrderStatus     `json:"status"`
	ListingPrice decimal.Decimal `json:"listing_price"`
	PlatformFee  decimal.Decimal `json:"platform_fee"`
	SellerPayout decimal.Decimal `json:"seller_payout"`

	// Контакт и реквизиты продавца: покупателю только после подтверждения
	// оплаты, продавцу и администратору — всегда
	SellerPhone          *string `json:"seller_phone"`
	SellerEmail          *string `json:"seller_email"`
	SellerPaymentDetails *string `json:"seller_payment_details"`

	// Контакт покупателя: покупателю, продавцу и администратору
	BuyerPhone *string `json:"buyer_phone"`
	BuyerEmail *string `json:"buyer_email"`

	AdminNotes  *string    `json:"admin_notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	RefundedAt  *time.Time `json:"refunded_at,omitempty"`
}

// PaymentInstructions представляет платежные инструкции площадки,
// показываемые покупателю на шаге оплаты
type PaymentInstructions struct {
	FPSNumber      string `json:"fps_number"`
	PaymentEmail   string `json:"payment_email"`
	PaymentMethods string `json:"payment_methods"`
}

// Известные ключи platform_settings
const (
	SettingFPSNumber      = "fps_number"
	SettingPaymentEmail   = "payment_email"
	SettingPaymentMethods = "payment_methods"
)

// SellerEarnings представляет сводку выплат продавца
type SellerEarnings struct {
	PendingPayout decimal.Decimal `json:"pending_payout"` // Заказы в payment_confirmed
	PaidOut       decimal.Decimal `json:"paid_out"`       // Завершенные заказы
	OrdersTotal   int64           `json:"orders_total"`
}

// PlatformStats представляет сводку для административной панели
type PlatformStats struct {
	AwaitingConfirmation int64           `json:"awaiting_confirmation"`
	CompletedOrders      int64           `json:"completed_orders"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"` // Сумма комиссий по завершенным заказам
}

// EnrichmentResult представляет ответ внешнего сервиса обогащения
type EnrichmentResult struct {
	FollowerCount int64   `json:"followerCount"`
	AvatarURL     *string `json:"avatarUrl,omitempty"`
}

// EventName представляет имя события жизненного цикла заказа
type EventName string

const (
	EventOrderCreated     EventName = "OrderCreated"
	EventPaymentDeclared  EventName = "PaymentDeclared"
	EventPaymentConfirmed EventName = "PaymentConfirmed"
	EventOrderRefunded    EventName = "OrderRefunded"
	EventOrderCompleted   EventName = "OrderCompleted"
)

// Event представляет именованное событие для слоя уведомлений
type Event struct {
	Name    EventName
	OrderID uuid.UUID
	ActorID uuid.UUID
}
