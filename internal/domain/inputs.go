package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingInput представляет данные листинга от продавца
type ListingInput struct {
	Username        string           `json:"username"`
	PricingStrategy PricingStrategy  `json:"pricing_strategy"`
	FixedPrice      *decimal.Decimal `json:"fixed_price,omitempty"`
	PercentageRate  *decimal.Decimal `json:"percentage_rate,omitempty"`
	ContactPhone    string           `json:"contact_phone"`
	ContactEmail    string           `json:"contact_email"`
	PaymentDetails  string           `json:"payment_details"`
}

// BuyerContact представляет контакт покупателя, фиксируемый в заказе
type BuyerContact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// AuditEntry представляет запись журнала действий
type AuditEntry struct {
	ID         uuid.UUID  `json:"id"`
	Action     string     `json:"action"`
	ActorID    uuid.UUID  `json:"actor_id"`
	TargetType string     `json:"target_type"`
	TargetID   *uuid.UUID `json:"target_id,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
