package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// feeRate — доля площадки в цене листинга
var feeRate = decimal.NewFromFloat(0.10)

var oneHundred = decimal.NewFromInt(100)

// splitFee делит цену на комиссию площадки и выплату продавцу.
// Комиссия округляется до целой денежной единицы (половина вверх),
// выплата — остаток, поэтому сумма всегда сходится с ценой без остатка.
func splitFee(price decimal.Decimal) (fee, payout decimal.Decimal) {
	fee = price.Mul(feeRate).Round(0)
	payout = price.Sub(fee)
	return fee, payout
}

// PricingService реализует domain.PricingService: расчет цены листинга
// и платежные инструкции площадки с кешем поверх platform_settings.
type PricingService struct {
	settingsRepo domain.SettingsRepository
	auditRepo    domain.AuditRepository
	logger       *zap.Logger

	cacheTTL time.Duration
	mu       sync.RWMutex
	cached   *domain.PaymentInstructions
	cachedAt time.Time
}

// NewPricingService создает новый PricingService
func NewPricingService(
	settingsRepo domain.SettingsRepository,
	auditRepo domain.AuditRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *PricingService {
	return &PricingService{
		settingsRepo: settingsRepo,
		auditRepo:    auditRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// ResolvePrice вычисляет цену продажи листинга. Вызывается один раз
// при создании заказа, результат фиксируется в заказе и не пересчитывается.
func (s *PricingService) ResolvePrice(listing *domain.Listing) decimal.Decimal {
	switch listing.PricingStrategy {
	case domain.PricingPercentage:
		if listing.PercentageRate == nil {
			return decimal.Zero
		}
		// round(followers * rate / 100), округление половины вверх
		return decimal.NewFromInt(listing.FollowerCount).
			Mul(*listing.PercentageRate).
			Div(oneHundred).
			Round(0)
	default:
		// Отсутствующая фиксированная цена трактуется как ноль, не как ошибка
		if listing.FixedPrice == nil {
			return decimal.Zero
		}
		return *listing.FixedPrice
	}
}

// PaymentInstructions возвращает платежные инструкции площадки.
// Настройки читаются через кеш с TTL; незаполненные поля остаются пустыми,
// подстановка значений по умолчанию — забота вызывающего слоя.
func (s *PricingService) PaymentInstructions(ctx context.Context) (*domain.PaymentInstructions, error) {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
		cached := *s.cached
		s.mu.RUnlock()
		return &cached, nil
	}
	s.mu.RUnlock()

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("pricing service: failed to load settings: %w", err)
	}

	instructions := &domain.PaymentInstructions{
		FPSNumber:      settings[domain.SettingFPSNumber],
		PaymentEmail:   settings[domain.SettingPaymentEmail],
		PaymentMethods: settings[domain.SettingPaymentMethods],
	}

	s.mu.Lock()
	s.cached = instructions
	s.cachedAt = time.Now()
	s.mu.Unlock()

	result := *instructions
	return &result, nil
}

var knownSettings = map[string]bool{
	domain.SettingFPSNumber:      true,
	domain.SettingPaymentEmail:   true,
	domain.SettingPaymentMethods: true,
}

// UpdateSettings перезаписывает настройки площадки. Только администратор.
func (s *PricingService) UpdateSettings(ctx context.Context, requester domain.Principal, values map[string]string) error {
	if !requester.IsAdmin() {
		return domain.ErrUnauthorized
	}

	for key := range values {
		if !knownSettings[key] {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrValidation, key)
		}
	}

	for key, value := range values {
		if err := s.settingsRepo.UpsertSetting(ctx, key, value, requester.ID); err != nil {
			return fmt.Errorf("pricing service: failed to update setting %q: %w", key, err)
		}
	}

	// Сбрасываем кеш, чтобы новые инструкции стали видны сразу
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	if err := s.auditRepo.Append(ctx, &domain.AuditEntry{
		Action:     "settings_updated",
		ActorID:    requester.ID,
		TargetType: "platform_settings",
	}); err != nil {
		s.logger.Error("failed to append audit entry", zap.Error(err))
	}

	return nil
}
