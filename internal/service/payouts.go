package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avc/account-marketplace/internal/domain"
)

// PayoutService реализует domain.PayoutService: сводки по выплатам
// продавца и комиссиям площадки поверх агрегатов репозитория заказов.
type PayoutService struct {
	orderRepo domain.OrderRepository
}

// NewPayoutService создает новый PayoutService
func NewPayoutService(orderRepo domain.OrderRepository) *PayoutService {
	return &PayoutService{
		orderRepo: orderRepo,
	}
}

// SellerEarnings возвращает сводку выплат продавца: ожидаемые выплаты
// по подтвержденным заказам и уже выплаченное по завершенным
func (s *PayoutService) SellerEarnings(ctx context.Context, sellerID uuid.UUID) (*domain.SellerEarnings, error) {
	earnings, err := s.orderRepo.GetSellerEarnings(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("payout service: failed to get earnings for seller %s: %w", sellerID, err)
	}

	return earnings, nil
}

// PlatformStats возвращает сводку площадки. Только администратор.
func (s *PayoutService) PlatformStats(ctx context.Context, requester domain.Principal) (*domain.PlatformStats, error) {
	if !requester.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.orderRepo.GetPlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("payout service: failed to get platform stats: %w", err)
	}

	return stats, nil
}
