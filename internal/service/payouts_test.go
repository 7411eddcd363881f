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

	"github.com/avc/account-marketplace/internal/domain"
	domainmocks "github.com/avc/account-marketplace/internal/domain/mocks"
)

func TestPayoutService_SellerEarnings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
		svc := NewPayoutService(mockOrderRepo)
		sellerID := uuid.New()
		earnings := &domain.SellerEarnings{
			PendingPayout: decimal.NewFromInt(9000),
			PaidOut:       decimal.NewFromInt(45000),
			OrdersTotal:   7,
		}

		mockOrderRepo.EXPECT().GetSellerEarnings(mock.Anything, sellerID).Return(earnings, nil).Once()

		result, err := svc.SellerEarnings(ctx, sellerID)
		require.NoError(t, err)
		assert.Equal(t, earnings, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
		svc := NewPayoutService(mockOrderRepo)

		mockOrderRepo.EXPECT().GetSellerEarnings(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.SellerEarnings(ctx, uuid.New())
		assert.Error(t, err)
	})
}

func TestPayoutService_PlatformStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
		svc := NewPayoutService(mockOrderRepo)
		admin := domain.Principal{ID: uuid.New(), Role: domain.RoleAdmin}
		stats := &domain.PlatformStats{
			AwaitingConfirmation: 3,
			CompletedOrders:      12,
			TotalRevenue:         decimal.NewFromInt(13400),
		}

		mockOrderRepo.EXPECT().GetPlatformStats(mock.Anything).Return(stats, nil).Once()

		result, err := svc.PlatformStats(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, stats, result)
	})

	t.Run("Non-admin", func(t *testing.T) {
		svc := NewPayoutService(domainmocks.NewOrderRepositoryMock(t))
		seller := domain.Principal{ID: uuid.New(), Role: domain.RoleSeller}

		_, err := svc.PlatformStats(ctx, seller)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
