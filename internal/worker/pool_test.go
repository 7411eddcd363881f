package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
	domainmocks "github.com/avc/account-marketplace/internal/domain/mocks"
)

func TestPool_SyncListing(t *testing.T) {
	mockListingRepo := domainmocks.NewListingRepositoryMock(t)
	mockEnrichment := domainmocks.NewEnrichmentClientMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockListingRepo, mockEnrichment, time.Minute, time.Hour, logger)

	ctx := context.Background()
	listingID := uuid.New()
	avatar := "https://cdn.example.com/a.jpg"

	mockEnrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
		Return(&domain.EnrichmentResult{FollowerCount: 54321, AvatarURL: &avatar}, nil).Once()
	mockListingRepo.EXPECT().UpdateEnrichment(mock.Anything, listingID, int64(54321), &avatar, mock.Anything).
		Return(nil).Once()

	pool.syncListing(ctx, syncTask{listingID: listingID, username: "travel_hk"})
}

func TestPool_SyncListing_FetchError(t *testing.T) {
	mockListingRepo := domainmocks.NewListingRepositoryMock(t)
	mockEnrichment := domainmocks.NewEnrichmentClientMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockListingRepo, mockEnrichment, time.Minute, time.Hour, logger)

	ctx := context.Background()
	listingID := uuid.New()

	// Недоступность сервиса не трогает данные листинга
	mockEnrichment.EXPECT().FetchProfile(mock.Anything, "travel_hk").
		Return(nil, domain.ErrCollaboratorUnavailable).Once()

	pool.syncListing(ctx, syncTask{listingID: listingID, username: "travel_hk"})
}

func TestPool_ScanStaleListings(t *testing.T) {
	mockListingRepo := domainmocks.NewListingRepositoryMock(t)
	mockEnrichment := domainmocks.NewEnrichmentClientMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockListingRepo, mockEnrichment, time.Minute, time.Hour, logger)

	ctx := context.Background()

	stale := []*domain.Listing{
		{ID: uuid.New(), Username: "travel_hk"},
		{ID: uuid.New(), Username: "foodie_hk"},
	}

	mockListingRepo.EXPECT().GetStaleListings(mock.Anything, mock.Anything, 10).Return(stale, nil).Once()

	pool.scanStaleListings(ctx)

	// Проверяем, что листинги добавлены в очередь
	select {
	case task := <-pool.queue:
		if task.username != "travel_hk" && task.username != "foodie_hk" {
			t.Errorf("unexpected listing in queue: %s", task.username)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("expected listing in queue, got timeout")
	}
}

func TestPool_StopDuringScan(t *testing.T) {
	mockListingRepo := domainmocks.NewListingRepositoryMock(t)
	mockEnrichment := domainmocks.NewEnrichmentClientMock(t)
	logger, _ := zap.NewDevelopment()

	// Короткий интервал: сканер активен в момент остановки
	pool := NewPool(2, 4, mockListingRepo, mockEnrichment, time.Millisecond, time.Hour, logger)

	stale := []*domain.Listing{
		{ID: uuid.New(), Username: "travel_hk"},
		{ID: uuid.New(), Username: "foodie_hk"},
	}

	mockListingRepo.EXPECT().GetStaleListings(mock.Anything, mock.Anything, 4).Return(stale, nil)
	mockEnrichment.EXPECT().FetchProfile(mock.Anything, mock.Anything).
		Return(&domain.EnrichmentResult{FollowerCount: 100}, nil).Maybe()
	mockListingRepo.EXPECT().UpdateEnrichment(mock.Anything, mock.Anything, int64(100), (*string)(nil), mock.Anything).
		Return(nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)
	time.Sleep(20 * time.Millisecond)

	// Очередь закрывается только после выхода сканера,
	// отправка в закрытый канал невозможна
	require.NotPanics(t, func() { pool.Stop() })
}
