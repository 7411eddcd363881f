package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/avc/account-marketplace/internal/service"
)

// syncTask задание на синхронизацию одного листинга
type syncTask struct {
	listingID uuid.UUID
	username  string
}

// Pool представляет пул воркеров фоновой синхронизации листингов
// с сервисом обогащения: подтягивает свежие подписчики и аватары
type Pool struct {
	workers      int
	queue        chan syncTask
	done         chan struct{}
	listingRepo  domain.ListingRepository
	enrichment   domain.EnrichmentClient
	logger       *zap.Logger
	wg           sync.WaitGroup
	scannerWG    sync.WaitGroup
	scanInterval time.Duration
	staleAfter   time.Duration
	batchSize    int
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	listingRepo domain.ListingRepository,
	enrichment domain.EnrichmentClient,
	scanInterval time.Duration,
	staleAfter time.Duration,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      workers,
		queue:        make(chan syncTask, queueSize),
		done:         make(chan struct{}),
		listingRepo:  listingRepo,
		enrichment:   enrichment,
		logger:       logger,
		scanInterval: scanInterval,
		staleAfter:   staleAfter,
		batchSize:    queueSize,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер устаревших листингов
	p.scannerWG.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool. Очередь закрывается только после
// выхода сканера: он единственный пишет в нее, иначе остановка во время
// скана приводила бы к отправке в закрытый канал.
func (p *Pool) Stop() {
	close(p.done)
	p.scannerWG.Wait()
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает задания из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case task, ok := <-p.queue:
			if !ok {
				return
			}
			p.syncListing(ctx, task)
		}
	}
}

// scanner периодически сканирует устаревшие листинги
func (p *Pool) scanner(ctx context.Context) {
	defer p.scannerWG.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-p.done:
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanStaleListings(ctx)
		}
	}
}

// scanStaleListings отправляет давно не синхронизированные листинги в очередь
func (p *Pool) scanStaleListings(ctx context.Context) {
	olderThan := time.Now().Add(-p.staleAfter)
	listings, err := p.listingRepo.GetStaleListings(ctx, olderThan, p.batchSize)
	if err != nil {
		p.logger.Error("failed to get stale listings", zap.Error(err))
		return
	}

	for _, listing := range listings {
		select {
		case p.queue <- syncTask{listingID: listing.ID, username: listing.Username}:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		case <-p.done:
			return
		default:
			// Очередь заполнена, листинг дождется следующего скана
			p.logger.Warn("queue is full, skipping listing", zap.String("username", listing.Username))
		}
	}
}

// syncListing синхронизирует один листинг
func (p *Pool) syncListing(ctx context.Context, task syncTask) {
	p.logger.Debug("syncing listing", zap.String("username", task.username))

	profile, err := p.enrichment.FetchProfile(ctx, task.username)
	if err != nil {
		// Обработка rate limiting
		var rateLimitErr *service.RateLimitError
		if errors.As(err, &rateLimitErr) {
			p.logger.Warn("rate limit exceeded",
				zap.String("username", task.username),
				zap.Duration("retry_after", rateLimitErr.RetryAfter),
			)
			time.Sleep(rateLimitErr.RetryAfter)
			return
		}

		p.logger.Error("failed to fetch profile",
			zap.String("username", task.username),
			zap.Error(err),
		)
		return
	}

	if err := p.listingRepo.UpdateEnrichment(ctx, task.listingID, profile.FollowerCount, profile.AvatarURL, time.Now()); err != nil {
		p.logger.Error("failed to store enrichment",
			zap.String("username", task.username),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("listing synced",
		zap.String("username", task.username),
		zap.Int64("followers", profile.FollowerCount),
	)
}
