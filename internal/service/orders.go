package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/avc/account-marketplace/internal/repository/postgres"
)

// OrderService реализует domain.OrderService: жизненный цикл заказа
// от создания до завершения или возврата. Все переходы статуса
// опираются на условные обновления в репозитории, поэтому при
// конкурентных запросах побеждает ровно один.
type OrderService struct {
	orderRepo   domain.OrderRepository
	listingRepo domain.ListingRepository
	pricing     domain.PricingService
	policy      *OrderPolicy
	auditRepo   domain.AuditRepository
	events      domain.EventSink
	logger      *zap.Logger
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	listingRepo domain.ListingRepository,
	pricing domain.PricingService,
	policy *OrderPolicy,
	auditRepo domain.AuditRepository,
	events domain.EventSink,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		pricing:     pricing,
		policy:      policy,
		auditRepo:   auditRepo,
		events:      events,
		logger:      logger,
	}
}

// CreateOrder создает заказ на опубликованный листинг. Цена, комиссия
// и выплата продавцу фиксируются на момент создания и больше не меняются,
// даже если продавец потом изменит цену листинга.
func (s *OrderService) CreateOrder(ctx context.Context, buyer domain.Principal, listingID uuid.UUID, contact domain.BuyerContact) (*domain.Order, error) {
	listing, err := s.listingRepo.GetListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, postgres.ErrListingNotFound) {
			return nil, domain.ErrListingUnavailable
		}
		return nil, fmt.Errorf("order service: failed to get listing %s: %w", listingID, err)
	}

	if !listing.IsPublished {
		return nil, domain.ErrListingUnavailable
	}

	if listing.SellerID == buyer.ID {
		return nil, domain.ErrSelfPurchase
	}

	phone := strings.TrimSpace(contact.Phone)
	email := strings.TrimSpace(contact.Email)
	if phone == "" || email == "" {
		return nil, fmt.Errorf("%w: buyer phone and email are required", domain.ErrValidation)
	}

	price := s.pricing.ResolvePrice(listing)
	fee, payout := splitFee(price)

	order := &domain.Order{
		ListingID:    listing.ID,
		BuyerID:      buyer.ID,
		SellerID:     listing.SellerID,
		ListingPrice: price,
		PlatformFee:  fee,
		SellerPayout: payout,
		Status:       domain.OrderStatusPendingPayment,
		BuyerPhone:   phone,
		BuyerEmail:   email,
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to create order for listing %s: %w", listingID, err)
	}

	s.record(ctx, domain.EventOrderCreated, "order_created", created.ID, buyer.ID)

	return created, nil
}

// DeclarePaymentMade переводит заказ из pending_payment в
// awaiting_confirmation. Доступно только покупателю заказа.
func (s *OrderService) DeclarePaymentMade(ctx context.Context, requester domain.Principal, orderID uuid.UUID, screenshotURL *string) (*domain.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if requester.ID != order.BuyerID {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.orderRepo.MarkAwaitingConfirmation(ctx, orderID, screenshotURL)
	if err != nil {
		return nil, s.transitionErr("declare payment", orderID, err)
	}

	s.record(ctx, domain.EventPaymentDeclared, "payment_declared", orderID, requester.ID)

	return updated, nil
}

// ConfirmPayment подтверждает получение оплаты. Доступно только
// администратору; переводит заказ в payment_confirmed и открывает
// покупателю контакт продавца.
func (s *OrderService) ConfirmPayment(ctx context.Context, requester domain.Principal, orderID uuid.UUID, notes *string) (*domain.Order, error) {
	if !requester.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.getOrder(ctx, orderID); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.MarkPaymentConfirmed(ctx, orderID, notes)
	if err != nil {
		return nil, s.transitionErr("confirm payment", orderID, err)
	}

	s.record(ctx, domain.EventPaymentConfirmed, "payment_confirmed", orderID, requester.ID)

	return updated, nil
}

// RefundOrder возвращает оплату покупателю. Доступно только администратору
// и только из awaiting_confirmation: после подтверждения оплаты выплата
// причитается продавцу и заказ идет к завершению.
func (s *OrderService) RefundOrder(ctx context.Context, requester domain.Principal, orderID uuid.UUID, notes *string) (*domain.Order, error) {
	if !requester.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.getOrder(ctx, orderID); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.MarkRefunded(ctx, orderID, notes)
	if err != nil {
		return nil, s.transitionErr("refund", orderID, err)
	}

	s.record(ctx, domain.EventOrderRefunded, "order_refunded", orderID, requester.ID)

	return updated, nil
}

// ConfirmCompletion закрывает заказ: покупатель подтверждает, что получил
// доступ к аккаунту. Только из payment_confirmed.
func (s *OrderService) ConfirmCompletion(ctx context.Context, requester domain.Principal, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if requester.ID != order.BuyerID {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.orderRepo.MarkCompleted(ctx, orderID)
	if err != nil {
		return nil, s.transitionErr("complete", orderID, err)
	}

	s.record(ctx, domain.EventOrderCompleted, "order_completed", orderID, requester.ID)

	return updated, nil
}

// GetOrderView возвращает проекцию заказа с учетом политики раскрытия
func (s *OrderService) GetOrderView(ctx context.Context, requester domain.Principal, orderID uuid.UUID) (*domain.OrderView, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanView(order, requester) {
		return nil, domain.ErrUnauthorized
	}

	return s.buildView(ctx, order, requester)
}

// ListForBuyer возвращает заказы, где принципал — покупатель
func (s *OrderService) ListForBuyer(ctx context.Context, requester domain.Principal) ([]*domain.OrderView, error) {
	orders, err := s.orderRepo.GetOrdersByBuyerID(ctx, requester.ID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get buyer orders: %w", err)
	}
	return s.buildViews(ctx, orders, requester)
}

// ListForSeller возвращает заказы, где принципал — продавец
func (s *OrderService) ListForSeller(ctx context.Context, requester domain.Principal) ([]*domain.OrderView, error) {
	orders, err := s.orderRepo.GetOrdersBySellerID(ctx, requester.ID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get seller orders: %w", err)
	}
	return s.buildViews(ctx, orders, requester)
}

// ListAll возвращает все заказы площадки. Только администратор.
func (s *OrderService) ListAll(ctx context.Context, requester domain.Principal) ([]*domain.OrderView, error) {
	if !requester.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get all orders: %w", err)
	}
	return s.buildViews(ctx, orders, requester)
}

func (s *OrderService) getOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to get order %s: %w", orderID, err)
	}
	return order, nil
}

// transitionErr переводит конфликт условного обновления в ошибку
// недопустимого перехода, остальное оборачивает
func (s *OrderService) transitionErr(op string, orderID uuid.UUID, err error) error {
	if errors.Is(err, postgres.ErrStatusConflict) {
		return domain.ErrInvalidTransition
	}
	return fmt.Errorf("order service: failed to %s order %s: %w", op, orderID, err)
}

// record пишет запись в журнал и посылает событие. Сбои журналирования
// не откатывают уже совершенный переход и только логируются.
func (s *OrderService) record(ctx context.Context, event domain.EventName, action string, orderID, actorID uuid.UUID) {
	if err := s.auditRepo.Append(ctx, &domain.AuditEntry{
		Action:     action,
		ActorID:    actorID,
		TargetType: "order",
		TargetID:   &orderID,
	}); err != nil {
		s.logger.Error("failed to append audit entry",
			zap.String("action", action),
			zap.String("order_id", orderID.String()),
			zap.Error(err))
	}

	s.events.Emit(ctx, domain.Event{
		Name:    event,
		OrderID: orderID,
		ActorID: actorID,
	})
}

func (s *OrderService) buildView(ctx context.Context, order *domain.Order, requester domain.Principal) (*domain.OrderView, error) {
	listing, err := s.listingRepo.GetListingByID(ctx, order.ListingID)
	if err != nil {
		// Удаленный листинг не прячет заказ: он остается финансовой записью
		if !errors.Is(err, postgres.ErrListingNotFound) {
			return nil, fmt.Errorf("order service: failed to get listing %s: %w", order.ListingID, err)
		}
		listing = nil
	}

	return s.policy.BuildView(order, listing, requester), nil
}

func (s *OrderService) buildViews(ctx context.Context, orders []*domain.Order, requester domain.Principal) ([]*domain.OrderView, error) {
	views := make([]*domain.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.buildView(ctx, order, requester)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
