package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, listing_id, buyer_id, seller_id,
		listing_price, platform_fee, seller_payout, status,
		buyer_phone, buyer_email, payment_screenshot_url, admin_notes,
		created_at, confirmed_at, completed_at, refunded_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.ListingID, &o.BuyerID, &o.SellerID,
		&o.ListingPrice, &o.PlatformFee, &o.SellerPayout, &o.Status,
		&o.BuyerPhone, &o.BuyerEmail, &o.PaymentScreenshotURL, &o.AdminNotes,
		&o.CreatedAt, &o.ConfirmedAt, &o.CompletedAt, &o.RefundedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// CreateOrder сохраняет новый заказ со статусом pending_payment.
// Финансовый снимок уже рассчитан вызывающей стороной.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (listing_id, buyer_id, seller_id,
			listing_price, platform_fee, seller_payout, status,
			buyer_phone, buyer_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		order.ListingID, order.BuyerID, order.SellerID,
		order.ListingPrice, order.PlatformFee, order.SellerPayout, order.Status,
		order.BuyerPhone, order.BuyerEmail,
	).Scan(&order.ID, &order.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create order for listing %s: %w", order.ListingID, err)
	}

	return order, nil
}

// GetOrderByID получает заказ по ID
func (r *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %s: %w", id, err)
	}

	return order, nil
}

// GetOrdersByBuyerID получает все заказы покупателя
func (r *OrderRepository) GetOrdersByBuyerID(ctx context.Context, buyerID uuid.UUID) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE buyer_id = $1
		 ORDER BY created_at DESC`,
		buyerID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for buyer %s: %w", buyerID, err)
	}

	return collectOrders(rows)
}

// GetOrdersBySellerID получает заказы по листингам продавца
func (r *OrderRepository) GetOrdersBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE seller_id = $1
		 ORDER BY created_at DESC`,
		sellerID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for seller %s: %w", sellerID, err)
	}

	return collectOrders(rows)
}

// GetAllOrders получает все заказы (административный обзор)
func (r *OrderRepository) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders: %w", err)
	}

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]*domain.Order, error) {
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// transition выполняет условное обновление статуса. Обновление атомарно:
// WHERE по текущему статусу гарантирует, что из двух конкурирующих
// переходов зафиксируется ровно один, второй получит ErrStatusConflict.
func (r *OrderRepository) transition(ctx context.Context, sql string, args ...any) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatusConflict
		}
		return nil, fmt.Errorf("repository: failed to transition order: %w", err)
	}
	return order, nil
}

// MarkAwaitingConfirmation переводит заказ pending_payment -> awaiting_confirmation
func (r *OrderRepository) MarkAwaitingConfirmation(ctx context.Context, id uuid.UUID, screenshotURL *string) (*domain.Order, error) {
	return r.transition(ctx,
		`UPDATE orders
		 SET status = $1, payment_screenshot_url = COALESCE($2, payment_screenshot_url), updated_at = now()
		 WHERE id = $3 AND status = $4
		 RETURNING `+orderColumns,
		domain.OrderStatusAwaitingConfirmation, screenshotURL, id, domain.OrderStatusPendingPayment,
	)
}

// MarkPaymentConfirmed переводит заказ awaiting_confirmation -> payment_confirmed
func (r *OrderRepository) MarkPaymentConfirmed(ctx context.Context, id uuid.UUID, notes *string) (*domain.Order, error) {
	return r.transition(ctx,
		`UPDATE orders
		 SET status = $1, confirmed_at = now(), admin_notes = $2, updated_at = now()
		 WHERE id = $3 AND status = $4
		 RETURNING `+orderColumns,
		domain.OrderStatusPaymentConfirmed, notes, id, domain.OrderStatusAwaitingConfirmation,
	)
}

// MarkRefunded переводит заказ awaiting_confirmation -> refunded
func (r *OrderRepository) MarkRefunded(ctx context.Context, id uuid.UUID, notes *string) (*domain.Order, error) {
	return r.transition(ctx,
		`UPDATE orders
		 SET status = $1, refunded_at = now(), admin_notes = $2, updated_at = now()
		 WHERE id = $3 AND status = $4
		 RETURNING `+orderColumns,
		domain.OrderStatusRefunded, notes, id, domain.OrderStatusAwaitingConfirmation,
	)
}

// MarkCompleted переводит заказ payment_confirmed -> completed
func (r *OrderRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.transition(ctx,
		`UPDATE orders
		 SET status = $1, completed_at = now(), updated_at = now()
		 WHERE id = $2 AND status = $3
		 RETURNING `+orderColumns,
		domain.OrderStatusCompleted, id, domain.OrderStatusPaymentConfirmed,
	)
}

// GetSellerEarnings агрегирует выплаты продавца по статусам заказов
func (r *OrderRepository) GetSellerEarnings(ctx context.Context, sellerID uuid.UUID) (*domain.SellerEarnings, error) {
	earnings := &domain.SellerEarnings{}

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(seller_payout) FILTER (WHERE status = $2), 0),
			COALESCE(SUM(seller_payout) FILTER (WHERE status = $3), 0),
			COUNT(*)
		 FROM orders
		 WHERE seller_id = $1`,
		sellerID, domain.OrderStatusPaymentConfirmed, domain.OrderStatusCompleted,
	).Scan(&earnings.PendingPayout, &earnings.PaidOut, &earnings.OrdersTotal)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get earnings for seller %s: %w", sellerID, err)
	}

	return earnings, nil
}

// GetPlatformStats агрегирует сводку для административной панели
func (r *OrderRepository) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	stats := &domain.PlatformStats{}

	err := r.db.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COALESCE(SUM(platform_fee) FILTER (WHERE status = $2), 0)
		 FROM orders`,
		domain.OrderStatusAwaitingConfirmation, domain.OrderStatusCompleted,
	).Scan(&stats.AwaitingConfirmation, &stats.CompletedOrders, &stats.TotalRevenue)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get platform stats: %w", err)
	}

	return stats, nil
}
