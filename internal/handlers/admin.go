package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
)

// AdminHandler обрабатывает административные операции: подтверждение
// оплат, возвраты, настройки площадки и сводную статистику
type AdminHandler struct {
	orderService   domain.OrderService
	pricingService domain.PricingService
	payoutService  domain.PayoutService
	logger         *zap.Logger
}

func NewAdminHandler(
	orderService domain.OrderService,
	pricingService domain.PricingService,
	payoutService domain.PayoutService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		orderService:   orderService,
		pricingService: pricingService,
		payoutService:  payoutService,
		logger:         logger,
	}
}

// ListOrders возвращает все заказы площадки
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	views, err := h.orderService.ListAll(r.Context(), principal)
	if err != nil {
		h.writeError(w, err, "failed to list orders")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, views)
}

type adminNotesRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ConfirmPayment подтверждает получение оплаты по заказу
func (h *AdminHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.ConfirmPayment)
}

// RefundOrder оформляет возврат оплаты по заказу
func (h *AdminHandler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.RefundOrder)
}

// transition выполняет административный переход статуса с необязательными
// заметками в теле запроса
func (h *AdminHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, requester domain.Principal, orderID uuid.UUID, notes *string) (*domain.Order, error),
) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req adminNotesRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}

	order, err := op(r.Context(), principal, orderID, req.Notes)
	if err != nil {
		h.writeError(w, err, "failed to transition order")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// UpdateSettings перезаписывает платежные настройки площадки
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.pricingService.UpdateSettings(r.Context(), principal, values); err != nil {
		h.writeError(w, err, "failed to update settings")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Stats возвращает сводку площадки
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.payoutService.PlatformStats(r.Context(), principal)
	if err != nil {
		h.writeError(w, err, "failed to get platform stats")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

func (h *AdminHandler) writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, "Conflict", http.StatusConflict)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, "Bad Request", http.StatusBadRequest)
	default:
		h.logger.Error(msg, zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
