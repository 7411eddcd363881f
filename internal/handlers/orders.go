package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
)

// OrdersHandler обрабатывает операции покупателя и продавца над заказами
type OrdersHandler struct {
	orderService  domain.OrderService
	payoutService domain.PayoutService
	logger        *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, payoutService domain.PayoutService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService:  orderService,
		payoutService: payoutService,
		logger:        logger,
	}
}

type createOrderRequest struct {
	ListingID uuid.UUID           `json:"listing_id"`
	Contact   domain.BuyerContact `json:"contact"`
}

// CreateOrder создает заказ на листинг
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), principal, req.ListingID, req.Contact)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingUnavailable):
			// Листинг снят с витрины или не существует
			http.Error(w, "Gone", http.StatusGone)
		case errors.Is(err, domain.ErrSelfPurchase):
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrValidation):
			http.Error(w, "Bad Request", http.StatusBadRequest)
		default:
			h.logger.Error("failed to create order", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}

// ListMine возвращает заказы покупателя
func (h *OrdersHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	views, err := h.orderService.ListForBuyer(r.Context(), principal)
	if err != nil {
		h.logger.Error("failed to get buyer orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(views) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, views)
}

// ListSales возвращает заказы продавца
func (h *OrdersHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	views, err := h.orderService.ListForSeller(r.Context(), principal)
	if err != nil {
		h.logger.Error("failed to get seller orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(views) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, views)
}

// GetOrder возвращает заказ с учетом политики раскрытия
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
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

	view, err := h.orderService.GetOrderView(r.Context(), principal, orderID)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, view)
}

type declarePaymentRequest struct {
	ScreenshotURL *string `json:"screenshot_url,omitempty"`
}

// DeclarePayment сообщает площадке об отправленной оплате
func (h *OrdersHandler) DeclarePayment(w http.ResponseWriter, r *http.Request) {
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

	var req declarePaymentRequest
	// Тело не обязательно: скриншот можно не прикладывать
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}

	order, err := h.orderService.DeclarePaymentMade(r.Context(), principal, orderID, req.ScreenshotURL)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// ConfirmCompletion закрывает заказ после получения доступа к аккаунту
func (h *OrdersHandler) ConfirmCompletion(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.orderService.ConfirmCompletion(r.Context(), principal, orderID)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// Earnings возвращает сводку выплат продавца
func (h *OrdersHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	earnings, err := h.payoutService.SellerEarnings(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to get seller earnings", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, earnings)
}

func (h *OrdersHandler) writeOrderError(w http.ResponseWriter, err error) {
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
		h.logger.Error("order operation failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
