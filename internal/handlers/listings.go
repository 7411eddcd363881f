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

// ListingsHandler обрабатывает публичную витрину и кабинет продавца
type ListingsHandler struct {
	listingService domain.ListingService
	pricingService domain.PricingService
	logger         *zap.Logger
}

func NewListingsHandler(listingService domain.ListingService, pricingService domain.PricingService, logger *zap.Logger) *ListingsHandler {
	return &ListingsHandler{
		listingService: listingService,
		pricingService: pricingService,
		logger:         logger,
	}
}

// Marketplace возвращает витрину опубликованных листингов
func (h *ListingsHandler) Marketplace(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingService.Marketplace(r.Context())
	if err != nil {
		h.logger.Error("failed to get marketplace", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, listings)
}

// GetPublic возвращает публичную карточку листинга
func (h *ListingsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.GetPublic(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get listing", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, listing)
}

// PaymentInstructions возвращает платежные инструкции площадки
func (h *ListingsHandler) PaymentInstructions(w http.ResponseWriter, r *http.Request) {
	instructions, err := h.pricingService.PaymentInstructions(r.Context())
	if err != nil {
		h.logger.Error("failed to get payment instructions", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, instructions)
}

// ListMine возвращает все листинги продавца
func (h *ListingsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	listings, err := h.listingService.ListBySeller(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to get seller listings", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, listings)
}

// Create создает листинг продавца
func (h *ListingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input domain.ListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.Create(r.Context(), principal.ID, input)
	if err != nil {
		h.writeListingError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, listing)
}

// Update обновляет листинг продавца
func (h *ListingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var input domain.ListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.Update(r.Context(), principal.ID, id, input)
	if err != nil {
		h.writeListingError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, listing)
}

// Delete удаляет листинг продавца
func (h *ListingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.listingService.Delete(r.Context(), principal.ID, id); err != nil {
		h.writeListingError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type publishRequest struct {
	Published bool `json:"published"`
}

// SetPublished публикует или снимает листинг с витрины
func (h *ListingsHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.listingService.SetPublished(r.Context(), principal.ID, id, req.Published); err != nil {
		h.writeListingError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Sync принудительно обновляет данные листинга из сервиса обогащения
func (h *ListingsHandler) Sync(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.Sync(r.Context(), principal.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrCollaboratorUnavailable) {
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}
		h.writeListingError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, listing)
}

func (h *ListingsHandler) writeListingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, "Bad Request", http.StatusBadRequest)
	default:
		h.logger.Error("listing operation failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeJSON пишет JSON ответ со статусом
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
