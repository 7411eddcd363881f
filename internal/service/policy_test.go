package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avc/account-marketplace/internal/domain"
)

func TestOrderPolicy_CanDiscloseSellerContact(t *testing.T) {
	policy := NewOrderPolicy()
	buyerID := uuid.New()
	sellerID := uuid.New()

	buyer := domain.Principal{ID: buyerID, Role: domain.RoleBuyer}
	seller := domain.Principal{ID: sellerID, Role: domain.RoleSeller}
	admin := domain.Principal{ID: uuid.New(), Role: domain.RoleAdmin}
	stranger := domain.Principal{ID: uuid.New(), Role: domain.RoleBuyer}

	newOrder := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{ID: uuid.New(), BuyerID: buyerID, SellerID: sellerID, Status: status}
	}

	tests := []struct {
		name      string
		status    domain.OrderStatus
		requester domain.Principal
		want      bool
	}{
		{"Buyer pending payment", domain.OrderStatusPendingPayment, buyer, false},
		{"Buyer awaiting confirmation", domain.OrderStatusAwaitingConfirmation, buyer, false},
		{"Buyer payment confirmed", domain.OrderStatusPaymentConfirmed, buyer, true},
		{"Buyer completed", domain.OrderStatusCompleted, buyer, true},
		{"Buyer refunded", domain.OrderStatusRefunded, buyer, false},
		{"Buyer cancelled", domain.OrderStatusCancelled, buyer, false},
		{"Seller pending payment", domain.OrderStatusPendingPayment, seller, true},
		{"Admin pending payment", domain.OrderStatusPendingPayment, admin, true},
		{"Stranger completed", domain.OrderStatusCompleted, stranger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanDiscloseSellerContact(newOrder(tt.status), tt.requester))
		})
	}
}

func TestOrderPolicy_CanView(t *testing.T) {
	policy := NewOrderPolicy()
	order := &domain.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}

	assert.True(t, policy.CanView(order, domain.Principal{ID: order.BuyerID, Role: domain.RoleBuyer}))
	assert.True(t, policy.CanView(order, domain.Principal{ID: order.SellerID, Role: domain.RoleSeller}))
	assert.True(t, policy.CanView(order, domain.Principal{ID: uuid.New(), Role: domain.RoleAdmin}))
	assert.False(t, policy.CanView(order, domain.Principal{ID: uuid.New(), Role: domain.RoleBuyer}))
}

func TestOrderPolicy_BuildView(t *testing.T) {
	policy := NewOrderPolicy()
	buyerID := uuid.New()
	sellerID := uuid.New()
	notes := "confirmed via FPS"

	listing := &domain.Listing{
		ID:             uuid.New(),
		SellerID:       sellerID,
		Username:       "travel_hk",
		ContactPhone:   "+85298765432",
		ContactEmail:   "seller@example.com",
		PaymentDetails: "FPS 12345678",
	}
	order := &domain.Order{
		ID:         uuid.New(),
		ListingID:  listing.ID,
		BuyerID:    buyerID,
		SellerID:   sellerID,
		Status:     domain.OrderStatusAwaitingConfirmation,
		BuyerPhone: "+85291234567",
		BuyerEmail: "buyer@example.com",
		AdminNotes: &notes,
	}

	t.Run("Buyer before confirmation", func(t *testing.T) {
		view := policy.BuildView(order, listing, domain.Principal{ID: buyerID, Role: domain.RoleBuyer})

		assert.Equal(t, "travel_hk", view.Username)
		assert.Nil(t, view.SellerPhone)
		assert.Nil(t, view.SellerPaymentDetails)
		assert.NotNil(t, view.BuyerPhone)
		assert.Nil(t, view.AdminNotes)
	})

	t.Run("Seller always sees both contacts", func(t *testing.T) {
		view := policy.BuildView(order, listing, domain.Principal{ID: sellerID, Role: domain.RoleSeller})

		assert.NotNil(t, view.SellerPhone)
		assert.NotNil(t, view.BuyerPhone)
		assert.Nil(t, view.AdminNotes)
	})

	t.Run("Admin sees everything", func(t *testing.T) {
		view := policy.BuildView(order, listing, domain.Principal{ID: uuid.New(), Role: domain.RoleAdmin})

		assert.NotNil(t, view.SellerPhone)
		assert.NotNil(t, view.BuyerPhone)
		assert.NotNil(t, view.AdminNotes)
	})

	t.Run("Nil listing leaves listing fields empty", func(t *testing.T) {
		view := policy.BuildView(order, nil, domain.Principal{ID: uuid.New(), Role: domain.RoleAdmin})

		assert.Empty(t, view.Username)
		assert.Nil(t, view.SellerPhone)
		assert.NotNil(t, view.BuyerPhone)
	})
}
