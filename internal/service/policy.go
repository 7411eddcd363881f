package service

import (
	"github.com/avc/account-marketplace/internal/domain"
)

// OrderPolicy решает, кому и в каком статусе заказа раскрываются
// чувствительные поля. Отказ в раскрытии всегда сигнализируется
// вызывающим слоем через domain.ErrUnauthorized, данные никогда
// не пропадают молча.
type OrderPolicy struct{}

// NewOrderPolicy создает новый OrderPolicy
func NewOrderPolicy() *OrderPolicy {
	return &OrderPolicy{}
}

// CanView сообщает, может ли принципал вообще видеть заказ
func (p *OrderPolicy) CanView(order *domain.Order, requester domain.Principal) bool {
	return requester.IsAdmin() ||
		requester.ID == order.BuyerID ||
		requester.ID == order.SellerID
}

// CanDiscloseSellerContact сообщает, раскрывается ли принципалу контакт
// и платежные реквизиты продавца. Покупателю — только после подтверждения
// оплаты администратором; возвраты и отмены раскрытие не открывают.
func (p *OrderPolicy) CanDiscloseSellerContact(order *domain.Order, requester domain.Principal) bool {
	if requester.IsAdmin() || requester.ID == order.SellerID {
		return true
	}
	if requester.ID != order.BuyerID {
		return false
	}
	return order.Status == domain.OrderStatusPaymentConfirmed ||
		order.Status == domain.OrderStatusCompleted
}

// CanDiscloseBuyerContact сообщает, раскрывается ли принципалу контакт
// покупателя. Продавец видит покупателя в любом статусе.
func (p *OrderPolicy) CanDiscloseBuyerContact(order *domain.Order, requester domain.Principal) bool {
	return requester.IsAdmin() ||
		requester.ID == order.SellerID ||
		requester.ID == order.BuyerID
}

// BuildView строит проекцию заказа для принципала: недоступные поля
// обнуляются, форма ответа остается стабильной. Листинг может быть nil,
// если продавец удалил его после продажи — заказ при этом остается
// финансовой записью без данных листинга.
func (p *OrderPolicy) BuildView(order *domain.Order, listing *domain.Listing, requester domain.Principal) *domain.OrderView {
	view := &domain.OrderView{
		ID:           order.ID,
		ListingID:    order.ListingID,
		Status:       order.Status,
		ListingPrice: order.ListingPrice,
		PlatformFee:  order.PlatformFee,
		SellerPayout: order.SellerPayout,
		CreatedAt:    order.CreatedAt,
		ConfirmedAt:  order.ConfirmedAt,
		CompletedAt:  order.CompletedAt,
		RefundedAt:   order.RefundedAt,
	}

	if listing != nil {
		view.Username = listing.Username
	}

	if listing != nil && p.CanDiscloseSellerContact(order, requester) {
		view.SellerPhone = strPtr(listing.ContactPhone)
		view.SellerEmail = strPtr(listing.ContactEmail)
		view.SellerPaymentDetails = strPtr(listing.PaymentDetails)
	}

	if p.CanDiscloseBuyerContact(order, requester) {
		view.BuyerPhone = strPtr(order.BuyerPhone)
		view.BuyerEmail = strPtr(order.BuyerEmail)
	}

	// Заметки администратора видны только администратору
	if requester.IsAdmin() {
		view.AdminNotes = order.AdminNotes
	}

	return view
}

func strPtr(s string) *string {
	return &s
}
