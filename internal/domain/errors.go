package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки листингов
var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingUnavailable = errors.New("listing unavailable")
)

// Ошибки заказов и переходов
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrSelfPurchase      = errors.New("cannot purchase own listing")
)

// Ошибки авторизации и валидации
var (
	ErrUnauthorized = errors.New("operation not permitted")
	ErrValidation   = errors.New("validation failed")
)

// ErrCollaboratorUnavailable возвращается, когда внешний сервис
// (обогащение данных) недоступен. Состояние заказов при этом не меняется.
var ErrCollaboratorUnavailable = errors.New("external collaborator unavailable")
