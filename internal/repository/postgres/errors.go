package postgres

import "errors"

// Ошибки пользователей
var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// Ошибки листингов
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUsernameTaken   = errors.New("listing with this username already exists")
)

// Ошибки заказов
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrStatusConflict возвращается, когда условное обновление статуса
	// не затронуло ни одной строки: предусловие перехода не выполнено
	ErrStatusConflict = errors.New("order status precondition failed")
)
