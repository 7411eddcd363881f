package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/avc/account-marketplace/internal/repository/postgres"
	"github.com/avc/account-marketplace/internal/utils/jwt"
	"github.com/avc/account-marketplace/internal/utils/password"
)

// AuthServiceConfig содержит настройки аутентификации
type AuthServiceConfig struct {
	MinPasswordLength int
}

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	config         AuthServiceConfig
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	config AuthServiceConfig,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		config:         config,
	}
}

// Register регистрирует нового пользователя. Самостоятельно можно
// зарегистрироваться только покупателем или продавцом, администраторы
// заводятся вне публичного API.
func (s *AuthService) Register(ctx context.Context, login, userPassword string, role domain.Role, phone, email string) (string, error) {
	// Валидация входных данных
	if login == "" || userPassword == "" {
		return "", fmt.Errorf("%w: empty login or password", domain.ErrValidation)
	}
	if utf8.RuneCountInString(userPassword) < s.config.MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, s.config.MinPasswordLength)
	}
	if role != domain.RoleBuyer && role != domain.RoleSeller {
		return "", fmt.Errorf("%w: invalid role %q", domain.ErrValidation, role)
	}

	// Хеширование пароля
	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password for user %q: %w", login, err)
	}

	// Создание пользователя
	user, err := s.userRepo.CreateUser(ctx, login, hash, role, phone, email)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, postgres.ErrUserExists) {
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("auth service: failed to register user %q: %w", login, err)
	}

	// Генерация JWT токена
	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return token, nil
}

// Login аутентифицирует пользователя
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (string, error) {
	// Валидация входных данных
	if login == "" || userPassword == "" {
		return "", fmt.Errorf("%w: empty login or password", domain.ErrValidation)
	}

	// Получение пользователя по логину
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	// Проверка пароля
	err = s.passwordHasher.Check(user.PasswordHash, userPassword)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	// Генерация JWT токена
	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return token, nil
}
