package jwt

import (
	"testing"
	"time"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		role      domain.Role
		wantErr   bool
	}{
		{
			name:      "Valid token generation",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			role:      domain.RoleBuyer,
			wantErr:   false,
		},
		{
			name:      "Generate for seller",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			role:      domain.RoleSeller,
			wantErr:   false,
		},
		{
			name:      "Generate for admin",
			secretKey: "secret",
			tokenTTL:  time.Hour,
			role:      domain.RoleAdmin,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(uuid.New(), tt.role)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	userID := uuid.New()

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(userID, domain.RoleBuyer)
		require.NoError(t, err)

		principal, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, principal.ID)
		assert.Equal(t, domain.RoleBuyer, principal.Role)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(userID, domain.RoleBuyer)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(userID, domain.RoleBuyer)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Role survives roundtrip", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)

		sellerID := uuid.New()
		adminID := uuid.New()

		sellerToken, err := m.Generate(sellerID, domain.RoleSeller)
		require.NoError(t, err)

		adminToken, err := m.Generate(adminID, domain.RoleAdmin)
		require.NoError(t, err)

		seller, err := m.Validate(sellerToken)
		require.NoError(t, err)
		assert.Equal(t, sellerID, seller.ID)
		assert.False(t, seller.IsAdmin())

		admin, err := m.Validate(adminToken)
		require.NoError(t, err)
		assert.Equal(t, adminID, admin.ID)
		assert.True(t, admin.IsAdmin())
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(userID, domain.Role("superuser"))
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// Токен с alg=none не должен проходить валидацию
	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxMjM0NX0.")
	assert.Error(t, err)
}

func BenchmarkManager_Generate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	userID := uuid.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Generate(userID, domain.RoleBuyer)
	}
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	userID := uuid.New()
	token, _ := m.Generate(userID, domain.RoleBuyer)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
