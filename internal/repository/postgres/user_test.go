package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()

		rows := pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow(id, now)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("seller1", "hashed_password", domain.RoleSeller, "+79990001122", "seller@example.com").
			WillReturnRows(rows)

		user, err := repo.CreateUser(ctx, "seller1", "hashed_password", domain.RoleSeller, "+79990001122", "seller@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "seller1", user.Login)
		assert.Equal(t, domain.RoleSeller, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("seller1", "hashed_password", domain.RoleSeller, "", "").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, "seller1", "hashed_password", domain.RoleSeller, "", "")
		assert.ErrorIs(t, err, ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("buyer1", "hashed_password", domain.RoleBuyer, "", "").
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, "buyer1", "hashed_password", domain.RoleBuyer, "", "")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()

		rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "phone", "email", "created_at"}).
			AddRow(id, "buyer1", "hashed_password", domain.RoleBuyer, "+79990001122", "buyer@example.com", now)

		mock.ExpectQuery(`SELECT id, login, password_hash, role, phone, email, created_at\s+FROM users\s+WHERE login`).
			WithArgs("buyer1").
			WillReturnRows(rows)

		user, err := repo.GetUserByLogin(ctx, "buyer1")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "hashed_password", user.PasswordHash)
		assert.Equal(t, domain.RoleBuyer, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, password_hash, role, phone, email, created_at\s+FROM users\s+WHERE login`).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByLogin(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
