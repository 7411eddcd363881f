package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/account-marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderID := uuid.New()
		entry := &domain.AuditEntry{
			Action:     "order_created",
			ActorID:    uuid.New(),
			TargetType: "order",
			TargetID:   &orderID,
		}

		mock.ExpectExec(`INSERT INTO system_logs`).
			WithArgs(entry.Action, entry.ActorID, entry.TargetType, entry.TargetID, entry.Metadata).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Append(ctx, entry)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		entry := &domain.AuditEntry{
			Action:     "settings_updated",
			ActorID:    uuid.New(),
			TargetType: "settings",
		}

		mock.ExpectExec(`INSERT INTO system_logs`).
			WithArgs(entry.Action, entry.ActorID, entry.TargetType, entry.TargetID, entry.Metadata).
			WillReturnError(errors.New("database error"))

		err := repo.Append(ctx, entry)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
