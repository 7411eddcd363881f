package postgres

import (
	"context"
	"fmt"

	"github.com/avc/account-marketplace/internal/domain"
)

// AuditRepository реализует domain.AuditRepository.
// Журнал только дописывается, записи никогда не изменяются.
type AuditRepository struct {
	db DBTX
}

// NewAuditRepository создает новый AuditRepository
func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append добавляет запись в журнал действий
func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO system_logs (action, actor_id, target_type, target_id, metadata)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.Action, entry.ActorID, entry.TargetType, entry.TargetID, entry.Metadata,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to append audit entry %q: %w", entry.Action, err)
	}

	return nil
}
