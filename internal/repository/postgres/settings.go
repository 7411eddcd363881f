package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SettingsRepository реализует domain.SettingsRepository.
// Настройки хранятся как строки ключ/значение, запись перезаписывает
// предыдущее значение (last-write-wins).
type SettingsRepository struct {
	db DBTX
}

// NewSettingsRepository создает новый SettingsRepository
func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings получает все настройки площадки
func (r *SettingsRepository) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM platform_settings`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("repository: failed to scan setting: %w", err)
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating settings: %w", err)
	}

	return settings, nil
}

// UpsertSetting записывает значение настройки
func (r *SettingsRepository) UpsertSetting(ctx context.Context, key, value string, updatedBy uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO platform_settings (key, value, updated_by)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE
		 SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = now()`,
		key, value, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to upsert setting %q: %w", key, err)
	}

	return nil
}
