package repository

import "github.com/goitom/finance-api/internal/domain/entity"

// SettingsRepository is the persistence port for the per-user settings
// singleton.
type SettingsRepository interface {
	GetByUser(userID string) (*entity.Settings, error)
	Create(settings *entity.Settings) error
	Update(settings *entity.Settings) error
}
