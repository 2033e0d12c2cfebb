package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// SettingsSvcFacade defines operations on organization-wide settings.
type SettingsSvcFacade interface {
	// GetSettings returns the current settings, creating defaults on first read.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// UpdateSettings applies the provided changes.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error)

	// BackupDatabase is declared but not implemented; it always returns
	// apperrors.ErrNotImplemented.
	BackupDatabase(ctx context.Context, userID string) error

	// RestoreDatabase is declared but not implemented; it always returns
	// apperrors.ErrNotImplemented.
	RestoreDatabase(ctx context.Context, userID string) error
}
