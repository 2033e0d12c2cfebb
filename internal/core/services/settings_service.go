package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

const settingsID = "default"

// defaultSettings is what a fresh installation reads before anyone saves.
var defaultSettings = domain.Settings{
	SettingsID:       settingsID,
	OrganizationName: "Jumuiya",
	CurrencyCode:     "KES",
}

// settingsService manages the single organization settings row.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, privilege portssvc.PrivilegeSvcFacade) portssvc.SettingsSvcFacade {
	return &settingsService{
		BaseService:  BaseService{Privilege: privilege},
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings returns the current settings, falling back to defaults before
// the first save.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageSettings); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := defaultSettings
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies the provided changes.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageSettings); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		defaults := defaultSettings
		settings = &defaults
	}

	if req.OrganizationName != nil {
		settings.OrganizationName = *req.OrganizationName
	}
	if req.CurrencyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CurrencyCode))
		if len(code) != 3 {
			return nil, fmt.Errorf("%w: currency code must be a 3-letter ISO code", apperrors.ErrValidation)
		}
		settings.CurrencyCode = code
	}
	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = userID
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = settings.LastUpdatedAt
		settings.CreatedBy = userID
	}

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "failed to save settings")
		return nil, err
	}
	return settings, nil
}

// BackupDatabase is declared but intentionally unimplemented.
func (s *settingsService) BackupDatabase(ctx context.Context, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageSettings); err != nil {
		return err
	}
	return fmt.Errorf("database backup: %w", apperrors.ErrNotImplemented)
}

// RestoreDatabase is declared but intentionally unimplemented.
func (s *settingsService) RestoreDatabase(ctx context.Context, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageSettings); err != nil {
		return err
	}
	return fmt.Errorf("database restore: %w", apperrors.ErrNotImplemented)
}
