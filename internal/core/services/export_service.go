package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// exportService produces the full-data dump for administrators.
type exportService struct {
	BaseService
	exportRepo portsrepo.ExportRepository
}

// NewExportService creates a new ExportService.
func NewExportService(exportRepo portsrepo.ExportRepository, privilege portssvc.PrivilegeSvcFacade) portssvc.ExportSvcFacade {
	return &exportService{
		BaseService: BaseService{Privilege: privilege},
		exportRepo:  exportRepo,
	}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// ExportData dumps the requested tables. Table names are validated against the
// exportable allowlist so the endpoint can never be steered at other tables.
func (s *exportService) ExportData(ctx context.Context, userID string, tables []string) (*dto.ExportResponse, error) {
	if s.Privilege == nil {
		return nil, apperrors.ErrForbidden
	}
	if err := s.Privilege.RequireRole(ctx, userID, domain.RoleAdmin, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}

	allowed := s.exportRepo.ExportableTables()
	if len(tables) == 0 {
		tables = allowed
	} else {
		allowedSet := make(map[string]bool, len(allowed))
		for _, t := range allowed {
			allowedSet[t] = true
		}
		for _, t := range tables {
			if !allowedSet[t] {
				return nil, fmt.Errorf("%w: table %q is not exportable", apperrors.ErrValidation, t)
			}
		}
	}

	dump, err := s.exportRepo.ExportTables(ctx, tables)
	if err != nil {
		s.LogError(ctx, err, "failed to export tables")
		return nil, err
	}

	s.LogInfo(ctx, "data export generated",
		slog.String("user_id", userID),
		slog.Int("tables", len(tables)))
	return &dto.ExportResponse{
		GeneratedAt: time.Now(),
		Tables:      dump,
	}, nil
}
