package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// ExportSvcFacade defines the privileged full-data export.
type ExportSvcFacade interface {
	// ExportData dumps the requested tables (all exportable tables when the
	// list is empty). Restricted to administrator roles.
	ExportData(ctx context.Context, userID string, tables []string) (*dto.ExportResponse, error)
}
