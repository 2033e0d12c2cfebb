package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// ProjectSvcFacade defines operations for fundraising projects.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, userID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string, userID string) (*domain.Project, error)
	ListProjects(ctx context.Context, userID string, limit int, offset int) ([]domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, userID string) (*domain.Project, error)
}
