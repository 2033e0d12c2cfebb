package repositories

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
)

// ProjectRepository defines persistence operations for fundraising projects.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
}
