package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// projectService manages fundraising projects.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo portsrepo.ProjectRepository, privilege portssvc.PrivilegeSvcFacade) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{Privilege: privilege},
		projectRepo: projectRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageProjects); err != nil {
		return nil, err
	}

	target := decimal.Zero
	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() {
			return nil, fmt.Errorf("%w: target amount cannot be negative", apperrors.ErrValidation)
		}
		target = *req.TargetAmount
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:    uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: target,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "failed to save project")
		return nil, err
	}
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageProjects); err != nil {
		return nil, err
	}
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, userID string, limit int, offset int) ([]domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageProjects); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.projectRepo.ListProjects(ctx, limit, offset)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageProjects); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() {
			return nil, fmt.Errorf("%w: target amount cannot be negative", apperrors.ErrValidation)
		}
		project.TargetAmount = *req.TargetAmount
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = userID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "failed to update project", "project_id", projectID)
		return nil, err
	}
	return project, nil
}
