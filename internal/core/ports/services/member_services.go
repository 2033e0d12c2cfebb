package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// MemberSvcFacade defines operations for organization members.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, userID string) (*domain.Member, error)
	GetMemberByID(ctx context.Context, memberID string, userID string) (*domain.Member, error)
	ListMembers(ctx context.Context, userID string, limit int, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, userID string) (*domain.Member, error)
}
