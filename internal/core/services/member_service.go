package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// memberService manages the organization's member register.
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepository
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo portsrepo.MemberRepository, privilege portssvc.PrivilegeSvcFacade) portssvc.MemberSvcFacade {
	return &memberService{
		BaseService: BaseService{Privilege: privilege},
		memberRepo:  memberRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, userID string) (*domain.Member, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageMembers); err != nil {
		return nil, err
	}

	now := time.Now()
	member := domain.Member{
		MemberID: uuid.NewString(),
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "failed to save member")
		return nil, err
	}
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string, userID string) (*domain.Member, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageMembers); err != nil {
		return nil, err
	}
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

func (s *memberService) ListMembers(ctx context.Context, userID string, limit int, offset int) ([]domain.Member, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageMembers); err != nil {
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
	return s.memberRepo.ListMembers(ctx, limit, offset)
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, userID string) (*domain.Member, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageMembers); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = userID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "failed to update member", "member_id", memberID)
		return nil, err
	}
	return member, nil
}
