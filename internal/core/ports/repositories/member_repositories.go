package repositories

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
)

// MemberRepository defines persistence operations for organization members.
type MemberRepository interface {
	SaveMember(ctx context.Context, member domain.Member) error
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) error
}
