package domain_test

import (
	"testing"
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDerivePledgeStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		pledge domain.Pledge
		want   domain.PledgeStatus
	}{
		{
			name: "unpaid before due date",
			pledge: domain.Pledge{
				OriginalAmount: decimal.NewFromInt(500),
				PaidAmount:     decimal.Zero,
				DueDate:        future,
			},
			want: domain.PledgeActive,
		},
		{
			name: "partially paid before due date",
			pledge: domain.Pledge{
				OriginalAmount: decimal.NewFromInt(500),
				PaidAmount:     decimal.NewFromInt(300),
				DueDate:        future,
			},
			want: domain.PledgeActive,
		},
		{
			name: "unpaid past due date",
			pledge: domain.Pledge{
				OriginalAmount: decimal.NewFromInt(500),
				PaidAmount:     decimal.Zero,
				DueDate:        past,
			},
			want: domain.PledgeOverdue,
		},
		{
			name: "fully paid before due date",
			pledge: domain.Pledge{
				OriginalAmount: decimal.NewFromInt(500),
				PaidAmount:     decimal.NewFromInt(500),
				DueDate:        future,
			},
			want: domain.PledgePaid,
		},
		{
			name: "fully paid past due date stays paid",
			pledge: domain.Pledge{
				OriginalAmount: decimal.NewFromInt(500),
				PaidAmount:     decimal.NewFromInt(500),
				DueDate:        past,
			},
			want: domain.PledgePaid,
		},
		{
			name: "due date boundary is not overdue",
			pledge: domain.Pledge{
				OriginalAmount: decimal.NewFromInt(500),
				PaidAmount:     decimal.Zero,
				DueDate:        now,
			},
			want: domain.PledgeActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DerivePledgeStatus(tt.pledge, now))
		})
	}
}

func TestRemainingAmount(t *testing.T) {
	p := domain.Pledge{
		OriginalAmount: decimal.NewFromInt(500),
		PaidAmount:     decimal.NewFromInt(320),
	}
	assert.True(t, p.RemainingAmount().Equal(decimal.NewFromInt(180)))
}
