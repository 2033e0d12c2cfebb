package domain_test

import (
	"testing"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPostingKindSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(100)

	income, err := domain.Income.SignedAmount(amount)
	assert.NoError(t, err)
	assert.True(t, income.Equal(amount))

	credit, err := domain.PledgeCredit.SignedAmount(amount)
	assert.NoError(t, err)
	assert.True(t, credit.Equal(amount))

	expenditure, err := domain.Expenditure.SignedAmount(amount)
	assert.NoError(t, err)
	assert.True(t, expenditure.Equal(amount.Neg()))

	pettyCash, err := domain.PettyCash.SignedAmount(amount)
	assert.NoError(t, err)
	assert.True(t, pettyCash.Equal(amount.Neg()))

	_, err = domain.PostingKind("BOGUS").SignedAmount(amount)
	assert.Error(t, err)
}

func TestPostingKindPrivilege(t *testing.T) {
	assert.Equal(t, domain.PrivilegeManageIncome, domain.Income.Privilege())
	assert.Equal(t, domain.PrivilegeManageExpenditure, domain.Expenditure.Privilege())
	assert.Equal(t, domain.PrivilegeManagePettyCash, domain.PettyCash.Privilege())
	assert.Equal(t, domain.PrivilegeManagePledges, domain.PledgeCredit.Privilege())
}
