package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		PostingRepo:   newPgxPostingRepository(dbPool),
		PledgeRepo:    newPgxPledgeRepository(dbPool),
		MemberRepo:    newPgxMemberRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		RoleRepo:      newPgxRoleRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		SettingsRepo:  newPgxSettingsRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
		ExportRepo:    newPgxExportRepository(dbPool),
	}
}
