package services

import (
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The privilege gate comes first; almost everything else authorizes
	// through it.
	container.Privilege = NewPrivilegeService(repos.UserRepo, repos.RoleRepo)

	ledger := NewLedgerService(repos.AccountRepo, repos.PostingRepo)

	container.Account = NewAccountService(repos.AccountRepo, container.Privilege)
	container.Posting = NewPostingService(repos.PostingRepo, repos.AccountRepo, ledger, container.Privilege)
	container.Pledge = NewPledgeService(
		repos.PledgeRepo,
		repos.PostingRepo,
		repos.AccountRepo,
		repos.MemberRepo,
		repos.ProjectRepo,
		container.Privilege,
	)
	container.Member = NewMemberService(repos.MemberRepo, container.Privilege)
	container.Project = NewProjectService(repos.ProjectRepo, container.Privilege)
	container.User = NewUserService(repos.UserRepo, container.Privilege)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.SettingsRepo, container.Privilege)
	container.Export = NewExportService(repos.ExportRepo, container.Privilege)
	container.Settings = NewSettingsService(repos.SettingsRepo, container.Privilege)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
