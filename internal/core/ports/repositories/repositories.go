package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	PostingRepo   PostingRepository
	PledgeRepo    PledgeRepository
	MemberRepo    MemberRepository
	ProjectRepo   ProjectRepository
	RoleRepo      RoleRepository
	UserRepo      UserRepository
	SettingsRepo  SettingsRepository
	ReportingRepo ReportingRepository
	ExportRepo    ExportRepository
}
