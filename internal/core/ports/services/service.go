package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Posting     PostingSvcFacade
	Pledge      PledgeSvcFacade
	Member      MemberSvcFacade
	Project     ProjectSvcFacade
	User        UserSvcFacade
	Privilege   PrivilegeSvcFacade
	Reporting   ReportingSvcFacade
	Export      ExportSvcFacade
	Settings    SettingsSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
