package domain

// Settings holds organization-wide configuration. A single row keyed by
// SettingsID = "default".
type Settings struct {
	SettingsID       string `json:"settingsID"`
	OrganizationName string `json:"organizationName"`
	CurrencyCode     string `json:"currencyCode"` // ISO code used for display formatting
	AuditFields
}
