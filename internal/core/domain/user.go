package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is a dashboard login. Exactly one role per user; the role's privilege
// set is resolved by the privilege service.
type User struct {
	UserID         string       `json:"userID"` // Primary key (UUID)
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"` // bcrypt; empty for OAuth-only users
	RoleName       string       `json:"roleName"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Google's subject claim for OAuth users
	IsActive       bool         `json:"isActive"`
	AuditFields
}
