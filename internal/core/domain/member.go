package domain

// Member is a person belonging to the organization. Members make pledges;
// they are not necessarily dashboard users.
type Member struct {
	MemberID string `json:"memberID"` // Primary key (UUID)
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
