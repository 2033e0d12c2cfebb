package domain

// Privilege is a named permission string granted to a role; the unit of access
// control in this system.
type Privilege string

const (
	PrivilegeManageIncome      Privilege = "Manage Income"
	PrivilegeManageExpenditure Privilege = "Manage Expenditure"
	PrivilegeManagePettyCash   Privilege = "Manage Petty Cash"
	PrivilegeManagePledges     Privilege = "Manage Pledges"
	PrivilegeManageAccounts    Privilege = "Manage Accounts"
	PrivilegeManageMembers     Privilege = "Manage Members"
	PrivilegeManageProjects    Privilege = "Manage Projects"
	PrivilegeViewReports       Privilege = "View Reports"
	PrivilegeManageUsers       Privilege = "Manage Users"
	PrivilegeExportData        Privilege = "Export Data"
	PrivilegeManageSettings    Privilege = "Manage Settings"
)

// Well-known role names. Roles and their privilege sets live in the roles
// table; these constants only name the roles the admin endpoints gate on.
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
)

// Role maps a role name to its set of privileges.
type Role struct {
	Name       string      `json:"name"`
	Privileges []Privilege `json:"privileges"`
	AuditFields
}

// Has reports whether the role grants the named privilege.
func (r Role) Has(p Privilege) bool {
	for _, granted := range r.Privileges {
		if granted == p {
			return true
		}
	}
	return false
}

// RoleSetState tags the load state of the role definitions. Callers must treat
// anything other than Ready as "deny by default", never as "unknown, retry".
type RoleSetState string

const (
	RoleSetLoading RoleSetState = "LOADING"
	RoleSetReady   RoleSetState = "READY"
	RoleSetFailed  RoleSetState = "FAILED"
)

// RoleSet is the full set of role definitions plus its load state. Privilege
// checks against a non-Ready set always fail closed.
type RoleSet struct {
	State  RoleSetState
	Roles  map[string]Role // keyed by role name; nil unless State == Ready
	Reason error           // set when State == Failed
}

// HasPrivilege answers "does roleName grant privilege" against this set.
// It returns false, never an error, when the set is not Ready.
func (rs RoleSet) HasPrivilege(roleName string, p Privilege) bool {
	if rs.State != RoleSetReady {
		return false
	}
	role, ok := rs.Roles[roleName]
	if !ok {
		return false
	}
	return role.Has(p)
}
