package session

// Role is a user role drawn from the closed set the backend issues.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleHRManager      Role = "HR_MANAGER"
	RolePayrollOfficer Role = "PAYROLL_OFFICER"
	RoleEmployee       Role = "EMPLOYEE"
)

// ParseRole maps a raw role tag onto the closed set. An unrecognized tag
// reports false and grants no access anywhere.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleHRManager, RolePayrollOfficer, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// UserInfo is the authenticated principal as returned by the login and
// /auth/me endpoints. It is replaced wholesale on every login or refresh,
// never partially mutated by the session layer.
type UserInfo struct {
	ID          int64   `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Role        Role    `json:"role"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

// FullName returns the display name of the user.
func (u *UserInfo) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
