package navigation

import "github.com/workzen/hrms-client/session"

var hrRoles = []session.Role{session.RoleAdmin, session.RoleHRManager}
var payrollRoles = []session.Role{session.RoleAdmin, session.RolePayrollOfficer}

// DefaultRoutes is the application route table. Dashboard is the default
// post-login destination.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/login", Name: "Login", Public: true},
		{Path: "/signup", Name: "Signup", Public: true},
		{Path: "/", Name: "Dashboard"},
		{Path: "/profile", Name: "Profile"},
		{Path: "/change-password", Name: "Change Password"},
		{Path: "/employees", Name: "Employees", AllowedRoles: hrRoles},
		{Path: "/employees/new", Name: "Employee Registration", AllowedRoles: hrRoles},
		{Path: "/leave", Name: "Leave Management"},
		{Path: "/attendance", Name: "Attendance"},
		{Path: "/payroll", Name: "Payroll", AllowedRoles: payrollRoles},
		{Path: "/performance", Name: "Performance"},
		{Path: "/reports", Name: "Reports", AllowedRoles: hrRoles},
		{Path: "/settings", Name: "Settings"},
	}
}

// DefaultMenu is the sidebar menu in display order.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Name: "Dashboard", Path: "/"},
		{Name: "Employees", Path: "/employees", AllowedRoles: hrRoles},
		{Name: "Leave Management", Path: "/leave"},
		{Name: "Attendance", Path: "/attendance"},
		{Name: "Payroll", Path: "/payroll", AllowedRoles: payrollRoles},
		{Name: "Performance", Path: "/performance"},
		{Name: "Reports", Path: "/reports", AllowedRoles: hrRoles},
		{Name: "Settings", Path: "/settings"},
	}
}
