// Package hrms provides typed clients for the WorkZen HRMS backend API.
// Every call goes through the gateway, which handles bearer attachment and
// the silent-refresh protocol; callers only see decoded payloads and the
// gateway's error taxonomy.
package hrms

import (
	"net/url"
	"strconv"

	"github.com/workzen/hrms-client/gateway"
	"github.com/workzen/hrms-client/session"
)

// Client bundles the per-resource API clients.
type Client struct {
	Auth         *AuthAPI
	Employees    *EmployeeAPI
	Attendance   *AttendanceAPI
	Leave        *LeaveAPI
	Payroll      *PayrollAPI
	Performance  *PerformanceAPI
	Departments  *DepartmentAPI
	Designations *DesignationAPI
}

// New creates a Client over the given gateway. The session store is needed
// by the auth client, which persists credentials on login.
func New(g *gateway.Gateway, store *session.Store) *Client {
	return &Client{
		Auth:         &AuthAPI{gateway: g, session: store},
		Employees:    &EmployeeAPI{gateway: g},
		Attendance:   &AttendanceAPI{gateway: g},
		Leave:        &LeaveAPI{gateway: g},
		Payroll:      &PayrollAPI{gateway: g},
		Performance:  &PerformanceAPI{gateway: g},
		Departments:  &DepartmentAPI{gateway: g},
		Designations: &DesignationAPI{gateway: g},
	}
}

func (p PageRequest) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortDirection != "" {
		q.Set("sortDirection", p.SortDirection)
	}
	return q
}
