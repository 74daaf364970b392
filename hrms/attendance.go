package hrms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/workzen/hrms-client/gateway"
)

// AttendanceAPI covers check-in/check-out and attendance queries.
type AttendanceAPI struct {
	gateway *gateway.Gateway
}

// MarkRequest records attendance for an employee on a given day.
type MarkRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Remarks    string `json:"remarks,omitempty"`
}

func (a *AttendanceAPI) CheckIn(ctx context.Context) (*Attendance, error) {
	return gateway.Do[Attendance](ctx, a.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/attendance/check-in",
	})
}

func (a *AttendanceAPI) CheckOut(ctx context.Context) (*Attendance, error) {
	return gateway.Do[Attendance](ctx, a.gateway, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/attendance/check-out",
	})
}

// Today returns today's attendance record, or nil when none has been marked
// yet (the backend answers 204 in that case).
func (a *AttendanceAPI) Today(ctx context.Context) (*Attendance, error) {
	return gateway.Do[Attendance](ctx, a.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/attendance/today",
	})
}

// TodayIfMarked probes for today's record, treating any failure as "not
// marked". Absence of a record is an expected state for this one call, not
// an error to surface.
func (a *AttendanceAPI) TodayIfMarked(ctx context.Context) *Attendance {
	record, err := a.Today(ctx)
	if err != nil {
		return nil
	}
	return record
}

func (a *AttendanceAPI) Mark(ctx context.Context, req MarkRequest) (*Attendance, error) {
	return gateway.Do[Attendance](ctx, a.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/attendance/mark",
		Body:   req,
	})
}

// MyAttendance returns the caller's records for an inclusive date range
// (ISO dates, e.g. "2026-08-01").
func (a *AttendanceAPI) MyAttendance(ctx context.Context, startDate, endDate string) ([]Attendance, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	list, err := gateway.Do[[]Attendance](ctx, a.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/attendance/my-attendance",
		Query:  q,
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (a *AttendanceAPI) MyMonthly(ctx context.Context, year, month int) ([]Attendance, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))
	list, err := gateway.Do[[]Attendance](ctx, a.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/attendance/my-attendance/month",
		Query:  q,
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (a *AttendanceAPI) EmployeeAttendance(ctx context.Context, employeeID int64, startDate, endDate string) ([]Attendance, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	list, err := gateway.Do[[]Attendance](ctx, a.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/attendance/employee/%d", employeeID),
		Query:  q,
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}
