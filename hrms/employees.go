package hrms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/workzen/hrms-client/gateway"
)

// EmployeeAPI covers the employee CRUD and admin endpoints. List, Create,
// Update, Delete and the admin actions are role-gated server-side to
// ADMIN/HR_MANAGER; Profile is available to any authenticated user.
type EmployeeAPI struct {
	gateway *gateway.Gateway
}

func (e *EmployeeAPI) List(ctx context.Context, page PageRequest) (*Page[Employee], error) {
	return gateway.Do[Page[Employee]](ctx, e.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/employees",
		Query:  page.query(),
	})
}

func (e *EmployeeAPI) Get(ctx context.Context, id int64) (*Employee, error) {
	return gateway.Do[Employee](ctx, e.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/employees/%d", id),
	})
}

func (e *EmployeeAPI) Create(ctx context.Context, employee Employee) (*Employee, error) {
	return gateway.Do[Employee](ctx, e.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/employees",
		Body:   employee,
	})
}

func (e *EmployeeAPI) Update(ctx context.Context, id int64, employee Employee) (*Employee, error) {
	return gateway.Do[Employee](ctx, e.gateway, gateway.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/employees/%d", id),
		Body:   employee,
	})
}

func (e *EmployeeAPI) Delete(ctx context.Context, id int64) error {
	_, err := gateway.Do[struct{}](ctx, e.gateway, gateway.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/employees/%d", id),
	})
	return err
}

// Profile returns the caller's own employee record.
func (e *EmployeeAPI) Profile(ctx context.Context) (*Employee, error) {
	return gateway.Do[Employee](ctx, e.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/employees/profile",
	})
}

func (e *EmployeeAPI) Search(ctx context.Context, keyword string, page PageRequest) (*Page[Employee], error) {
	q := page.query()
	q.Set("keyword", keyword)
	return gateway.Do[Page[Employee]](ctx, e.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/employees/search",
		Query:  q,
	})
}

func (e *EmployeeAPI) ChangeStatus(ctx context.Context, id int64, status string) (*Employee, error) {
	q := url.Values{}
	q.Set("status", status)
	return gateway.Do[Employee](ctx, e.gateway, gateway.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/employees/%d/status", id),
		Query:  q,
	})
}

func (e *EmployeeAPI) Statistics(ctx context.Context) (*EmployeeStatistics, error) {
	return gateway.Do[EmployeeStatistics](ctx, e.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/employees/statistics",
	})
}

func (e *EmployeeAPI) ResetPassword(ctx context.Context, id int64) (*ActionResult, error) {
	return gateway.Do[ActionResult](ctx, e.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/employees/%d/reset-password", id),
	})
}

func (e *EmployeeAPI) ByDepartment(ctx context.Context, departmentID int64) ([]Employee, error) {
	list, err := gateway.Do[[]Employee](ctx, e.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/employees/department/" + strconv.FormatInt(departmentID, 10),
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}
