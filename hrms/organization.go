package hrms

import (
	"context"
	"net/http"

	"github.com/workzen/hrms-client/gateway"
)

// DepartmentAPI covers department lookup and administration.
type DepartmentAPI struct {
	gateway *gateway.Gateway
}

func (d *DepartmentAPI) List(ctx context.Context) ([]Department, error) {
	list, err := gateway.Do[[]Department](ctx, d.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/departments",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (d *DepartmentAPI) Active(ctx context.Context) ([]Department, error) {
	list, err := gateway.Do[[]Department](ctx, d.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/departments/active",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (d *DepartmentAPI) Create(ctx context.Context, department Department) (*Department, error) {
	return gateway.Do[Department](ctx, d.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/departments",
		Body:   department,
	})
}

// DesignationAPI covers designation lookup and administration.
type DesignationAPI struct {
	gateway *gateway.Gateway
}

func (d *DesignationAPI) List(ctx context.Context) ([]Designation, error) {
	list, err := gateway.Do[[]Designation](ctx, d.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/designations",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (d *DesignationAPI) Active(ctx context.Context) ([]Designation, error) {
	list, err := gateway.Do[[]Designation](ctx, d.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/designations/active/ordered",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (d *DesignationAPI) Create(ctx context.Context, designation Designation) (*Designation, error) {
	return gateway.Do[Designation](ctx, d.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/designations",
		Body:   designation,
	})
}
