package hrms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/workzen/hrms-client/gateway"
)

// PayrollAPI covers payslip queries and payrun generation. All write
// operations are role-gated server-side to ADMIN/PAYROLL_OFFICER.
type PayrollAPI struct {
	gateway *gateway.Gateway
}

// GenerateRequest produces one employee's payroll for a pay period.
type GenerateRequest struct {
	EmployeeID     int64  `json:"employeeId"`
	PayPeriodStart string `json:"payPeriodStart"`
	PayPeriodEnd   string `json:"payPeriodEnd"`
}

type payrunRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// PayrunResult summarizes a bulk payrun.
type PayrunResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TotalEmployees int    `json:"totalEmployees"`
	SuccessCount   int    `json:"successCount"`
	FailureCount   int    `json:"failureCount"`
}

func (p *PayrollAPI) MyPayrolls(ctx context.Context) ([]Payroll, error) {
	list, err := gateway.Do[[]Payroll](ctx, p.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/payroll/my-payrolls",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (p *PayrollAPI) EmployeePayrolls(ctx context.Context, employeeID int64) ([]Payroll, error) {
	list, err := gateway.Do[[]Payroll](ctx, p.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/payroll/employee/%d", employeeID),
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (p *PayrollAPI) Generate(ctx context.Context, req GenerateRequest) (*Payroll, error) {
	return gateway.Do[Payroll](ctx, p.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/payroll/generate",
		Body:   req,
	})
}

// GeneratePayrun runs payroll for every active employee in one month.
func (p *PayrollAPI) GeneratePayrun(ctx context.Context, month, year int) (*PayrunResult, error) {
	return gateway.Do[PayrunResult](ctx, p.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/payroll/generate-payrun",
		Body:   payrunRequest{Month: month, Year: year},
	})
}
