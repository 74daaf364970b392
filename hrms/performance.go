package hrms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/workzen/hrms-client/gateway"
)

// PerformanceAPI covers performance review queries and creation.
type PerformanceAPI struct {
	gateway *gateway.Gateway
}

type averageRating struct {
	AverageRating float64 `json:"averageRating"`
}

func (p *PerformanceAPI) MyReviews(ctx context.Context) ([]Performance, error) {
	list, err := gateway.Do[[]Performance](ctx, p.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/performance/my-reviews",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (p *PerformanceAPI) EmployeeReviews(ctx context.Context, employeeID int64) ([]Performance, error) {
	list, err := gateway.Do[[]Performance](ctx, p.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/performance/employee/%d", employeeID),
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

func (p *PerformanceAPI) Create(ctx context.Context, review Performance) (*Performance, error) {
	return gateway.Do[Performance](ctx, p.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/performance",
		Body:   review,
	})
}

// AverageRating returns an employee's mean overall rating across reviews.
func (p *PerformanceAPI) AverageRating(ctx context.Context, employeeID int64) (float64, error) {
	result, err := gateway.Do[averageRating](ctx, p.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/performance/employee/%d/average-rating", employeeID),
	})
	if err != nil || result == nil {
		return 0, err
	}
	return result.AverageRating, nil
}
