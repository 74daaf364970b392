package hrms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/workzen/hrms-client/gateway"
)

// LeaveAPI covers leave applications, leave types, and leave balances.
type LeaveAPI struct {
	gateway *gateway.Gateway
}

// ApplyRequest submits a new leave application.
type ApplyRequest struct {
	LeaveTypeID int64  `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason"`
	IsHalfDay   bool   `json:"isHalfDay,omitempty"`
}

type rejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

func (l *LeaveAPI) Apply(ctx context.Context, req ApplyRequest) (*LeaveApplication, error) {
	return gateway.Do[LeaveApplication](ctx, l.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/leave-applications",
		Body:   req,
	})
}

func (l *LeaveAPI) Approve(ctx context.Context, id int64) (*LeaveApplication, error) {
	return gateway.Do[LeaveApplication](ctx, l.gateway, gateway.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/leave-applications/%d/approve", id),
	})
}

func (l *LeaveAPI) Reject(ctx context.Context, id int64, reason string) (*LeaveApplication, error) {
	return gateway.Do[LeaveApplication](ctx, l.gateway, gateway.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/leave-applications/%d/reject", id),
		Body:   rejectRequest{RejectionReason: reason},
	})
}

func (l *LeaveAPI) Cancel(ctx context.Context, id int64) (*LeaveApplication, error) {
	return gateway.Do[LeaveApplication](ctx, l.gateway, gateway.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/leave-applications/%d/cancel", id),
	})
}

func (l *LeaveAPI) MyLeaves(ctx context.Context) ([]LeaveApplication, error) {
	list, err := gateway.Do[[]LeaveApplication](ctx, l.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/leave-applications/my-leaves",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

// PendingApprovals lists applications awaiting the caller's decision.
func (l *LeaveAPI) PendingApprovals(ctx context.Context) ([]LeaveApplication, error) {
	list, err := gateway.Do[[]LeaveApplication](ctx, l.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/leave-applications/pending-approvals",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

// Types lists the active leave types available when applying.
func (l *LeaveAPI) Types(ctx context.Context) ([]LeaveType, error) {
	list, err := gateway.Do[[]LeaveType](ctx, l.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/leave-types/active",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}

// MyBalances returns the caller's leave balances for the current year.
func (l *LeaveAPI) MyBalances(ctx context.Context) ([]LeaveBalance, error) {
	list, err := gateway.Do[[]LeaveBalance](ctx, l.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/leave-balances/my-balances",
	})
	if err != nil || list == nil {
		return nil, err
	}
	return *list, nil
}
