package hrms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workzen/hrms-client/gateway"
	"github.com/workzen/hrms-client/hrms"
	"github.com/workzen/hrms-client/session"
	"github.com/workzen/hrms-client/session/repofakes"
)

type testConfig struct {
	baseURL string
}

func (c testConfig) GetAPIBaseURL() string            { return c.baseURL }
func (c testConfig) GetRequestTimeout() time.Duration { return 5 * time.Second }

func newClient(t *testing.T, handler http.Handler) (*hrms.Client, *session.Store, *httptest.Server) {
	t.Helper()

	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	store := session.NewStore(repofakes.NewFakeSessionRepo())
	g := gateway.New(testConfig{baseURL: backend.URL}, store)
	return hrms.New(g, store), store, backend
}

func TestLoginPopulatesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "priya.nair@workzen.test", body["email"])
		require.Equal(t, "s3cret", body["password"])

		_ = json.NewEncoder(w).Encode(hrms.AuthResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			TokenType:    "Bearer",
			ExpiresIn:    900,
			User: session.UserInfo{
				ID:        42,
				FirstName: "Priya",
				LastName:  "Nair",
				Email:     "priya.nair@workzen.test",
				Role:      session.RoleHRManager,
			},
		})
	})

	client, store, _ := newClient(t, mux)

	resp, err := client.Auth.Login(context.Background(), "priya.nair@workzen.test", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "access-1", resp.AccessToken)

	require.True(t, store.IsAuthenticated())
	require.Equal(t, "access-1", store.AccessToken())
	require.Equal(t, "refresh-1", store.RefreshToken())
	require.True(t, store.HasRole(session.RoleHRManager))
}

func TestEmployeeListPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/employees", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("size"))
		_ = json.NewEncoder(w).Encode(hrms.Page[hrms.Employee]{
			Content: []hrms.Employee{
				{ID: 1, EmployeeID: "WZ-0001", FirstName: "Arun", LastName: "Menon"},
			},
			TotalElements: 21,
			TotalPages:    3,
		})
	})

	client, store, _ := newClient(t, mux)
	require.NoError(t, store.Login("access-1", "refresh-1", session.UserInfo{ID: 1, Role: session.RoleAdmin}))

	page, err := client.Employees.List(context.Background(), hrms.PageRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	require.NotNil(t, page)
	require.Len(t, page.Content, 1)
	require.Equal(t, int64(21), page.TotalElements)
	require.Equal(t, "WZ-0001", page.Content[0].EmployeeID)
}

func TestAttendanceTodayNoContent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/attendance/today", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client, store, _ := newClient(t, mux)
	require.NoError(t, store.Login("access-1", "refresh-1", session.UserInfo{ID: 1, Role: session.RoleEmployee}))

	record, err := client.Attendance.Today(context.Background())
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestAttendanceTodayIfMarkedSwallowsFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/attendance/today", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, store, _ := newClient(t, mux)
	require.NoError(t, store.Login("access-1", "refresh-1", session.UserInfo{ID: 1, Role: session.RoleEmployee}))

	// Absence of a record is not a failure for this one probe.
	require.Nil(t, client.Attendance.TodayIfMarked(context.Background()))
}

func TestLeaveApplyPostsBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/leave-applications", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body hrms.ApplyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, int64(3), body.LeaveTypeID)
		require.Equal(t, "2026-09-01", body.StartDate)

		_ = json.NewEncoder(w).Encode(hrms.LeaveApplication{
			ID:        11,
			LeaveType: hrms.LeaveType{ID: 3, Name: "Casual Leave"},
			StartDate: body.StartDate,
			EndDate:   body.EndDate,
			TotalDays: 2,
			Status:    "PENDING",
		})
	})

	client, store, _ := newClient(t, mux)
	require.NoError(t, store.Login("access-1", "refresh-1", session.UserInfo{ID: 1, Role: session.RoleEmployee}))

	leave, err := client.Leave.Apply(context.Background(), hrms.ApplyRequest{
		LeaveTypeID: 3,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-02",
		Reason:      "family function",
	})
	require.NoError(t, err)
	require.NotNil(t, leave)
	require.Equal(t, "PENDING", leave.Status)
}

func TestLeaveRejectSendsReason(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/leave-applications/11/reject", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "team is at capacity that week", body["rejectionReason"])

		_ = json.NewEncoder(w).Encode(hrms.LeaveApplication{ID: 11, Status: "REJECTED"})
	})

	client, store, _ := newClient(t, mux)
	require.NoError(t, store.Login("access-1", "refresh-1", session.UserInfo{ID: 2, Role: session.RoleHRManager}))

	leave, err := client.Leave.Reject(context.Background(), 11, "team is at capacity that week")
	require.NoError(t, err)
	require.Equal(t, "REJECTED", leave.Status)
}

func TestPayrollPayrun(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/payroll/generate-payrun", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, 8, body["month"])
		require.Equal(t, 2026, body["year"])

		_ = json.NewEncoder(w).Encode(hrms.PayrunResult{
			Success:        true,
			Message:        "Payrun completed",
			TotalEmployees: 25,
			SuccessCount:   25,
		})
	})

	client, store, _ := newClient(t, mux)
	require.NoError(t, store.Login("access-1", "refresh-1", session.UserInfo{ID: 3, Role: session.RolePayrollOfficer}))

	result, err := client.Payroll.GeneratePayrun(context.Background(), 8, 2026)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, 25, result.SuccessCount)
}

func TestMeDecodesUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(session.UserInfo{ID: 42, Email: "priya.nair@workzen.test", Role: session.RoleHRManager})
	})

	client, store, _ := newClient(t, mux)
	require.NoError(t, store.Login("access-1", "refresh-1", session.UserInfo{ID: 42, Role: session.RoleHRManager}))

	user, err := client.Auth.Me(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, int64(42), user.ID)
}
