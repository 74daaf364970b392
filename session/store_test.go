package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workzen/hrms-client/internal/utils"
	"github.com/workzen/hrms-client/session"
	"github.com/workzen/hrms-client/session/repofakes"
)

func testUser() session.UserInfo {
	return session.UserInfo{
		ID:         42,
		EmployeeID: "WZ-0042",
		FirstName:  "Priya",
		LastName:   "Nair",
		Email:      "priya.nair@workzen.test",
		Role:       session.RoleHRManager,
		Department: utils.Ptr("Human Resources"),
	}
}

func TestHasRoleWithoutUser(t *testing.T) {
	store := session.NewStore(repofakes.NewFakeSessionRepo())

	require.False(t, store.HasRole(session.RoleAdmin))
	require.False(t, store.HasRole(session.RoleEmployee))
	require.False(t, store.HasRole())
}

func TestHasRoleMembership(t *testing.T) {
	store := session.NewStore(repofakes.NewFakeSessionRepo())
	require.NoError(t, store.Login("token", "refresh", testUser()))

	require.True(t, store.HasRole(session.RoleHRManager))
	require.True(t, store.HasRole(session.RoleAdmin, session.RoleHRManager))
	require.False(t, store.HasRole(session.RoleAdmin, session.RolePayrollOfficer))
}

func TestLoginPersistsAllThreeEntries(t *testing.T) {
	repo := repofakes.NewFakeSessionRepo()
	store := session.NewStore(repo)
	user := testUser()

	require.NoError(t, store.Login("access-1", "refresh-1", user))

	access, ok, err := repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "access-1", access)

	refresh, ok, err := repo.Get(session.KeyRefreshToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "refresh-1", refresh)

	rawUser, ok, err := repo.Get(session.KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	var stored session.UserInfo
	require.NoError(t, json.Unmarshal([]byte(rawUser), &stored))
	require.Equal(t, user, stored)
}

func TestInitializeRestoresTokenAndUserOnly(t *testing.T) {
	repo := repofakes.NewFakeSessionRepo()
	first := session.NewStore(repo)
	require.NoError(t, first.Login("access-1", "refresh-1", testUser()))

	// A fresh store over the same durable state models a process restart.
	second := session.NewStore(repo)
	second.Initialize()

	require.True(t, second.IsAuthenticated())
	require.Equal(t, "access-1", second.AccessToken())
	require.NotNil(t, second.User())
	require.Equal(t, session.RoleHRManager, second.User().Role)

	// The refresh token is not loaded eagerly but is reachable on demand.
	require.Equal(t, "refresh-1", second.RefreshToken())
}

func TestInitializeDiscardsMalformedDurableState(t *testing.T) {
	repo := repofakes.NewFakeSessionRepo()
	require.NoError(t, repo.Set(session.KeyAccessToken, "access-1"))
	require.NoError(t, repo.Set(session.KeyUser, "{not json"))

	store := session.NewStore(repo)
	store.Initialize()

	require.False(t, store.IsAuthenticated())
	_, ok, err := repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = repo.Get(session.KeyUser)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestInitializeWithPartialStateStaysLoggedOut(t *testing.T) {
	repo := repofakes.NewFakeSessionRepo()
	require.NoError(t, repo.Set(session.KeyAccessToken, "access-1"))

	store := session.NewStore(repo)
	store.Initialize()

	require.False(t, store.IsAuthenticated())
	require.Empty(t, store.AccessToken())
}

func TestLogoutIsIdempotent(t *testing.T) {
	repo := repofakes.NewFakeSessionRepo()
	redirects := 0
	store := session.NewStore(repo, session.WithLoginRedirect(func() { redirects++ }))
	require.NoError(t, store.Login("access-1", "refresh-1", testUser()))

	store.Logout()
	require.False(t, store.IsAuthenticated())
	require.Zero(t, repo.Len())
	require.Equal(t, 1, redirects)

	store.Logout()
	require.Zero(t, repo.Len())
	require.Equal(t, 2, redirects)
}

func TestUpdateAccessTokenBroadcasts(t *testing.T) {
	repo := repofakes.NewFakeSessionRepo()
	store := session.NewStore(repo)
	require.NoError(t, store.Login("access-1", "refresh-1", testUser()))

	var seen []string
	store.Subscribe(func(token string) { seen = append(seen, token) })

	require.NoError(t, store.UpdateAccessToken("access-2"))

	require.Equal(t, []string{"access-2"}, seen)
	require.Equal(t, "access-2", store.AccessToken())
	// User and refresh token are untouched.
	require.Equal(t, "refresh-1", store.RefreshToken())
	require.NotNil(t, store.User())

	access, ok, err := repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "access-2", access)
}

func TestUpdateTokensReplacesPair(t *testing.T) {
	repo := repofakes.NewFakeSessionRepo()
	store := session.NewStore(repo)
	require.NoError(t, store.Login("access-1", "refresh-1", testUser()))

	require.NoError(t, store.UpdateTokens("access-2", "refresh-2"))

	require.Equal(t, "access-2", store.AccessToken())
	require.Equal(t, "refresh-2", store.RefreshToken())

	refresh, ok, err := repo.Get(session.KeyRefreshToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "refresh-2", refresh)
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"ADMIN", "HR_MANAGER", "PAYROLL_OFFICER", "EMPLOYEE"} {
		role, ok := session.ParseRole(raw)
		require.True(t, ok, raw)
		require.Equal(t, session.Role(raw), role)
	}

	_, ok := session.ParseRole("SUPERUSER")
	require.False(t, ok)
	_, ok = session.ParseRole("")
	require.False(t, ok)
}
