package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/workzen/hrms-client/gateway"
	"github.com/workzen/hrms-client/session"
)

// AuthAPI covers the authentication endpoints. Login is the only API call
// that writes to the session store; everything else reads through it via
// the gateway.
type AuthAPI struct {
	gateway *gateway.Gateway
	session *session.Store
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login authenticates and populates the session store with the returned
// token pair and user record.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := gateway.Do[AuthResponse](ctx, a.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("[AuthAPI.Login] empty login response")
	}
	if err := a.session.Login(resp.AccessToken, resp.RefreshToken, resp.User); err != nil {
		return nil, errors.Wrap(err, "[AuthAPI.Login] persisting session")
	}
	return resp, nil
}

// Me returns the authenticated principal from the backend.
func (a *AuthAPI) Me(ctx context.Context) (*session.UserInfo, error) {
	return gateway.Do[session.UserInfo](ctx, a.gateway, gateway.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})
}

// ChangePassword rotates the caller's password.
func (a *AuthAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	_, err := gateway.Do[ActionResult](ctx, a.gateway, gateway.Request{
		Method: http.MethodPost,
		Path:   "/auth/change-password",
		Body:   changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword},
	})
	return err
}
