// Package gateway makes every backend call carry the current credential and
// transparently survive exactly one expiry-driven authorization failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/workzen/hrms-client/internal/config"
	hrmserrors "github.com/workzen/hrms-client/internal/errors"
	"github.com/workzen/hrms-client/session"
)

const refreshPath = "/auth/refresh"

// Request describes one backend call.
type Request struct {
	Method string
	Path   string // relative to the API base URL, e.g. "/employees"
	Query  url.Values
	Body   any // JSON-marshalled when non-nil
}

// Gateway attaches the session's bearer token to every request and runs the
// one-shot refresh-and-retry protocol on 401. Concurrent requests that each
// hit a 401 each refresh independently; the backend tolerates concurrent
// refresh calls for the same user.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	log        zerolog.Logger
	nowTime    func() time.Time
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

// WithGatewayLogger sets the request logger.
func WithGatewayLogger(logger zerolog.Logger) Option {
	return func(g *Gateway) {
		g.log = logger
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(g *Gateway) {
		g.nowTime = nowFunc
	}
}

// New creates a Gateway over the configured API base URL. The HTTP client
// carries an explicit timeout so a hung network call cannot stall the caller
// indefinitely.
func New(cfg config.APIConfig, store *session.Store, options ...Option) *Gateway {
	g := &Gateway{
		baseURL:    strings.TrimRight(cfg.GetAPIBaseURL(), "/"),
		httpClient: &http.Client{Timeout: cfg.GetRequestTimeout()},
		session:    store,
		log:        log.Logger,
		nowTime:    time.Now,
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// Do executes a request and decodes a 2xx JSON payload into T. A 204 or an
// empty success body yields (nil, nil), an explicit no-value result rather
// than a parse error. Authorization expiry that survives the refresh fails
// with ErrSessionExpired, other backend failures with *HTTPError, and
// transport failures with an ErrNetwork-wrapped error.
func Do[T any](ctx context.Context, g *Gateway, req Request) (*T, error) {
	resp, err := g.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, hrmserrors.Wrapf(hrmserrors.ErrNetwork, "reading response for %s %s", req.Method, req.Path)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, nil
		}
		out := new(T)
		if err := json.Unmarshal(body, out); err != nil {
			return nil, errors.Wrapf(err, "[gateway.Do] decode %s %s response", req.Method, req.Path)
		}
		return out, nil
	}

	return nil, &HTTPError{Status: resp.StatusCode, Message: serverMessage(body, resp.StatusCode)}
}

// roundTrip sends the request and, on a 401, performs the single silent
// refresh and resend. The sequence is straight-line code with no loop and no
// recursion, so a second refresh for the same request cannot happen.
func (g *Gateway) roundTrip(ctx context.Context, req Request) (*http.Response, error) {
	requestID := uuid.NewString()

	resp, err := g.send(ctx, req, g.session.AccessToken(), requestID)
	if err != nil {
		return nil, hrmserrors.Wrapf(hrmserrors.ErrNetwork, "%s %s", req.Method, req.Path)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	_ = resp.Body.Close()

	newToken, err := g.refresh(ctx, requestID)
	if err != nil {
		g.log.Debug().Str("request_id", requestID).Err(err).Msg("gateway: silent refresh failed, forcing logout")
		g.session.Logout()
		return nil, hrmserrors.Wrapf(hrmserrors.ErrSessionExpired, "%s %s", req.Method, req.Path)
	}

	retry, err := g.send(ctx, req, newToken, requestID)
	if err != nil {
		return nil, hrmserrors.Wrapf(hrmserrors.ErrNetwork, "%s %s (retry)", req.Method, req.Path)
	}
	if retry.StatusCode == http.StatusUnauthorized {
		// The retry's outcome is final: still unauthorized means the session
		// is gone, and no second refresh is attempted.
		_ = retry.Body.Close()
		return nil, hrmserrors.Wrapf(hrmserrors.ErrSessionExpired, "%s %s (after refresh)", req.Method, req.Path)
	}
	return retry, nil
}

func (g *Gateway) send(ctx context.Context, req Request, accessToken, requestID string) (*http.Response, error) {
	endpoint := g.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "[gateway.send] marshal %s %s body", req.Method, req.Path)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, errors.Wrapf(err, "[gateway.send] build %s %s", req.Method, req.Path)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
		if tokenLooksExpired(accessToken, g.nowTime()) {
			g.log.Debug().Str("request_id", requestID).Msg("gateway: access token past its exp claim, expecting a 401")
		}
	}

	g.log.Debug().Str("request_id", requestID).Str("method", req.Method).Str("path", req.Path).Msg("gateway: request")
	return g.httpClient.Do(httpReq)
}

// refresh exchanges the stored refresh token for a new token pair and
// persists it through the session store.
func (g *Gateway) refresh(ctx context.Context, requestID string) (string, error) {
	refreshToken := g.session.RefreshToken()
	if refreshToken == "" {
		return "", hrmserrors.ErrNoRefreshToken
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+refreshPath, nil)
	if err != nil {
		return "", errors.Wrap(err, "[gateway.refresh] build request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+refreshToken)
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", hrmserrors.Wrapf(hrmserrors.ErrNetwork, "refresh call")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("[gateway.refresh] refresh endpoint returned %d", resp.StatusCode)
	}

	var tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return "", errors.Wrap(err, "[gateway.refresh] decode token response")
	}
	if tokens.AccessToken == "" {
		return "", errors.New("[gateway.refresh] refresh response missing access token")
	}

	if err := g.session.UpdateTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
		g.log.Warn().Str("request_id", requestID).Err(err).Msg("gateway: persisting refreshed tokens")
	}
	return tokens.AccessToken, nil
}

func serverMessage(body []byte, status int) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return http.StatusText(status)
}
