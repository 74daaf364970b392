package session

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Store is the single authority for "who is logged in and with what
// credentials". The in-memory session is authoritative; the Repo holds a
// durable mirror that survives process restarts. Only the store itself and
// the gateway's refresh path write the session; everything else is a
// read-only observer.
type Store struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *UserInfo
	subscribers  []func(accessToken string)

	repo          Repo
	log           zerolog.Logger
	loginRedirect func()
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for storage failures.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = logger
	}
}

// WithLoginRedirect sets the hook invoked after Logout clears the session.
// A UI would navigate to the login screen here; a CLI prints a
// re-authentication instruction.
func WithLoginRedirect(redirect func()) StoreOption {
	return func(s *Store) {
		s.loginRedirect = redirect
	}
}

// NewStore creates an empty session store backed by the given durable repo.
func NewStore(repo Repo, options ...StoreOption) *Store {
	s := &Store{
		repo:          repo,
		log:           log.Logger,
		loginRedirect: func() {},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Initialize seeds the in-memory session from the durable copy. It restores
// only the access token and user; the refresh token stays on disk until the
// refresh path asks for it. Malformed or partial durable state is discarded
// and the session starts logged out; Initialize never fails. No network call
// validates the token here, validity is discovered lazily on first use.
func (s *Store) Initialize() {
	token, tokenOK, err := s.repo.Get(KeyAccessToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: reading stored access token")
		return
	}
	rawUser, userOK, err := s.repo.Get(KeyUser)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: reading stored user")
		return
	}
	if !tokenOK || !userOK {
		return
	}

	var user UserInfo
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn().Err(err).Msg("session: discarding unparseable stored session")
		s.discardDurable()
		return
	}

	s.mu.Lock()
	s.accessToken = token
	s.user = &user
	s.mu.Unlock()
}

// Login sets the full session atomically and writes all three durable
// entries. Subsequent authenticated requests use the new token immediately.
func (s *Store) Login(accessToken, refreshToken string, user UserInfo) error {
	s.mu.Lock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.user = &user
	s.mu.Unlock()

	rawUser, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "[Store.Login] marshal user")
	}
	if err := s.repo.Set(KeyAccessToken, accessToken); err != nil {
		return errors.Wrap(err, "[Store.Login] persist access token")
	}
	if err := s.repo.Set(KeyRefreshToken, refreshToken); err != nil {
		return errors.Wrap(err, "[Store.Login] persist refresh token")
	}
	if err := s.repo.Set(KeyUser, string(rawUser)); err != nil {
		return errors.Wrap(err, "[Store.Login] persist user")
	}
	return nil
}

// Logout clears the session and removes all durable entries, then invokes
// the login redirect. It is the single exit path for both user-initiated
// logout and forced logout after refresh failure, and is safe to call
// repeatedly.
func (s *Store) Logout() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.mu.Unlock()

	s.discardDurable()
	if err := s.repo.Delete(KeyRefreshToken); err != nil {
		s.log.Warn().Err(err).Msg("session: removing stored refresh token")
	}
	s.loginRedirect()
}

// HasRole reports whether the current user's role is one of the given roles.
// With no user present it is false for any input.
func (s *Store) HasRole(roles ...Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, role := range roles {
		if s.user.Role == role {
			return true
		}
	}
	return false
}

// UpdateAccessToken replaces only the access token, in memory and durable
// storage, leaving the user and refresh token untouched. The change is
// broadcast to subscribers.
func (s *Store) UpdateAccessToken(token string) error {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()

	if err := s.repo.Set(KeyAccessToken, token); err != nil {
		return errors.Wrap(err, "[Store.UpdateAccessToken] persist access token")
	}
	s.notify(token)
	return nil
}

// UpdateTokens stores the token pair returned by a silent refresh. The
// backend rotates the refresh token on every refresh, so both are replaced.
func (s *Store) UpdateTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	s.accessToken = accessToken
	if refreshToken != "" {
		s.refreshToken = refreshToken
	}
	s.mu.Unlock()

	if err := s.repo.Set(KeyAccessToken, accessToken); err != nil {
		return errors.Wrap(err, "[Store.UpdateTokens] persist access token")
	}
	if refreshToken != "" {
		if err := s.repo.Set(KeyRefreshToken, refreshToken); err != nil {
			return errors.Wrap(err, "[Store.UpdateTokens] persist refresh token")
		}
	}
	s.notify(accessToken)
	return nil
}

// Subscribe registers a callback invoked whenever the access token changes
// through a refresh. Delivery is fire-and-forget: subscribers must tolerate
// zero or more invocations and should read current state through the store
// rather than assume delivery before their next request.
func (s *Store) Subscribe(fn func(accessToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AccessToken returns the current access token, or "" when logged out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the refresh token, falling back to durable storage
// when it was never loaded into memory (Initialize deliberately skips it).
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	token := s.refreshToken
	s.mu.RUnlock()
	if token != "" {
		return token
	}

	stored, ok, err := s.repo.Get(KeyRefreshToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: reading stored refresh token")
		return ""
	}
	if !ok {
		return ""
	}
	return stored
}

// User returns a copy of the authenticated user, or nil when logged out.
func (s *Store) User() *UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether both an access token and a user are
// present. The two are set together or not at all.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != "" && s.user != nil
}

func (s *Store) notify(token string) {
	s.mu.RLock()
	subscribers := make([]func(string), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subscribers {
		fn(token)
	}
}

// discardDurable removes the access token and user entries together. They
// are only ever valid as a pair.
func (s *Store) discardDurable() {
	if err := s.repo.Delete(KeyAccessToken); err != nil {
		s.log.Warn().Err(err).Msg("session: removing stored access token")
	}
	if err := s.repo.Delete(KeyUser); err != nil {
		s.log.Warn().Err(err).Msg("session: removing stored user")
	}
}
