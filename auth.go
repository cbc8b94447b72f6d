package pubhub

import (
	"context"
	"errors"
	"net/http"

	"github.com/pubhub/pubhub.go/pkg/gateway"
	"github.com/pubhub/pubhub.go/pkg/logger"
	"github.com/pubhub/pubhub.go/pkg/models"
)

// Localized messages for transport-class failures. Domain errors carry
// the server's own message instead.
const (
	errMsgLogin     = "Ошибка авторизации, повторите попытку"
	errMsgLogout    = "Ошибка, повторите попытку"
	errMsgCheckAuth = "Ошибка проверки авторизации, повторите попытку"
	errMsgRegister  = "Ошибка регистрации, повторите попытку"
)

// AuthSession owns the authentication lifecycle. The session starts
// anonymous, is mutated only by the methods below, and is reset to
// anonymous on logout or on an authentication failure signal.
//
// The authenticated flag and the cached current user (held by the
// UserStore) always change together: Login only flips the flag after
// the follow-up profile fetch succeeds, and Logout clears both.
type AuthSession struct {
	storeState

	gw    gateway.Gateway
	log   logger.Logger
	users *UserStore

	authenticated bool
	token         string
}

func NewAuthSession(gw gateway.Gateway, users *UserStore, log logger.Logger) *AuthSession {
	if log == nil {
		log = logger.Discard{}
	}
	return &AuthSession{gw: gw, log: log, users: users}
}

func (a *AuthSession) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// Token returns the token of the last successful login, if any. The
// session cookie, not this token, is what authenticates requests.
func (a *AuthSession) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// Login authenticates against POST /auth/login. The login payload's
// embedded user is deliberately not trusted: a follow-up current-user
// fetch populates the profile, and only its success marks the session
// authenticated, so the cached user and the flag come from the same
// consistency point. A failed follow-up leaves the session
// unauthenticated even though login nominally succeeded.
func (a *AuthSession) Login(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error) {
	defer a.begin()()

	var resp models.AuthResponse
	if err := a.gw.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		a.recordFailure(err, errMsgLogin)
		a.log.Warn("login failed", "error", err)
		return nil, err
	}

	if _, err := a.users.FetchCurrentUser(ctx); err != nil {
		a.fail(a.users.Err())
		return nil, err
	}

	a.mu.Lock()
	a.authenticated = true
	a.token = resp.Token
	a.mu.Unlock()

	return &resp, nil
}

// Register creates an account via POST /auth/registration. It never
// marks the session authenticated; the caller logs in explicitly
// afterwards.
func (a *AuthSession) Register(ctx context.Context, req models.CreateUserRequest) (*models.AuthResponse, error) {
	defer a.begin()()

	var resp models.AuthResponse
	if err := a.gw.Do(ctx, http.MethodPost, "/auth/registration", req, &resp); err != nil {
		a.recordFailure(err, errMsgRegister)
		a.log.Warn("registration failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

// Logout calls POST /auth/logout and tears the session down regardless
// of what the server answers (200 or 401 alike): logout is idempotent
// and always effective locally. Only a transport failure leaves the
// session untouched and reports failure.
func (a *AuthSession) Logout(ctx context.Context) bool {
	defer a.begin()()

	err := a.gw.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	var apiErr *gateway.APIError
	if err != nil && !errors.As(err, &apiErr) {
		a.fail(errMsgLogout)
		a.log.Warn("logout failed", "error", err)
		return false
	}

	a.mu.Lock()
	a.authenticated = false
	a.token = ""
	a.mu.Unlock()
	a.users.SetUser(nil)

	return true
}

// CheckAuth queries GET /auth/status. Used at bootstrap and by route
// guards. An error payload (typically unauthenticated) clears the
// authenticated flag but keeps a previously cached user profile.
// A successful check returns the status payload without touching the
// flag; InitApp is what promotes it to an authenticated session.
func (a *AuthSession) CheckAuth(ctx context.Context) (*models.AuthResponse, error) {
	defer a.begin()()

	var resp models.AuthResponse
	if err := a.gw.Do(ctx, http.MethodGet, "/auth/status", nil, &resp); err != nil {
		a.recordFailure(err, errMsgCheckAuth)
		a.mu.Lock()
		a.authenticated = false
		a.mu.Unlock()
		return nil, err
	}
	return &resp, nil
}

// InitApp is the bootstrap sequence: check the session against the
// server and, when it is alive, seed the user store with the embedded
// user and mark the session authenticated. Returns the resulting
// authenticated state.
func (a *AuthSession) InitApp(ctx context.Context) bool {
	resp, err := a.CheckAuth(ctx)
	if err != nil || resp.User.ID == "" {
		return false
	}

	user := resp.User
	a.users.SetUser(&user)
	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	return true
}
