package api

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/session"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// ErrMissingCredentials is returned when login is attempted without an
// email or password; nothing is sent to the backend in that case.
var ErrMissingCredentials = errors.New("email and password are required")

// AuthService drives login, logout and token refresh against the backend,
// applying every outcome to the session store.
type AuthService struct {
	client *transport.Client
	store  *session.Store
	log    *zap.Logger
}

// NewAuth creates the auth service
func NewAuth(client *transport.Client, store *session.Store, log *zap.Logger) *AuthService {
	return &AuthService{client: client, store: store, log: log}
}

// Login exchanges credentials for a session. On success the identity and
// tokens are stored and persisted; on failure the store records the error
// and holds no credentials. The returned session mirrors the store.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if email == "" || password == "" {
		return a.store.Session(), ErrMissingCredentials
	}

	a.store.LoginStart()

	var resp models.LoginResponse
	err := a.client.PostJSON(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		a.store.LoginFailure(loginErrorMessage(err))
		return a.store.Session(), err
	}

	if resp.User == nil || resp.Tokens.Access.Token == "" {
		err := errors.New("login failed: invalid response")
		a.store.LoginFailure(err.Error())
		return a.store.Session(), err
	}

	a.store.LoginSuccess(resp.User, resp.Tokens.Access.Token, resp.Tokens.Refresh.Token)
	return a.store.Session(), nil
}

// Logout tells the backend to revoke the session, then clears local state.
// The network call is best-effort: its failure is logged, never surfaced,
// and the local sign-out happens regardless.
func (a *AuthService) Logout(ctx context.Context) {
	if err := a.client.PostJSON(ctx, "/auth/logout", nil, nil); err != nil {
		a.log.Warn("logout request failed, clearing local session anyway", zap.Error(err))
	}
	a.store.Logout()
}

// Refresh exchanges the refresh token for fresh credentials
func (a *AuthService) Refresh(ctx context.Context) error {
	var resp models.LoginResponse
	if err := a.client.PostJSON(ctx, "/auth/refresh", nil, &resp); err != nil {
		return err
	}
	if resp.Tokens.Access.Token == "" {
		return errors.New("refresh failed: invalid response")
	}

	user := resp.User
	if user == nil {
		user = a.store.Session().User
	}
	a.store.LoginSuccess(user, resp.Tokens.Access.Token, resp.Tokens.Refresh.Token)
	return nil
}

// Profile fetches the authenticated user's identity
func (a *AuthService) Profile(ctx context.Context) (*models.User, error) {
	var resp models.ProfileResponse
	if err := a.client.Get(ctx, "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func loginErrorMessage(err error) string {
	var apiErr *transport.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return "login failed"
}
