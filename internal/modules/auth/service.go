// Package auth keeps the console's backend session: the access and refresh
// tokens returned by login.
package auth

import (
	"context"
	"log/slog"
	"strings"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/shared/apperr"
	"pehlione.com/catalogadmin/internal/tokenstore"
)

type API interface {
	Login(ctx context.Context, in backend.LoginReq) (backend.LoginResp, error)
	Logout(ctx context.Context) error
	PermissionInfo(ctx context.Context) (backend.PermissionInfo, error)
}

type Service struct {
	api    API
	tokens tokenstore.Store
	log    *slog.Logger
}

func NewService(api API, tokens tokenstore.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, tokens: tokens, log: log}
}

func (s *Service) Login(ctx context.Context, username, password string) (backend.LoginResp, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return backend.LoginResp{}, apperr.InvalidErr("Username and password are required.", map[string]string{"username": "required"})
	}

	resp, err := s.api.Login(ctx, backend.LoginReq{Username: username, Password: password})
	if err != nil {
		return backend.LoginResp{}, err
	}
	if resp.AccessToken == "" {
		return backend.LoginResp{}, apperr.UpstreamErr("Login response carried no access token.", nil)
	}
	if err := s.tokens.Save(ctx, tokenstore.Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}); err != nil {
		return backend.LoginResp{}, apperr.Wrap(err)
	}
	s.log.LogAttrs(ctx, slog.LevelInfo, "login", slog.String("username", username), slog.Int64("user_id", resp.UserID))
	return resp, nil
}

// Logout tells the backend and always drops the local tokens, even when the
// backend call fails.
func (s *Service) Logout(ctx context.Context) error {
	callErr := s.api.Logout(ctx)
	if callErr != nil && !backend.IsUnauthorized(callErr) {
		s.log.LogAttrs(ctx, slog.LevelWarn, "logout_backend_failed", slog.Any("err", callErr))
	}
	if err := s.tokens.Clear(ctx); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

// Session proves the stored token is still live. Without a token it fails
// without calling the backend.
func (s *Service) Session(ctx context.Context) (backend.PermissionInfo, error) {
	t, err := s.tokens.Load(ctx)
	if err != nil {
		return backend.PermissionInfo{}, apperr.Wrap(err)
	}
	if !t.LoggedIn() {
		return backend.PermissionInfo{}, apperr.UnauthorizedErr("Please log in.")
	}
	return s.api.PermissionInfo(ctx)
}

// LoggedIn reports whether a token is stored, without asking the backend.
func (s *Service) LoggedIn(ctx context.Context) bool {
	t, err := s.tokens.Load(ctx)
	return err == nil && t.LoggedIn()
}
