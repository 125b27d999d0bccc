// Package tokenstore keeps the two strings the console persists between
// runs: the backend access token and its refresh token.
package tokenstore

import "context"

const (
	KeyAccessToken  = "admin_token"
	KeyRefreshToken = "admin_refresh_token"
)

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

func (t Tokens) LoggedIn() bool { return t.AccessToken != "" }

// Store is durable storage for Tokens. Load on an empty store returns zero
// Tokens and no error.
type Store interface {
	Load(ctx context.Context) (Tokens, error)
	Save(ctx context.Context, t Tokens) error
	Clear(ctx context.Context) error
}
