package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
)

// Gate brackets every privileged action: it installs the stored token on
// the API client, resolves the caller's role on demand, and converts a 401
// into a logout. Role checks here only shape the UI; the server rejects
// unauthorized calls on its own.
type Gate struct {
	store  *Store
	client *api.Client
	logger *zap.Logger

	user   api.UserRecord
	loaded bool
}

// NewGate wires a gate over the token store and API client.
func NewGate(store *Store, client *api.Client, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{store: store, client: client, logger: logger}
}

// Require loads the stored token onto the client. Returns ErrNotLoggedIn
// when no token exists; every authenticated command calls this first and
// aborts on error.
func (g *Gate) Require() error {
	token, err := g.store.Token()
	if err != nil {
		return err
	}
	g.client.SetToken(token)
	return nil
}

// User returns the account behind the current token, fetching it once and
// caching the result for the process lifetime.
func (g *Gate) User(ctx context.Context) (api.UserRecord, error) {
	if g.loaded {
		return g.user, nil
	}
	if err := g.Require(); err != nil {
		return api.UserRecord{}, err
	}
	user, err := g.client.Me(ctx)
	if err != nil {
		return api.UserRecord{}, g.HandleAuthError(err)
	}
	g.user = user
	g.loaded = true
	return user, nil
}

// Role returns the current role, or "public" when not logged in.
func (g *Gate) Role(ctx context.Context) string {
	user, err := g.User(ctx)
	if err != nil {
		return api.RolePublic
	}
	return user.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (g *Gate) IsAdmin(ctx context.Context) bool {
	return g.Role(ctx) == api.RoleAdmin
}

// Login exchanges credentials for a token and persists it.
func (g *Gate) Login(ctx context.Context, email, password string) (api.UserRecord, error) {
	result, err := g.client.Login(ctx, email, password)
	if err != nil {
		return api.UserRecord{}, err
	}
	if err := g.store.Save(result.AccessToken); err != nil {
		return api.UserRecord{}, err
	}
	g.client.SetToken(result.AccessToken)
	g.user = result.User
	g.loaded = true
	return result.User, nil
}

// Logout discards the stored token.
func (g *Gate) Logout() error {
	g.client.SetToken("")
	g.user = api.UserRecord{}
	g.loaded = false
	return g.store.Clear()
}

// HandleAuthError applies the session policy to a failed call: a 401 means
// the token is dead, so discard it and tell the user to log in again. A 403
// keeps the token; the role, not the session, was insufficient. Other
// errors pass through unchanged.
func (g *Gate) HandleAuthError(err error) error {
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) {
		if clearErr := g.store.Clear(); clearErr != nil {
			g.logger.Warn("failed to clear expired token", zap.Error(clearErr))
		}
		g.client.SetToken("")
		g.loaded = false
		return fmt.Errorf("session expired, log in again: %w", err)
	}
	return err
}
