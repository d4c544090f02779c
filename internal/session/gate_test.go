package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
)

// authServer fakes the auth endpoints: login always succeeds with a fixed
// token, /me answers per the configured status and user.
type authServer struct {
	meStatus int
	meUser   api.UserRecord
	meCalls  int
}

func (a *authServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.LoginResult{
			AccessToken: "fresh-token",
			User:        api.UserRecord{Email: "admin@ualberta.ca", Role: api.RoleAdmin},
		})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		a.meCalls++
		if a.meStatus != 0 && a.meStatus != http.StatusOK {
			w.WriteHeader(a.meStatus)
			return
		}
		_ = json.NewEncoder(w).Encode(a.meUser)
	})
	return mux
}

func newTestGate(t *testing.T, srv *authServer) (*Gate, *Store, *api.Client) {
	t.Helper()
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	store := NewStore(t.TempDir())
	client := api.New(ts.URL)
	return NewGate(store, client, nil), store, client
}

func TestRequireWithoutToken(t *testing.T) {
	gate, _, _ := newTestGate(t, &authServer{})
	assert.ErrorIs(t, gate.Require(), ErrNotLoggedIn)
}

func TestRequireInstallsToken(t *testing.T) {
	gate, store, client := newTestGate(t, &authServer{})
	require.NoError(t, store.Save("stored-token"))

	require.NoError(t, gate.Require())
	assert.Equal(t, "stored-token", client.Token())
}

func TestLoginPersistsToken(t *testing.T) {
	gate, store, client := newTestGate(t, &authServer{})

	user, err := gate.Login(context.Background(), "admin@ualberta.ca", "pw")
	require.NoError(t, err)
	assert.Equal(t, api.RoleAdmin, user.Role)
	assert.Equal(t, "fresh-token", client.Token())

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestUserCachedAfterFirstFetch(t *testing.T) {
	srv := &authServer{meUser: api.UserRecord{Email: "x@ualberta.ca", Role: api.RolePolicyWorkingGroup}}
	gate, store, _ := newTestGate(t, srv)
	require.NoError(t, store.Save("tok"))

	ctx := context.Background()
	user, err := gate.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, api.RolePolicyWorkingGroup, user.Role)

	_, err = gate.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.meCalls, "second lookup served from cache")
}

func TestRoleFallsBackToPublic(t *testing.T) {
	gate, _, _ := newTestGate(t, &authServer{})
	assert.Equal(t, api.RolePublic, gate.Role(context.Background()))
	assert.False(t, gate.IsAdmin(context.Background()))
}

func TestUnauthorizedClearsStoredToken(t *testing.T) {
	srv := &authServer{meStatus: http.StatusUnauthorized}
	gate, store, client := newTestGate(t, srv)
	require.NoError(t, store.Save("expired-token"))

	_, err := gate.User(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")
	assert.True(t, api.IsUnauthorized(err))

	_, err = store.Token()
	assert.ErrorIs(t, err, ErrNotLoggedIn, "dead token removed from disk")
	assert.Empty(t, client.Token())
}

func TestForbiddenKeepsToken(t *testing.T) {
	srv := &authServer{meStatus: http.StatusForbidden}
	gate, store, _ := newTestGate(t, srv)
	require.NoError(t, store.Save("valid-but-limited"))

	_, err := gate.User(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsForbidden(err))

	token, err := store.Token()
	require.NoError(t, err, "403 never logs the user out")
	assert.Equal(t, "valid-but-limited", token)
}

func TestLogoutClearsEverything(t *testing.T) {
	gate, store, client := newTestGate(t, &authServer{})
	_, err := gate.Login(context.Background(), "a@ualberta.ca", "pw")
	require.NoError(t, err)

	require.NoError(t, gate.Logout())
	assert.Empty(t, client.Token())
	_, err = store.Token()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, api.RolePublic, gate.Role(context.Background()))
}
