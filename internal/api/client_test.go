package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"404 not found", http.StatusNotFound, `{"detail":"no such policy"}`, KindNotFound, "no such policy"},
		{"401 unauthorized", http.StatusUnauthorized, ``, KindUnauthorized, "authentication required"},
		{"403 forbidden", http.StatusForbidden, `{"message":"admin only"}`, KindForbidden, "admin only"},
		{"500 generic", http.StatusInternalServerError, `{"message":"stack trace here"}`, KindServer, "server error, try again later"},
		{"503 generic", http.StatusServiceUnavailable, ``, KindServer, "server error, try again later"},
		{"422 with message", http.StatusUnprocessableEntity, `{"message":"policy_id already exists"}`, KindRequest, "policy_id already exists"},
		{"400 bad body", http.StatusBadRequest, `not json`, KindRequest, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL)
			_, err := client.Policy(context.Background(), "1.1.1")
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestNoContentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("tok"))
	assert.NoError(t, client.DeletePolicy(context.Background(), "1.1.1"))
}

func TestNetworkErrorDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := New(srv.URL)
	_, err := client.ApprovedPolicies(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.False(t, IsNotFound(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Error(t, apiErr.Unwrap())
}

func TestRequestShape(t *testing.T) {
	var (
		gotPath   string
		gotQuery  string
		gotAuth   string
		gotCT     string
		gotMethod string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotMethod = r.Method
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		_ = json.NewEncoder(w).Encode(PolicyRecord{PolicyID: "4.1"})
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("secret-token"))

	t.Run("section filter parameter", func(t *testing.T) {
		_, err := client.ApprovedPolicies(context.Background(), "2")
		require.NoError(t, err)
		assert.Equal(t, "/api/policies/approved", gotPath)
		assert.Equal(t, "section=2", gotQuery)
		assert.Equal(t, "Bearer secret-token", gotAuth)
	})

	t.Run("create forces draft status", func(t *testing.T) {
		_, err := client.CreatePolicy(context.Background(), CreatePolicyInput{
			PolicyID:   "4.1",
			PolicyName: "New",
			Section:    "1",
			Status:     "approved", // must be overridden
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotCT)
		assert.Equal(t, "draft", gotBody["status"])
	})

	t.Run("approve endpoint", func(t *testing.T) {
		_, err := client.ApprovePolicy(context.Background(), "4.1")
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/api/policies/4.1/approve", gotPath)
	})
}

func TestApprovedPoliciesDecodesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"u1","policy_id":"1.2.1","policy_name":"Alpha","section":"1","status":"approved"},
			{"id":"u2","policy_id":"1.1.5","policy_name":"Beta","section":"1","status":"approved"}
		]`))
	}))
	defer srv.Close()

	records, err := New(srv.URL).ApprovedPolicies(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1.2.1", records[0].PolicyID)
	assert.Equal(t, "Beta", records[1].PolicyName)
}

func TestBylawUUIDValidatedClientSide(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Bylaw(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.False(t, called, "invalid UUID must not reach the network")

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "UUID validation failure is not an API error")
}
