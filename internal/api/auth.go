package api

import (
	"context"
	"net/http"
	"net/url"
)

// Roles known to the API. Role gating here is a UI convenience only; the
// server is the enforcement point and rejects unauthorized calls itself.
const (
	RolePublic             = "public"
	RoleAdmin              = "admin"
	RolePolicyWorkingGroup = "policy_working_group"
)

// UserRecord is the wire shape of an account.
type UserRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResult is the response of POST /api/auth/login.
type LoginResult struct {
	AccessToken string     `json:"access_token"`
	User        UserRecord `json:"user"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the body for POST /api/auth/register.
type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type setRoleInput struct {
	Role string `json:"role"`
}

// Login exchanges credentials for a bearer token. The returned token is not
// installed on the client; callers decide where it lives.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginInput{Email: email, Password: password}, &result)
	return result, err
}

// Me returns the account behind the current token. Authenticated.
func (c *Client) Me(ctx context.Context) (UserRecord, error) {
	var user UserRecord
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user)
	return user, err
}

// Users lists all accounts. Admin only.
func (c *Client) Users(ctx context.Context) ([]UserRecord, error) {
	var users []UserRecord
	if err := c.do(ctx, http.MethodGet, "/api/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register creates an account. Admin only.
func (c *Client) Register(ctx context.Context, in RegisterInput) (UserRecord, error) {
	var user UserRecord
	err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &user)
	return user, err
}

// SetUserRole changes an account's role. Admin only.
func (c *Client) SetUserRole(ctx context.Context, id, role string) (UserRecord, error) {
	var user UserRecord
	err := c.do(ctx, http.MethodPut, "/api/auth/users/"+url.PathEscape(id)+"/role", setRoleInput{Role: role}, &user)
	return user, err
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/users/"+url.PathEscape(id), nil, nil)
}
