// Package session owns the console's authentication state: the decoded
// claims of the active token, the authenticated flag, and the login,
// registration and logout transitions. The bearer credential itself lives in
// the api.Client; this package is the only writer of it.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvillarroel/actifijo/internal/client/api"
	"github.com/dvillarroel/actifijo/internal/client/models"
)

// Claims is the token payload issued by the backend. The console never
// verifies the signature (the backend is the verifier); it only reads the
// payload and honors exp.
type Claims struct {
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	NombreCompleto string   `json:"nombre_completo"`
	EmpresaID      int64    `json:"empresa_id"`
	EmpresaNombre  string   `json:"empresa_nombre"`
	Roles          []string `json:"roles"`
	IsAdmin        bool     `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenStore is the durable home of the raw token between runs.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type Controller struct {
	api   *api.Client
	store TokenStore

	mu            sync.RWMutex
	authenticated bool
	claims        *Claims
	loading       bool
}

func NewController(apiClient *api.Client, store TokenStore) *Controller {
	return &Controller{api: apiClient, store: store, loading: true}
}

type tokenResponse struct {
	Access string `json:"access"`
}

// decodeClaims parses the token payload without signature verification.
func decodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}

// adopt installs a token everywhere at once: durable store, request client
// default credential, and in-memory claims. A token that fails to decode
// triggers a full logout instead.
func (c *Controller) adopt(ctx context.Context, token string) error {
	claims, err := decodeClaims(token)
	if err != nil {
		c.Logout(ctx)
		return err
	}

	if err := c.store.SetToken(ctx, token); err != nil {
		// Durable writes are best effort; the in-memory session still works.
		_ = err
	}
	c.api.SetToken(token)

	c.mu.Lock()
	c.claims = claims
	c.authenticated = true
	c.mu.Unlock()
	return nil
}

// Bootstrap restores the session from the durable store on startup, without
// any network call. An absent token leaves the console unauthenticated; an
// undecodable or expired one is cleared exactly as an explicit logout would.
// The loading flag drops exactly once, whatever path is taken.
func (c *Controller) Bootstrap(ctx context.Context) error {
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	token, err := c.store.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	claims, err := decodeClaims(token)
	if err != nil {
		c.Logout(ctx)
		return nil
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		c.Logout(ctx)
		return nil
	}

	return c.adopt(ctx, token)
}

// Login authenticates against the backend. On success the returned token is
// adopted; on failure the error propagates untouched and no state changes.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	var resp tokenResponse
	err := c.api.Post(ctx, "/token/", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	return c.adopt(ctx, resp.Access)
}

// RegisterAndLogin creates a company with its admin user in one backend call
// and adopts the returned token. Validation failures surface as
// *api.ValidationError so the caller can render the first field message.
func (c *Controller) RegisterAndLogin(ctx context.Context, reg models.Registration) error {
	var resp tokenResponse
	if err := c.api.Post(ctx, "/register/", reg, &resp); err != nil {
		return err
	}
	return c.adopt(ctx, resp.Access)
}

// Logout clears the durable store, the request client credential and all
// claim state. Safe to call repeatedly.
func (c *Controller) Logout(ctx context.Context) {
	_ = c.store.ClearToken(ctx)
	c.api.ClearToken()

	c.mu.Lock()
	c.authenticated = false
	c.claims = nil
	c.mu.Unlock()
}

func (c *Controller) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authenticated
}

// Claims returns the decoded claims of the active session, nil when logged
// out.
func (c *Controller) Claims() *Claims {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.claims
}

func (c *Controller) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}
