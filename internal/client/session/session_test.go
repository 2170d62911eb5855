package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvillarroel/actifijo/internal/client/api"
	"github.com/dvillarroel/actifijo/internal/client/models"
	"github.com/dvillarroel/actifijo/internal/common"
)

type fakeStore struct {
	token    string
	setCalls int
	clears   int
}

func (f *fakeStore) Token(context.Context) (string, error) { return f.token, nil }
func (f *fakeStore) SetToken(_ context.Context, token string) error {
	f.token = token
	f.setCalls++
	return nil
}
func (f *fakeStore) ClearToken(context.Context) error {
	f.token = ""
	f.clears++
	return nil
}

func signToken(t *testing.T, exp time.Time, extra map[string]any) string {
	t.Helper()
	claims := jwt.MapClaims{
		"exp":             exp.Unix(),
		"username":        "jgarcia",
		"email":           "jgarcia@example.com",
		"nombre_completo": "Juan García",
		"empresa_id":      int64(3),
		"empresa_nombre":  "Acme SRL",
		"roles":           []string{"Administrador"},
		"is_admin":        true,
	}
	for k, v := range extra {
		claims[k] = v
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestBootstrap_NoToken(t *testing.T) {
	c := NewController(api.New("http://unused"), &fakeStore{})

	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if c.Authenticated() {
		t.Fatal("expected unauthenticated")
	}
	if c.Loading() {
		t.Fatal("loading flag should drop after bootstrap")
	}
}

func TestBootstrap_ValidTokenNoNetwork(t *testing.T) {
	// No HTTP server at all: a valid persisted token must restore the
	// session offline.
	apiClient := api.New("http://127.0.0.1:1") // unreachable on purpose
	st := &fakeStore{token: signToken(t, time.Now().Add(time.Hour), nil)}
	c := NewController(apiClient, st)

	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if !c.Authenticated() {
		t.Fatal("expected authenticated")
	}
	claims := c.Claims()
	if claims == nil || claims.Username != "jgarcia" || claims.EmpresaNombre != "Acme SRL" || !claims.IsAdmin {
		t.Fatalf("claims not populated: %+v", claims)
	}
	if apiClient.Token() == "" {
		t.Fatal("token not injected into request client")
	}
}

func TestBootstrap_ExpiredTokenClearsStorage(t *testing.T) {
	st := &fakeStore{token: signToken(t, time.Now().Add(-time.Minute), nil)}
	apiClient := api.New("http://unused")
	c := NewController(apiClient, st)

	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if c.Authenticated() {
		t.Fatal("expired token must not authenticate")
	}
	if st.token != "" {
		t.Fatal("expired token must be cleared from durable storage")
	}
	if apiClient.Token() != "" {
		t.Fatal("expired token must not reach the request client")
	}
	if c.Loading() {
		t.Fatal("loading flag should drop")
	}
}

func TestBootstrap_GarbageTokenClearsStorage(t *testing.T) {
	st := &fakeStore{token: "not-a-jwt"}
	c := NewController(api.New("http://unused"), st)

	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if c.Authenticated() || st.token != "" {
		t.Fatal("undecodable token must clear the session")
	}
}

func TestLogin_Success(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour), nil)
	var authHeaders int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			atomic.AddInt32(&authHeaders, 1)
		}
		w.Write([]byte(`{"access": "` + token + `"}`))
	}))
	defer srv.Close()

	apiClient := api.New(srv.URL)
	st := &fakeStore{}
	c := NewController(apiClient, st)

	if err := c.Login(context.Background(), "jgarcia", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !c.Authenticated() {
		t.Fatal("expected authenticated")
	}
	if authHeaders != 0 {
		t.Fatal("login request itself must not carry a bearer header")
	}
	if st.setCalls != 1 {
		t.Fatalf("token must be persisted exactly once, got %d", st.setCalls)
	}
	if apiClient.Token() != token {
		t.Fatal("token must be injected into the request client")
	}
}

func TestLogin_BadCredentialsPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "no"}`))
	}))
	defer srv.Close()

	st := &fakeStore{}
	c := NewController(api.New(srv.URL), st)

	err := c.Login(context.Background(), "jgarcia", "bad")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if c.Authenticated() || st.token != "" {
		t.Fatal("failed login must not mutate state")
	}
}

func TestRegisterAndLogin_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"empresa_nit": ["Ya existe una empresa con este NIT."]}`))
	}))
	defer srv.Close()

	c := NewController(api.New(srv.URL), &fakeStore{})

	err := c.RegisterAndLogin(context.Background(), models.Registration{EmpresaNombre: "Acme"})
	var verr *api.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.First() != "Ya existe una empresa con este NIT." {
		t.Fatalf("First() = %q", verr.First())
	}
}

func TestLogout_Idempotent(t *testing.T) {
	st := &fakeStore{token: signToken(t, time.Now().Add(time.Hour), nil)}
	apiClient := api.New("http://unused")
	c := NewController(apiClient, st)
	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	c.Logout(context.Background())
	first := *st
	c.Logout(context.Background())

	if c.Authenticated() || c.Claims() != nil || apiClient.Token() != "" || st.token != "" {
		t.Fatal("logout must clear everything")
	}
	if st.token != first.token {
		t.Fatal("second logout changed state")
	}
}
