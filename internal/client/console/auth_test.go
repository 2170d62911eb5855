package console

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvillarroel/actifijo/internal/client/notify"
)

func signTestToken(t *testing.T, username string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username":        username,
		"email":           username + "@example.com",
		"nombre_completo": "Test User",
		"empresa_id":      int64(1),
		"empresa_nombre":  "Acme",
		"roles":           []string{"Administrador"},
		"is_admin":        true,
		"exp":             time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func TestLogin_Success(t *testing.T) {
	var credentials map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &credentials)
		json.NewEncoder(w).Encode(map[string]string{"access": signTestToken(t, "dvillarroel")})
	}))
	defer srv.Close()

	stubAnswers(t, "dvillarroel")
	stubPassword(t, "secret")

	app := newTestApp(srv.URL)
	if err := app.Login(context.Background()); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if credentials["username"] != "dvillarroel" || credentials["password"] != "secret" {
		t.Fatalf("credentials = %v", credentials)
	}
	if !app.isLoggedIn() {
		t.Fatal("session not authenticated")
	}
	if got := app.getStatus(); got != "(dvillarroel @ Acme)" {
		t.Fatalf("status = %q", got)
	}
	if !hasNotification(app.notify, notify.KindSuccess, "Welcome, dvillarroel") {
		t.Fatalf("missing welcome: %+v", app.notify.Active())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	stubAnswers(t, "dvillarroel")
	stubPassword(t, "wrong")

	app := newTestApp(srv.URL)
	if err := app.Login(context.Background()); err == nil {
		t.Fatal("expected login error")
	}
	if app.isLoggedIn() {
		t.Fatal("rejected login must not authenticate")
	}
	if !hasNotification(app.notify, notify.KindError, "Not authorized") {
		t.Fatalf("missing notification: %+v", app.notify.Active())
	}
}

func TestRegister_SendsFlatPayloadAndLogsIn(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &payload)
		json.NewEncoder(w).Encode(map[string]string{"access": signTestToken(t, "admin")})
	}))
	defer srv.Close()

	stubAnswers(t,
		"Acme",       // company name
		"1023456022", // NIT
		"Ana",        // first name
		"García",     // apellido paterno
		"",           // apellido materno
		"7894561",    // CI
		"ana@acme.example", // email
		"admin",            // username
		"4242424242424242", // card number
		"12/28",            // expiry
		"123",              // cvc
	)
	stubPassword(t, "s3cret")

	app := newTestApp(srv.URL)
	if err := app.Register(context.Background()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for field, want := range map[string]string{
		"empresa_nombre": "Acme",
		"empresa_nit":    "1023456022",
		"admin_username": "admin",
		"admin_password": "s3cret",
		"card_number":    "4242424242424242",
	} {
		if payload[field] != want {
			t.Fatalf("payload[%s] = %v, want %q", field, payload[field], want)
		}
	}
	if !app.isLoggedIn() {
		t.Fatal("registration must leave the console logged in")
	}
}

func TestRegister_ValidationFailureSurfacesFirstMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"admin_username": ["Este nombre de usuario ya está en uso."]}`))
	}))
	defer srv.Close()

	stubAnswers(t, "Acme", "1", "A", "B", "", "1", "a@b.c", "admin", "4", "1/1", "1")
	stubPassword(t, "x")

	app := newTestApp(srv.URL)
	if err := app.Register(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
	if !hasNotification(app.notify, notify.KindError, "Este nombre de usuario ya está en uso.") {
		t.Fatalf("missing verbatim field message: %+v", app.notify.Active())
	}
}

func TestLogout_Idempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	app := newTestApp(srv.URL)
	app.previewed = true

	if err := app.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := app.Logout(context.Background()); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
	if app.isLoggedIn() || app.previewed {
		t.Fatal("logout must clear session and report state")
	}
}
