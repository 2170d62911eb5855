package httpapi

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dvillarroel/actifijo/internal/server/auth"
)

func expectCredentialLookup(t *testing.T, mock sqlmock.Sqlmock, username, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	mock.ExpectQuery(`(?s)^SELECT\s+u\.id,.*FROM\s+usuarios\s+u`).
		WithArgs(username).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "first_name", "last_name", "email", "empresa_id", "is_admin", "nombre"}).
			AddRow(int64(5), username, hash, "Daniel", "Villarroel", "dv@acme.example", int64(7), true, "Acme"))
	mock.ExpectQuery(`(?s)^SELECT\s+r\.nombre\s+FROM\s+roles\s+r`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"nombre"}).AddRow("Administrador"))
}

func TestToken_Success(t *testing.T) {
	srv, mock, cfg := newTestServer(t)
	expectCredentialLookup(t, mock, "dvillarroel", "secret")

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/token/", "",
		`{"username":"dvillarroel","password":"secret"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	claims, err := auth.ParseToken(body.Access, []byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if claims.Username != "dvillarroel" || claims.EmpresaID != 7 || claims.EmpresaNombre != "Acme" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.NombreCompleto != "Daniel Villarroel" || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestToken_WrongPassword(t *testing.T) {
	srv, mock, _ := newTestServer(t)
	expectCredentialLookup(t, mock, "dvillarroel", "secret")

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/token/", "",
		`{"username":"dvillarroel","password":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestToken_UnknownUserLooksIdentical(t *testing.T) {
	srv, mock, _ := newTestServer(t)

	mock.ExpectQuery(`(?s)^SELECT\s+u\.id,.*FROM\s+usuarios\s+u`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/token/", "",
		`{"username":"ghost","password":"x"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestToken_MissingFields(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/token/", "", `{"username":"x"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestRegister_ValidationMap(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/register/", "",
		`{"empresa_nombre":"Acme"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var fields map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	for _, field := range []string{"empresa_nit", "admin_username", "admin_password", "card_number"} {
		if len(fields[field]) == 0 {
			t.Errorf("missing error for %s: %v", field, fields)
		}
	}
	if len(fields["empresa_nombre"]) != 0 {
		t.Errorf("provided field must not error: %v", fields)
	}
}

func TestRegister_SuccessIssuesToken(t *testing.T) {
	srv, mock, cfg := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+empresas`).
		WithArgs("Acme", "1023456022").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+usuarios`).
		WithArgs(int64(7), "admin", sqlmock.AnyArg(), "Ana", "García", "ana@acme.example").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+empleados`).
		WithArgs(int64(7), int64(5), "7894561", "García", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/register/", "", `{
		"empresa_nombre": "Acme",
		"empresa_nit": "1023456022",
		"admin_first_name": "Ana",
		"admin_apellido_p": "García",
		"admin_apellido_m": "",
		"admin_ci": "7894561",
		"admin_email": "ana@acme.example",
		"admin_username": "admin",
		"admin_password": "s3cret",
		"card_number": "4242424242424242",
		"card_expiry": "12/28",
		"card_cvc": "123"
	}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	claims, err := auth.ParseToken(body.Access, []byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if claims.Username != "admin" || claims.EmpresaID != 7 || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
