package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectAssetRows(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`(?s)^SELECT\s+a\.id,\s*a\.nombre,\s*u\.nombre`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "ubicacion", "fecha_adquisicion", "valor_actual"}).
			AddRow(int64(1), "Impresora", "Oficina central", "2023-05-10", "1500.00"))
}

func TestReportPreview(t *testing.T) {
	srv, mock, cfg := newTestServer(t)
	expectAssetRows(mock)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/reportes/activos-preview/", authHeader(t, cfg), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var envelope struct {
		Results []map[string]any `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(envelope.Results) != 1 || envelope.Results[0]["nombre"] != "Impresora" {
		t.Fatalf("unexpected body: %+v", envelope)
	}
}

func TestReportPreview_Filters(t *testing.T) {
	srv, mock, cfg := newTestServer(t)

	mock.ExpectQuery(`(?s)ubicacion_id\s*=\s*\$2.*fecha_adquisicion\s*>=\s*\$3.*fecha_adquisicion\s*<=\s*\$4`).
		WithArgs(int64(7), int64(2), "2024-01-01", "2024-12-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "ubicacion", "fecha_adquisicion", "valor_actual"}))

	resp := doRequest(t, http.MethodGet,
		srv.URL+"/api/reportes/activos-preview/?ubicacion_id=2&fecha_min=2024-01-01&fecha_max=2024-12-31",
		authHeader(t, cfg), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportExport_PDF(t *testing.T) {
	srv, mock, cfg := newTestServer(t)
	expectAssetRows(mock)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/reportes/activos-export/?format=pdf", authHeader(t, cfg), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="reporte_activos.pdf"` {
		t.Fatalf("Content-Disposition = %q", got)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Fatalf("payload is not a pdf")
	}
}

func TestReportExport_Excel(t *testing.T) {
	srv, mock, cfg := newTestServer(t)
	expectAssetRows(mock)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/reportes/activos-export/?format=excel", authHeader(t, cfg), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="reporte_activos.xlsx"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
}

func TestReportExport_UnknownFormat(t *testing.T) {
	srv, mock, cfg := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/reportes/activos-export/?format=csv", authHeader(t, cfg), "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var fields map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(fields["format"]) == 0 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("format check must not reach the db: %v", err)
	}
}

func TestCreateLog_CapturesForwardedIP(t *testing.T) {
	srv, mock, cfg := newTestServer(t)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+logs`).
		WithArgs(sqlmock.AnyArg(), int64(7), "dvillarroel", "crear_activo", []byte(`{"id":3}`), "203.0.113.9").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow("2026-08-28 10:00:00+00"))

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/logs/",
		bytes.NewReader([]byte(`{"accion":"crear_activo","payload":{"id":3}}`)))
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}
	req.Header.Set("Authorization", authHeader(t, cfg))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var entry map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if entry["accion"] != "crear_activo" || entry["ip"] != "203.0.113.9" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateLog_RequiresAccion(t *testing.T) {
	srv, _, cfg := newTestServer(t)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/logs/", authHeader(t, cfg), `{"payload":{}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var fields map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(fields["accion"]) != 1 || fields["accion"][0] != msgRequired {
		t.Fatalf("unexpected field errors: %v", fields)
	}
}
