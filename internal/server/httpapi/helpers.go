package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// fieldErrors is the DRF-style field -> messages map the console surfaces
// verbatim.
type fieldErrors map[string][]string

func (f fieldErrors) add(field, msg string) {
	f[field] = append(f[field], msg)
}

const (
	msgRequired      = "Este campo es requerido."
	msgDuplicateName = "Ya existe un registro con este nombre."
	msgNotFound      = "No encontrado."
	msgBadCreds      = "Credenciales inválidas."
	msgServerError   = "Error interno del servidor."
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeFieldErrors(w http.ResponseWriter, errs fieldErrors) {
	writeJSON(w, http.StatusBadRequest, errs)
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// listEnvelope is the paginated list shape the console unwraps.
type listEnvelope struct {
	Results any `json:"results"`
}

func writeList(w http.ResponseWriter, rows any) {
	writeJSON(w, http.StatusOK, listEnvelope{Results: rows})
}

func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
