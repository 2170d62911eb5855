package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dvillarroel/actifijo/internal/server/models"
)

type logRequest struct {
	Accion  string          `json:"accion"`
	Payload json.RawMessage `json:"payload"`
}

// handleCreateLog stores one audit record attributed to the authenticated
// user, their tenant and the caller's address.
func (s *Server) handleCreateLog(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req logRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}
	if strings.TrimSpace(req.Accion) == "" {
		writeFieldErrors(w, fieldErrors{"accion": {msgRequired}})
		return
	}

	entry, err := s.store.Logs.Insert(r.Context(), models.LogEntry{
		EmpresaID: claims.EmpresaID,
		Username:  claims.Username,
		Accion:    req.Accion,
		Payload:   req.Payload,
		IP:        clientIP(r),
	})
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
