package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/server/auth"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Employees carry an account: creates take credentials, edits never do.
func (s *Server) mountEmpleados(r chi.Router) {
	r.Route("/empleados", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			rows, err := s.store.Empleados.List(req.Context(), claims.EmpresaID)
			if err != nil {
				writeDetail(w, http.StatusInternalServerError, msgServerError)
				return
			}
			writeList(w, rows)
		})

		r.Post("/", s.handleCreateEmpleado)

		r.Get("/{id}/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			id, ok := urlID(req)
			if !ok {
				writeDetail(w, http.StatusNotFound, msgNotFound)
				return
			}
			rec, err := s.store.Empleados.Get(req.Context(), claims.EmpresaID, id)
			if err != nil {
				writeResourceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, rec)
		})

		r.Put("/{id}/", s.handleUpdateEmpleado)
		r.Patch("/{id}/", s.handleUpdateEmpleado)

		r.Delete("/{id}/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			id, ok := urlID(req)
			if !ok {
				writeDetail(w, http.StatusNotFound, msgNotFound)
				return
			}
			if err := s.store.Empleados.Delete(req.Context(), claims.EmpresaID, id); err != nil {
				writeResourceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

func (s *Server) handleCreateEmpleado(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var in models.EmpleadoInput
	if err := decodeJSON(r, &in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	errs := fieldErrors{}
	for field, value := range map[string]string{
		"username":   in.Username,
		"password":   in.Password,
		"first_name": in.FirstName,
		"email":      in.Email,
		"ci":         in.CI,
		"apellido_p": in.ApellidoP,
	} {
		if strings.TrimSpace(value) == "" {
			errs.add(field, msgRequired)
		}
	}
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}

	normalizeEmpleado(&in)
	created, err := s.store.Empleados.Create(r.Context(), claims.EmpresaID, in, hash)
	if err != nil {
		writeEmpleadoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleUpdateEmpleado rewrites the employee fields. Credentials in the body
// are ignored: the console strips them and the account is never re-issued on
// edit.
func (s *Server) handleUpdateEmpleado(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	id, ok := urlID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, msgNotFound)
		return
	}

	var in models.EmpleadoInput
	if err := decodeJSON(r, &in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if strings.TrimSpace(in.CI) == "" {
		writeFieldErrors(w, fieldErrors{"ci": {msgRequired}})
		return
	}

	normalizeEmpleado(&in)
	updated, err := s.store.Empleados.Update(r.Context(), claims.EmpresaID, id, in)
	if err != nil {
		writeEmpleadoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func normalizeEmpleado(in *models.EmpleadoInput) {
	if strings.TrimSpace(in.Sueldo) == "" {
		in.Sueldo = "0"
	}
	if in.Roles == nil {
		in.Roles = []int64{}
	}
}

// A duplicate here can only be the account username; the generic "nombre"
// mapping would mislabel it.
func writeEmpleadoError(w http.ResponseWriter, err error) {
	if errors.Is(err, common.ErrAlreadyExists) {
		writeFieldErrors(w, fieldErrors{"username": {"Este nombre de usuario ya está en uso."}})
		return
	}
	writeResourceError(w, err)
}
