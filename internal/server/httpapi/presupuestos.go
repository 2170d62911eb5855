package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Budgets read nested and write by reference, so they don't fit the generic
// resource mount.
func (s *Server) mountPresupuestos(r chi.Router) {
	r.Route("/presupuestos", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			rows, err := s.store.Presupuestos.List(req.Context(), claims.EmpresaID)
			if err != nil {
				writeDetail(w, http.StatusInternalServerError, msgServerError)
				return
			}
			writeList(w, rows)
		})

		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			in, ok := decodePresupuesto(w, req)
			if !ok {
				return
			}
			created, err := s.store.Presupuestos.Create(req.Context(), claims.EmpresaID, in)
			if err != nil {
				writeResourceError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, created)
		})

		r.Get("/{id}/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			id, ok := urlID(req)
			if !ok {
				writeDetail(w, http.StatusNotFound, msgNotFound)
				return
			}
			rec, err := s.store.Presupuestos.Get(req.Context(), claims.EmpresaID, id)
			if err != nil {
				writeResourceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, rec)
		})

		update := func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			id, ok := urlID(req)
			if !ok {
				writeDetail(w, http.StatusNotFound, msgNotFound)
				return
			}
			in, ok := decodePresupuesto(w, req)
			if !ok {
				return
			}
			updated, err := s.store.Presupuestos.Update(req.Context(), claims.EmpresaID, id, in)
			if err != nil {
				writeResourceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, updated)
		}
		r.Put("/{id}/", update)
		r.Patch("/{id}/", update)

		r.Delete("/{id}/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			id, ok := urlID(req)
			if !ok {
				writeDetail(w, http.StatusNotFound, msgNotFound)
				return
			}
			if err := s.store.Presupuestos.Delete(req.Context(), claims.EmpresaID, id); err != nil {
				writeResourceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

func decodePresupuesto(w http.ResponseWriter, req *http.Request) (models.PresupuestoInput, bool) {
	var in models.PresupuestoInput
	if err := decodeJSON(req, &in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return in, false
	}

	errs := fieldErrors{}
	if strings.TrimSpace(in.Descripcion) == "" {
		errs.add("descripcion", msgRequired)
	}
	if strings.TrimSpace(in.Monto) == "" {
		errs.add("monto", msgRequired)
	}
	if strings.TrimSpace(in.Fecha) == "" {
		errs.add("fecha", msgRequired)
	}
	if in.DepartamentoID == 0 {
		errs.add("departamento_id", msgRequired)
	}
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return in, false
	}
	return in, true
}
