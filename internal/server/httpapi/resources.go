package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// resourceStore is the tenant-scoped CRUD surface every entity repository
// exposes.
type resourceStore[T any] interface {
	List(ctx context.Context, empresaID int64) ([]T, error)
	Get(ctx context.Context, empresaID, id int64) (T, error)
	Create(ctx context.Context, empresaID int64, rec T) (T, error)
	Update(ctx context.Context, empresaID, id int64, rec T) (T, error)
	Delete(ctx context.Context, empresaID, id int64) error
}

// mountResource wires the standard CRUD routes for one entity. PUT and
// PATCH both rewrite the full row; the console always sends complete drafts
// for these entities.
func mountResource[T any](r chi.Router, path string, repo resourceStore[T], validate func(T) fieldErrors) {
	r.Route("/"+path, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			rows, err := repo.List(req.Context(), claims.EmpresaID)
			if err != nil {
				writeDetail(w, http.StatusInternalServerError, msgServerError)
				return
			}
			writeList(w, rows)
		})

		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			claims := claimsFromContext(req.Context())
			var rec T
			if err := decodeJSON(req, &rec); err != nil {
				writeDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
				return
			}
			if errs := validate(rec); len(errs) > 0 {
				writeFieldErrors(w, errs)
				return
			}
			created, err := repo.Create(req.Context(), claims.EmpresaID, rec)
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
			rec, err := repo.Get(req.Context(), claims.EmpresaID, id)
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
			var rec T
			if err := decodeJSON(req, &rec); err != nil {
				writeDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
				return
			}
			if errs := validate(rec); len(errs) > 0 {
				writeFieldErrors(w, errs)
				return
			}
			updated, err := repo.Update(req.Context(), claims.EmpresaID, id, rec)
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
			if err := repo.Delete(req.Context(), claims.EmpresaID, id); err != nil {
				writeResourceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

func writeResourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeDetail(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, common.ErrAlreadyExists):
		writeFieldErrors(w, fieldErrors{"nombre": {msgDuplicateName}})
	default:
		writeDetail(w, http.StatusInternalServerError, msgServerError)
	}
}

// validateNombre builds the required-name check shared by the catalogs.
func validateNombre[T any](nombre func(T) string) func(T) fieldErrors {
	return func(rec T) fieldErrors {
		errs := fieldErrors{}
		if strings.TrimSpace(nombre(rec)) == "" {
			errs.add("nombre", msgRequired)
		}
		return errs
	}
}

var (
	departamentoNombre = func(d models.Departamento) string { return d.Nombre }
	cargoNombre        = func(c models.Cargo) string { return c.Nombre }
	permisoNombre      = func(p models.Permiso) string { return p.Nombre }
	rolNombre          = func(r models.Rol) string { return r.Nombre }
	categoriaNombre    = func(c models.CategoriaActivo) string { return c.Nombre }
	estadoNombre       = func(e models.Estado) string { return e.Nombre }
	ubicacionNombre    = func(u models.Ubicacion) string { return u.Nombre }
	proveedorNombre    = func(p models.Proveedor) string { return p.Nombre }
)

func validateActivo(a models.ActivoFijo) fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(a.Nombre) == "" {
		errs.add("nombre", msgRequired)
	}
	if strings.TrimSpace(a.FechaAdquisicion) == "" {
		errs.add("fecha_adquisicion", msgRequired)
	}
	if strings.TrimSpace(a.ValorActual) == "" {
		errs.add("valor_actual", msgRequired)
	}
	if a.VidaUtil < 0 {
		errs.add("vida_util", "Debe ser un número positivo.")
	}
	if a.Categoria == 0 {
		errs.add("categoria", msgRequired)
	}
	if a.Estado == 0 {
		errs.add("estado", msgRequired)
	}
	if a.Ubicacion == 0 {
		errs.add("ubicacion", msgRequired)
	}
	return errs
}
