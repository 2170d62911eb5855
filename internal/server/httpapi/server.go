// Package httpapi exposes the REST API the console consumes: token and
// registration endpoints, tenant-scoped entity CRUD, audit log intake and
// the asset report preview/export pair.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dvillarroel/actifijo/internal/logging"
	"github.com/dvillarroel/actifijo/internal/server/config"
	"github.com/dvillarroel/actifijo/internal/server/reports"
	"github.com/dvillarroel/actifijo/internal/server/store"
)

type Server struct {
	config   *config.Config
	store    *store.Store
	logger   logging.Logger
	archiver *reports.Archiver
}

func NewServer(cfg *config.Config, st *store.Store, logger logging.Logger) *Server {
	return &Server{
		config:   cfg,
		store:    st,
		logger:   logger,
		archiver: reports.NewArchiver(cfg, logger),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/token/", s.handleToken)
		r.Post("/register/", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			mountResource(r, "departamentos", s.store.Departamentos, validateNombre(departamentoNombre))
			mountResource(r, "cargos", s.store.Cargos, validateNombre(cargoNombre))
			mountResource(r, "permisos", s.store.Permisos, validateNombre(permisoNombre))
			mountResource(r, "roles", s.store.Roles, validateNombre(rolNombre))
			mountResource(r, "categorias-activos", s.store.Categorias, validateNombre(categoriaNombre))
			mountResource(r, "estados", s.store.Estados, validateNombre(estadoNombre))
			mountResource(r, "ubicaciones", s.store.Ubicaciones, validateNombre(ubicacionNombre))
			mountResource(r, "proveedores", s.store.Proveedores, validateNombre(proveedorNombre))
			mountResource(r, "activos-fijos", s.store.Activos, validateActivo)

			s.mountPresupuestos(r)
			s.mountEmpleados(r)

			r.Post("/logs/", s.handleCreateLog)
			r.Get("/reportes/activos-preview/", s.handleReportPreview)
			r.Get("/reportes/activos-export/", s.handleReportExport)
		})
	})

	return r
}
