package console

import (
	"context"
	"strconv"

	"github.com/dvillarroel/actifijo/internal/client/gateway"
	"github.com/dvillarroel/actifijo/internal/client/models"
)

// optionsFrom adapts a gateway list call into an option loader.
func optionsFrom[T gateway.Record, D any](res *gateway.Resource[T, D], label func(T) string) optionLoader {
	return func(ctx context.Context) ([]option, error) {
		records, err := res.List(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]option, 0, len(records))
		for _, r := range records {
			opts = append(opts, option{ID: r.RecordID(), Label: label(r)})
		}
		return opts, nil
	}
}

func fmtID(id int64) string { return strconv.FormatInt(id, 10) }

func fmtIDPtr(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

// buildPages wires one page per entity. Option lists reference the sibling
// gateways, so a form open always sees the backend's current catalog rows.
func buildPages(app *App) map[pageID]pager {
	g := app.gateways

	departamentoOpts := optionsFrom(g.Departamentos, func(d models.Departamento) string { return d.Nombre })
	cargoOpts := optionsFrom(g.Cargos, func(c models.Cargo) string { return c.Nombre })
	permisoOpts := optionsFrom(g.Permisos, func(p models.Permiso) string { return p.Nombre })
	rolOpts := optionsFrom(g.Roles, func(r models.Rol) string { return r.Nombre })
	categoriaOpts := optionsFrom(g.Categorias, func(c models.CategoriaActivo) string { return c.Nombre })
	estadoOpts := optionsFrom(g.Estados, func(e models.Estado) string { return e.Nombre })
	ubicacionOpts := optionsFrom(g.Ubicaciones, func(u models.Ubicacion) string { return u.Nombre })
	proveedorOpts := optionsFrom(g.Proveedores, func(p models.Proveedor) string { return p.Nombre })

	return map[pageID]pager{
		pageDepartamentos: newResourcePage(app, pageSpec[models.Departamento, models.DepartamentoDraft]{
			name:     "Departamento",
			resource: g.Departamentos,
			header:   []string{"ID", "Nombre", "Descripción"},
			row: func(d models.Departamento) []string {
				return []string{fmtID(d.ID), d.Nombre, d.Descripcion}
			},
			seed: func(d models.Departamento) models.DepartamentoDraft {
				return models.DepartamentoDraft{Nombre: d.Nombre, Descripcion: d.Descripcion}
			},
			form: func(s *formSession, _ *formOptions, draft models.DepartamentoDraft, _ bool) (models.DepartamentoDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.Descripcion, err = s.Text("Descripción", draft.Descripcion); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageCargos: newResourcePage(app, pageSpec[models.Cargo, models.CargoDraft]{
			name:     "Cargo",
			resource: g.Cargos,
			header:   []string{"ID", "Nombre", "Descripción"},
			row: func(c models.Cargo) []string {
				return []string{fmtID(c.ID), c.Nombre, c.Descripcion}
			},
			seed: func(c models.Cargo) models.CargoDraft {
				return models.CargoDraft{Nombre: c.Nombre, Descripcion: c.Descripcion}
			},
			form: func(s *formSession, _ *formOptions, draft models.CargoDraft, _ bool) (models.CargoDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.Descripcion, err = s.Text("Descripción", draft.Descripcion); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageEmpleados: newResourcePage(app, pageSpec[models.Empleado, models.EmpleadoDraft]{
			name:     "Empleado",
			resource: g.Empleados,
			header:   []string{"ID", "CI", "Apellido P", "Apellido M", "Cargo", "Departamento"},
			row: func(e models.Empleado) []string {
				return []string{fmtID(e.ID), e.CI, e.ApellidoP, e.ApellidoM, fmtIDPtr(e.Cargo), fmtIDPtr(e.Departamento)}
			},
			seed: func(e models.Empleado) models.EmpleadoDraft {
				return models.EmpleadoDraft{
					CI:           e.CI,
					ApellidoP:    e.ApellidoP,
					ApellidoM:    e.ApellidoM,
					Direccion:    e.Direccion,
					Telefono:     e.Telefono,
					Sueldo:       e.Sueldo,
					Cargo:        e.Cargo,
					Departamento: e.Departamento,
					Roles:        e.Roles,
				}
			},
			options: map[string]optionLoader{
				"cargos":        cargoOpts,
				"departamentos": departamentoOpts,
				"roles":         rolOpts,
			},
			form: func(s *formSession, opts *formOptions, draft models.EmpleadoDraft, editing bool) (models.EmpleadoDraft, error) {
				var err error
				// Account credentials exist only on create; edits never
				// resend them.
				if !editing {
					if draft.Username, err = s.RequiredText("Username", draft.Username); err != nil {
						return draft, err
					}
					if draft.Password, err = s.RequiredText("Password", draft.Password); err != nil {
						return draft, err
					}
					if draft.FirstName, err = s.RequiredText("Nombre", draft.FirstName); err != nil {
						return draft, err
					}
					if draft.Email, err = s.RequiredText("Email", draft.Email); err != nil {
						return draft, err
					}
				}
				if draft.CI, err = s.RequiredText("CI", draft.CI); err != nil {
					return draft, err
				}
				if draft.ApellidoP, err = s.RequiredText("Apellido paterno", draft.ApellidoP); err != nil {
					return draft, err
				}
				if draft.ApellidoM, err = s.Text("Apellido materno", draft.ApellidoM); err != nil {
					return draft, err
				}
				if draft.Direccion, err = s.Text("Dirección", draft.Direccion); err != nil {
					return draft, err
				}
				if draft.Telefono, err = s.Text("Teléfono", draft.Telefono); err != nil {
					return draft, err
				}
				if draft.Sueldo, err = s.Decimal("Sueldo", draft.Sueldo); err != nil {
					return draft, err
				}
				if draft.Cargo, err = s.SelectOptional("Cargo", opts.get("cargos"), draft.Cargo); err != nil {
					return draft, err
				}
				if draft.Departamento, err = s.SelectOptional("Departamento", opts.get("departamentos"), draft.Departamento); err != nil {
					return draft, err
				}
				if draft.Roles, err = s.MultiSelect("Roles", opts.get("roles"), draft.Roles); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageActivos: newResourcePage(app, pageSpec[models.ActivoFijo, models.ActivoFijoDraft]{
			name:     "Activo Fijo",
			resource: g.Activos,
			header:   []string{"ID", "Nombre", "Código", "Adquisición", "Valor", "Ubicación"},
			row: func(a models.ActivoFijo) []string {
				return []string{fmtID(a.ID), a.Nombre, a.CodigoInterno, a.FechaAdquisicion, a.ValorActual, fmtID(a.Ubicacion)}
			},
			seed: func(a models.ActivoFijo) models.ActivoFijoDraft {
				return models.ActivoFijoDraft{
					Nombre:           a.Nombre,
					CodigoInterno:    a.CodigoInterno,
					FechaAdquisicion: a.FechaAdquisicion,
					ValorActual:      a.ValorActual,
					VidaUtil:         a.VidaUtil,
					Categoria:        a.Categoria,
					Estado:           a.Estado,
					Ubicacion:        a.Ubicacion,
					Proveedor:        a.Proveedor,
				}
			},
			options: map[string]optionLoader{
				"categorias":  categoriaOpts,
				"estados":     estadoOpts,
				"ubicaciones": ubicacionOpts,
				"proveedores": proveedorOpts,
			},
			form: func(s *formSession, opts *formOptions, draft models.ActivoFijoDraft, _ bool) (models.ActivoFijoDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.CodigoInterno, err = s.RequiredText("Código interno", draft.CodigoInterno); err != nil {
					return draft, err
				}
				if draft.FechaAdquisicion, err = s.Date("Fecha de adquisición", draft.FechaAdquisicion); err != nil {
					return draft, err
				}
				if draft.ValorActual, err = s.Decimal("Valor actual", draft.ValorActual); err != nil {
					return draft, err
				}
				if draft.VidaUtil, err = s.Int("Vida útil (años)", draft.VidaUtil); err != nil {
					return draft, err
				}
				if draft.Categoria, err = s.Select("Categoría", opts.get("categorias"), draft.Categoria); err != nil {
					return draft, err
				}
				if draft.Estado, err = s.Select("Estado", opts.get("estados"), draft.Estado); err != nil {
					return draft, err
				}
				if draft.Ubicacion, err = s.Select("Ubicación", opts.get("ubicaciones"), draft.Ubicacion); err != nil {
					return draft, err
				}
				if draft.Proveedor, err = s.SelectOptional("Proveedor", opts.get("proveedores"), draft.Proveedor); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pagePresupuestos: newResourcePage(app, pageSpec[models.Presupuesto, models.PresupuestoDraft]{
			name:     "Presupuesto",
			resource: g.Presupuestos,
			header:   []string{"ID", "Descripción", "Monto", "Fecha", "Departamento"},
			row: func(p models.Presupuesto) []string {
				dep := "-"
				if p.Departamento != nil {
					dep = p.Departamento.Nombre
				}
				return []string{fmtID(p.ID), p.Descripcion, p.Monto, p.Fecha, dep}
			},
			seed: func(p models.Presupuesto) models.PresupuestoDraft {
				draft := models.PresupuestoDraft{Descripcion: p.Descripcion, Monto: p.Monto, Fecha: p.Fecha}
				if p.Departamento != nil {
					draft.DepartamentoID = p.Departamento.ID
				}
				return draft
			},
			options: map[string]optionLoader{
				"departamentos": departamentoOpts,
			},
			form: func(s *formSession, opts *formOptions, draft models.PresupuestoDraft, _ bool) (models.PresupuestoDraft, error) {
				var err error
				if draft.Descripcion, err = s.RequiredText("Descripción", draft.Descripcion); err != nil {
					return draft, err
				}
				if draft.Monto, err = s.Decimal("Monto", draft.Monto); err != nil {
					return draft, err
				}
				if draft.Fecha, err = s.Date("Fecha", draft.Fecha); err != nil {
					return draft, err
				}
				if draft.DepartamentoID, err = s.Select("Departamento", opts.get("departamentos"), draft.DepartamentoID); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageRoles: newResourcePage(app, pageSpec[models.Rol, models.RolDraft]{
			name:     "Rol",
			resource: g.Roles,
			header:   []string{"ID", "Nombre", "Permisos"},
			row: func(r models.Rol) []string {
				return []string{fmtID(r.ID), r.Nombre, strconv.Itoa(len(r.Permisos))}
			},
			seed: func(r models.Rol) models.RolDraft {
				return models.RolDraft{Nombre: r.Nombre, Permisos: r.Permisos}
			},
			options: map[string]optionLoader{
				"permisos": permisoOpts,
			},
			form: func(s *formSession, opts *formOptions, draft models.RolDraft, _ bool) (models.RolDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.Permisos, err = s.MultiSelect("Permisos", opts.get("permisos"), draft.Permisos); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pagePermisos: newResourcePage(app, pageSpec[models.Permiso, models.PermisoDraft]{
			name:     "Permiso",
			resource: g.Permisos,
			header:   []string{"ID", "Nombre", "Descripción"},
			row: func(p models.Permiso) []string {
				return []string{fmtID(p.ID), p.Nombre, p.Descripcion}
			},
			seed: func(p models.Permiso) models.PermisoDraft {
				return models.PermisoDraft{Nombre: p.Nombre, Descripcion: p.Descripcion}
			},
			form: func(s *formSession, _ *formOptions, draft models.PermisoDraft, _ bool) (models.PermisoDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.Descripcion, err = s.Text("Descripción", draft.Descripcion); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageCategorias: newResourcePage(app, pageSpec[models.CategoriaActivo, models.CategoriaActivoDraft]{
			name:     "Categoría de Activo",
			resource: g.Categorias,
			header:   []string{"ID", "Nombre", "Descripción"},
			row: func(c models.CategoriaActivo) []string {
				return []string{fmtID(c.ID), c.Nombre, c.Descripcion}
			},
			seed: func(c models.CategoriaActivo) models.CategoriaActivoDraft {
				return models.CategoriaActivoDraft{Nombre: c.Nombre, Descripcion: c.Descripcion}
			},
			form: func(s *formSession, _ *formOptions, draft models.CategoriaActivoDraft, _ bool) (models.CategoriaActivoDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.Descripcion, err = s.Text("Descripción", draft.Descripcion); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageEstados: newResourcePage(app, pageSpec[models.Estado, models.EstadoDraft]{
			name:     "Estado",
			resource: g.Estados,
			header:   []string{"ID", "Nombre", "Detalle"},
			row: func(e models.Estado) []string {
				return []string{fmtID(e.ID), e.Nombre, e.Detalle}
			},
			seed: func(e models.Estado) models.EstadoDraft {
				return models.EstadoDraft{Nombre: e.Nombre, Detalle: e.Detalle}
			},
			form: func(s *formSession, _ *formOptions, draft models.EstadoDraft, _ bool) (models.EstadoDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.Detalle, err = s.Text("Detalle", draft.Detalle); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageUbicaciones: newResourcePage(app, pageSpec[models.Ubicacion, models.UbicacionDraft]{
			name:     "Ubicación",
			resource: g.Ubicaciones,
			header:   []string{"ID", "Nombre", "Dirección", "Detalle"},
			row: func(u models.Ubicacion) []string {
				return []string{fmtID(u.ID), u.Nombre, u.Direccion, u.Detalle}
			},
			seed: func(u models.Ubicacion) models.UbicacionDraft {
				return models.UbicacionDraft{Nombre: u.Nombre, Direccion: u.Direccion, Detalle: u.Detalle}
			},
			form: func(s *formSession, _ *formOptions, draft models.UbicacionDraft, _ bool) (models.UbicacionDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.Direccion, err = s.Text("Dirección", draft.Direccion); err != nil {
					return draft, err
				}
				if draft.Detalle, err = s.Text("Detalle", draft.Detalle); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),

		pageProveedores: newResourcePage(app, pageSpec[models.Proveedor, models.ProveedorDraft]{
			name:     "Proveedor",
			resource: g.Proveedores,
			header:   []string{"ID", "Nombre", "NIT", "Email", "País", "Estado"},
			row: func(p models.Proveedor) []string {
				return []string{fmtID(p.ID), p.Nombre, p.NIT, p.Email, p.Pais, p.Estado}
			},
			seed: func(p models.Proveedor) models.ProveedorDraft {
				return models.ProveedorDraft{
					Nombre: p.Nombre, NIT: p.NIT, Email: p.Email,
					Telefono: p.Telefono, Pais: p.Pais, Direccion: p.Direccion, Estado: p.Estado,
				}
			},
			form: func(s *formSession, _ *formOptions, draft models.ProveedorDraft, _ bool) (models.ProveedorDraft, error) {
				var err error
				if draft.Nombre, err = s.RequiredText("Nombre", draft.Nombre); err != nil {
					return draft, err
				}
				if draft.NIT, err = s.RequiredText("NIT", draft.NIT); err != nil {
					return draft, err
				}
				if draft.Email, err = s.Text("Email", draft.Email); err != nil {
					return draft, err
				}
				if draft.Telefono, err = s.Text("Teléfono", draft.Telefono); err != nil {
					return draft, err
				}
				if draft.Pais, err = s.Text("País", draft.Pais); err != nil {
					return draft, err
				}
				if draft.Direccion, err = s.Text("Dirección", draft.Direccion); err != nil {
					return draft, err
				}
				if draft.Estado, err = s.Text("Estado", draft.Estado); err != nil {
					return draft, err
				}
				return draft, nil
			},
		}),
	}
}
