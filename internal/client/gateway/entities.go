package gateway

import (
	"github.com/dvillarroel/actifijo/internal/client/api"
	"github.com/dvillarroel/actifijo/internal/client/models"
)

// Set holds one gateway per entity the console manages.
type Set struct {
	Departamentos *Resource[models.Departamento, models.DepartamentoDraft]
	Cargos        *Resource[models.Cargo, models.CargoDraft]
	Empleados     *Resource[models.Empleado, models.EmpleadoDraft]
	Activos       *Resource[models.ActivoFijo, models.ActivoFijoDraft]
	Presupuestos  *Resource[models.Presupuesto, models.PresupuestoDraft]
	Roles         *Resource[models.Rol, models.RolDraft]
	Permisos      *Resource[models.Permiso, models.PermisoDraft]
	Categorias    *Resource[models.CategoriaActivo, models.CategoriaActivoDraft]
	Estados       *Resource[models.Estado, models.EstadoDraft]
	Ubicaciones   *Resource[models.Ubicacion, models.UbicacionDraft]
	Proveedores   *Resource[models.Proveedor, models.ProveedorDraft]

	Reports *Reports
}

// NewSet wires every entity gateway to the shared request client and audit
// logger.
func NewSet(apiClient *api.Client, auditor Auditor) *Set {
	return &Set{
		Departamentos: NewResource[models.Departamento, models.DepartamentoDraft](apiClient, auditor, "departamentos", "Departamento").
			WithAuditFields(func(d models.Departamento) map[string]any {
				return map[string]any{"nombre": d.Nombre}
			}),
		Cargos: NewResource[models.Cargo, models.CargoDraft](apiClient, auditor, "cargos", "Cargo").
			WithAuditFields(func(c models.Cargo) map[string]any {
				return map[string]any{"nombre": c.Nombre}
			}),
		// Employees carry account credentials in their create payload, so the
		// audit subset stays at the document number and edits go out as
		// partial updates without credential fields.
		Empleados: NewResource[models.Empleado, models.EmpleadoDraft](apiClient, auditor, "empleados", "Empleado").
			WithPartialUpdate(models.EmpleadoDraft.WithoutCredentials).
			WithAuditFields(func(e models.Empleado) map[string]any {
				return map[string]any{"ci": e.CI}
			}),
		Activos: NewResource[models.ActivoFijo, models.ActivoFijoDraft](apiClient, auditor, "activos-fijos", "Activo Fijo").
			WithAuditFields(func(a models.ActivoFijo) map[string]any {
				return map[string]any{"nombre": a.Nombre, "codigo_interno": a.CodigoInterno}
			}),
		Presupuestos: NewResource[models.Presupuesto, models.PresupuestoDraft](apiClient, auditor, "presupuestos", "Presupuesto").
			WithAuditFields(func(p models.Presupuesto) map[string]any {
				return map[string]any{"monto": p.Monto, "fecha": p.Fecha}
			}),
		Roles: NewResource[models.Rol, models.RolDraft](apiClient, auditor, "roles", "Rol").
			WithAuditFields(func(r models.Rol) map[string]any {
				return map[string]any{"nombre": r.Nombre}
			}),
		Permisos: NewResource[models.Permiso, models.PermisoDraft](apiClient, auditor, "permisos", "Permiso").
			WithAuditFields(func(p models.Permiso) map[string]any {
				return map[string]any{"nombre": p.Nombre}
			}),
		Categorias: NewResource[models.CategoriaActivo, models.CategoriaActivoDraft](apiClient, auditor, "categorias-activos", "Categoría de Activo").
			WithAuditFields(func(c models.CategoriaActivo) map[string]any {
				return map[string]any{"nombre": c.Nombre}
			}),
		Estados: NewResource[models.Estado, models.EstadoDraft](apiClient, auditor, "estados", "Estado").
			WithAuditFields(func(e models.Estado) map[string]any {
				return map[string]any{"nombre": e.Nombre}
			}),
		Ubicaciones: NewResource[models.Ubicacion, models.UbicacionDraft](apiClient, auditor, "ubicaciones", "Ubicación").
			WithAuditFields(func(u models.Ubicacion) map[string]any {
				return map[string]any{"nombre": u.Nombre}
			}),
		Proveedores: NewResource[models.Proveedor, models.ProveedorDraft](apiClient, auditor, "proveedores", "Proveedor").
			WithAuditFields(func(p models.Proveedor) map[string]any {
				return map[string]any{"nombre": p.Nombre, "nit": p.NIT}
			}),

		Reports: NewReports(apiClient),
	}
}
