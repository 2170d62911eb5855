package console

// pageID enumerates the entity pages the console can open. The set is
// closed: parsePage either recognizes a name or reports failure, it never
// falls through to a default page.
type pageID int

const (
	pageDepartamentos pageID = iota
	pageCargos
	pageEmpleados
	pageActivos
	pagePresupuestos
	pageRoles
	pagePermisos
	pageCategorias
	pageEstados
	pageUbicaciones
	pageProveedores
)

var pageNames = map[string]pageID{
	"departamentos":      pageDepartamentos,
	"cargos":             pageCargos,
	"empleados":          pageEmpleados,
	"activos":            pageActivos,
	"activos-fijos":      pageActivos,
	"presupuestos":       pagePresupuestos,
	"roles":              pageRoles,
	"permisos":           pagePermisos,
	"categorias":         pageCategorias,
	"categorias-activos": pageCategorias,
	"estados":            pageEstados,
	"ubicaciones":        pageUbicaciones,
	"proveedores":        pageProveedores,
}

func parsePage(name string) (pageID, bool) {
	id, ok := pageNames[name]
	return id, ok
}

// pageList is the help-text ordering of the canonical page names.
var pageList = []string{
	"departamentos", "cargos", "empleados", "activos", "presupuestos",
	"roles", "permisos", "categorias", "estados", "ubicaciones", "proveedores",
}
