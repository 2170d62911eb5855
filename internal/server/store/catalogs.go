package store

import (
	"github.com/dvillarroel/actifijo/internal/dbx"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

func newDepartamentos(db dbx.DBTX) *Entity[models.Departamento] {
	return &Entity[models.Departamento]{
		db:         db,
		table:      "departamentos",
		selectCols: "nombre, descripcion",
		insertCols: []string{"nombre", "descripcion"},
		scan: func(row rowScanner) (models.Departamento, error) {
			var d models.Departamento
			err := row.Scan(&d.ID, &d.Nombre, &d.Descripcion)
			return d, err
		},
		args: func(d models.Departamento) []any {
			return []any{d.Nombre, d.Descripcion}
		},
	}
}

func newCargos(db dbx.DBTX) *Entity[models.Cargo] {
	return &Entity[models.Cargo]{
		db:         db,
		table:      "cargos",
		selectCols: "nombre, descripcion",
		insertCols: []string{"nombre", "descripcion"},
		scan: func(row rowScanner) (models.Cargo, error) {
			var c models.Cargo
			err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion)
			return c, err
		},
		args: func(c models.Cargo) []any {
			return []any{c.Nombre, c.Descripcion}
		},
	}
}

func newPermisos(db dbx.DBTX) *Entity[models.Permiso] {
	return &Entity[models.Permiso]{
		db:         db,
		table:      "permisos",
		selectCols: "nombre, descripcion",
		insertCols: []string{"nombre", "descripcion"},
		scan: func(row rowScanner) (models.Permiso, error) {
			var p models.Permiso
			err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion)
			return p, err
		},
		args: func(p models.Permiso) []any {
			return []any{p.Nombre, p.Descripcion}
		},
	}
}

func newCategorias(db dbx.DBTX) *Entity[models.CategoriaActivo] {
	return &Entity[models.CategoriaActivo]{
		db:         db,
		table:      "categorias_activos",
		selectCols: "nombre, descripcion",
		insertCols: []string{"nombre", "descripcion"},
		scan: func(row rowScanner) (models.CategoriaActivo, error) {
			var c models.CategoriaActivo
			err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion)
			return c, err
		},
		args: func(c models.CategoriaActivo) []any {
			return []any{c.Nombre, c.Descripcion}
		},
	}
}

func newEstados(db dbx.DBTX) *Entity[models.Estado] {
	return &Entity[models.Estado]{
		db:         db,
		table:      "estados",
		selectCols: "nombre, detalle",
		insertCols: []string{"nombre", "detalle"},
		scan: func(row rowScanner) (models.Estado, error) {
			var e models.Estado
			err := row.Scan(&e.ID, &e.Nombre, &e.Detalle)
			return e, err
		},
		args: func(e models.Estado) []any {
			return []any{e.Nombre, e.Detalle}
		},
	}
}

func newUbicaciones(db dbx.DBTX) *Entity[models.Ubicacion] {
	return &Entity[models.Ubicacion]{
		db:         db,
		table:      "ubicaciones",
		selectCols: "nombre, direccion, detalle",
		insertCols: []string{"nombre", "direccion", "detalle"},
		scan: func(row rowScanner) (models.Ubicacion, error) {
			var u models.Ubicacion
			err := row.Scan(&u.ID, &u.Nombre, &u.Direccion, &u.Detalle)
			return u, err
		},
		args: func(u models.Ubicacion) []any {
			return []any{u.Nombre, u.Direccion, u.Detalle}
		},
	}
}

func newProveedores(db dbx.DBTX) *Entity[models.Proveedor] {
	return &Entity[models.Proveedor]{
		db:         db,
		table:      "proveedores",
		selectCols: "nombre, nit, email, telefono, pais, direccion, estado",
		insertCols: []string{"nombre", "nit", "email", "telefono", "pais", "direccion", "estado"},
		scan: func(row rowScanner) (models.Proveedor, error) {
			var p models.Proveedor
			err := row.Scan(&p.ID, &p.Nombre, &p.NIT, &p.Email, &p.Telefono, &p.Pais, &p.Direccion, &p.Estado)
			return p, err
		},
		args: func(p models.Proveedor) []any {
			return []any{p.Nombre, p.NIT, p.Email, p.Telefono, p.Pais, p.Direccion, p.Estado}
		},
	}
}

// Dates and NUMERIC amounts are selected as text so they serialize exactly
// the way the console expects them.
func newActivos(db dbx.DBTX) *Entity[models.ActivoFijo] {
	return &Entity[models.ActivoFijo]{
		db:         db,
		table:      "activos_fijos",
		selectCols: "nombre, codigo_interno, fecha_adquisicion::text, valor_actual::text, vida_util, categoria_id, estado_id, ubicacion_id, proveedor_id",
		insertCols: []string{"nombre", "codigo_interno", "fecha_adquisicion", "valor_actual", "vida_util", "categoria_id", "estado_id", "ubicacion_id", "proveedor_id"},
		scan: func(row rowScanner) (models.ActivoFijo, error) {
			var a models.ActivoFijo
			err := row.Scan(&a.ID, &a.Nombre, &a.CodigoInterno, &a.FechaAdquisicion,
				&a.ValorActual, &a.VidaUtil, &a.Categoria, &a.Estado, &a.Ubicacion, &a.Proveedor)
			return a, err
		},
		args: func(a models.ActivoFijo) []any {
			return []any{a.Nombre, a.CodigoInterno, a.FechaAdquisicion, a.ValorActual,
				a.VidaUtil, a.Categoria, a.Estado, a.Ubicacion, a.Proveedor}
		},
	}
}
