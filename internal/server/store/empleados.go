package store

import (
	"context"
	"database/sql"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/dbx"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Empleados stores employees together with their account row and role
// assignments. Creating an employee creates its account in the same
// transaction; deleting one removes the account (and the employee row with
// it, via the FK cascade).
type Empleados struct {
	db *sql.DB
}

func NewEmpleados(db *sql.DB) *Empleados {
	return &Empleados{db: db}
}

const empleadoSelect = `
	SELECT e.id, e.ci, e.apellido_p, e.apellido_m, e.direccion, e.telefono,
	       e.sueldo::text, e.cargo_id, e.departamento_id,
	       u.id, u.username, u.first_name, u.last_name, u.email
	FROM empleados e
	JOIN usuarios u ON u.id = e.usuario_id
	WHERE e.empresa_id = $1`

func scanEmpleado(row rowScanner) (models.Empleado, error) {
	var e models.Empleado
	var u models.Usuario
	err := row.Scan(&e.ID, &e.CI, &e.ApellidoP, &e.ApellidoM, &e.Direccion, &e.Telefono,
		&e.Sueldo, &e.Cargo, &e.Departamento,
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		return models.Empleado{}, err
	}
	e.Usuario = &u
	e.Roles = []int64{}
	return e, nil
}

func (r *Empleados) List(ctx context.Context, empresaID int64) ([]models.Empleado, error) {
	rows, err := r.db.QueryContext(ctx, empleadoSelect+` ORDER BY e.id`, empresaID)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	records := []models.Empleado{}
	for rows.Next() {
		rec, err := scanEmpleado(rows)
		if err != nil {
			return nil, mapDBError(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}

	roles, err := r.rolesByEmpleado(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if ids, ok := roles[records[i].ID]; ok {
			records[i].Roles = ids
		}
	}
	return records, nil
}

func (r *Empleados) Get(ctx context.Context, empresaID, id int64) (models.Empleado, error) {
	rec, err := scanEmpleado(r.db.QueryRowContext(ctx, empleadoSelect+` AND e.id = $2`, empresaID, id))
	if err != nil {
		return models.Empleado{}, mapDBError(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT rol_id FROM empleado_roles WHERE empleado_id = $1 ORDER BY rol_id`, rec.ID)
	if err != nil {
		return models.Empleado{}, mapDBError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var rolID int64
		if err := rows.Scan(&rolID); err != nil {
			return models.Empleado{}, mapDBError(err)
		}
		rec.Roles = append(rec.Roles, rolID)
	}
	if err := rows.Err(); err != nil {
		return models.Empleado{}, mapDBError(err)
	}
	return rec, nil
}

// Create inserts the account and the employee atomically. passwordHash is
// the bcrypt hash of the credential the console collected.
func (r *Empleados) Create(ctx context.Context, empresaID int64, in models.EmpleadoInput, passwordHash string) (models.Empleado, error) {
	var id int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var usuarioID int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO usuarios (empresa_id, username, password_hash, first_name, last_name, email)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			empresaID, in.Username, passwordHash, in.FirstName, in.ApellidoP, in.Email).Scan(&usuarioID)
		if err != nil {
			return mapDBError(err)
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO empleados (empresa_id, usuario_id, ci, apellido_p, apellido_m, direccion, telefono, sueldo, cargo_id, departamento_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id`,
			empresaID, usuarioID, in.CI, in.ApellidoP, in.ApellidoM, in.Direccion,
			in.Telefono, in.Sueldo, in.Cargo, in.Departamento).Scan(&id)
		if err != nil {
			return mapDBError(err)
		}
		return insertEmpleadoRoles(ctx, tx, id, in.Roles)
	})
	if err != nil {
		return models.Empleado{}, err
	}
	return r.Get(ctx, empresaID, id)
}

// Update rewrites the employee fields and role assignments. The account
// credentials are never touched here; partial updates do not carry them.
func (r *Empleados) Update(ctx context.Context, empresaID, id int64, in models.EmpleadoInput) (models.Empleado, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE empleados
			 SET ci = $1, apellido_p = $2, apellido_m = $3, direccion = $4,
			     telefono = $5, sueldo = $6, cargo_id = $7, departamento_id = $8
			 WHERE empresa_id = $9 AND id = $10`,
			in.CI, in.ApellidoP, in.ApellidoM, in.Direccion, in.Telefono,
			in.Sueldo, in.Cargo, in.Departamento, empresaID, id)
		if err != nil {
			return mapDBError(err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM empleado_roles WHERE empleado_id = $1`, id); err != nil {
			return mapDBError(err)
		}
		return insertEmpleadoRoles(ctx, tx, id, in.Roles)
	})
	if err != nil {
		return models.Empleado{}, err
	}
	return r.Get(ctx, empresaID, id)
}

func (r *Empleados) Delete(ctx context.Context, empresaID, id int64) error {
	// Deleting the account cascades onto the employee row.
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM usuarios
		 WHERE id = (SELECT usuario_id FROM empleados WHERE empresa_id = $1 AND id = $2)`,
		empresaID, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *Empleados) rolesByEmpleado(ctx context.Context, empresaID int64) (map[int64][]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT er.empleado_id, er.rol_id
		 FROM empleado_roles er
		 JOIN empleados e ON e.id = er.empleado_id
		 WHERE e.empresa_id = $1
		 ORDER BY er.empleado_id, er.rol_id`, empresaID)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	result := map[int64][]int64{}
	for rows.Next() {
		var empleadoID, rolID int64
		if err := rows.Scan(&empleadoID, &rolID); err != nil {
			return nil, mapDBError(err)
		}
		result[empleadoID] = append(result[empleadoID], rolID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}
	return result, nil
}

func insertEmpleadoRoles(ctx context.Context, tx dbx.DBTX, empleadoID int64, roles []int64) error {
	for _, rolID := range roles {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO empleado_roles (empleado_id, rol_id) VALUES ($1, $2)`, empleadoID, rolID)
		if err != nil {
			return mapDBError(err)
		}
	}
	return nil
}
