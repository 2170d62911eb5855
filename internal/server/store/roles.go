package store

import (
	"context"
	"database/sql"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/dbx"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Roles stores roles together with their permission assignments.
type Roles struct {
	db *sql.DB
}

func NewRoles(db *sql.DB) *Roles {
	return &Roles{db: db}
}

func (r *Roles) List(ctx context.Context, empresaID int64) ([]models.Rol, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nombre FROM roles WHERE empresa_id = $1 ORDER BY id`, empresaID)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	roles := []models.Rol{}
	for rows.Next() {
		var rol models.Rol
		if err := rows.Scan(&rol.ID, &rol.Nombre); err != nil {
			return nil, mapDBError(err)
		}
		rol.Permisos = []int64{}
		roles = append(roles, rol)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}

	permisos, err := r.permisosByRol(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if ids, ok := permisos[roles[i].ID]; ok {
			roles[i].Permisos = ids
		}
	}
	return roles, nil
}

func (r *Roles) Get(ctx context.Context, empresaID, id int64) (models.Rol, error) {
	var rol models.Rol
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nombre FROM roles WHERE empresa_id = $1 AND id = $2`,
		empresaID, id).Scan(&rol.ID, &rol.Nombre)
	if err != nil {
		return models.Rol{}, mapDBError(err)
	}

	rol.Permisos = []int64{}
	rows, err := r.db.QueryContext(ctx,
		`SELECT permiso_id FROM rol_permisos WHERE rol_id = $1 ORDER BY permiso_id`, rol.ID)
	if err != nil {
		return models.Rol{}, mapDBError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var permisoID int64
		if err := rows.Scan(&permisoID); err != nil {
			return models.Rol{}, mapDBError(err)
		}
		rol.Permisos = append(rol.Permisos, permisoID)
	}
	if err := rows.Err(); err != nil {
		return models.Rol{}, mapDBError(err)
	}
	return rol, nil
}

func (r *Roles) Create(ctx context.Context, empresaID int64, rol models.Rol) (models.Rol, error) {
	var id int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO roles (empresa_id, nombre) VALUES ($1, $2) RETURNING id`,
			empresaID, rol.Nombre).Scan(&id)
		if err != nil {
			return mapDBError(err)
		}
		return insertRolPermisos(ctx, tx, id, rol.Permisos)
	})
	if err != nil {
		return models.Rol{}, err
	}
	return r.Get(ctx, empresaID, id)
}

func (r *Roles) Update(ctx context.Context, empresaID, id int64, rol models.Rol) (models.Rol, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE roles SET nombre = $1 WHERE empresa_id = $2 AND id = $3`,
			rol.Nombre, empresaID, id)
		if err != nil {
			return mapDBError(err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM rol_permisos WHERE rol_id = $1`, id); err != nil {
			return mapDBError(err)
		}
		return insertRolPermisos(ctx, tx, id, rol.Permisos)
	})
	if err != nil {
		return models.Rol{}, err
	}
	return r.Get(ctx, empresaID, id)
}

func (r *Roles) Delete(ctx context.Context, empresaID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM roles WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *Roles) permisosByRol(ctx context.Context, empresaID int64) (map[int64][]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rp.rol_id, rp.permiso_id
		 FROM rol_permisos rp
		 JOIN roles r ON r.id = rp.rol_id
		 WHERE r.empresa_id = $1
		 ORDER BY rp.rol_id, rp.permiso_id`, empresaID)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	result := map[int64][]int64{}
	for rows.Next() {
		var rolID, permisoID int64
		if err := rows.Scan(&rolID, &permisoID); err != nil {
			return nil, mapDBError(err)
		}
		result[rolID] = append(result[rolID], permisoID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}
	return result, nil
}

func insertRolPermisos(ctx context.Context, tx dbx.DBTX, rolID int64, permisos []int64) error {
	for _, permisoID := range permisos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO rol_permisos (rol_id, permiso_id) VALUES ($1, $2)`, rolID, permisoID)
		if err != nil {
			return mapDBError(err)
		}
	}
	return nil
}
