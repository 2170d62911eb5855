package store

import (
	"context"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/dbx"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Presupuestos stores budgets. Reads nest the owning department; writes
// reference it by id.
type Presupuestos struct {
	db dbx.DBTX
}

func NewPresupuestos(db dbx.DBTX) *Presupuestos {
	return &Presupuestos{db: db}
}

const presupuestoSelect = `
	SELECT p.id, p.descripcion, p.monto::text, p.fecha::text,
	       d.id, d.nombre, d.descripcion
	FROM presupuestos p
	JOIN departamentos d ON d.id = p.departamento_id
	WHERE p.empresa_id = $1`

func scanPresupuesto(row rowScanner) (models.Presupuesto, error) {
	var p models.Presupuesto
	var d models.Departamento
	err := row.Scan(&p.ID, &p.Descripcion, &p.Monto, &p.Fecha, &d.ID, &d.Nombre, &d.Descripcion)
	if err != nil {
		return models.Presupuesto{}, err
	}
	p.Departamento = &d
	return p, nil
}

func (r *Presupuestos) List(ctx context.Context, empresaID int64) ([]models.Presupuesto, error) {
	rows, err := r.db.QueryContext(ctx, presupuestoSelect+` ORDER BY p.id`, empresaID)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	records := []models.Presupuesto{}
	for rows.Next() {
		rec, err := scanPresupuesto(rows)
		if err != nil {
			return nil, mapDBError(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}
	return records, nil
}

func (r *Presupuestos) Get(ctx context.Context, empresaID, id int64) (models.Presupuesto, error) {
	rec, err := scanPresupuesto(r.db.QueryRowContext(ctx, presupuestoSelect+` AND p.id = $2`, empresaID, id))
	if err != nil {
		return models.Presupuesto{}, mapDBError(err)
	}
	return rec, nil
}

func (r *Presupuestos) Create(ctx context.Context, empresaID int64, in models.PresupuestoInput) (models.Presupuesto, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO presupuestos (empresa_id, descripcion, monto, fecha, departamento_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		empresaID, in.Descripcion, in.Monto, in.Fecha, in.DepartamentoID).Scan(&id)
	if err != nil {
		return models.Presupuesto{}, mapDBError(err)
	}
	return r.Get(ctx, empresaID, id)
}

func (r *Presupuestos) Update(ctx context.Context, empresaID, id int64, in models.PresupuestoInput) (models.Presupuesto, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE presupuestos
		 SET descripcion = $1, monto = $2, fecha = $3, departamento_id = $4
		 WHERE empresa_id = $5 AND id = $6`,
		in.Descripcion, in.Monto, in.Fecha, in.DepartamentoID, empresaID, id)
	if err != nil {
		return models.Presupuesto{}, mapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Presupuesto{}, common.ErrNotFound
	}
	return r.Get(ctx, empresaID, id)
}

func (r *Presupuestos) Delete(ctx context.Context, empresaID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM presupuestos WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
