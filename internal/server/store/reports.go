package store

import (
	"context"
	"fmt"

	"github.com/dvillarroel/actifijo/internal/dbx"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// ReportFilter narrows the asset report. Zero values mean "no filter".
type ReportFilter struct {
	UbicacionID int64
	FechaMin    string
	FechaMax    string
}

// Reports runs the read-only queries behind the report endpoints.
type Reports struct {
	db dbx.DBTX
}

func NewReports(db dbx.DBTX) *Reports {
	return &Reports{db: db}
}

// AssetRows returns the assets joined with their location, ordered by id,
// narrowed by the filter within the tenant.
func (r *Reports) AssetRows(ctx context.Context, empresaID int64, filter ReportFilter) ([]models.ReportRow, error) {
	query := `SELECT a.id, a.nombre, u.nombre, a.fecha_adquisicion::text, a.valor_actual::text
		 FROM activos_fijos a
		 JOIN ubicaciones u ON u.id = a.ubicacion_id
		 WHERE a.empresa_id = $1`
	args := []any{empresaID}

	if filter.UbicacionID != 0 {
		args = append(args, filter.UbicacionID)
		query += fmt.Sprintf(" AND a.ubicacion_id = $%d", len(args))
	}
	if filter.FechaMin != "" {
		args = append(args, filter.FechaMin)
		query += fmt.Sprintf(" AND a.fecha_adquisicion >= $%d", len(args))
	}
	if filter.FechaMax != "" {
		args = append(args, filter.FechaMax)
		query += fmt.Sprintf(" AND a.fecha_adquisicion <= $%d", len(args))
	}
	query += " ORDER BY a.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	result := []models.ReportRow{}
	for rows.Next() {
		var row models.ReportRow
		if err := rows.Scan(&row.ID, &row.Nombre, &row.Ubicacion, &row.FechaAdquisicion, &row.ValorActual); err != nil {
			return nil, mapDBError(err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}
	return result, nil
}
