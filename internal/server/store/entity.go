package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/dbx"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Entity is a tenant-scoped repository for tables whose rows map 1:1 onto a
// record struct: an id column, an empresa_id column and a flat set of data
// columns. Entities with junction tables or nested reads get their own repos.
type Entity[T any] struct {
	db         dbx.DBTX
	table      string
	selectCols string          // select expressions after id, comma-joined
	insertCols []string        // column names matching args, after empresa_id
	scan       func(rowScanner) (T, error)
	args       func(T) []any
}

func (e *Entity[T]) List(ctx context.Context, empresaID int64) ([]T, error) {
	query := fmt.Sprintf(`SELECT id, %s FROM %s WHERE empresa_id = $1 ORDER BY id`,
		e.selectCols, e.table)

	rows, err := e.db.QueryContext(ctx, query, empresaID)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		rec, err := e.scan(rows)
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

func (e *Entity[T]) Get(ctx context.Context, empresaID, id int64) (T, error) {
	query := fmt.Sprintf(`SELECT id, %s FROM %s WHERE empresa_id = $1 AND id = $2`,
		e.selectCols, e.table)

	rec, err := e.scan(e.db.QueryRowContext(ctx, query, empresaID, id))
	if err != nil {
		var zero T
		return zero, mapDBError(err)
	}
	return rec, nil
}

func (e *Entity[T]) Create(ctx context.Context, empresaID int64, rec T) (T, error) {
	placeholders := make([]string, len(e.insertCols)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (empresa_id, %s) VALUES (%s) RETURNING id`,
		e.table, strings.Join(e.insertCols, ", "), strings.Join(placeholders, ", "))

	args := append([]any{empresaID}, e.args(rec)...)

	var id int64
	if err := e.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		var zero T
		return zero, mapDBError(err)
	}
	return e.Get(ctx, empresaID, id)
}

func (e *Entity[T]) Update(ctx context.Context, empresaID, id int64, rec T) (T, error) {
	assignments := make([]string, len(e.insertCols))
	for i, col := range e.insertCols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE empresa_id = $%d AND id = $%d`,
		e.table, strings.Join(assignments, ", "), len(e.insertCols)+1, len(e.insertCols)+2)

	args := append(e.args(rec), empresaID, id)

	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		var zero T
		return zero, mapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var zero T
		return zero, common.ErrNotFound
	}
	return e.Get(ctx, empresaID, id)
}

func (e *Entity[T]) Delete(ctx context.Context, empresaID, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE empresa_id = $1 AND id = $2`, e.table)

	res, err := e.db.ExecContext(ctx, query, empresaID, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
