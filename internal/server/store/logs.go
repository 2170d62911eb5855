package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/dvillarroel/actifijo/internal/dbx"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Logs persists the audit records the console posts after successful
// mutations.
type Logs struct {
	db dbx.DBTX
}

func NewLogs(db dbx.DBTX) *Logs {
	return &Logs{db: db}
}

// Insert stores one audit record and returns it with id and timestamp set.
func (r *Logs) Insert(ctx context.Context, entry models.LogEntry) (models.LogEntry, error) {
	entry.ID = uuid.New().String()
	if len(entry.Payload) == 0 {
		entry.Payload = []byte(`{}`)
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO logs (id, empresa_id, username, accion, payload, ip)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at::text`,
		entry.ID, entry.EmpresaID, entry.Username, entry.Accion,
		[]byte(entry.Payload), entry.IP).Scan(&entry.CreatedAt)
	if err != nil {
		return models.LogEntry{}, mapDBError(err)
	}
	return entry, nil
}
