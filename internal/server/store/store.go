// Package store implements the tenant-scoped PostgreSQL repositories behind
// the REST API. Every query filters by empresa_id; rows from another tenant
// behave exactly like missing rows.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/server/migrations"
	"github.com/dvillarroel/actifijo/internal/server/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store aggregates one repository per entity over a shared handle.
type Store struct {
	db *sql.DB

	Departamentos *Entity[models.Departamento]
	Cargos        *Entity[models.Cargo]
	Permisos      *Entity[models.Permiso]
	Categorias    *Entity[models.CategoriaActivo]
	Estados       *Entity[models.Estado]
	Ubicaciones   *Entity[models.Ubicacion]
	Proveedores   *Entity[models.Proveedor]
	Activos       *Entity[models.ActivoFijo]

	Roles        *Roles
	Empleados    *Empleados
	Presupuestos *Presupuestos
	Usuarios     *Usuarios
	Logs         *Logs
	Reports      *Reports
}

// New wires the repositories over db.
func New(db *sql.DB) *Store {
	return &Store{
		db:            db,
		Departamentos: newDepartamentos(db),
		Cargos:        newCargos(db),
		Permisos:      newPermisos(db),
		Categorias:    newCategorias(db),
		Estados:       newEstados(db),
		Ubicaciones:   newUbicaciones(db),
		Proveedores:   newProveedores(db),
		Activos:       newActivos(db),
		Roles:         NewRoles(db),
		Empleados:     NewEmpleados(db),
		Presupuestos:  NewPresupuestos(db),
		Usuarios:      NewUsuarios(db),
		Logs:          NewLogs(db),
		Reports:       NewReports(db),
	}
}

// Open connects to PostgreSQL at dsn, applies pending migrations and wires
// the repositories.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return New(db), nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

const pgUniqueViolation = "23505"

// mapDBError translates driver errors into the shared sentinels.
func mapDBError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return common.ErrAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}
