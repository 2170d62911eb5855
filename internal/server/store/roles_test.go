package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

func TestRolesList_AttachesPermisos(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoles(db)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*nombre\s+FROM\s+roles\s+WHERE\s+empresa_id\s*=\s*\$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).
			AddRow(int64(1), "Administrador").
			AddRow(int64(2), "Contabilidad"))
	mock.ExpectQuery(`(?s)^SELECT\s+rp\.rol_id,\s*rp\.permiso_id\s+FROM\s+rol_permisos`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"rol_id", "permiso_id"}).
			AddRow(int64(1), int64(10)).
			AddRow(int64(1), int64(11)))

	roles, err := repo.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("unexpected roles: %+v", roles)
	}
	if len(roles[0].Permisos) != 2 || roles[0].Permisos[1] != 11 {
		t.Fatalf("unexpected permisos: %v", roles[0].Permisos)
	}
	if len(roles[1].Permisos) != 0 {
		t.Fatalf("role without assignments must have empty permisos, got %v", roles[1].Permisos)
	}
}

func TestRolesCreate_WritesAssignmentsInTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoles(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+roles`).
		WithArgs(int64(7), "Contabilidad").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+rol_permisos`).
		WithArgs(int64(3), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+rol_permisos`).
		WithArgs(int64(3), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*nombre\s+FROM\s+roles\s+WHERE\s+empresa_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2`).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).AddRow(int64(3), "Contabilidad"))
	mock.ExpectQuery(`(?s)^SELECT\s+permiso_id\s+FROM\s+rol_permisos`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"permiso_id"}).AddRow(int64(10)).AddRow(int64(11)))

	got, err := repo.Create(context.Background(), 7, models.Rol{Nombre: "Contabilidad", Permisos: []int64{10, 11}})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 || len(got.Permisos) != 2 {
		t.Fatalf("unexpected rol: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRolesUpdate_NotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoles(db)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^UPDATE\s+roles`).
		WithArgs("Contabilidad", int64(7), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 7, 99, models.Rol{Nombre: "Contabilidad"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLogsInsert_DefaultsEmptyPayload(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLogs(db)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+logs`).
		WithArgs(sqlmock.AnyArg(), int64(7), "dvillarroel", "CREATE: Departamento", []byte(`{}`), "10.0.0.1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow("2026-08-28 10:00:00+00"))

	got, err := repo.Insert(context.Background(), models.LogEntry{
		EmpresaID: 7,
		Username:  "dvillarroel",
		Accion:    "CREATE: Departamento",
		IP:        "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if got.ID == "" || got.CreatedAt == "" {
		t.Fatalf("id and timestamp must be set: %+v", got)
	}
}

func TestEmpleadosDelete_RemovesAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmpleados(db)

	q := `(?s)^DELETE\s+FROM\s+usuarios\s+WHERE\s+id\s*=\s*\(SELECT\s+usuario_id\s+FROM\s+empleados`
	mock.ExpectExec(q).WithArgs(int64(7), int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), 7, 4); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(q).WithArgs(int64(7), int64(4)).WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), 7, 4); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
