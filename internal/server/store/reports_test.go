package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAssetRows_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReports(db)

	q := `(?s)^SELECT\s+a\.id,.*FROM\s+activos_fijos\s+a\s+JOIN\s+ubicaciones\s+u.*WHERE\s+a\.empresa_id\s*=\s*\$1\s+ORDER\s+BY\s+a\.id$`
	mock.ExpectQuery(q).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "ubicacion", "fecha", "valor"}).
			AddRow(int64(1), "Laptop", "Oficina Central", "2024-03-01", "1200.00"))

	rows, err := repo.AssetRows(context.Background(), 7, ReportFilter{})
	if err != nil {
		t.Fatalf("AssetRows error: %v", err)
	}
	if len(rows) != 1 || rows[0].Ubicacion != "Oficina Central" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestAssetRows_AllFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReports(db)

	q := `(?s)ubicacion_id\s*=\s*\$2\s+AND\s+a\.fecha_adquisicion\s*>=\s*\$3\s+AND\s+a\.fecha_adquisicion\s*<=\s*\$4`
	mock.ExpectQuery(q).
		WithArgs(int64(7), int64(2), "2024-01-01", "2024-12-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "ubicacion", "fecha", "valor"}))

	rows, err := repo.AssetRows(context.Background(), 7, ReportFilter{
		UbicacionID: 2,
		FechaMin:    "2024-01-01",
		FechaMax:    "2024-12-31",
	})
	if err != nil {
		t.Fatalf("AssetRows error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
