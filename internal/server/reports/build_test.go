package reports

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dvillarroel/actifijo/internal/server/models"
)

var sampleRows = []models.ReportRow{
	{ID: 1, Nombre: "Laptop", Ubicacion: "Oficina Central", FechaAdquisicion: "2024-03-01", ValorActual: "1200.00"},
	{ID: 2, Nombre: "Impresora", Ubicacion: "Almacén", FechaAdquisicion: "2023-11-15", ValorActual: "350.50"},
}

func TestBuildPDF(t *testing.T) {
	payload, err := Build(FormatPDF, sampleRows)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")), "payload must be a PDF document")
}

func TestBuildExcel(t *testing.T) {
	payload, err := Build(FormatExcel, sampleRows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Nombre", header)

	nombre, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Impresora", nombre)
}

func TestBuild_EmptyRows(t *testing.T) {
	for _, format := range []string{FormatPDF, FormatExcel} {
		payload, err := Build(format, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, payload)
	}
}

func TestBuild_UnknownFormat(t *testing.T) {
	_, err := Build("csv", sampleRows)
	assert.Error(t, err)
}

func TestContentTypeAndFilename(t *testing.T) {
	assert.Equal(t, ContentTypePDF, ContentType(FormatPDF))
	assert.Equal(t, ContentTypeXLSX, ContentType(FormatExcel))
	assert.Equal(t, "", ContentType("csv"))
	assert.Equal(t, "reporte_activos.pdf", Filename(FormatPDF))
	assert.Equal(t, "reporte_activos.xlsx", Filename(FormatExcel))
}
