// Package reports renders the asset report as downloadable documents and
// optionally archives each export to object storage.
package reports

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Export formats accepted on the wire.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var columns = []string{"ID", "Nombre", "Ubicación", "Fecha adquisición", "Valor actual"}

// ContentType returns the MIME type for a format, "" when unknown.
func ContentType(format string) string {
	switch format {
	case FormatPDF:
		return ContentTypePDF
	case FormatExcel:
		return ContentTypeXLSX
	default:
		return ""
	}
}

// Filename returns the attachment filename for a format.
func Filename(format string) string {
	if format == FormatExcel {
		return "reporte_activos.xlsx"
	}
	return "reporte_activos.pdf"
}

// Build renders rows in the requested format.
func Build(format string, rows []models.ReportRow) ([]byte, error) {
	switch format {
	case FormatPDF:
		return buildPDF(rows)
	case FormatExcel:
		return buildExcel(rows)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func buildExcel(rows []models.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{row.ID, row.Nombre, row.Ubicacion, row.FechaAdquisicion, row.ValorActual}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildPDF(rows []models.ReportRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Reporte de activos fijos", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{15, 55, 45, 40, 35}

	pdf.SetFont("Helvetica", "B", 10)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		values := []string{
			fmt.Sprintf("%d", row.ID),
			row.Nombre,
			row.Ubicacion,
			row.FechaAdquisicion,
			row.ValorActual,
		}
		for i, value := range values {
			pdf.CellFormat(widths[i], 8, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
