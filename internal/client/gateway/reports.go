package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dvillarroel/actifijo/internal/client/api"
	"github.com/dvillarroel/actifijo/internal/client/models"
)

// Report export formats accepted by the backend.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// ReportFilter narrows the asset report by location and acquisition date
// range. Zero values mean "no filter".
type ReportFilter struct {
	UbicacionID int64
	FechaMin    string
	FechaMax    string
}

func (f ReportFilter) query() url.Values {
	q := url.Values{}
	if f.UbicacionID != 0 {
		q.Set("ubicacion_id", strconv.FormatInt(f.UbicacionID, 10))
	}
	if f.FechaMin != "" {
		q.Set("fecha_min", f.FechaMin)
	}
	if f.FechaMax != "" {
		q.Set("fecha_max", f.FechaMax)
	}
	return q
}

// Reports is the gateway for the asset report preview and export endpoints.
// Preview and export are independent calls; neither mutates anything.
type Reports struct {
	api *api.Client
}

func NewReports(apiClient *api.Client) *Reports {
	return &Reports{api: apiClient}
}

// Preview returns the filtered report rows.
func (r *Reports) Preview(ctx context.Context, filter ReportFilter) ([]models.ReportRow, error) {
	return api.List[models.ReportRow](ctx, r.api, "/reportes/activos-preview/", filter.query())
}

// Export fetches the report as a binary document in the requested format and
// returns the payload with its backend-provided content type.
func (r *Reports) Export(ctx context.Context, filter ReportFilter, format string) ([]byte, string, error) {
	if format != FormatPDF && format != FormatExcel {
		return nil, "", fmt.Errorf("unsupported export format %q", format)
	}
	q := filter.query()
	q.Set("format", format)
	return r.api.GetBinary(ctx, "/reportes/activos-export/", q)
}

// ExportFilename picks the client-side filename for a downloaded export.
func ExportFilename(format string) string {
	if format == FormatExcel {
		return "reporte_activos.xlsx"
	}
	return "reporte_activos.pdf"
}
