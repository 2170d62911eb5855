package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dvillarroel/actifijo/internal/server/reports"
	"github.com/dvillarroel/actifijo/internal/server/store"
)

func reportFilterFromQuery(r *http.Request) store.ReportFilter {
	q := r.URL.Query()
	filter := store.ReportFilter{
		FechaMin: q.Get("fecha_min"),
		FechaMax: q.Get("fecha_max"),
	}
	if raw := q.Get("ubicacion_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.UbicacionID = id
		}
	}
	return filter
}

func (s *Server) handleReportPreview(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	rows, err := s.store.Reports.AssetRows(r.Context(), claims.EmpresaID, reportFilterFromQuery(r))
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeList(w, rows)
}

func (s *Server) handleReportExport(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	format := r.URL.Query().Get("format")
	contentType := reports.ContentType(format)
	if contentType == "" {
		writeFieldErrors(w, fieldErrors{"format": {"Formato de exportación inválido."}})
		return
	}

	rows, err := s.store.Reports.AssetRows(r.Context(), claims.EmpresaID, reportFilterFromQuery(r))
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}

	payload, err := reports.Build(format, rows)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}

	// The request context dies with the response; archiving gets its own.
	go s.archiver.Archive(context.Background(), format, payload, contentType)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reports.Filename(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
