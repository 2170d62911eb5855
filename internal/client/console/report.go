package console

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dvillarroel/actifijo/internal/client/gateway"
	"github.com/dvillarroel/actifijo/internal/client/models"
	"github.com/dvillarroel/actifijo/internal/filex"
)

// Report prompts for the filter, previews the asset report and remembers the
// filter so a later export reuses it. A failed preview leaves no preview to
// export from.
func (a *App) Report(ctx context.Context) error {
	opts, err := loadOptionLists(ctx, map[string]optionLoader{
		"ubicaciones": optionsFrom(a.gateways.Ubicaciones, func(u models.Ubicacion) string { return u.Nombre }),
	})
	if err != nil {
		a.previewed = false
		a.notify.Error(failureMessage(err))
		return err
	}

	s := &formSession{reader: a.reader, out: a.out}
	filter := a.reportFilter

	var ubicacion *int64
	if filter.UbicacionID != 0 {
		v := filter.UbicacionID
		ubicacion = &v
	}
	if ubicacion, err = s.SelectOptional("Ubicación", opts.get("ubicaciones"), ubicacion); err != nil {
		return err
	}
	filter.UbicacionID = 0
	if ubicacion != nil {
		filter.UbicacionID = *ubicacion
	}
	if filter.FechaMin, err = promptOptionalDate(s, "Fecha mínima", filter.FechaMin); err != nil {
		return err
	}
	if filter.FechaMax, err = promptOptionalDate(s, "Fecha máxima", filter.FechaMax); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Building preview...")
	rows, err := a.gateways.Reports.Preview(ctx, filter)
	if err != nil {
		a.previewed = false
		a.notify.Error(failureMessage(err))
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombre\tUbicación\tAdquisición\tValor")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Nombre, r.Ubicacion, r.FechaAdquisicion, r.ValorActual)
	}
	w.Flush()
	fmt.Fprintf(a.out, "%d row(s)\n", len(rows))

	a.reportFilter = filter
	a.previewed = true
	return nil
}

// promptOptionalDate reads a YYYY-MM-DD date or nothing.
func promptOptionalDate(s *formSession, label, current string) (string, error) {
	for {
		value, err := s.prompt(label+" (empty for none, - to clear)", current)
		if err != nil {
			return "", err
		}
		if value == "" {
			return current, nil
		}
		if value == "-" {
			return "", nil
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			fmt.Fprintln(s.out, "Enter a date as YYYY-MM-DD.")
			continue
		}
		return value, nil
	}
}

// Export saves the previewed report as a local PDF or Excel file. It reuses
// the last preview's filter and leaves the preview untouched.
func (a *App) Export(ctx context.Context, format string) error {
	if !a.previewed {
		a.notify.Error("Run 'report' before exporting")
		return nil
	}

	data, _, err := a.gateways.Reports.Export(ctx, a.reportFilter, format)
	if err != nil {
		a.notify.Error(failureMessage(err))
		return err
	}

	dir, err := filex.EnsureSubDir("download")
	if err != nil {
		a.notify.Error("Could not prepare the download directory")
		return err
	}
	path, err := filex.SaveFile(dir, gateway.ExportFilename(format), data)
	if err != nil {
		a.notify.Error("Could not save the export")
		return err
	}

	a.notify.Success("Report saved to " + path)
	return nil
}
