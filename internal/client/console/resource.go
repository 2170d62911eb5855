package console

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dvillarroel/actifijo/internal/client/api"
	"github.com/dvillarroel/actifijo/internal/client/gateway"
	"github.com/dvillarroel/actifijo/internal/common"
)

// pager is the uniform surface of an entity page; the REPL dispatches to it
// without knowing the record type.
type pager interface {
	list(ctx context.Context) error
	create(ctx context.Context) error
	edit(ctx context.Context, id int64) error
	remove(ctx context.Context, id int64) error
}

// pageSpec describes one entity page: how to render its rows, how to seed a
// draft from an existing record, which option lists its form depends on, and
// the form itself.
type pageSpec[T gateway.Record, D any] struct {
	name     string
	resource *gateway.Resource[T, D]

	header []string
	row    func(T) []string

	// seed turns the selected record into the draft an edit form starts from.
	seed func(T) D

	// options lists the dependent entities the form needs, fetched as one
	// all-or-nothing batch on every open.
	options map[string]optionLoader

	// form prompts for every field, starting from draft; editing marks a
	// form opened on an existing record (credential-style fields skip then).
	form func(s *formSession, opts *formOptions, draft D, editing bool) (D, error)
}

// resourcePage runs the list/form pattern for one entity.
type resourcePage[T gateway.Record, D any] struct {
	app  *App
	spec pageSpec[T, D]
}

func newResourcePage[T gateway.Record, D any](app *App, spec pageSpec[T, D]) *resourcePage[T, D] {
	return &resourcePage[T, D]{app: app, spec: spec}
}

// list fetches the full collection and renders it as a table.
func (p *resourcePage[T, D]) list(ctx context.Context) error {
	fmt.Fprintf(p.app.out, "Loading %s...\n", p.spec.name)

	records, err := p.spec.resource.List(ctx)
	if err != nil {
		p.app.notify.Error(failureMessage(err))
		return err
	}

	w := tabwriter.NewWriter(p.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, joinRow(p.spec.header))
	for _, r := range records {
		fmt.Fprintln(w, joinRow(p.spec.row(r)))
	}
	w.Flush()
	fmt.Fprintf(p.app.out, "%d record(s)\n", len(records))
	return nil
}

func joinRow(cells []string) string {
	row := ""
	for i, c := range cells {
		if i > 0 {
			row += "\t"
		}
		row += c
	}
	return row
}

// create opens a blank form and submits it. On failure the entered values
// are kept and the form reopens; cancelling discards them.
func (p *resourcePage[T, D]) create(ctx context.Context) error {
	var draft D
	return p.submitLoop(ctx, draft, false, func(ctx context.Context, d D) error {
		_, err := p.spec.resource.Create(ctx, d)
		return err
	}, p.spec.name+" created")
}

// edit seeds the form from the selected record and submits the changes.
func (p *resourcePage[T, D]) edit(ctx context.Context, id int64) error {
	records, err := p.spec.resource.List(ctx)
	if err != nil {
		p.app.notify.Error(failureMessage(err))
		return err
	}

	var found *T
	for i := range records {
		if records[i].RecordID() == id {
			found = &records[i]
			break
		}
	}
	if found == nil {
		p.app.notify.Error(fmt.Sprintf("%s %d not found", p.spec.name, id))
		return common.ErrNotFound
	}

	draft := p.spec.seed(*found)
	return p.submitLoop(ctx, draft, true, func(ctx context.Context, d D) error {
		_, err := p.spec.resource.Update(ctx, id, d)
		return err
	}, p.spec.name+" updated")
}

// submitLoop runs the form/submit cycle until success or cancel. The option
// lists are fetched once per form open, before the first prompt; a failed
// batch aborts the form with an error notification.
func (p *resourcePage[T, D]) submitLoop(ctx context.Context, draft D, editing bool, submit func(context.Context, D) error, successMsg string) error {
	opts, err := loadOptionLists(ctx, p.spec.options)
	if err != nil {
		p.app.notify.Error(failureMessage(err))
		return err
	}

	session := &formSession{reader: p.app.reader, out: p.app.out}

	for {
		draft, err = p.spec.form(session, opts, draft, editing)
		if err != nil {
			return err
		}

		if err := submit(ctx, draft); err != nil {
			p.app.notify.Error(failureMessage(err))
			if confirm(p.app.reader, "Correct the values and retry?", p.app.out) {
				continue
			}
			return nil
		}

		p.app.notify.Success(successMsg)
		return p.list(ctx)
	}
}

// remove deletes a record after an explicit confirmation.
func (p *resourcePage[T, D]) remove(ctx context.Context, id int64) error {
	if !confirm(p.app.reader, fmt.Sprintf("Delete %s %d?", p.spec.name, id), p.app.out) {
		return nil
	}

	if err := p.spec.resource.Delete(ctx, id); err != nil {
		p.app.notify.Error(failureMessage(err))
		return err
	}

	p.app.notify.Success(p.spec.name + " deleted")
	return p.list(ctx)
}

// failureMessage maps an operation error to the message the user sees: the
// first backend field error verbatim for validation failures, a short generic
// line otherwise.
func failureMessage(err error) string {
	var verr *api.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.First()
	case errors.Is(err, common.ErrUnavailable):
		return "Server unavailable"
	case errors.Is(err, common.ErrUnauthorized):
		return "Not authorized"
	case errors.Is(err, common.ErrNotFound):
		return "Record not found"
	default:
		return "Operation failed"
	}
}
