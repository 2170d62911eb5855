// Package gateway exposes one typed resource per backend entity, each with
// the same four operations: list, create, update, delete. Every call is a
// single round trip — no caching, no retries — and mutations leave an audit
// entry behind them once the primary write has succeeded.
package gateway

import (
	"context"
	"fmt"

	"github.com/dvillarroel/actifijo/internal/client/api"
)

// Record is satisfied by every entity model; the gateway needs the assigned
// id for audit payloads.
type Record interface {
	RecordID() int64
}

// Auditor receives fire-and-forget action descriptors after mutations.
type Auditor interface {
	Record(accion string, payload map[string]any)
}

// Resource is the generic gateway for one entity collection.
type Resource[T Record, D any] struct {
	api   *api.Client
	audit Auditor

	path string // collection path segment, e.g. "departamentos"
	name string // human entity name used in audit actions

	// partial switches update from full replace (PUT) to partial (PATCH).
	partial bool

	// prepareUpdate, when set, sanitizes the draft before an edit is sent
	// (employees drop their credential fields here).
	prepareUpdate func(D) D

	// auditFields picks the small identifying subset of a record that is
	// safe to put in an audit payload. Never the full record.
	auditFields func(T) map[string]any
}

func NewResource[T Record, D any](apiClient *api.Client, auditor Auditor, path, name string) *Resource[T, D] {
	return &Resource[T, D]{api: apiClient, audit: auditor, path: path, name: name}
}

// WithPartialUpdate makes edits go out as PATCH with the given sanitizer.
func (r *Resource[T, D]) WithPartialUpdate(prepare func(D) D) *Resource[T, D] {
	r.partial = true
	r.prepareUpdate = prepare
	return r
}

// WithAuditFields sets the identifying-subset selector for audit payloads.
func (r *Resource[T, D]) WithAuditFields(fields func(T) map[string]any) *Resource[T, D] {
	r.auditFields = fields
	return r
}

func (r *Resource[T, D]) collection() string {
	return "/" + r.path + "/"
}

func (r *Resource[T, D]) item(id int64) string {
	return fmt.Sprintf("/%s/%d/", r.path, id)
}

// List returns the full collection; an empty backend result is an empty
// slice, never an error.
func (r *Resource[T, D]) List(ctx context.Context) ([]T, error) {
	return api.List[T](ctx, r.api, r.collection(), nil)
}

// Create posts the draft and returns the stored record with its assigned
// id. The audit entry is recorded after — and only after — success.
func (r *Resource[T, D]) Create(ctx context.Context, draft D) (T, error) {
	var created T
	if err := r.api.Post(ctx, r.collection(), draft, &created); err != nil {
		return created, err
	}

	payload := map[string]any{"id_creado": created.RecordID()}
	if r.auditFields != nil {
		for k, v := range r.auditFields(created) {
			payload[k] = v
		}
	}
	r.audit.Record("CREATE: "+r.name, payload)

	return created, nil
}

// Update replaces (or, for partial resources, patches) the record and
// returns the stored result.
func (r *Resource[T, D]) Update(ctx context.Context, id int64, draft D) (T, error) {
	var updated T

	if r.partial {
		if r.prepareUpdate != nil {
			draft = r.prepareUpdate(draft)
		}
		if err := r.api.Patch(ctx, r.item(id), draft, &updated); err != nil {
			return updated, err
		}
	} else {
		if err := r.api.Put(ctx, r.item(id), draft, &updated); err != nil {
			return updated, err
		}
	}

	payload := map[string]any{"id": id}
	if r.auditFields != nil {
		for k, v := range r.auditFields(updated) {
			payload[k] = v
		}
	}
	r.audit.Record("UPDATE: "+r.name, payload)

	return updated, nil
}

// Delete removes the record. On failure the caller must assume the record
// still exists.
func (r *Resource[T, D]) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, r.item(id)); err != nil {
		return err
	}
	r.audit.Record("DELETE: "+r.name, map[string]any{"id": id})
	return nil
}
