// Package pipeline implements the validated-mutation pipeline: parse
// untrusted input against a schema, perform a guarded store mutation,
// invalidate dependent read paths, and return a uniform envelope. The same
// pipeline drives clients, projects, tasks and comments.
package pipeline

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskdeck-app/taskdeck/backend/cache"
	"github.com/taskdeck-app/taskdeck/backend/errs"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

// Store is the conditional-write surface the pipeline needs from a
// repository. FindByID reports a missing record as (nil, nil) so the
// pipeline can give a clean not-found signal instead of leaking a store
// error.
type Store[M any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*M, error)
	CreateFields(ctx context.Context, fields validate.Fields) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Config wires one entity kind into the pipeline.
type Config[M any] struct {
	Entity string
	Create validate.Schema
	Update validate.Schema
	Store  Store[M]
	Cache  cache.Invalidator

	// ListPath is invalidated after every successful mutation. DetailPath,
	// when set, is additionally invalidated after updates and deletes.
	ListPath   string
	DetailPath func(id uuid.UUID) string

	// ParentPaths derives further paths to invalidate from the mutated
	// record itself, for entities that render inside a parent's cached
	// detail. Deletes see the record as it was before removal.
	ParentPaths func(ctx context.Context, record *M) []string

	Logger zerolog.Logger
}

// Pipeline executes guarded mutations for one entity kind.
type Pipeline[M any] struct {
	cfg Config[M]
}

// New builds a pipeline from its wiring.
func New[M any](cfg Config[M]) *Pipeline[M] {
	return &Pipeline[M]{cfg: cfg}
}

// Create validates input against the create schema and inserts a new record.
// Validation failure never reaches the store.
func (p *Pipeline[M]) Create(ctx context.Context, input map[string]any) Envelope {
	fields, fieldErrs := p.cfg.Create.Validate(input)
	if fieldErrs != nil {
		return Invalid(fieldErrs)
	}

	id := uuid.New()
	fields["id"] = id

	if err := p.cfg.Store.CreateFields(ctx, fields); err != nil {
		return p.storeFailure("create", err)
	}

	record, err := p.cfg.Store.FindByID(ctx, id)
	if err != nil {
		return p.storeFailure("reload created", err)
	}

	p.invalidate(p.cfg.ListPath)
	p.invalidateParents(ctx, record)
	return OK(record)
}

// Update validates a partial payload and applies exactly the validated field
// set over the existing record. The target is existence-checked first so a
// missing id is a clean not-found, not a store error leaking through.
func (p *Pipeline[M]) Update(ctx context.Context, id uuid.UUID, input map[string]any) Envelope {
	return p.UpdateWith(ctx, p.cfg.Update, id, input)
}

// UpdateWith runs an update against a narrower schema, e.g. a status toggle.
func (p *Pipeline[M]) UpdateWith(ctx context.Context, schema validate.Schema, id uuid.UUID, input map[string]any) Envelope {
	fields, fieldErrs := schema.Validate(input)
	if fieldErrs != nil {
		return Invalid(fieldErrs)
	}

	existing, err := p.cfg.Store.FindByID(ctx, id)
	if err != nil {
		return p.storeFailure("find", err)
	}
	if existing == nil {
		return NotFound(p.cfg.Entity)
	}

	if len(fields) > 0 {
		if err := p.cfg.Store.UpdateFields(ctx, id, fields); err != nil {
			return p.storeFailure("update", err)
		}
	}

	record, err := p.cfg.Store.FindByID(ctx, id)
	if err != nil {
		return p.storeFailure("reload updated", err)
	}

	p.invalidate(p.cfg.ListPath)
	p.invalidateDetail(id)
	p.invalidateParents(ctx, record)
	return OK(record)
}

// Delete existence-checks the target and removes it. Deleting a missing id
// returns not-found without calling the store's delete. The check-then-delete
// sequence is two round trips, not one atomic conditional write; two
// concurrent deletes of the same id can both pass the check, which is
// tolerated for this low-contention workload.
func (p *Pipeline[M]) Delete(ctx context.Context, id uuid.UUID) Envelope {
	existing, err := p.cfg.Store.FindByID(ctx, id)
	if err != nil {
		return p.storeFailure("find", err)
	}
	if existing == nil {
		return NotFound(p.cfg.Entity)
	}

	if err := p.cfg.Store.Delete(ctx, id); err != nil {
		return p.storeFailure("delete", err)
	}

	p.invalidate(p.cfg.ListPath)
	p.invalidateDetail(id)
	p.invalidateParents(ctx, existing)
	return OK(nil)
}

func (p *Pipeline[M]) invalidate(path string) {
	if p.cfg.Cache != nil && path != "" {
		p.cfg.Cache.Invalidate(path)
	}
}

func (p *Pipeline[M]) invalidateDetail(id uuid.UUID) {
	if p.cfg.Cache != nil && p.cfg.DetailPath != nil {
		p.cfg.Cache.Invalidate(p.cfg.DetailPath(id))
	}
}

func (p *Pipeline[M]) invalidateParents(ctx context.Context, record *M) {
	if p.cfg.Cache == nil || p.cfg.ParentPaths == nil || record == nil {
		return
	}
	for _, path := range p.cfg.ParentPaths(ctx, record) {
		if path != "" {
			p.cfg.Cache.Invalidate(path)
		}
	}
}

// storeFailure logs the underlying cause and converts it to a caller-safe
// envelope. The specific cause is not exposed past this boundary.
func (p *Pipeline[M]) storeFailure(operation string, err error) Envelope {
	apiErr := errs.NewDatabaseError(operation, p.cfg.Entity, err)

	p.cfg.Logger.Error().
		Err(err).
		Str("entity", p.cfg.Entity).
		Str("operation", operation).
		Msg("store failure")

	kind := KindStore
	switch apiErr.StatusCode {
	case http.StatusConflict, http.StatusBadRequest:
		kind = KindConflict
	case http.StatusNotFound:
		kind = KindNotFound
	}
	return Failure(kind, apiErr.Error())
}
