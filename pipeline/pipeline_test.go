package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type widget struct {
	ID   uuid.UUID
	Name string
	Note string
}

// fakeStore keeps widgets in a map and counts calls so tests can assert the
// store was or was not reached.
type fakeStore struct {
	records map[uuid.UUID]*widget

	creates int
	updates int
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[uuid.UUID]*widget)}
}

func (s *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*widget, error) {
	w, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

func (s *fakeStore) CreateFields(_ context.Context, fields validate.Fields) error {
	s.creates++
	id := fields["id"].(uuid.UUID)
	w := &widget{ID: id}
	if name, ok := fields["name"].(string); ok {
		w.Name = name
	}
	if note, ok := fields["note"].(string); ok {
		w.Note = note
	}
	s.records[id] = w
	return nil
}

func (s *fakeStore) UpdateFields(_ context.Context, id uuid.UUID, fields validate.Fields) error {
	s.updates++
	w, ok := s.records[id]
	if !ok {
		return fmt.Errorf("widget not found")
	}
	if name, ok := fields["name"].(string); ok {
		w.Name = name
	}
	if note, ok := fields["note"].(string); ok {
		w.Note = note
	}
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	s.deletes++
	delete(s.records, id)
	return nil
}

type recordingInvalidator struct {
	paths []string
}

func (r *recordingInvalidator) Invalidate(path string) {
	r.paths = append(r.paths, path)
}

func widgetSchema(create bool) validate.Schema {
	return validate.New("widget",
		validate.Field{Name: "name", Column: "name", Required: create, Rules: []validate.Rule{validate.NonEmpty()}},
		validate.Field{Name: "note", Column: "note"},
	)
}

func newWidgetPipeline(store *fakeStore, inv *recordingInvalidator) *Pipeline[widget] {
	return New(Config[widget]{
		Entity:     "widget",
		Create:     widgetSchema(true),
		Update:     widgetSchema(false),
		Store:      store,
		Cache:      inv,
		ListPath:   "/widgets",
		DetailPath: func(id uuid.UUID) string { return "/widget/" + id.String() },
		Logger:     zerolog.Nop(),
	})
}

func TestCreatePreservesFields(t *testing.T) {
	store := newFakeStore()
	inv := &recordingInvalidator{}
	pipe := newWidgetPipeline(store, inv)

	env := pipe.Create(context.Background(), map[string]any{
		"name": "flux capacitor",
		"note": "handle with care",
	})

	require.True(t, env.Success)
	created, ok := env.Data.(*widget)
	require.True(t, ok)
	assert.Equal(t, "flux capacitor", created.Name)
	assert.Equal(t, "handle with care", created.Note)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, []string{"/widgets"}, inv.paths)
}

func TestCreateValidationFailureNeverReachesStore(t *testing.T) {
	store := newFakeStore()
	inv := &recordingInvalidator{}
	pipe := newWidgetPipeline(store, inv)

	env := pipe.Create(context.Background(), map[string]any{})

	assert.False(t, env.Success)
	assert.Equal(t, KindValidation, env.Kind())
	require.Contains(t, env.Errors, "name")
	assert.Zero(t, store.creates)
	assert.Empty(t, inv.paths)
}

func TestUpdateChangesOnlyValidatedFields(t *testing.T) {
	store := newFakeStore()
	pipe := newWidgetPipeline(store, &recordingInvalidator{})

	created := pipe.Create(context.Background(), map[string]any{
		"name": "original",
		"note": "keep me",
	})
	id := created.Data.(*widget).ID

	env := pipe.Update(context.Background(), id, map[string]any{"name": "renamed"})

	require.True(t, env.Success)
	updated := env.Data.(*widget)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "keep me", updated.Note)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	store := newFakeStore()
	pipe := newWidgetPipeline(store, &recordingInvalidator{})

	env := pipe.Update(context.Background(), uuid.New(), map[string]any{"name": "ghost"})

	assert.False(t, env.Success)
	assert.Equal(t, KindNotFound, env.Kind())
	assert.Zero(t, store.updates)
}

func TestUpdateEmptyPayloadSkipsStoreWrite(t *testing.T) {
	store := newFakeStore()
	pipe := newWidgetPipeline(store, &recordingInvalidator{})

	created := pipe.Create(context.Background(), map[string]any{"name": "stable"})
	id := created.Data.(*widget).ID

	env := pipe.Update(context.Background(), id, map[string]any{})

	require.True(t, env.Success)
	assert.Zero(t, store.updates)
	assert.Equal(t, "stable", env.Data.(*widget).Name)
}

func TestDeleteMissingIDNeverCallsStoreDelete(t *testing.T) {
	store := newFakeStore()
	inv := &recordingInvalidator{}
	pipe := newWidgetPipeline(store, inv)

	env := pipe.Delete(context.Background(), uuid.New())

	assert.False(t, env.Success)
	assert.Equal(t, KindNotFound, env.Kind())
	assert.Zero(t, store.deletes)
	assert.Empty(t, inv.paths)
}

func TestDeleteTwiceSucceedsThenNotFound(t *testing.T) {
	store := newFakeStore()
	pipe := newWidgetPipeline(store, &recordingInvalidator{})

	created := pipe.Create(context.Background(), map[string]any{"name": "ephemeral"})
	id := created.Data.(*widget).ID

	first := pipe.Delete(context.Background(), id)
	second := pipe.Delete(context.Background(), id)

	assert.True(t, first.Success)
	assert.False(t, second.Success)
	assert.Equal(t, KindNotFound, second.Kind())
	assert.Equal(t, 1, store.deletes)
}

func TestMutationsInvalidateListAndDetailPaths(t *testing.T) {
	store := newFakeStore()
	inv := &recordingInvalidator{}
	pipe := newWidgetPipeline(store, inv)

	created := pipe.Create(context.Background(), map[string]any{"name": "cached"})
	id := created.Data.(*widget).ID
	detail := "/widget/" + id.String()

	pipe.Update(context.Background(), id, map[string]any{"name": "cached again"})
	pipe.Delete(context.Background(), id)

	assert.Equal(t, []string{"/widgets", "/widgets", detail, "/widgets", detail}, inv.paths)
}

func TestMutationsInvalidateParentPaths(t *testing.T) {
	store := newFakeStore()
	inv := &recordingInvalidator{}
	pipe := New(Config[widget]{
		Entity:   "widget",
		Create:   widgetSchema(true),
		Update:   widgetSchema(false),
		Store:    store,
		Cache:    inv,
		ListPath: "/widgets",
		ParentPaths: func(_ context.Context, w *widget) []string {
			return []string{"/shelf/" + w.Name}
		},
		Logger: zerolog.Nop(),
	})

	created := pipe.Create(context.Background(), map[string]any{"name": "alpha"})
	require.True(t, created.Success)
	id := created.Data.(*widget).ID

	updated := pipe.Update(context.Background(), id, map[string]any{"name": "beta"})
	require.True(t, updated.Success)

	// the delete sees the record as it was before removal
	deleted := pipe.Delete(context.Background(), id)
	require.True(t, deleted.Success)

	assert.Equal(t, []string{
		"/widgets", "/shelf/alpha",
		"/widgets", "/shelf/beta",
		"/widgets", "/shelf/beta",
	}, inv.paths)
}

func TestEnvelopeStatusCodes(t *testing.T) {
	assert.Equal(t, 201, OK(nil).StatusCode(true))
	assert.Equal(t, 200, OK(nil).StatusCode(false))
	assert.Equal(t, 400, Invalid(validate.FieldErrors{"name": {"is required"}}).StatusCode(false))
	assert.Equal(t, 404, NotFound("widget").StatusCode(false))
	assert.Equal(t, 409, Failure(KindConflict, "duplicate").StatusCode(false))
	assert.Equal(t, 500, Failure(KindStore, "boom").StatusCode(false))
}
