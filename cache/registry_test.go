package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissesUntilPut(t *testing.T) {
	r := NewRegistry(0)

	_, ok := r.Get("/clients")
	assert.False(t, ok)

	r.Put("/clients", []byte(`{"clients":[]}`))
	payload, ok := r.Get("/clients")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"clients":[]}`), payload)
}

func TestInvalidateMarksStale(t *testing.T) {
	r := NewRegistry(0)
	r.Put("/projects", []byte("v1"))

	// A reader between the mutation and the invalidation may still see the
	// old payload; once Invalidate lands the next read must miss.
	r.Invalidate("/projects")
	_, ok := r.Get("/projects")
	assert.False(t, ok)

	r.Put("/projects", []byte("v2"))
	payload, ok := r.Get("/projects")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), payload)
}

func TestInvalidateUnknownPathIsNoop(t *testing.T) {
	r := NewRegistry(0)
	r.Invalidate("/never-cached")

	_, ok := r.Get("/never-cached")
	assert.False(t, ok)
}

func TestInvalidatePrefixClearsAllVariants(t *testing.T) {
	r := NewRegistry(0)
	r.Put("/projects?user=a", []byte("a"))
	r.Put("/projects?user=b", []byte("b"))
	r.Put("/clients", []byte("c"))

	PrefixInvalidator{Registry: r}.Invalidate("/projects")

	_, ok := r.Get("/projects?user=a")
	assert.False(t, ok)
	_, ok = r.Get("/projects?user=b")
	assert.False(t, ok)

	payload, ok := r.Get("/clients")
	require.True(t, ok)
	assert.Equal(t, []byte("c"), payload)
}

func TestTTLExpiry(t *testing.T) {
	r := NewRegistry(10 * time.Millisecond)
	r.Put("/tasks", []byte("v1"))

	_, ok := r.Get("/tasks")
	require.True(t, ok)

	time.Sleep(25 * time.Millisecond)
	_, ok = r.Get("/tasks")
	assert.False(t, ok)
}
