package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string   `json:"title"`
	Price float64  `json:"price"`
	Tags  []string `json:"tags"`
}

func TestSetGetRoundtrip(t *testing.T) {
	c := New()

	in := sample{Title: "running shoes", Price: 49.99, Tags: []string{"shoes", "sport"}}
	require.NoError(t, SetJSON(c, ProductKey("abc"), in))

	out, ok := GetJSON[sample](c, ProductKey("abc"))
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestGetMiss(t *testing.T) {
	c := New()

	_, ok := c.Get("missing")
	assert.False(t, ok)
	assert.False(t, c.Has("missing"))

	_, ok = GetJSON[sample](c, "missing")
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	c := New()

	c.Set("k", []byte("one"))
	c.Set("k", []byte("two"))

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("two"), v)
	assert.Equal(t, 1, c.Len())
}

func TestDeleteManyIdempotent(t *testing.T) {
	c := New()
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("c", []byte("3"))

	c.DeleteMany("a", "b", "never-existed")
	assert.False(t, c.Has("a"))
	assert.False(t, c.Has("b"))
	assert.True(t, c.Has("c"))

	// Deleting again must be a no-op.
	c.DeleteMany("a", "b", "never-existed")
	assert.True(t, c.Has("c"))
	assert.Equal(t, 1, c.Len())
}
