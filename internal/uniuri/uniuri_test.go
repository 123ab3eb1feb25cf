package uniuri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		id := New()
		assert.Len(t, id, IDLen)

		for _, c := range id {
			assert.True(t, strings.ContainsRune(string(URLChars), c), "unexpected char %q", c)
		}

		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewLenChars(t *testing.T) {
	assert.Empty(t, NewLen(0))
	assert.Len(t, NewLen(64), 64)

	// an alphabet that does not divide 256 still yields only its own chars
	got := NewLenChars(200, []byte("abc"))
	assert.Len(t, got, 200)
	assert.Empty(t, strings.Trim(got, "abc"))

	assert.Panics(t, func() { NewLenChars(4, []byte("a")) })
}
