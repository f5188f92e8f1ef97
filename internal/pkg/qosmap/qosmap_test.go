//go:build unit

package qosmap

import (
	"fmt"
	"testing"

	"golang-vlandevd/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("ValidList", func(t *testing.T) {
		mappings, err := Parse([]any{"0:1", "1:2", "7:0"}, DefaultCapacity)
		require.NoError(t, err)
		assert.Equal(t, []types.QosMapping{
			{From: 0, To: 1},
			{From: 1, To: 2},
			{From: 7, To: 0},
		}, mappings)
	})

	t.Run("EmptyList", func(t *testing.T) {
		mappings, err := Parse(nil, DefaultCapacity)
		require.NoError(t, err)
		assert.Empty(t, mappings)
	})

	t.Run("FullCapacity", func(t *testing.T) {
		items := make([]any, DefaultCapacity)
		for i := range items {
			items[i] = fmt.Sprintf("%d:%d", i, i)
		}

		mappings, err := Parse(items, DefaultCapacity)
		require.NoError(t, err)
		assert.Len(t, mappings, DefaultCapacity)
	})

	t.Run("TooManyEntries", func(t *testing.T) {
		items := make([]any, DefaultCapacity+1)
		for i := range items {
			items[i] = fmt.Sprintf("%d:%d", i, i)
		}

		mappings, err := Parse(items, DefaultCapacity)
		assert.ErrorIs(t, err, ErrTooMany)
		assert.Nil(t, mappings)
	})

	t.Run("NonStringEntry", func(t *testing.T) {
		mappings, err := Parse([]any{"0:1", 42, "2:3"}, DefaultCapacity)
		assert.ErrorIs(t, err, ErrNotString)
		assert.Nil(t, mappings)
	})

	t.Run("MalformedEntryDiscardsAll", func(t *testing.T) {
		// A single bad entry rejects the whole list no matter where
		// it sits.
		for position := 0; position < 4; position++ {
			items := []any{"0:1", "1:2", "2:3", "3:4"}
			items[position] = "nonsense"

			mappings, err := Parse(items, DefaultCapacity)
			assert.ErrorIs(t, err, ErrMalformed, "bad entry at position %d", position)
			assert.Nil(t, mappings, "bad entry at position %d", position)
		}
	})

	t.Run("MalformedShapes", func(t *testing.T) {
		for _, item := range []string{"", ":", "1:", ":2", "1", "1:2:3", "-1:2", "1:-2", "a:b", "1:2x", " 1:2"} {
			mappings, err := Parse([]any{item}, DefaultCapacity)
			assert.Error(t, err, "item %q", item)
			assert.Nil(t, mappings, "item %q", item)
		}
	})
}
