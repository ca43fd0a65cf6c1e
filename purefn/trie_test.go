package purefn_test

import (
	"testing"

	"github.com/on-the-ground/oneliners_go/purefn"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := purefn.NewTrie[string]()

	trie.Store([]string{"a", "b", "c"}, "final")

	val, ok := trie.Load([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]string{"a", "b", "x"})
	assert.False(t, ok)

	// prefix only
	_, ok = trie.Load([]string{"a", "b"})
	assert.False(t, ok)

	trie.Store([]string{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.Equal(t, 1, trie.Len())
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	trie := purefn.NewTrie[int]()
	assert.Panics(t, func() { trie.Load([]string{}) })
	assert.Panics(t, func() { trie.Store(nil, 1) })
}
