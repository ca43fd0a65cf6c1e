package purefn

// Trie maps a path of string keys to a value.
// It is not safe for concurrent use.
type Trie[O any] struct {
	root *trieNode[O]
	size int
}

type trieNode[O any] struct {
	children map[string]*trieNode[O]
	value    O
	set      bool
}

func NewTrie[O any]() *Trie[O] {
	return &Trie[O]{root: &trieNode[O]{}}
}

func (t *Trie[O]) Load(keys []string) (O, bool) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	node := t.root
	for _, k := range keys {
		next, ok := node.children[k]
		if !ok {
			var zero O
			return zero, false
		}
		node = next
	}
	return node.value, node.set
}

func (t *Trie[O]) Store(keys []string, value O) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	node := t.root
	for _, k := range keys {
		if node.children == nil {
			node.children = make(map[string]*trieNode[O])
		}
		next, ok := node.children[k]
		if !ok {
			next = &trieNode[O]{}
			node.children[k] = next
		}
		node = next
	}
	if !node.set {
		t.size++
	}
	node.value, node.set = value, true
}

// Len is the number of stored paths.
func (t *Trie[O]) Len() int {
	return t.size
}
