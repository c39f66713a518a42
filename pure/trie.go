package pure

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded, concurrency-safe table keyed by argument paths.
//
// Entries live in two generations. New entries go to the head generation;
// once it holds maxSize entries the generations swap and the new head starts
// empty, dropping whatever the old one held. At most 2*maxSize entries are
// reachable at any time. Stores are serialized; loads never block.
//
// All key paths stored in one Trie must have the same length.
type Trie[O any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	head    atomic.Uint32
	size    uint32 // entries in the head generation, guarded by mu
	maxSize uint32
	mu      sync.Mutex
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []any) (O, bool) {
	head := t.head.Load()
	for _, gen := range [2]uint32{head, 1 - head} {
		if v, ok := lookup(t.gens[gen].Load(), keys); ok {
			o, _ := v.(O)
			return o, true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []any, value O) {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, k := descend(t.gens[t.head.Load()].Load(), keys)
	if _, ok := m.Load(k); ok {
		m.Store(k, value)
		return
	}
	if t.size >= t.maxSize {
		next := 1 - t.head.Load()
		t.gens[next].Store(&sync.Map{})
		t.head.Store(next)
		t.size = 0
		m, k = descend(t.gens[next].Load(), keys)
	}
	m.Store(k, value)
	t.size++
}

// lookup walks keys without creating missing levels.
func lookup(m *sync.Map, keys []any) (any, bool) {
	last := lastKey(keys)
	for _, k := range keys[:last] {
		next, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = next.(*sync.Map)
	}
	return m.Load(keys[last])
}

// descend walks keys, creating missing levels, and returns the map holding
// the leaf along with the leaf key.
func descend(m *sync.Map, keys []any) (*sync.Map, any) {
	last := lastKey(keys)
	for _, k := range keys[:last] {
		next, _ := m.LoadOrStore(k, &sync.Map{})
		m = next.(*sync.Map)
	}
	return m, keys[last]
}

func lastKey(keys []any) int {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	return len(keys) - 1
}
