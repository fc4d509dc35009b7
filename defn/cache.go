package defn

import (
	"hash/fnv"
	"sort"
	"sync"

	"github.com/boolcomb/nicesets/conn"
)

// A Cache memoizes enumeration closures across definability checks that
// share a basis. It is keyed by (basis fingerprint, target arity, depth) and
// is safe for concurrent use. The cache is a pure optimization: a miss only
// costs recomputation, never a wrong answer, and indeterminate outcomes are
// never stored. Scope a Cache to a single search invocation and pass it in
// explicitly.
type Cache struct {
	mu sync.RWMutex
	m  map[cacheKey]*closure
}

type cacheKey struct {
	basis uint64
	arity int
}

// closure records, for one basis and target arity, the truth tables
// reachable by at least one basis application, keyed to the first depth that
// reaches them. complete is set when a fixpoint was reached, in which case
// the closure answers any depth; otherwise it only answers depths up to
// depth.
type closure struct {
	depth    int
	complete bool
	reached  map[uint32]int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{m: make(map[cacheKey]*closure)}
}

// lookup returns a verdict for target if the cached closure is deep enough
// to give one.
func (ca *Cache) lookup(fp uint64, target conn.Connective, depth int) (Outcome, int, bool) {
	if ca == nil {
		return Indet, 0, false
	}
	ca.mu.RLock()
	cl, ok := ca.m[cacheKey{basis: fp, arity: target.Arity()}]
	ca.mu.RUnlock()
	if !ok {
		return Indet, 0, false
	}
	if d, ok := cl.reached[target.Table()]; ok && d <= depth {
		return Definable, d, true
	}
	if cl.complete || cl.depth >= depth {
		return Undefinable, depth, true
	}
	return Indet, 0, false
}

// store records a computed closure, replacing any shallower entry.
func (ca *Cache) store(fp uint64, arity int, cl *closure) {
	if ca == nil {
		return
	}
	key := cacheKey{basis: fp, arity: arity}
	ca.mu.Lock()
	old, ok := ca.m[key]
	if !ok || cl.depth > old.depth || cl.complete {
		ca.m[key] = cl
	}
	ca.mu.Unlock()
}

// Fingerprint hashes a basis set, insensitive to order and duplicates.
func Fingerprint(basis []conn.Connective) uint64 {
	keys := make([]conn.Key, 0, len(basis))
	seen := make(map[conn.Key]struct{}, len(basis))
	for _, b := range basis {
		k := b.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Arity != keys[j].Arity {
			return keys[i].Arity < keys[j].Arity
		}
		return keys[i].Table < keys[j].Table
	})
	h := fnv.New64a()
	var buf [5]byte
	for _, k := range keys {
		buf[0] = k.Arity
		buf[1] = byte(k.Table)
		buf[2] = byte(k.Table >> 8)
		buf[3] = byte(k.Table >> 16)
		buf[4] = byte(k.Table >> 24)
		h.Write(buf[:])
	}
	return h.Sum64()
}
