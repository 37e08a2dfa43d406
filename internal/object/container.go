package object

import "strings"

// Array is a mutable, ordered sequence of Value.
type Array struct {
	Elements []Value
}

func (a *Array) Type() Type { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HashPair keeps both the original key Value and its bound value, since the
// HashKey a Value hashes to discards everything but the type tag and scalar.
type HashPair struct {
	Key   Value
	Value Value
}

// Hash maps HashKey to a (original-key, value) pair. Pairs is insertion
// ordered via Order, since iteration must reflect insertion order.
type Hash struct {
	Pairs map[HashKey]HashPair
	Order []HashKey
}

func NewHash() *Hash {
	return &Hash{Pairs: make(map[HashKey]HashPair)}
}

func (h *Hash) Type() Type { return HASH_OBJ }
func (h *Hash) Inspect() string {
	parts := make([]string, 0, len(h.Order))
	for _, k := range h.Order {
		pair := h.Pairs[k]
		parts = append(parts, pair.Key.Inspect()+": "+pair.Value.Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Set inserts or overwrites the pair keyed by key.HashKey(), preserving the
// original insertion position for existing keys.
func (h *Hash) Set(key Hashable, value Value) {
	hk := key.HashKey()
	if _, exists := h.Pairs[hk]; !exists {
		h.Order = append(h.Order, hk)
	}
	h.Pairs[hk] = HashPair{Key: key.(Value), Value: value}
}

// Get returns the value stored for key, if any.
func (h *Hash) Get(key Hashable) (Value, bool) {
	pair, ok := h.Pairs[key.HashKey()]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}
