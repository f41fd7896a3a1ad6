package registry

// Table is an immutable ordered lookup table. Keys iterate in declaration
// order so generated output (lists, indexes) is deterministic.
type Table[T any] struct {
	keys  []string
	byKey map[string]T
}

// newTable builds a Table from a literal slice. Duplicate keys panic at
// process start since the tables are compiled-in constants.
func newTable[T any](items []T, keyOf func(T) string) Table[T] {
	t := Table[T]{
		keys:  make([]string, 0, len(items)),
		byKey: make(map[string]T, len(items)),
	}
	for _, item := range items {
		k := keyOf(item)
		if _, exists := t.byKey[k]; exists {
			panic("registry: duplicate key " + k)
		}
		t.keys = append(t.keys, k)
		t.byKey[k] = item
	}
	return t
}

// Lookup returns the entry for key and whether it exists.
func (t Table[T]) Lookup(key string) (T, bool) {
	v, ok := t.byKey[key]
	return v, ok
}

// Has reports whether key is registered.
func (t Table[T]) Has(key string) bool {
	_, ok := t.byKey[key]
	return ok
}

// Keys returns all registered keys in declaration order. The returned slice
// is a copy; callers may modify it freely.
func (t Table[T]) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// All returns every entry in declaration order.
func (t Table[T]) All() []T {
	out := make([]T, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.byKey[k])
	}
	return out
}

// Len returns the number of registered entries.
func (t Table[T]) Len() int {
	return len(t.keys)
}
