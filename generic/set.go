package generic

// Set is the unordered-collection kind of the generic value model. Go has
// no builtin set, so the kind is explicit. Backing is a slice: elements
// keep arrival order for deterministic traversal, but the order carries no
// meaning and duplicates are not rejected (membership is the producer's
// concern, exactly as with a wire-decoded set).
type Set struct {
	elems []any
}

// NewSet returns an empty set with capacity for n elements.
func NewSet(n int) *Set {
	return &Set{elems: make([]any, 0, n)}
}

// SetOf builds a set from the given elements.
func SetOf(elems ...any) *Set {
	s := NewSet(len(elems))
	s.elems = append(s.elems, elems...)
	return s
}

func (s *Set) Add(v any) { s.elems = append(s.elems, v) }

func (s *Set) Len() int { return len(s.elems) }

// Values exposes the backing slice. Callers must not mutate it.
func (s *Set) Values() []any { return s.elems }
