package generic

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is the insertion-ordered mapping kind. It is the default
// mapping the realizer falls back to when a source mapping's exact kind
// cannot be mirrored, so entry order survives a round trip.
type OrderedMap = orderedmap.OrderedMap[any, any]

// NewOrderedMap returns an empty insertion-ordered mapping.
func NewOrderedMap() *OrderedMap {
	return orderedmap.New[any, any]()
}
