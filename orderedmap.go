package img2ascii

// OrderedMap is a map that remembers the order in which keys were first
// inserted. It is not safe for concurrent writers.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates a new OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   make([]K, 0),
		values: make(map[K]V),
	}
}

// Set adds a Key-Value pair to the map. Setting an existing key replaces
// its value but keeps its position.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	if _, exists := om.values[key]; !exists {
		om.keys = append(om.keys, key)
	}
	om.values[key] = value
}

// Get retrieves a Value from the map by Key
func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, exists := om.values[key]
	return val, exists
}

// Keys returns a slice of keys in the order they were inserted
func (om *OrderedMap[K, V]) Keys() []K {
	return append([]K{}, om.keys...)
}

// Iterate calls the provided function for each Key-Value pair in order
func (om *OrderedMap[K, V]) Iterate(f func(key K, value V)) {
	for _, k := range om.keys {
		f(k, om.values[k])
	}
}

// Len returns the number of elements in the map
func (om *OrderedMap[K, V]) Len() int {
	return len(om.keys)
}
