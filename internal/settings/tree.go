package settings

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tree is an ordered string-keyed settings object.
//
// Values are *Tree (object), []any (array), string, json.Number, int, float64,
// bool or nil. Keys keep the order in which they were first set; Take removes
// a key so that whatever is left after processing is exactly the set of
// unrecognized keys.
type Tree struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{m: orderedmap.New[string, any]()}
}

// Set stores value under key. Overwriting keeps the key's original position.
func (t *Tree) Set(key string, value any) *Tree {
	t.m.Set(key, value)
	return t
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	return t.m.Get(key)
}

// Take removes key and returns its value.
func (t *Tree) Take(key string) (any, bool) {
	return t.m.Delete(key)
}

// Len returns the number of keys.
func (t *Tree) Len() int {
	return t.m.Len()
}

// Keys returns the keys in insertion order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.m.Len())
	for pair := t.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Each calls fn for every key/value pair in insertion order.
func (t *Tree) Each(fn func(key string, value any)) {
	for pair := t.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a deep copy, so consuming keys from the copy leaves t intact.
func (t *Tree) Clone() *Tree {
	out := NewTree()
	t.Each(func(key string, value any) {
		out.Set(key, cloneValue(value))
	})

	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case *Tree:
		return v.Clone()
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = cloneValue(v[i])
		}

		return out
	default:
		return v
	}
}

// MarshalJSON renders the tree as a JSON object in key order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return t.m.MarshalJSON()
}

// Format renders a settings value as compact JSON for diagnostics.
func Format(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "<unprintable>"
	}

	return string(data)
}
