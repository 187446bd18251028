package domain

import (
	"bytes"
	"encoding/json"
)

// Nullable is a partial-update field for nullable columns. The zero value is
// unset; Null marks an explicit clear.
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true}
}

func NullOf[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// Ptr returns nil for unset or null fields.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON is only invoked when the key is present, which is what makes
// absent and null distinguishable.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value = zero
		n.Null = true
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
