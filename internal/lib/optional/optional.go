// Package optional provides a JSON wrapper that distinguishes a field
// that was absent from the payload, explicitly null, or set to a value.
//
// Plain pointers cannot tell "absent" from "null", which matters for
// partial updates: an absent field is left alone while a null field
// clears the column.
package optional

import "encoding/json"

// Value wraps a value of type T decoded from JSON.
//
// The zero Value reports Set() == false. After unmarshalling, Set() is
// true and IsNull() reports whether the JSON value was null.
type Value[T any] struct {
	value T
	set   bool
	valid bool
}

// Of builds a set, non-null Value. Mostly useful in tests.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true, valid: true}
}

// Null builds a set Value holding JSON null.
func Null[T any]() Value[T] {
	return Value[T]{set: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, so
// seeing any input at all means the field was set.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &v.value); err != nil {
		return err
	}
	v.valid = true
	return nil
}

// MarshalJSON writes the wrapped value, or null for unset/null values.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// Set reports whether the field appeared in the payload at all.
func (v Value[T]) Set() bool {
	return v.set
}

// IsNull reports whether the field was present and explicitly null.
func (v Value[T]) IsNull() bool {
	return v.set && !v.valid
}

// Get returns the wrapped value and whether it holds a non-null value.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.valid
}

// Ptr returns the wrapped value as a pointer, nil for unset/null.
func (v Value[T]) Ptr() *T {
	if !v.valid {
		return nil
	}
	value := v.value
	return &value
}
