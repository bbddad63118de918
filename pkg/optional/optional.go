// Package optional provides a present/absent wrapper used by partial updates.
package optional

import "github.com/bytedance/sonic"

// Value holds a T that may be absent. The zero Value is absent.
//
// When decoded from JSON a field that is missing from the document stays
// absent; any value that is present becomes set.
type Value[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

func (o Value[T]) IsSet() bool {
	return o.set
}

// Get returns the wrapped value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the wrapped value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

func (o *Value[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = v
	o.set = true
	return nil
}

func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return sonic.Marshal(o.value)
}
