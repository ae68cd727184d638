package attrspec

// Null carries a value of type T or null. The zero value is null.
type Null[T any] struct {
	V     T
	Valid bool
}

// Value wraps v as a non-null Null[T].
func Value[T any](v T) Null[T] { return Null[T]{V: v, Valid: true} }

// IsNull reports whether n carries no value.
func (n Null[T]) IsNull() bool { return !n.Valid }

// Get returns the carried value and whether it is present.
func (n Null[T]) Get() (T, bool) { return n.V, n.Valid }
