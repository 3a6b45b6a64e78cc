// Package vals defines a common equality, ordering and hashing notion over
// arbitrary Go values, for use by containers that hold values of type any.
package vals

import "reflect"

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must
	// have the same hash code.
	Equal(other any) bool
}

// Equal returns whether two values are equal. It is implemented for the
// builtin types bool, int, float64 and string, and for types satisfying the
// Equaler interface. For other types, it uses reflect.DeepEqual to compare
// the two values.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return x == y
	case bool:
		return x == y
	case int:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}
