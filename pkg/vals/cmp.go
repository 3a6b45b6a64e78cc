package vals

import "math"

// Ordering is the relationship between two values.
type Ordering uint8

// Possible Ordering values.
const (
	CmpLess Ordering = iota
	CmpEqual
	CmpMore
	CmpUncomparable
)

// Cmp compares two values and returns the ordering relationship between
// them. Cmp(a, b) returns CmpEqual iff Equal(a, b) is true or both a and b
// are NaNs. Values of different types, and values of types with no natural
// order, are CmpUncomparable unless they are Equal.
func Cmp(a, b any) Ordering {
	// Keep the branches in the same order as [Equal].
	switch a := a.(type) {
	case nil:
		if b == nil {
			return CmpEqual
		}
	case bool:
		if b, ok := b.(bool); ok {
			switch {
			case a == b:
				return CmpEqual
			case !a: // b is true
				return CmpLess
			default: // a is true, b is false
				return CmpMore
			}
		}
	case int:
		switch b := b.(type) {
		case int:
			return compareBuiltin(a, b)
		case float64:
			return compareFloat(float64(a), b)
		}
	case float64:
		switch b := b.(type) {
		case int:
			return compareFloat(a, float64(b))
		case float64:
			return compareFloat(a, b)
		}
	case string:
		if b, ok := b.(string); ok {
			return compareBuiltin(a, b)
		}
	default:
		if Equal(a, b) {
			return CmpEqual
		}
	}
	return CmpUncomparable
}

func compareBuiltin[T interface{ int | string }](a, b T) Ordering {
	if a < b {
		return CmpLess
	} else if a > b {
		return CmpMore
	}
	return CmpEqual
}

func compareFloat(a, b float64) Ordering {
	// For the sake of ordering, NaN's are considered equal to each other and
	// smaller than all numbers.
	switch {
	case math.IsNaN(a):
		if math.IsNaN(b) {
			return CmpEqual
		}
		return CmpLess
	case math.IsNaN(b):
		return CmpMore
	case a < b:
		return CmpLess
	case a > b:
		return CmpMore
	default: // a == b
		return CmpEqual
	}
}
