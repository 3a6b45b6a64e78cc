package seq

// Of returns an eager sequence of the given values.
func Of(values ...any) Seq {
	return FromSlice(values)
}

// FromSlice returns an eager sequence of the values of vs, in order. The
// nodes are built back to front, so the result shares nothing with vs.
func FromSlice(vs []any) Seq {
	s := Empty
	for i := len(vs) - 1; i >= 0; i-- {
		s = Cons(vs[i], s)
	}
	return s
}

// Interval returns the sequence of integers from from through to, inclusive,
// in ascending order. It is empty when from > to. The sequence is realized
// one value per observation, so a huge interval costs nothing to create.
func Interval(from, to int) Seq {
	return NewStream(func() Seq {
		if from > to {
			return Empty
		}
		return Cons(from, Interval(from+1, to))
	})
}

// Repeat returns the infinite sequence whose every value is x. The whole
// sequence is one self-referential node, so realizing any number of values
// allocates only the single cons cell.
func Repeat(x any) Seq {
	s := &Stream{}
	s.fn = func() Seq { return Cons(x, s) }
	return s
}

// Iterate returns the infinite sequence x, f(x), f(f(x)), … Each application
// of f happens on first observation of the position needing it. A nil f
// repeats x.
func Iterate(x any, f func(v any) any) Seq {
	if f == nil {
		return Repeat(x)
	}
	return NewStream(func() Seq {
		return iterate(x, f)
	})
}

// iterate returns the realized node for x; the tail applies f on demand.
func iterate(x any, f func(v any) any) Seq {
	return Cons(x, NewStream(func() Seq {
		return iterate(f(x), f)
	}))
}

// Replicate returns the sequence of n copies of x.
func Replicate(n int, x any) Seq {
	return Take(Repeat(x), n)
}
