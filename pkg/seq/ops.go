package seq

import (
	"fmt"
	"sort"
	"strings"

	"github.com/headius/hamster/pkg/persistent/hashset"
	"github.com/headius/hamster/pkg/vals"
)

// Operations in this file are derived entirely from the three Seq methods, so
// they work uniformly on eager and deferred sequences. Operations whose
// result may be unbounded return deferred nodes and realize at most one value
// per observation; operations documented as materializing walk the whole
// receiver and never return when it is infinite.
//
// Operations taking a function treat a nil function as a request for the
// receiver unchanged rather than an error.

// Each calls f on each value of s in order, stopping early if f returns
// false. Traversal is a plain loop, so realizing an arbitrarily long chain of
// deferred nodes does not grow the stack.
func Each(s Seq, f func(v any) bool) {
	if f == nil {
		return
	}
	for ; !s.IsEmpty(); s = s.Rest() {
		if !f(s.First()) {
			return
		}
	}
}

// Map returns a sequence of f applied to each value of s. It is lazy: f is
// not called until the result is observed, and then only one value ahead.
func Map(s Seq, f func(v any) any) Seq {
	if f == nil {
		return s
	}
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return Empty
		}
		return Cons(f(s.First()), Map(s.Rest(), f))
	})
}

// Filter returns the values of s that satisfy p, in order.
func Filter(s Seq, p func(v any) bool) Seq {
	if p == nil {
		return s
	}
	return NewStream(func() Seq {
		// A sparse predicate may have to pass over arbitrarily many values
		// within this single observation, so skip with a loop.
		for ; !s.IsEmpty(); s = s.Rest() {
			if p(s.First()) {
				return Cons(s.First(), Filter(s.Rest(), p))
			}
		}
		return Empty
	})
}

// Fold reduces s left to right, starting from acc. Fold materializes s.
func Fold(s Seq, acc any, f func(acc, v any) any) any {
	if f == nil {
		return acc
	}
	Each(s, func(v any) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}

// Reduce folds s left to right using the first value as the initial
// accumulator. It returns nil when s is empty.
func Reduce(s Seq, f func(acc, v any) any) any {
	if s.IsEmpty() {
		return nil
	}
	return Fold(s.Rest(), s.First(), f)
}

// Take returns the first n values of s, or all of s if it has fewer. It is
// lazy, so it may be used to realize a finite part of an infinite sequence.
func Take(s Seq, n int) Seq {
	return NewStream(func() Seq {
		if n <= 0 || s.IsEmpty() {
			return Empty
		}
		return Cons(s.First(), Take(s.Rest(), n-1))
	})
}

// Drop returns s without its first n values. The skip happens inside the
// single returned node, as a loop, when it is first observed.
func Drop(s Seq, n int) Seq {
	return NewStream(func() Seq {
		for ; n > 0 && !s.IsEmpty(); n-- {
			s = s.Rest()
		}
		return s
	})
}

// TakeWhile returns the longest prefix of s whose values satisfy p.
func TakeWhile(s Seq, p func(v any) bool) Seq {
	if p == nil {
		return s
	}
	return NewStream(func() Seq {
		if s.IsEmpty() || !p(s.First()) {
			return Empty
		}
		return Cons(s.First(), TakeWhile(s.Rest(), p))
	})
}

// DropWhile returns s without the longest prefix whose values satisfy p.
func DropWhile(s Seq, p func(v any) bool) Seq {
	if p == nil {
		return s
	}
	return NewStream(func() Seq {
		for ; !s.IsEmpty(); s = s.Rest() {
			if !p(s.First()) {
				break
			}
		}
		return s
	})
}

// Append returns the values of s followed by the values of t. Appending to
// the empty sequence returns t itself rather than a new node.
func Append(s, t Seq) Seq {
	if s == Empty {
		return t
	}
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return t
		}
		return Cons(s.First(), Append(s.Rest(), t))
	})
}

// Zip pairs the values of s and t by position; each pair is a two-value
// sequence. Pairing continues until both inputs are exhausted: when one input
// is shorter, its remaining positions are filled with nil, so the result is
// as long as the longer input.
func Zip(s, t Seq) Seq {
	return NewStream(func() Seq {
		if s.IsEmpty() && t.IsEmpty() {
			return Empty
		}
		return Cons(Of(s.First(), t.First()), Zip(s.Rest(), t.Rest()))
	})
}

// Uniq returns the values of s with duplicates removed, keeping the first
// occurrence of each value. Already-seen values are tracked in a persistent
// set threaded through the result; over a source with unboundedly many
// distinct values the set grows without bound.
func Uniq(s Seq) Seq {
	return uniq(s, hashset.New(vals.Equal, vals.Hash))
}

func uniq(s Seq, seen hashset.Set) Seq {
	return NewStream(func() Seq {
		for ; !s.IsEmpty(); s = s.Rest() {
			if v := s.First(); !seen.Has(v) {
				return Cons(v, uniq(s.Rest(), seen.Conj(v)))
			}
		}
		return Empty
	})
}

// Union returns the distinct values of s followed by the distinct values of
// t that do not also occur in s.
func Union(s, t Seq) Seq {
	return Uniq(Append(s, t))
}

// Cycle returns the values of s repeated indefinitely, or the empty sequence
// if s is empty.
func Cycle(s Seq) Seq {
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return Empty
		}
		return Cons(s.First(), Append(s.Rest(), Cycle(s)))
	})
}

// Combinations returns all ways of choosing k values from s, each itself a
// sequence in source order. Combinations containing earlier values of s come
// first. Choosing zero values yields a single empty combination.
func Combinations(s Seq, k int) Seq {
	if k <= 0 {
		return Cons(Empty, Empty)
	}
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return Empty
		}
		chosen := Map(Combinations(s.Rest(), k-1), func(c any) any {
			return Cons(s.First(), c.(Seq))
		})
		return Append(chosen, Combinations(s.Rest(), k))
	})
}

// Tails returns every suffix of s, from s itself down to the empty sequence.
func Tails(s Seq) Seq {
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return Cons(Empty, Empty)
		}
		return Cons(s, Tails(s.Rest()))
	})
}

// Inits returns every prefix of s, from the empty sequence up to s itself.
func Inits(s Seq) Seq {
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return Cons(Empty, Empty)
		}
		longer := Map(Inits(s.Rest()), func(p any) any {
			return Cons(s.First(), p.(Seq))
		})
		return Cons(Empty, longer)
	})
}

// Intersperse inserts sep between consecutive values of s. There is no
// separator after the last value, and no value is realized before the one
// being emitted.
func Intersperse(s Seq, sep any) Seq {
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return Empty
		}
		return Cons(s.First(), intersperseRest(s.Rest(), sep))
	})
}

func intersperseRest(s Seq, sep any) Seq {
	return NewStream(func() Seq {
		if s.IsEmpty() {
			return Empty
		}
		return Cons(sep, Cons(s.First(), intersperseRest(s.Rest(), sep)))
	})
}

// Span splits s into the longest prefix whose values satisfy p and the
// remainder. Both halves are lazy.
func Span(s Seq, p func(v any) bool) (Seq, Seq) {
	return TakeWhile(s, p), DropWhile(s, p)
}

// Break splits s into the longest prefix whose values do not satisfy p and
// the remainder.
func Break(s Seq, p func(v any) bool) (Seq, Seq) {
	if p == nil {
		return s, s
	}
	return Span(s, func(v any) bool { return !p(v) })
}

// SplitAt splits s before position n.
func SplitAt(s Seq, n int) (Seq, Seq) {
	return Take(s, n), Drop(s, n)
}

// Min returns the smallest value of s, or nil when s is empty. A nil cmp
// compares values in their natural order. Min materializes s.
func Min(s Seq, cmp func(a, b any) int) any {
	return extremum(s, cmp, vals.CmpLess)
}

// Max returns the largest value of s, or nil when s is empty. A nil cmp
// compares values in their natural order. Max materializes s.
func Max(s Seq, cmp func(a, b any) int) any {
	return extremum(s, cmp, vals.CmpMore)
}

func extremum(s Seq, cmp func(a, b any) int, keep vals.Ordering) any {
	return Reduce(s, func(acc, v any) any {
		if ordering(cmp, v, acc) == keep {
			return v
		}
		return acc
	})
}

// ordering adapts an optional three-way comparison function to vals.Cmp.
func ordering(cmp func(a, b any) int, a, b any) vals.Ordering {
	if cmp == nil {
		return vals.Cmp(a, b)
	}
	switch c := cmp(a, b); {
	case c < 0:
		return vals.CmpLess
	case c > 0:
		return vals.CmpMore
	default:
		return vals.CmpEqual
	}
}

// Sort returns the values of s in ascending order; the sort is stable. A nil
// cmp compares values in their natural order. Sort materializes s.
func Sort(s Seq, cmp func(a, b any) int) Seq {
	vs := ToSlice(s)
	sort.SliceStable(vs, func(i, j int) bool {
		return ordering(cmp, vs[i], vs[j]) == vals.CmpLess
	})
	return FromSlice(vs)
}

// SortBy returns the values of s sorted by the natural order of the keys
// key derives from them; the sort is stable. A nil key sorts the values
// themselves. SortBy materializes s.
func SortBy(s Seq, key func(v any) any) Seq {
	if key == nil {
		return Sort(s, nil)
	}
	vs := ToSlice(s)
	sort.SliceStable(vs, func(i, j int) bool {
		return vals.Cmp(key(vs[i]), key(vs[j])) == vals.CmpLess
	})
	return FromSlice(vs)
}

// ToSlice returns the values of s in a slice. It materializes s.
func ToSlice(s Seq) []any {
	var vs []any
	Each(s, func(v any) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Len returns the number of values in s. It materializes s.
func Len(s Seq) int {
	n := 0
	Each(s, func(any) bool {
		n++
		return true
	})
	return n
}

// Join concatenates the string forms of the values of s, separated by sep.
// It materializes s.
func Join(s Seq, sep string) string {
	var sb strings.Builder
	first := true
	Each(s, func(v any) bool {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, v)
		return true
	})
	return sb.String()
}

// Reverse returns the values of s in reverse order. It materializes s.
func Reverse(s Seq) Seq {
	r := Empty
	Each(s, func(v any) bool {
		r = Cons(v, r)
		return true
	})
	return r
}

// Nth returns the value of s at position n, or nil when n is negative or
// past the end of s.
func Nth(s Seq, n int) any {
	if n < 0 {
		return nil
	}
	for ; n > 0 && !s.IsEmpty(); n-- {
		s = s.Rest()
	}
	return s.First()
}

// Equal returns whether x and y hold equal values in the same order. The same
// sequence is equal to itself without being observed; otherwise values are
// compared pairwise with vals.Equal, realizing both sequences as it goes.
// Comparing two distinct infinite sequences that never differ does not
// return.
func Equal(x, y Seq) bool {
	for {
		if x == y {
			return true
		}
		xe, ye := x.IsEmpty(), y.IsEmpty()
		if xe || ye {
			return xe && ye
		}
		if !vals.Equal(x.First(), y.First()) {
			return false
		}
		x, y = x.Rest(), y.Rest()
	}
}
