// Package seq implements a persistent, immutable singly-linked sequence with
// support for lazy evaluation.
//
// A sequence is either the empty sequence, a cons node holding a realized
// value and a tail, or a deferred node (a [Stream]) whose contents are
// computed on first observation and memoized. All three kinds satisfy the
// [Seq] interface, and every other operation in this package is derived from
// its three methods. Sequences are immutable; operations return new sequences
// that share structure with their inputs.
package seq

import (
	"github.com/headius/hamster/pkg/persistent/hash"
	"github.com/headius/hamster/pkg/vals"
)

// Seq is a persistent sequence.
type Seq interface {
	// First returns the first value in the sequence, or nil if the sequence
	// is empty.
	First() any
	// Rest returns the sequence after the first value. The rest of the empty
	// sequence is the empty sequence itself, so Rest may be called without an
	// emptiness check.
	Rest() Seq
	// IsEmpty returns whether the sequence has no values.
	IsEmpty() bool
}

// Empty is the empty sequence. It is a single shared value; any sequence
// created by this package that contains no values is Empty itself.
var Empty Seq = &empty{}

type empty struct{}

func (e *empty) First() any { return nil }

func (e *empty) Rest() Seq { return e }

func (e *empty) IsEmpty() bool { return true }

func (e *empty) Equal(other any) bool {
	o, ok := other.(Seq)
	return ok && o.IsEmpty()
}

func (e *empty) Hash() uint32 { return hash.DJBInit }

// Cons returns a new sequence with first value x and rest s. It takes
// constant time and does not observe s.
func Cons(x any, s Seq) Seq {
	return &cons{x, s}
}

type cons struct {
	first any
	rest  Seq
}

func (c *cons) First() any { return c.first }

func (c *cons) Rest() Seq { return c.rest }

func (c *cons) IsEmpty() bool { return false }

func (c *cons) Equal(other any) bool {
	o, ok := other.(Seq)
	return ok && Equal(c, o)
}

func (c *cons) Hash() uint32 { return hashSeq(c) }

// hashSeq combines the hashes of all values of s. It never returns on an
// infinite sequence.
func hashSeq(s Seq) uint32 {
	h := hash.DJBInit
	Each(s, func(v any) bool {
		h = hash.DJBCombine(h, vals.Hash(v))
		return true
	})
	return h
}
