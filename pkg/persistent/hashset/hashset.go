// Package hashset implements persistent hash set.
package hashset

import "github.com/headius/hamster/pkg/persistent/hashmap"

// Set is a persistent set of values. It is immutable, and supports near-O(1)
// operations to create modified versions of the set that share the
// underlying data structure. Because it is immutable, all of its methods are
// safe for concurrent use.
type Set interface {
	// Len returns the number of values in the set.
	Len() int
	// Has returns whether the set contains the given value.
	Has(v any) bool
	// Conj returns an almost identical set, with the given value added.
	Conj(v any) Set
	// Iterator returns an iterator over the values of the set.
	Iterator() Iterator
}

// Iterator is an iterator over set values. It can be used like this:
//
//	for it := s.Iterator(); it.HasElem(); it.Next() {
//	    v := it.Elem()
//	    // do something with v...
//	}
type Iterator interface {
	// Elem returns the value at the current position.
	Elem() any
	// HasElem returns whether the iterator is pointing to a value.
	HasElem() bool
	// Next moves the iterator to the next position.
	Next()
}

// New takes an equality function and a hash function, and returns an empty
// Set that uses those functions on its values.
func New(equal func(v1, v2 any) bool, hash func(v any) uint32) Set {
	return set{hashmap.New(equal, hash)}
}

type set struct {
	m hashmap.Map
}

func (s set) Len() int { return s.m.Len() }

func (s set) Has(v any) bool { return hashmap.HasKey(s.m, v) }

func (s set) Conj(v any) Set { return set{s.m.Assoc(v, true)} }

func (s set) Iterator() Iterator { return iterator{s.m.Iterator()} }

type iterator struct {
	inner hashmap.Iterator
}

func (it iterator) Elem() any {
	k, _ := it.inner.Elem()
	return k
}

func (it iterator) HasElem() bool { return it.inner.HasElem() }

func (it iterator) Next() { it.inner.Next() }
