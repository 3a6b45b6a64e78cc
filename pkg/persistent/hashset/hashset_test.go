package hashset

import (
	"testing"

	"github.com/headius/hamster/pkg/vals"
)

func TestHashSet(t *testing.T) {
	s0 := New(vals.Equal, vals.Hash)
	if s0.Len() != 0 {
		t.Errorf("empty set has Len %d, want 0", s0.Len())
	}
	if s0.Has("a") {
		t.Errorf("empty set has %q", "a")
	}
	s1 := s0.Conj("a")
	s2 := s1.Conj("b").Conj("a")
	if !s1.Has("a") {
		t.Errorf("s1 does not have %q", "a")
	}
	if s1.Has("b") {
		t.Errorf("adding to a set mutated the original")
	}
	if s2.Len() != 2 {
		t.Errorf("s2.Len = %d, want 2 (duplicate Conj must not grow the set)", s2.Len())
	}
	if !s2.Has("a") || !s2.Has("b") {
		t.Errorf("s2 is missing values")
	}
}

func TestHashSet_ManyValues(t *testing.T) {
	s := New(vals.Equal, vals.Hash)
	for i := 0; i < 1000; i++ {
		s = s.Conj(i)
	}
	if s.Len() != 1000 {
		t.Errorf("s.Len = %d, want 1000", s.Len())
	}
	for i := 0; i < 1000; i++ {
		if !s.Has(i) {
			t.Errorf("s is missing %d", i)
		}
	}
	if s.Has(1000) {
		t.Errorf("s has %d, which was never added", 1000)
	}
}

func TestHashSet_Iterator(t *testing.T) {
	s := New(vals.Equal, vals.Hash).Conj("x").Conj("y").Conj("z")
	got := map[any]bool{}
	for it := s.Iterator(); it.HasElem(); it.Next() {
		got[it.Elem()] = true
	}
	want := map[any]bool{"x": true, "y": true, "z": true}
	if len(got) != len(want) {
		t.Errorf("iterator produced %d values, want %d", len(got), len(want))
	}
	for v := range want {
		if !got[v] {
			t.Errorf("iterator did not produce %v", v)
		}
	}
}
