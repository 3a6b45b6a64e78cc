package seq

import (
	"testing"

	"github.com/headius/hamster/pkg/tt"
)

func TestOf(t *testing.T) {
	tt.Test(t, tt.Fn("Of", Of), tt.Table{
		tt.Args().Rets(eq(Empty)),
		tt.Args(1).Rets(eq(Cons(1, Empty))),
		tt.Args(1, 2, 3).Rets(eq(Cons(1, Cons(2, Cons(3, Empty))))),
	})
	if Of() != Empty {
		t.Errorf("Of() is not Empty itself")
	}
}

func TestFromSlice(t *testing.T) {
	if FromSlice(nil) != Empty {
		t.Errorf("FromSlice(nil) is not Empty itself")
	}
	if got := FromSlice([]any{1, 2, 3}); !Equal(got, Of(1, 2, 3)) {
		t.Errorf("FromSlice([1 2 3]) = %v", mat(got))
	}
}

func TestInterval(t *testing.T) {
	tt.Test(t, tt.Fn("Interval", Interval), tt.Table{
		tt.Args(1, 5).Rets(eq(Of(1, 2, 3, 4, 5))),
		tt.Args(5, 1).Rets(eq(Empty)),
		tt.Args(3, 3).Rets(eq(Of(3))),
		tt.Args(-2, 1).Rets(eq(Of(-2, -1, 0, 1))),
	})
	// Creating a huge interval is free; only observation realizes values.
	big := Interval(1, 1<<30)
	if v := big.First(); v != 1 {
		t.Errorf("big.First() -> %v, want 1", v)
	}
}

func TestRepeat(t *testing.T) {
	r := Repeat("x")
	if got := Take(r, 5); !Equal(got, Of("x", "x", "x", "x", "x")) {
		t.Errorf("Take(Repeat(x), 5) = %v", mat(got))
	}
	// The whole sequence is one shared node.
	if r.Rest() != r {
		t.Errorf("Repeat(x).Rest() is not the sequence itself")
	}
}

func TestIterate(t *testing.T) {
	doubled := Iterate(1, func(v any) any { return v.(int) * 2 })
	if got := Take(doubled, 5); !Equal(got, Of(1, 2, 4, 8, 16)) {
		t.Errorf("Take(Iterate(1, double), 5) = %v", mat(got))
	}
	if got := Take(Iterate("a", nil), 3); !Equal(got, Of("a", "a", "a")) {
		t.Errorf("Iterate with nil function does not repeat the seed")
	}
}

func TestIterate_IsLazy(t *testing.T) {
	calls := 0
	s := Iterate(0, func(v any) any {
		calls++
		return v.(int) + 1
	})
	if calls != 0 {
		t.Errorf("constructing Iterate applied the function %d times, want 0", calls)
	}
	mat(Take(s, 3))
	// Three values need two applications: seed, f(seed), f(f(seed)).
	if calls != 2 {
		t.Errorf("realizing three values applied the function %d times, want 2", calls)
	}
}

func TestReplicate(t *testing.T) {
	tt.Test(t, tt.Fn("Replicate", Replicate), tt.Table{
		tt.Args(0, "x").Rets(eq(Empty)),
		tt.Args(-1, "x").Rets(eq(Empty)),
		tt.Args(3, "x").Rets(eq(Of("x", "x", "x"))),
	})
}
