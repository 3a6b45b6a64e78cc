package seq

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewStream_NilComputation(t *testing.T) {
	if s := NewStream(nil); s != Empty {
		t.Errorf("NewStream(nil) is not Empty itself")
	}
}

func TestStream_ComputesAtMostOnce(t *testing.T) {
	calls := 0
	s := NewStream(func() Seq {
		calls++
		return Cons(7, Empty)
	})
	if calls != 0 {
		t.Errorf("computation ran %d times before observation, want 0", calls)
	}
	if v := s.First(); v != 7 {
		t.Errorf("s.First() -> %v, want 7", v)
	}
	s.Rest()
	s.IsEmpty()
	s.First()
	if calls != 1 {
		t.Errorf("computation ran %d times, want 1", calls)
	}
}

func TestStream_ComputesAtMostOnceConcurrently(t *testing.T) {
	var calls atomic.Int32
	s := NewStream(func() Seq {
		calls.Add(1)
		return Cons("x", Empty)
	})
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if v := s.First(); v != "x" {
				t.Errorf("s.First() -> %v, want x", v)
			}
		}()
	}
	close(start)
	wg.Wait()
	if n := calls.Load(); n != 1 {
		t.Errorf("computation ran %d times, want 1", n)
	}
}

// wrap buries s under n deferred layers, each resolving to the next.
func wrap(s Seq, n int) Seq {
	for i := 0; i < n; i++ {
		inner := s
		s = NewStream(func() Seq { return inner })
	}
	return s
}

func TestStream_ResolvesDeepChainsIteratively(t *testing.T) {
	if s := wrap(Empty, 200000); !s.IsEmpty() {
		t.Errorf("deeply wrapped Empty reports non-empty")
	}
	s := wrap(Cons(42, Empty), 200000)
	if v := s.First(); v != 42 {
		t.Errorf("s.First() -> %v, want 42", v)
	}
	// After the first observation the chain is shortcut; this must be cheap.
	for i := 0; i < 1000; i++ {
		if v := s.First(); v != 42 {
			t.Errorf("s.First() -> %v, want 42", v)
		}
	}
}

func TestStream_DeepChainConcurrently(t *testing.T) {
	s := wrap(Cons(1, Empty), 100000)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if v := s.First(); v != 1 {
				t.Errorf("s.First() -> %v, want 1", v)
			}
		}()
	}
	close(start)
	wg.Wait()
}
