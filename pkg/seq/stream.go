package seq

import "sync"

// Stream is a deferred sequence node. Its contents are computed by a
// zero-argument function the first time the node is observed through First,
// Rest or IsEmpty; the result is memoized and the function is never run
// again, even when the node is observed from multiple goroutines at once.
//
// The function may return any Seq, including another unresolved Stream;
// observation resolves such chains with an explicit loop, so the stack stays
// flat no matter how many deferred layers are stacked up.
type Stream struct {
	mu sync.Mutex
	fn func() Seq
	// cell is the memoized result. It is written at most twice under mu: once
	// with the function's result, and possibly once more to shortcut a chain
	// of deferred nodes to its final realized value.
	cell Seq
}

// NewStream returns a sequence whose contents are computed by fn on first
// observation. A nil fn yields the empty sequence.
func NewStream(fn func() Seq) Seq {
	if fn == nil {
		return Empty
	}
	return &Stream{fn: fn}
}

func (s *Stream) First() any { return s.force().First() }

func (s *Stream) Rest() Seq { return s.force().Rest() }

func (s *Stream) IsEmpty() bool { return s.force().IsEmpty() }

func (s *Stream) Equal(other any) bool {
	o, ok := other.(Seq)
	return ok && Equal(s, o)
}

func (s *Stream) Hash() uint32 { return hashSeq(s) }

// step runs the deferred computation if it has not run yet and returns the
// memoized result, which may itself be an unresolved *Stream. Concurrent
// callers block until the first computation completes.
func (s *Stream) step() Seq {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fn != nil {
		r := s.fn()
		if r == nil {
			r = Empty
		}
		s.cell = r
		// Drop the computation so whatever it captured can be collected.
		s.fn = nil
	}
	return s.cell
}

// force resolves the node to a realized sequence: a cons node or Empty.
func (s *Stream) force() Seq {
	r := s.step()
	t, ok := r.(*Stream)
	if !ok {
		return r
	}
	// The computation produced another deferred node. Walk the chain
	// iteratively, then point every node on the way at the final result so
	// that later observations resolve in one step.
	walked := []*Stream{s}
	for {
		r = t.step()
		next, ok := r.(*Stream)
		if !ok {
			break
		}
		walked = append(walked, t)
		t = next
	}
	for _, w := range walked {
		w.mu.Lock()
		w.cell = r
		w.mu.Unlock()
	}
	return r
}
