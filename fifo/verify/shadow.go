// Package verify provides a reference model and randomized differential
// checking for the queue controllers in package fifo.
//
// A ShadowQueue is the ground truth: an unbounded list driven by the same
// per-cycle requests as a queue under test. A Scoreboard steps a queue and a
// shadow together and checks the flag, occupancy, ordering, and latency
// contracts every cycle. A StimulusGenerator produces seeded randomized
// request sequences to drive both.
package verify

import (
	"github.com/sarchlab/fifosim/fifo"
)

// ShadowQueue is the reference model of a queue controller. It applies the
// commit rules directly on a plain list.
type ShadowQueue struct {
	capacity int
	wordMask fifo.Word
	words    []fifo.Word
}

// NewShadowQueue creates a reference model with the same capacity and word
// width as the queue it shadows.
func NewShadowQueue(capacity, wordWidth int) *ShadowQueue {
	return &ShadowQueue{
		capacity: capacity,
		wordMask: ^fifo.Word(0) >> (64 - wordWidth),
	}
}

// ShadowStep reports what the reference model did in one cycle.
type ShadowStep struct {
	WriteCommit bool
	ReadCommit  bool
	Dequeued    fifo.Word
	Overflow    bool
	Underflow   bool
}

// Apply advances the reference model by one cycle.
func (s *ShadowQueue) Apply(in fifo.StepInput) ShadowStep {
	full := len(s.words) == s.capacity
	empty := len(s.words) == 0

	r := ShadowStep{
		Overflow:  full && in.WriteRequest,
		Underflow: empty && in.ReadRequest,
	}

	if in.Clear {
		s.words = s.words[:0]
		return r
	}

	if in.ReadRequest && !empty {
		r.ReadCommit = true
		r.Dequeued = s.words[0]
		s.words = s.words[1:]
	}

	if in.WriteRequest && !full {
		r.WriteCommit = true
		s.words = append(s.words, in.WriteData&s.wordMask)
	}

	return r
}

// Len returns the number of queued words.
func (s *ShadowQueue) Len() int {
	return len(s.words)
}

// Front returns the oldest queued word. It must not be called on an empty
// shadow.
func (s *ShadowQueue) Front() fifo.Word {
	return s.words[0]
}
