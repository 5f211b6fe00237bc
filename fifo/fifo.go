// Package fifo provides cycle-level models of synchronous, fixed-capacity
// queue controllers.
//
// Three variants are provided. The standard variant registers the data of a
// committed read so that it is observable one cycle later. The
// first-word-fall-through (FWFT) variant keeps the oldest queued word
// continuously observable while the queue is non-empty, forwarding
// just-written words around the storage fetch path when the storage would not
// reflect them in time. The threshold variant extends the standard variant
// with watermark, overflow, and underflow reporting.
//
// All variants advance through Step. One call to Step models one clock
// cycle: the inputs are the request signals presented during the cycle, and
// the returned outputs are the register values observable after the cycle's
// clock edge. A consumer therefore reads the word it is about to consume from
// the previous call's outputs, and the outputs of the call that carries its
// read request already show the word that follows.
package fifo

import (
	"github.com/sarchlab/fifosim/sim/hooking"
	"github.com/sarchlab/fifosim/sim/naming"
)

// HookPosStep marks the completion of one step of a queue.
var HookPosStep = &hooking.HookPos{Name: "Queue Step"}

// HookPosWriteCommit marks that a requested write is accepted into storage.
var HookPosWriteCommit = &hooking.HookPos{Name: "Queue Write Commit"}

// HookPosReadCommit marks that a requested read is accepted.
var HookPosReadCommit = &hooking.HookPos{Name: "Queue Read Commit"}

// HookPosClear marks that the queue is force-emptied.
var HookPosClear = &hooking.HookPos{Name: "Queue Clear"}

// A Word is one data word held by a queue. Words are masked to the
// configured word width when they enter the queue.
type Word uint64

// StepInput bundles the request signals presented to a queue during one
// cycle.
type StepInput struct {
	WriteRequest bool
	WriteData    Word
	ReadRequest  bool
	Clear        bool

	// HighThreshold and LowThreshold are compared against the occupancy by
	// the threshold variant. Other variants ignore them.
	HighThreshold int
	LowThreshold  int
}

// StepOutput bundles the signals observable after one cycle's clock edge.
// Variants that do not produce a signal leave its field at the zero value.
type StepOutput struct {
	Full  bool
	Empty bool

	// ReadData carries read data with the latency of the variant. DataValid
	// qualifies it.
	ReadData  Word
	DataValid bool

	// Overflow and Underflow pulse for exactly the step in which a write is
	// rejected while full or a read is rejected while empty. Only the
	// threshold variant reports them.
	Overflow  bool
	Underflow bool

	// High and Low are the watermark flags of the threshold variant.
	High bool
	Low  bool
}

// StepHookInfo is the item attached to step hooks.
type StepHookInfo struct {
	StepCount uint64
	Input     StepInput
	Output    StepOutput
	Occupancy int
}

// A Queue is a synchronous fixed-capacity queue controller.
type Queue interface {
	naming.Named
	hooking.Hookable

	// Step advances the queue by one cycle.
	Step(in StepInput) StepOutput

	// Occupancy returns the number of live words currently queued.
	Occupancy() int

	// Capacity returns the number of slots.
	Capacity() int
}
