package verify

import (
	"fmt"

	"github.com/sarchlab/fifosim/fifo"
)

// Variant names the queue flavor a scoreboard is checking, as the latency
// contract differs per flavor.
type Variant int

const (
	VariantStandard Variant = iota
	VariantFWFT
	VariantThreshold
)

// Config describes the queue under test.
type Config struct {
	Variant    Variant
	Capacity   int
	WordWidth  int
	ExtraStage bool
}

// A Violation reports the first cycle in which the queue under test diverged
// from the reference model.
type Violation struct {
	Step     uint64
	Property string
	Got      any
	Want     any
	Input    fifo.StepInput
	Output   fifo.StepOutput
}

func (v *Violation) Error() string {
	return fmt.Sprintf("step %d: %s: got %v, want %v (input %+v, output %+v)",
		v.Step, v.Property, v.Got, v.Want, v.Input, v.Output)
}

// A Scoreboard steps a queue and its reference model together and checks the
// flag, occupancy, ordering, and latency contracts every cycle.
type Scoreboard struct {
	dut    fifo.Queue
	shadow *ShadowQueue
	cfg    Config

	step uint64

	// Expectations delayed by the optional output stage.
	prevFront         fifo.Word
	prevFrontValid    bool
	prevDequeued      fifo.Word
	prevDequeuedValid bool
}

// NewScoreboard creates a scoreboard for the given queue.
func NewScoreboard(dut fifo.Queue, cfg Config) *Scoreboard {
	return &Scoreboard{
		dut:    dut,
		shadow: NewShadowQueue(cfg.Capacity, cfg.WordWidth),
		cfg:    cfg,
	}
}

// Step drives one cycle and checks it. The first divergence is returned as a
// *Violation.
func (s *Scoreboard) Step(in fifo.StepInput) error {
	out := s.dut.Step(in)
	ss := s.shadow.Apply(in)
	s.step++

	if err := s.checkFlags(in, out); err != nil {
		return err
	}

	if err := s.checkData(in, out, ss); err != nil {
		return err
	}

	if s.cfg.Variant == VariantThreshold {
		if err := s.checkReporting(in, out, ss); err != nil {
			return err
		}
	}

	s.rememberDelayedExpectations(ss)

	return nil
}

// Run drives n generated cycles and stops at the first violation.
func (s *Scoreboard) Run(g *StimulusGenerator, n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(g.Next()); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scoreboard) violation(
	property string,
	got, want any,
	in fifo.StepInput,
	out fifo.StepOutput,
) error {
	return &Violation{
		Step:     s.step,
		Property: property,
		Got:      got,
		Want:     want,
		Input:    in,
		Output:   out,
	}
}

func (s *Scoreboard) checkFlags(in fifo.StepInput, out fifo.StepOutput) error {
	occ := s.dut.Occupancy()

	if occ < 0 || occ > s.cfg.Capacity {
		return s.violation("occupancy bound", occ,
			fmt.Sprintf("[0, %d]", s.cfg.Capacity), in, out)
	}

	if occ != s.shadow.Len() {
		return s.violation("occupancy", occ, s.shadow.Len(), in, out)
	}

	if out.Full && out.Empty {
		return s.violation("full/empty mutual exclusion", true, false, in, out)
	}

	if out.Full != (s.shadow.Len() == s.cfg.Capacity) {
		return s.violation("full flag", out.Full,
			s.shadow.Len() == s.cfg.Capacity, in, out)
	}

	if out.Empty != (s.shadow.Len() == 0) {
		return s.violation("empty flag", out.Empty,
			s.shadow.Len() == 0, in, out)
	}

	return nil
}

func (s *Scoreboard) checkData(
	in fifo.StepInput,
	out fifo.StepOutput,
	ss ShadowStep,
) error {
	var wantValid bool
	var wantData fifo.Word

	switch {
	case s.cfg.Variant == VariantFWFT && !s.cfg.ExtraStage:
		wantValid = s.shadow.Len() > 0
		if wantValid {
			wantData = s.shadow.Front()
		}
	case s.cfg.Variant == VariantFWFT:
		wantValid = s.prevFrontValid
		wantData = s.prevFront
	case !s.cfg.ExtraStage:
		wantValid = ss.ReadCommit
		wantData = ss.Dequeued
	default:
		wantValid = s.prevDequeuedValid
		wantData = s.prevDequeued
	}

	if out.DataValid != wantValid {
		return s.violation("data valid", out.DataValid, wantValid, in, out)
	}

	if wantValid && out.ReadData != wantData {
		return s.violation("read data", out.ReadData, wantData, in, out)
	}

	return nil
}

func (s *Scoreboard) checkReporting(
	in fifo.StepInput,
	out fifo.StepOutput,
	ss ShadowStep,
) error {
	if out.Overflow != ss.Overflow {
		return s.violation("overflow pulse", out.Overflow, ss.Overflow, in, out)
	}

	if out.Underflow != ss.Underflow {
		return s.violation("underflow pulse",
			out.Underflow, ss.Underflow, in, out)
	}

	wantHigh := s.shadow.Len() >= in.HighThreshold
	if out.High != wantHigh {
		return s.violation("high watermark", out.High, wantHigh, in, out)
	}

	wantLow := s.shadow.Len() <= in.LowThreshold
	if out.Low != wantLow {
		return s.violation("low watermark", out.Low, wantLow, in, out)
	}

	return nil
}

func (s *Scoreboard) rememberDelayedExpectations(ss ShadowStep) {
	s.prevFrontValid = s.shadow.Len() > 0
	if s.prevFrontValid {
		s.prevFront = s.shadow.Front()
	}

	s.prevDequeuedValid = ss.ReadCommit
	s.prevDequeued = ss.Dequeued
}

// RunDifferential steps two queues of the same configuration with identical
// generated inputs and reports the first divergence. It is how the two
// cursor representations are checked against each other.
func RunDifferential(a, b fifo.Queue, g *StimulusGenerator, n int) error {
	for i := 0; i < n; i++ {
		in := g.Next()

		outA := a.Step(in)
		outB := b.Step(in)

		if outA != outB {
			return fmt.Errorf(
				"step %d: outputs diverged: %s %+v, %s %+v (input %+v)",
				i, a.Name(), outA, b.Name(), outB, in)
		}

		if a.Occupancy() != b.Occupancy() {
			return fmt.Errorf(
				"step %d: occupancy diverged: %s %d, %s %d",
				i, a.Name(), a.Occupancy(), b.Name(), b.Occupancy())
		}
	}

	return nil
}
