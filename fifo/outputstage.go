package fifo

// outputStage adds one cycle of latency to the final output selection. It
// latches the fetched word, the bypass word, the bypass decision, and the
// validity, then re-applies the output mux on the latched copies. Only the
// selection is retimed; the decision stays with its original cycle.
type outputStage struct {
	fetched      Word
	bypassWord   Word
	bypassActive bool
	valid        bool
}

func (s *outputStage) latch(fetched, bypassWord Word, bypassActive, valid bool) {
	s.fetched = fetched
	s.bypassWord = bypassWord
	s.bypassActive = bypassActive
	s.valid = valid
}

func (s *outputStage) mux() (Word, bool) {
	if s.bypassActive {
		return s.bypassWord, s.valid
	}

	return s.fetched, s.valid
}
