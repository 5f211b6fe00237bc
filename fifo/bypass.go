package fifo

// bypassUnit decides, every cycle, whether the externally visible word comes
// from the storage fetch path or directly from a word written this cycle.
// Two cases need the direct path: a write into an empty queue, and a
// simultaneous write and read while exactly one word is queued. In both, the
// storage fetch could not deliver the new front word in time.
type bypassUnit struct {
	active bool
	word   Word
}

// update applies the bypass decision for one cycle. writeCommit and
// readCommit tell which requests were honored; wasEmpty and occupancyBefore
// describe the queue as the cycle began.
func (b *bypassUnit) update(
	writeCommit, readCommit, wasEmpty bool,
	occupancyBefore int,
	data Word,
) {
	switch {
	case writeCommit && wasEmpty:
		b.active = true
		b.word = data
	case writeCommit && readCommit && occupancyBefore == 1:
		b.active = true
		b.word = data
	case readCommit:
		b.active = false
	}
}

// fetchNeeded reports whether the lookahead fetch at readAddr+1 should be
// issued this cycle. The fetch is suppressed when the bypass unit is about
// to supply the word directly, as the fetch would land on a slot the write
// is overtaking.
func fetchNeeded(
	readCommit, writeRequested, wasEmpty bool,
	occupancyBefore int,
) bool {
	return readCommit &&
		!(writeRequested && (wasEmpty || occupancyBefore == 1))
}
