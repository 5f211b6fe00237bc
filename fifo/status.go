package fifo

// status holds the boundary flags derived from cursor state. The flags are
// pure functions of the cursor, recomputed every cycle, never latched.
type status struct {
	full  bool
	empty bool
}

func statusOf(c cursor) status {
	return status{
		full:  c.full(),
		empty: c.empty(),
	}
}

// watermarkFlags compares an occupancy against the thresholds presented this
// cycle.
func watermarkFlags(occupancy, highThreshold, lowThreshold int) (high, low bool) {
	high = occupancy >= highThreshold
	low = occupancy <= lowThreshold

	return high, low
}
