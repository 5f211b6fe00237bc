package fifo

// thresholdQueue is the standard-latency variant extended with occupancy
// reporting: watermark flags compared against the thresholds presented each
// cycle, and single-cycle overflow/underflow pulses for rejected requests.
type thresholdQueue struct {
	standardQueue
}

func (q *thresholdQueue) Step(in StepInput) StepOutput {
	st := statusOf(q.cursor)

	out, writeCommit, readCommit := q.stepCore(in)

	// Rejection pulses are judged against the flags that gated the
	// requests, so they assert exactly in the cycle of the rejected
	// request and never stick.
	out.Overflow = st.full && in.WriteRequest
	out.Underflow = st.empty && in.ReadRequest

	out.High, out.Low = watermarkFlags(
		q.cursor.occupancy(), in.HighThreshold, in.LowThreshold)

	q.invokeStepHooks(q, in, out, writeCommit, readCommit)

	return out
}
