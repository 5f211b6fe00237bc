package fifo

// fwftQueue is the first-word-fall-through variant. The oldest queued word
// is continuously observable while the queue is non-empty. A lookahead fetch
// keeps the word behind the front ready, and the bypass unit forwards
// just-written words around the fetch path in the two cases where the fetch
// could not deliver in time.
type fwftQueue struct {
	queueBase

	bypass  bypassUnit
	fetched Word
	stage   outputStage
}

func (q *fwftQueue) Step(in StepInput) StepOutput {
	st := statusOf(q.cursor)
	wasEmpty := st.empty
	occBefore := q.cursor.occupancy()

	// Mux inputs as they were before this cycle's edge. The optional output
	// stage latches these so that the selection lands one cycle later.
	preBypass := q.bypass
	preFetched := q.fetched
	preValid := !wasEmpty

	writeCommit, readCommit := q.commit(in, st)
	data := q.mask(in.WriteData)

	if writeCommit {
		q.commitWrite(data)
	}

	q.bypass.update(writeCommit, readCommit, wasEmpty, occBefore, data)

	if fetchNeeded(readCommit, in.WriteRequest, wasEmpty, occBefore) {
		q.fetched = q.storage.read(q.nextReadAddr())
	}

	if readCommit {
		q.commitRead()
	}

	if in.Clear {
		q.clear()
	}

	post := statusOf(q.cursor)
	out := StepOutput{
		Full:  post.full,
		Empty: post.empty,
	}

	if q.extraStage {
		q.stage.latch(preFetched, preBypass.word, preBypass.active, preValid)
		out.ReadData, out.DataValid = q.stage.mux()
	} else {
		if q.bypass.active {
			out.ReadData = q.bypass.word
		} else {
			out.ReadData = q.fetched
		}

		out.DataValid = !post.empty
	}

	q.stepCount++
	q.invokeStepHooks(q, in, out, writeCommit, readCommit)

	return out
}
