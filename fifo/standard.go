package fifo

// standardQueue is the plain fetch-and-register variant. The data of a
// committed read is registered during the commit cycle and observable after
// its edge; there is no fall-through path.
type standardQueue struct {
	queueBase

	dataReg   Word
	dataValid bool
	stage     outputStage
}

func (q *standardQueue) Step(in StepInput) StepOutput {
	out, writeCommit, readCommit := q.stepCore(in)

	q.invokeStepHooks(q, in, out, writeCommit, readCommit)

	return out
}

// stepCore advances the queue by one cycle without invoking hooks, so that
// the threshold variant can extend the outputs before its hooks fire.
func (q *standardQueue) stepCore(
	in StepInput,
) (out StepOutput, writeCommit, readCommit bool) {
	st := statusOf(q.cursor)

	preData := q.dataReg
	preValid := q.dataValid

	writeCommit, readCommit = q.commit(in, st)

	if writeCommit {
		q.commitWrite(q.mask(in.WriteData))
	}

	if readCommit {
		q.dataReg = q.storage.read(q.cursor.readAddr())
		q.commitRead()
	}

	q.dataValid = readCommit

	if in.Clear {
		q.clear()
	}

	post := statusOf(q.cursor)
	out = StepOutput{
		Full:  post.full,
		Empty: post.empty,
	}

	if q.extraStage {
		q.stage.latch(preData, 0, false, preValid)
		out.ReadData, out.DataValid = q.stage.mux()
	} else {
		out.ReadData = q.dataReg
		out.DataValid = q.dataValid
	}

	q.stepCount++

	return out, writeCommit, readCommit
}
