package fifo

import (
	"github.com/sarchlab/fifosim/sim/hooking"
	"github.com/sarchlab/fifosim/sim/naming"
)

// queueBase carries the state and the commit rules shared by all variants.
type queueBase struct {
	hooking.HookableBase
	naming.NamedBase

	capacity   int
	wordMask   Word
	extraStage bool

	storage *storage
	cursor  cursor

	stepCount uint64
}

func (q *queueBase) Occupancy() int {
	return q.cursor.occupancy()
}

func (q *queueBase) Capacity() int {
	return q.capacity
}

// commit applies the commit rules for one cycle: a write commits iff
// requested and not full, a read commits iff requested and not empty. Clear
// takes priority and suppresses both.
func (q *queueBase) commit(
	in StepInput,
	st status,
) (writeCommit, readCommit bool) {
	if in.Clear {
		return false, false
	}

	writeCommit = in.WriteRequest && !st.full
	readCommit = in.ReadRequest && !st.empty

	return writeCommit, readCommit
}

// commitWrite stores the word at the write cursor and advances the cursor.
func (q *queueBase) commitWrite(w Word) {
	q.storage.write(q.cursor.writeAddr(), w)
	q.cursor.advanceWrite()
}

func (q *queueBase) commitRead() {
	q.cursor.advanceRead()
}

// clear returns the cursors to the origin. Stored words become unreachable,
// not erased.
func (q *queueBase) clear() {
	q.cursor.reset()
}

func (q *queueBase) mask(w Word) Word {
	return w & q.wordMask
}

// nextReadAddr is where the lookahead fetch lands.
func (q *queueBase) nextReadAddr() int {
	return (q.cursor.readAddr() + 1) & (q.capacity - 1)
}

func (q *queueBase) invokeStepHooks(
	domain hooking.Hookable,
	in StepInput,
	out StepOutput,
	writeCommit, readCommit bool,
) {
	if q.NumHooks() == 0 {
		return
	}

	if writeCommit {
		q.InvokeHook(hooking.HookCtx{
			Domain: domain,
			Pos:    HookPosWriteCommit,
			Item:   q.mask(in.WriteData),
		})
	}

	if readCommit {
		q.InvokeHook(hooking.HookCtx{
			Domain: domain,
			Pos:    HookPosReadCommit,
			Item:   q.cursor.occupancy(),
		})
	}

	if in.Clear {
		q.InvokeHook(hooking.HookCtx{
			Domain: domain,
			Pos:    HookPosClear,
		})
	}

	q.InvokeHook(hooking.HookCtx{
		Domain: domain,
		Pos:    HookPosStep,
		Item: StepHookInfo{
			StepCount: q.stepCount,
			Input:     in,
			Output:    out,
			Occupancy: q.cursor.occupancy(),
		},
	})
}
