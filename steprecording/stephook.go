package steprecording

import (
	"strings"

	"github.com/sarchlab/fifosim/fifo"
	"github.com/sarchlab/fifosim/sim/hooking"
	"github.com/sarchlab/fifosim/sim/naming"
)

// StepTrace is one recorded cycle of a queue's boundary signals.
type StepTrace struct {
	Step         uint64
	WriteRequest bool
	WriteData    uint64
	ReadRequest  bool
	Clear        bool
	Full         bool
	Empty        bool
	ReadData     uint64
	DataValid    bool
	Overflow     bool
	Underflow    bool
	High         bool
	Low          bool
	Occupancy    int
}

// A StepRecorder is a hook that records every step of the queues it is
// attached to, one table per queue.
type StepRecorder struct {
	recorder DataRecorder
	tables   map[string]string
}

// NewStepRecorder creates a StepRecorder writing through the given backend.
func NewStepRecorder(recorder DataRecorder) *StepRecorder {
	return &StepRecorder{
		recorder: recorder,
		tables:   make(map[string]string),
	}
}

// Func records a step hook invocation. Hook positions other than the step
// position are ignored.
func (r *StepRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != fifo.HookPosStep {
		return
	}

	info := ctx.Item.(fifo.StepHookInfo)
	queueName := ctx.Domain.(naming.Named).Name()

	tableName, ok := r.tables[queueName]
	if !ok {
		tableName = sqlTableName(queueName)
		r.recorder.CreateTable(tableName, StepTrace{})
		r.tables[queueName] = tableName
	}

	r.recorder.InsertData(tableName, StepTrace{
		Step:         info.StepCount,
		WriteRequest: info.Input.WriteRequest,
		WriteData:    uint64(info.Input.WriteData),
		ReadRequest:  info.Input.ReadRequest,
		Clear:        info.Input.Clear,
		Full:         info.Output.Full,
		Empty:        info.Output.Empty,
		ReadData:     uint64(info.Output.ReadData),
		DataValid:    info.Output.DataValid,
		Overflow:     info.Output.Overflow,
		Underflow:    info.Output.Underflow,
		High:         info.Output.High,
		Low:          info.Output.Low,
		Occupancy:    info.Occupancy,
	})
}

// sqlTableName turns a hierarchical queue name into a valid SQL identifier.
func sqlTableName(queueName string) string {
	replacer := strings.NewReplacer(".", "_", "[", "_", "]", "")
	return replacer.Replace(queueName)
}
