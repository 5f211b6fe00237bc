package fifo

import (
	"github.com/sarchlab/fifosim/sim/naming"
)

// A Builder creates queue controllers. The configuration is fixed for the
// lifetime of the queue it builds.
type Builder struct {
	capacity   int
	wordWidth  int
	extraStage bool
	strategy   CursorStrategy
}

// MakeBuilder creates a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		capacity:  16,
		wordWidth: 32,
		strategy:  CursorWrapPointer,
	}
}

// WithCapacity sets the number of slots. The capacity must be a power of
// two.
func (b Builder) WithCapacity(n int) Builder {
	b.capacity = n
	return b
}

// WithWordWidth sets the width of a data word in bits, between 1 and 64.
func (b Builder) WithWordWidth(w int) Builder {
	b.wordWidth = w
	return b
}

// WithExtraOutputStage adds one cycle of output latency in exchange for
// propagation-delay margin on the output path.
func (b Builder) WithExtraOutputStage() Builder {
	b.extraStage = true
	return b
}

// WithCursorStrategy selects the internal cursor representation.
func (b Builder) WithCursorStrategy(s CursorStrategy) Builder {
	b.strategy = s
	return b
}

// BuildStandard builds a queue with one-cycle read latency.
func (b Builder) BuildStandard(name string) (Queue, error) {
	base, err := b.base(name)
	if err != nil {
		return nil, err
	}

	return &standardQueue{queueBase: base}, nil
}

// BuildFWFT builds a first-word-fall-through queue.
func (b Builder) BuildFWFT(name string) (Queue, error) {
	base, err := b.base(name)
	if err != nil {
		return nil, err
	}

	return &fwftQueue{queueBase: base}, nil
}

// BuildThreshold builds a standard-latency queue with watermark and
// overflow/underflow reporting.
func (b Builder) BuildThreshold(name string) (Queue, error) {
	base, err := b.base(name)
	if err != nil {
		return nil, err
	}

	return &thresholdQueue{
		standardQueue: standardQueue{queueBase: base},
	}, nil
}

func (b Builder) base(name string) (queueBase, error) {
	naming.NameMustBeValid(name)

	if b.capacity <= 0 || b.capacity&(b.capacity-1) != 0 {
		return queueBase{}, &ConfigError{
			QueueName: name,
			Err:       ErrCapacityNotPowerOfTwo,
		}
	}

	if b.wordWidth < 1 || b.wordWidth > 64 {
		return queueBase{}, &ConfigError{
			QueueName: name,
			Err:       ErrBadWordWidth,
		}
	}

	return queueBase{
		NamedBase:  naming.MakeNamedBase(name),
		capacity:   b.capacity,
		wordMask:   ^Word(0) >> (64 - b.wordWidth),
		extraStage: b.extraStage,
		storage:    newStorage(b.capacity),
		cursor:     newCursor(b.strategy, b.capacity),
	}, nil
}
