package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/fifosim/fifo"
	"github.com/sarchlab/fifosim/fifo/verify"
)

// queueFlags holds the queue configuration shared by the subcommands.
type queueFlags struct {
	variant    string
	capacity   int
	wordWidth  int
	extraStage bool
	cursor     string
}

func (f *queueFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.variant, "variant", "fwft",
		"queue variant: standard, fwft, or threshold")
	cmd.Flags().IntVar(&f.capacity, "capacity", 16,
		"number of slots, must be a power of two")
	cmd.Flags().IntVar(&f.wordWidth, "word-width", 32,
		"width of a data word in bits")
	cmd.Flags().BoolVar(&f.extraStage, "extra-stage", false,
		"add one cycle of output latency")
	cmd.Flags().StringVar(&f.cursor, "cursor", "wrap",
		"cursor representation: wrap or count")
}

func (f *queueFlags) build(name string) (fifo.Queue, verify.Config, error) {
	builder := fifo.MakeBuilder().
		WithCapacity(f.capacity).
		WithWordWidth(f.wordWidth)

	if f.extraStage {
		builder = builder.WithExtraOutputStage()
	}

	strategy, err := f.cursorStrategy()
	if err != nil {
		return nil, verify.Config{}, err
	}

	builder = builder.WithCursorStrategy(strategy)

	cfg := verify.Config{
		Capacity:   f.capacity,
		WordWidth:  f.wordWidth,
		ExtraStage: f.extraStage,
	}

	var q fifo.Queue

	switch f.variant {
	case "standard":
		cfg.Variant = verify.VariantStandard
		q, err = builder.BuildStandard(name)
	case "fwft":
		cfg.Variant = verify.VariantFWFT
		q, err = builder.BuildFWFT(name)
	case "threshold":
		cfg.Variant = verify.VariantThreshold
		q, err = builder.BuildThreshold(name)
	default:
		err = fmt.Errorf("unknown variant %q", f.variant)
	}

	if err != nil {
		return nil, verify.Config{}, err
	}

	return q, cfg, nil
}

func (f *queueFlags) cursorStrategy() (fifo.CursorStrategy, error) {
	switch f.cursor {
	case "wrap":
		return fifo.CursorWrapPointer, nil
	case "count":
		return fifo.CursorCounting, nil
	default:
		return 0, fmt.Errorf("unknown cursor representation %q", f.cursor)
	}
}

// envSeed returns the seed from the FIFOSIM_SEED environment variable, or
// the fallback when it is not set.
func envSeed(fallback int64) int64 {
	v := os.Getenv("FIFOSIM_SEED")
	if v == "" {
		return fallback
	}

	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring invalid FIFOSIM_SEED %q\n", v)
		return fallback
	}

	return seed
}
