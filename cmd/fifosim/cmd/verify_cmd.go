package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/fifosim/fifo"
	"github.com/sarchlab/fifosim/fifo/verify"
	"github.com/sarchlab/fifosim/sim/naming"
)

var verifyFlags struct {
	queueFlags

	steps        int
	seed         int64
	writeDensity float64
	readDensity  float64
	clearProb    float64
	high         int
	low          int
	differential bool
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Drive a queue with randomized requests and check it against the reference model",
	Run: func(_ *cobra.Command, _ []string) {
		runVerify()
	},
}

func init() {
	verifyFlags.register(verifyCmd)

	verifyCmd.Flags().IntVar(&verifyFlags.steps, "steps", 1000000,
		"number of cycles to drive")
	verifyCmd.Flags().Int64Var(&verifyFlags.seed, "seed", 1,
		"stimulus seed, also settable through FIFOSIM_SEED")
	verifyCmd.Flags().Float64Var(&verifyFlags.writeDensity,
		"write-density", 0.5, "per-cycle write request probability")
	verifyCmd.Flags().Float64Var(&verifyFlags.readDensity,
		"read-density", 0.5, "per-cycle read request probability")
	verifyCmd.Flags().Float64Var(&verifyFlags.clearProb,
		"clear-probability", 0.01, "per-cycle clear probability")
	verifyCmd.Flags().IntVar(&verifyFlags.high, "high-threshold", 12,
		"high watermark presented to the threshold variant")
	verifyCmd.Flags().IntVar(&verifyFlags.low, "low-threshold", 4,
		"low watermark presented to the threshold variant")
	verifyCmd.Flags().BoolVar(&verifyFlags.differential, "differential",
		false, "also check the two cursor representations against each other")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify() {
	q, cfg, err := verifyFlags.build("Queue")
	exitOnErr(err)

	gen := newGenerator()

	sb := verify.NewScoreboard(q, cfg)
	err = sb.Run(gen, verifyFlags.steps)
	exitOnErr(err)

	if verifyFlags.differential {
		runDifferential()
	}

	fmt.Printf("Verified %d cycles of the %s variant.\n",
		verifyFlags.steps, verifyFlags.variant)
}

func runDifferential() {
	queues := make([]fifo.Queue, 0, 2)

	for i, cursor := range []string{"wrap", "count"} {
		f := withCursor(cursor)

		q, _, err := f.build(
			naming.BuildNameWithIndex("Differential", "Queue", i))
		exitOnErr(err)

		queues = append(queues, q)
	}

	gen := newGenerator()

	err := verify.RunDifferential(
		queues[0], queues[1], gen, verifyFlags.steps)
	exitOnErr(err)
}

func withCursor(cursor string) queueFlags {
	f := verifyFlags.queueFlags
	f.cursor = cursor

	return f
}

func newGenerator() *verify.StimulusGenerator {
	gen := verify.NewStimulusGenerator(envSeed(verifyFlags.seed))
	gen.WriteDensity = verifyFlags.writeDensity
	gen.ReadDensity = verifyFlags.readDensity
	gen.ClearProbability = verifyFlags.clearProb
	gen.HighThreshold = verifyFlags.high
	gen.LowThreshold = verifyFlags.low

	return gen
}

func exitOnErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
}
