package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/fifosim/fifo/verify"
	"github.com/sarchlab/fifosim/monitoring"
	"github.com/sarchlab/fifosim/steprecording"
)

var traceFlags struct {
	queueFlags

	steps       int
	seed        int64
	output      string
	monitor     bool
	openBrowser bool
	monitorPort int
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Record the per-cycle boundary signals of a randomized run into SQLite",
	Run: func(_ *cobra.Command, _ []string) {
		runTrace()
	},
}

func init() {
	traceFlags.register(traceCmd)

	traceCmd.Flags().IntVar(&traceFlags.steps, "steps", 100000,
		"number of cycles to drive")
	traceCmd.Flags().Int64Var(&traceFlags.seed, "seed", 1,
		"stimulus seed, also settable through FIFOSIM_SEED")
	traceCmd.Flags().StringVar(&traceFlags.output, "output", "",
		"database name, a unique name is generated when empty")
	traceCmd.Flags().BoolVar(&traceFlags.monitor, "monitor", false,
		"serve the queue state over HTTP while tracing")
	traceCmd.Flags().BoolVar(&traceFlags.openBrowser, "open-browser", false,
		"open the monitor page in the default browser")
	traceCmd.Flags().IntVar(&traceFlags.monitorPort, "monitor-port", 0,
		"monitor port, a random port is used when 0")

	rootCmd.AddCommand(traceCmd)
}

func runTrace() {
	q, _, err := traceFlags.build("Queue")
	exitOnErr(err)

	recorder := steprecording.New(traceFlags.output)
	q.AcceptHook(steprecording.NewStepRecorder(recorder))

	var monitor *monitoring.Monitor
	if traceFlags.monitor {
		monitor = monitoring.NewMonitor()
		if traceFlags.monitorPort != 0 {
			monitor = monitor.WithPortNumber(traceFlags.monitorPort)
		}

		monitor.RegisterQueue(q)
		monitor.StartServer()

		if traceFlags.openBrowser {
			monitor.OpenWebPage()
		}
	}

	gen := verify.NewStimulusGenerator(envSeed(traceFlags.seed))

	for i := 0; i < traceFlags.steps; i++ {
		q.Step(gen.Next())

		if monitor != nil {
			monitor.Sample()
		}
	}

	recorder.Flush()

	fmt.Printf("Traced %d cycles of the %s variant.\n",
		traceFlags.steps, traceFlags.variant)
	atexit.Exit(0)
}
