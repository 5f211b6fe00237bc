package verify_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fifosim/fifo"
	"github.com/sarchlab/fifosim/fifo/verify"
)

const randomizedSteps = 20000

func buildQueue(
	variant verify.Variant,
	capacity int,
	extraStage bool,
	strategy fifo.CursorStrategy,
	name string,
) fifo.Queue {
	b := fifo.MakeBuilder().
		WithCapacity(capacity).
		WithWordWidth(16).
		WithCursorStrategy(strategy)

	if extraStage {
		b = b.WithExtraOutputStage()
	}

	var q fifo.Queue
	var err error

	switch variant {
	case verify.VariantStandard:
		q, err = b.BuildStandard(name)
	case verify.VariantFWFT:
		q, err = b.BuildFWFT(name)
	case verify.VariantThreshold:
		q, err = b.BuildThreshold(name)
	}

	Expect(err).ToNot(HaveOccurred())

	return q
}

var _ = Describe("Scoreboard", func() {
	variants := map[string]verify.Variant{
		"standard":  verify.VariantStandard,
		"fwft":      verify.VariantFWFT,
		"threshold": verify.VariantThreshold,
	}

	strategies := map[string]fifo.CursorStrategy{
		"wrap pointer": fifo.CursorWrapPointer,
		"counting":     fifo.CursorCounting,
	}

	for variantName, variant := range variants {
		for _, extraStage := range []bool{false, true} {
			for strategyName, strategy := range strategies {
				variant := variant
				extraStage := extraStage
				strategy := strategy

				name := fmt.Sprintf(
					"should pass %d randomized cycles "+
						"(%s, extra stage %t, %s cursor)",
					randomizedSteps, variantName, extraStage, strategyName)

				It(name, func() {
					q := buildQueue(variant, 16, extraStage, strategy, "Dut")
					sb := verify.NewScoreboard(q, verify.Config{
						Variant:    variant,
						Capacity:   16,
						WordWidth:  16,
						ExtraStage: extraStage,
					})

					gen := verify.NewStimulusGenerator(42)
					gen.HighThreshold = 12
					gen.LowThreshold = 4

					Expect(sb.Run(gen, randomizedSteps)).To(Succeed())
				})
			}
		}
	}

	It("should survive bursty request densities", func() {
		q := buildQueue(verify.VariantFWFT, 4, false,
			fifo.CursorWrapPointer, "Dut")
		sb := verify.NewScoreboard(q, verify.Config{
			Variant:   verify.VariantFWFT,
			Capacity:  4,
			WordWidth: 16,
		})

		gen := verify.NewStimulusGenerator(7)
		gen.WriteDensity = 0.9
		gen.ReadDensity = 0.1
		Expect(sb.Run(gen, randomizedSteps)).To(Succeed())

		gen.WriteDensity = 0.1
		gen.ReadDensity = 0.9
		Expect(sb.Run(gen, randomizedSteps)).To(Succeed())
	})

	It("should catch a corrupted data path", func() {
		q := buildQueue(verify.VariantFWFT, 16, false,
			fifo.CursorWrapPointer, "Dut")
		corrupted := &corruptedQueue{Queue: q, countdown: 100}

		sb := verify.NewScoreboard(corrupted, verify.Config{
			Variant:   verify.VariantFWFT,
			Capacity:  16,
			WordWidth: 16,
		})

		err := sb.Run(verify.NewStimulusGenerator(42), randomizedSteps)

		Expect(err).To(HaveOccurred())

		var violation *verify.Violation
		Expect(err).To(BeAssignableToTypeOf(violation))
	})
})

// corruptedQueue flips a data bit after a countdown, to prove that the
// scoreboard notices.
type corruptedQueue struct {
	fifo.Queue
	countdown int
}

func (q *corruptedQueue) Step(in fifo.StepInput) fifo.StepOutput {
	out := q.Queue.Step(in)

	q.countdown--
	if q.countdown <= 0 && out.DataValid {
		out.ReadData ^= 1
	}

	return out
}

var _ = Describe("RunDifferential", func() {
	It("should find no divergence between the cursor representations", func() {
		for _, variant := range []verify.Variant{
			verify.VariantStandard,
			verify.VariantFWFT,
			verify.VariantThreshold,
		} {
			wrapQueue := buildQueue(variant, 16, false,
				fifo.CursorWrapPointer, "DutWrap")
			countQueue := buildQueue(variant, 16, false,
				fifo.CursorCounting, "DutCount")

			gen := verify.NewStimulusGenerator(1234)
			gen.HighThreshold = 12
			gen.LowThreshold = 4

			err := verify.RunDifferential(
				wrapQueue, countQueue, gen, randomizedSteps)
			Expect(err).ToNot(HaveOccurred())
		}
	})
})
