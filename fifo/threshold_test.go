package fifo

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func buildThreshold(capacity int) Queue {
	q, err := MakeBuilder().
		WithCapacity(capacity).
		WithWordWidth(8).
		BuildThreshold("Queue")
	Expect(err).ToNot(HaveOccurred())

	return q
}

func withThresholds(in StepInput, high, low int) StepInput {
	in.HighThreshold = high
	in.LowThreshold = low

	return in
}

var _ = Describe("Threshold Queue", func() {
	It("should pulse overflow exactly on the rejected write", func() {
		q := buildThreshold(4)

		for i := 0; i < 4; i++ {
			out := q.Step(write(Word(i)))
			Expect(out.Overflow).To(BeFalse())
		}
		Expect(q.Occupancy()).To(Equal(4))

		out := q.Step(write(0xEE))
		Expect(out.Overflow).To(BeTrue())
		Expect(q.Occupancy()).To(Equal(4))

		out = q.Step(idle())
		Expect(out.Overflow).To(BeFalse())
	})

	It("should pulse underflow exactly on the rejected read", func() {
		q := buildThreshold(4)

		out := q.Step(read())
		Expect(out.Underflow).To(BeTrue())
		Expect(out.DataValid).To(BeFalse())
		Expect(q.Occupancy()).To(Equal(0))

		out = q.Step(idle())
		Expect(out.Underflow).To(BeFalse())
	})

	It("should report overflow for a write rejected beside a read", func() {
		q := buildThreshold(4)

		for i := 0; i < 4; i++ {
			q.Step(write(Word(i)))
		}

		out := q.Step(writeRead(0xEE))

		// The read commits, the write is rejected and reported.
		Expect(out.Overflow).To(BeTrue())
		Expect(q.Occupancy()).To(Equal(3))
	})

	It("should track the watermarks against the occupancy", func() {
		q := buildThreshold(8)

		out := q.Step(withThresholds(idle(), 6, 2))
		Expect(out.High).To(BeFalse())
		Expect(out.Low).To(BeTrue())

		for i := 0; i < 6; i++ {
			out = q.Step(withThresholds(write(Word(i)), 6, 2))
		}
		Expect(out.High).To(BeTrue())
		Expect(out.Low).To(BeFalse())

		for i := 0; i < 4; i++ {
			out = q.Step(withThresholds(read(), 6, 2))
		}
		Expect(out.High).To(BeFalse())
		Expect(out.Low).To(BeTrue())
	})

	It("should re-evaluate thresholds every cycle", func() {
		q := buildThreshold(8)

		for i := 0; i < 3; i++ {
			q.Step(write(Word(i)))
		}

		out := q.Step(withThresholds(idle(), 3, 0))
		Expect(out.High).To(BeTrue())

		out = q.Step(withThresholds(idle(), 4, 3))
		Expect(out.High).To(BeFalse())
		Expect(out.Low).To(BeTrue())
	})

	It("should deliver reads with one cycle of latency", func() {
		q := buildThreshold(4)

		q.Step(write(0x5A))

		out := q.Step(read())
		Expect(out.DataValid).To(BeTrue())
		Expect(out.ReadData).To(Equal(Word(0x5A)))
	})
})
