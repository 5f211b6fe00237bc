package fifo

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func buildStandard(capacity int, extraStage bool) Queue {
	b := MakeBuilder().
		WithCapacity(capacity).
		WithWordWidth(8)

	if extraStage {
		b = b.WithExtraOutputStage()
	}

	q, err := b.BuildStandard("Queue")
	Expect(err).ToNot(HaveOccurred())

	return q
}

var _ = Describe("Standard Queue", func() {
	var q Queue

	BeforeEach(func() {
		q = buildStandard(8, false)
	})

	It("should not fall through", func() {
		out := q.Step(write(0x5A))

		Expect(out.Empty).To(BeFalse())
		Expect(out.DataValid).To(BeFalse())
	})

	It("should deliver a committed read after one cycle", func() {
		q.Step(write(0x5A))

		out := q.Step(read())

		Expect(out.Empty).To(BeTrue())
		Expect(out.DataValid).To(BeTrue())
		Expect(out.ReadData).To(Equal(Word(0x5A)))
	})

	It("should preserve write order", func() {
		for i := 0; i < 5; i++ {
			q.Step(write(Word(0x40 + i)))
		}

		seen := []Word{}
		for i := 0; i < 5; i++ {
			out := q.Step(read())
			Expect(out.DataValid).To(BeTrue())
			seen = append(seen, out.ReadData)
		}

		Expect(seen).To(Equal(
			[]Word{0x40, 0x41, 0x42, 0x43, 0x44}))
		Expect(q.Occupancy()).To(Equal(0))
	})

	It("should keep occupancy on simultaneous write and read", func() {
		q.Step(write(0x11))

		out := q.Step(writeRead(0x22))

		Expect(q.Occupancy()).To(Equal(1))
		Expect(out.DataValid).To(BeTrue())
		Expect(out.ReadData).To(Equal(Word(0x11)))
	})

	It("should silently drop a write while full", func() {
		for i := 0; i < 8; i++ {
			q.Step(write(Word(i)))
		}

		out := q.Step(write(0xEE))

		Expect(out.Full).To(BeTrue())
		Expect(out.Overflow).To(BeFalse())
		Expect(q.Occupancy()).To(Equal(8))
	})

	It("should silently drop a read while empty", func() {
		out := q.Step(read())

		Expect(out.Empty).To(BeTrue())
		Expect(out.Underflow).To(BeFalse())
		Expect(out.DataValid).To(BeFalse())
	})

	It("should empty on clear", func() {
		q.Step(write(0x11))
		q.Step(write(0x22))

		out := q.Step(StepInput{Clear: true})

		Expect(out.Empty).To(BeTrue())
		Expect(q.Occupancy()).To(Equal(0))
	})
})

var _ = Describe("Standard Queue with extra output stage", func() {
	var q Queue

	BeforeEach(func() {
		q = buildStandard(8, true)
	})

	It("should deliver a committed read after two cycles", func() {
		q.Step(write(0x5A))

		out := q.Step(read())
		Expect(out.DataValid).To(BeFalse())

		out = q.Step(idle())
		Expect(out.DataValid).To(BeTrue())
		Expect(out.ReadData).To(Equal(Word(0x5A)))
	})

	It("should let an in-flight word surface on the clear cycle", func() {
		q.Step(write(0x5A))
		q.Step(write(0x77))
		q.Step(read())

		out := q.Step(StepInput{Clear: true})

		Expect(out.Empty).To(BeTrue())
		Expect(out.DataValid).To(BeTrue())
		Expect(out.ReadData).To(Equal(Word(0x5A)))
	})
})
