package verify_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fifosim/fifo"
	"github.com/sarchlab/fifosim/fifo/verify"
)

var _ = Describe("ShadowQueue", func() {
	var s *verify.ShadowQueue

	BeforeEach(func() {
		s = verify.NewShadowQueue(4, 8)
	})

	It("should commit writes and reads in order", func() {
		r := s.Apply(fifo.StepInput{WriteRequest: true, WriteData: 0x11})
		Expect(r.WriteCommit).To(BeTrue())
		Expect(s.Len()).To(Equal(1))
		Expect(s.Front()).To(Equal(fifo.Word(0x11)))

		r = s.Apply(fifo.StepInput{ReadRequest: true})
		Expect(r.ReadCommit).To(BeTrue())
		Expect(r.Dequeued).To(Equal(fifo.Word(0x11)))
		Expect(s.Len()).To(Equal(0))
	})

	It("should reject a write while full and report overflow", func() {
		for i := 0; i < 4; i++ {
			s.Apply(fifo.StepInput{WriteRequest: true, WriteData: fifo.Word(i)})
		}

		r := s.Apply(fifo.StepInput{WriteRequest: true, WriteData: 0xEE})

		Expect(r.WriteCommit).To(BeFalse())
		Expect(r.Overflow).To(BeTrue())
		Expect(s.Len()).To(Equal(4))
	})

	It("should reject a read while empty and report underflow", func() {
		r := s.Apply(fifo.StepInput{ReadRequest: true})

		Expect(r.ReadCommit).To(BeFalse())
		Expect(r.Underflow).To(BeTrue())
	})

	It("should let only the read commit on write+read while full", func() {
		for i := 0; i < 4; i++ {
			s.Apply(fifo.StepInput{WriteRequest: true, WriteData: fifo.Word(i)})
		}

		r := s.Apply(fifo.StepInput{
			WriteRequest: true,
			WriteData:    0xEE,
			ReadRequest:  true,
		})

		Expect(r.ReadCommit).To(BeTrue())
		Expect(r.WriteCommit).To(BeFalse())
		Expect(r.Overflow).To(BeTrue())
		Expect(s.Len()).To(Equal(3))
	})

	It("should let only the write commit on write+read while empty", func() {
		r := s.Apply(fifo.StepInput{
			WriteRequest: true,
			WriteData:    0x11,
			ReadRequest:  true,
		})

		Expect(r.WriteCommit).To(BeTrue())
		Expect(r.ReadCommit).To(BeFalse())
		Expect(r.Underflow).To(BeTrue())
		Expect(s.Len()).To(Equal(1))
	})

	It("should drop everything on clear", func() {
		s.Apply(fifo.StepInput{WriteRequest: true, WriteData: 0x11})
		s.Apply(fifo.StepInput{WriteRequest: true, WriteData: 0x22})

		s.Apply(fifo.StepInput{Clear: true})

		Expect(s.Len()).To(Equal(0))
	})

	It("should mask words to the configured width", func() {
		s.Apply(fifo.StepInput{WriteRequest: true, WriteData: 0x1FF})

		Expect(s.Front()).To(Equal(fifo.Word(0xFF)))
	})
})
