package verify

import (
	"math/rand"

	"github.com/sarchlab/fifosim/fifo"
)

// A StimulusGenerator produces randomized per-cycle request sequences from a
// seeded source, so that failing runs can be replayed.
type StimulusGenerator struct {
	rand *rand.Rand

	// WriteDensity and ReadDensity are the per-cycle probabilities of
	// asserting the write and read requests.
	WriteDensity float64
	ReadDensity  float64

	// ClearProbability is the per-cycle probability of asserting clear.
	ClearProbability float64

	// HighThreshold and LowThreshold are presented on every generated
	// input, for driving the threshold variant.
	HighThreshold int
	LowThreshold  int
}

// NewStimulusGenerator creates a generator with balanced request densities
// and occasional clears.
func NewStimulusGenerator(seed int64) *StimulusGenerator {
	return &StimulusGenerator{
		rand:             rand.New(rand.NewSource(seed)),
		WriteDensity:     0.5,
		ReadDensity:      0.5,
		ClearProbability: 0.01,
	}
}

// Next generates the requests for one cycle.
func (g *StimulusGenerator) Next() fifo.StepInput {
	return fifo.StepInput{
		WriteRequest:  g.rand.Float64() < g.WriteDensity,
		WriteData:     fifo.Word(g.rand.Uint64()),
		ReadRequest:   g.rand.Float64() < g.ReadDensity,
		Clear:         g.rand.Float64() < g.ClearProbability,
		HighThreshold: g.HighThreshold,
		LowThreshold:  g.LowThreshold,
	}
}
