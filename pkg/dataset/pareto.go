package dataset

import (
	"io"
	"math/rand/v2"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ParetoSampler draws from a Pareto distribution with support > 0, adds 1
// and scales by MaxVal/2. Every value is at least MaxVal/2; the tail is
// unbounded above.
type ParetoSampler struct {
	// Alpha is the shape parameter. The registry configures 3.
	Alpha float64

	dist distuv.Pareto
	buf  []byte
}

func (s *ParetoSampler) Init(rng *rand.Rand) {
	// distuv sources come from x/exp/rand, so derive a seed from the
	// per-instance source instead of sharing it.
	s.dist = distuv.Pareto{
		Xm:    1,
		Alpha: s.Alpha,
		Src:   exprand.NewSource(rng.Uint64()),
	}
	s.buf = make([]byte, 0, 32)
}

func (s *ParetoSampler) WriteValue(w io.Writer) error {
	// Classical Pareto has support >= Xm; shifting by -Xm gives the
	// support > 0 form the corpus is defined over.
	draw := s.dist.Rand() - 1
	v := (draw + 1) * (maxValFloat / 2)
	s.buf = appendValue(s.buf[:0], v)
	s.buf = append(s.buf, '\n')
	_, err := w.Write(s.buf)
	return err
}

func (s *ParetoSampler) Description() string {
	return "Pareto(shape=3) integers shifted above 2^63"
}
