package dataset

import (
	"io"
	"math"
	"math/rand/v2"
)

// NormalSampler draws from the standard normal distribution, scales by
// MaxVal, truncates toward zero and takes the absolute value. Roughly a
// third of all draws land above MaxVal; there is deliberately no ceiling,
// clamping would change the shape of the corpus.
type NormalSampler struct {
	rng *rand.Rand
	buf []byte
}

func (s *NormalSampler) Init(rng *rand.Rand) {
	s.rng = rng
	s.buf = make([]byte, 0, 32)
}

func (s *NormalSampler) WriteValue(w io.Writer) error {
	v := math.Abs(s.rng.NormFloat64() * maxValFloat)
	s.buf = appendValue(s.buf[:0], v)
	s.buf = append(s.buf, '\n')
	_, err := w.Write(s.buf)
	return err
}

func (s *NormalSampler) Description() string {
	return "Absolute scaled standard-normal integers (unbounded above)"
}
