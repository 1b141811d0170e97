package dataset

import (
	"io"
	"math/rand/v2"
)

// UniformSampler draws uniformly from the real interval [0, MaxVal] and
// truncates toward zero.
type UniformSampler struct {
	rng *rand.Rand
	buf []byte
}

func (s *UniformSampler) Init(rng *rand.Rand) {
	s.rng = rng
	s.buf = make([]byte, 0, 32)
}

func (s *UniformSampler) WriteValue(w io.Writer) error {
	v := s.rng.Float64() * maxValFloat
	s.buf = appendValue(s.buf[:0], v)
	s.buf = append(s.buf, '\n')
	_, err := w.Write(s.buf)
	return err
}

func (s *UniformSampler) Description() string {
	return "Uniform integers over [0, 2^64-1]"
}
