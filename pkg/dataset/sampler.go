package dataset

import (
	"io"
	"math/big"
	"math/rand/v2"
	"strconv"
)

// MaxVal is the inclusive ceiling used to scale raw draws into output values.
const MaxVal uint64 = 1<<64 - 1

// maxValFloat is MaxVal rounded to float64 precision (exactly 2^64). All
// scaling happens in float64, matching the statistical shape of the corpora
// downstream benchmarks were tuned against.
const maxValFloat = float64(MaxVal)

// twoPow64 is the first float64 value that no longer fits in a uint64.
const twoPow64 = 1 << 64

// Sampler produces one dataset value per call, formatted as a base-10
// integer line.
type Sampler interface {
	// Init binds a per-instance random source. This keeps parallel
	// generation off the shared global source.
	Init(rng *rand.Rand)

	// WriteValue draws the next value, transforms it, and writes its
	// decimal representation plus a trailing newline. The line is emitted
	// in a single Write call.
	WriteValue(w io.Writer) error

	// Description returns a human-readable description of the distribution
	Description() string
}

// appendValue appends the base-10 representation of f truncated toward
// zero. f must be non-negative. Values at or above 2^64 take a big-integer
// path; the normal and pareto tails are unbounded and must not be clamped.
func appendValue(buf []byte, f float64) []byte {
	if f < twoPow64 {
		return strconv.AppendUint(buf, uint64(f), 10)
	}
	z, _ := big.NewFloat(f).Int(nil)
	return z.Append(buf, 10)
}
