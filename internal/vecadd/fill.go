package vecadd

import "gonum.org/v1/gonum/mathext/prng"

// MaxValue is the inclusive upper bound of generated elements.
const MaxValue = 99

// DefaultSeed is the fixed seed used when none is configured.
const DefaultSeed uint64 = 12345

// Uniform draws integers uniformly from [0, MaxValue] using a 32-bit
// Mersenne Twister. The bounded draw uses Lemire's nearly divisionless
// reduction, so the stream is identical to uniform_int_distribution(0, 99)
// over mt19937 in common C++ standard libraries.
type Uniform struct {
	src *prng.MT19937
}

// NewUniform returns a generator seeded with seed.
func NewUniform(seed uint64) *Uniform {
	src := prng.NewMT19937()
	src.Seed(seed)
	return &Uniform{src: src}
}

// Next returns the next value in [0, MaxValue].
func (u *Uniform) Next() int {
	span := uint32(MaxValue + 1)
	product := uint64(u.src.Uint32()) * uint64(span)
	low := uint32(product)
	if low < span {
		threshold := -span % span
		for low < threshold {
			product = uint64(u.src.Uint32()) * uint64(span)
			low = uint32(product)
		}
	}
	return int(product >> 32)
}

// Fill returns two sequences of length n drawn from a generator seeded with
// seed. A is filled completely before B, so B depends on n even for a fixed
// seed.
func Fill(n int, seed uint64) (a, b []int) {
	if n < 0 {
		n = 0
	}
	u := NewUniform(seed)
	a = make([]int, n)
	for i := range a {
		a[i] = u.Next()
	}
	b = make([]int, n)
	for i := range b {
		b[i] = u.Next()
	}
	return a, b
}
