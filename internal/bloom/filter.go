// Package bloom provides a fixed-capacity Bloom filter with no false negatives.
package bloom

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// DefaultFalsePositiveRate is used when a caller passes a rate outside (0,1).
const DefaultFalsePositiveRate = 0.1

// Filter is a probabilistic set of strings. It is sized once at construction and
// never resized: inserting more than the expected count keeps the no-false-negative
// guarantee but lets the false-positive rate climb above the configured target.
//
// A Filter is not safe for concurrent use; callers serialize access.
type Filter struct {
	bits     []uint64
	size     uint64 // number of addressable bits
	probes   int
	expected int
	inserted uint64
}

// New creates a filter for n expected insertions at false-positive rate p.
//
//	m = ceil(-n*ln(p) / (ln 2)^2)
//	k = round(m/n * ln 2)
//
// Both are clamped to at least 1, so n <= 0 yields a one-bit filter that reports
// nothing until the first Add.
func New(p float64, n int) *Filter {
	if p <= 0 || p >= 1 {
		p = DefaultFalsePositiveRate
	}

	size, probes := Optimal(p, n)

	return &Filter{
		bits:     make([]uint64, (size+63)/64),
		size:     size,
		probes:   probes,
		expected: n,
	}
}

// Optimal returns the bit-array length and probe count for n items at rate p.
func Optimal(p float64, n int) (uint64, int) {
	if n <= 0 {
		return 1, 1
	}

	m := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	size := uint64(m)
	if size < 1 {
		size = 1
	}

	probes := int(math.Round(float64(size) / float64(n) * math.Ln2))
	if probes < 1 {
		probes = 1
	}

	return size, probes
}

// positions derives the probe indices from one 64-bit digest split into two
// 32-bit halves: h_i = lo + i*hi (mod m).
func (f *Filter) positions(item string, fn func(word uint64, mask uint64) bool) bool {
	sum := xxhash.Sum64String(item)
	lo := sum & 0xffffffff
	hi := (sum >> 32) | 1

	for i := 0; i < f.probes; i++ {
		h := (lo + uint64(i)*hi) % f.size
		if !fn(h/64, 1<<(h%64)) {
			return false
		}
	}

	return true
}

// Add inserts item. Bits are only ever set, so Add is idempotent.
func (f *Filter) Add(item string) {
	f.positions(item, func(word, mask uint64) bool {
		f.bits[word] |= mask
		return true
	})
	f.inserted++
}

// Contains reports whether item may be in the set. A false result is definitive.
func (f *Filter) Contains(item string) bool {
	return f.positions(item, func(word, mask uint64) bool {
		return f.bits[word]&mask != 0
	})
}

// Bits returns the bit-array length m.
func (f *Filter) Bits() uint64 { return f.size }

// Probes returns the probe count k.
func (f *Filter) Probes() int { return f.probes }

// Expected returns the insertion estimate the filter was sized for.
func (f *Filter) Expected() int { return f.expected }

// Inserted returns the number of Add calls, duplicates included.
func (f *Filter) Inserted() uint64 { return f.inserted }

// Saturated reports whether insertions have exceeded the sizing estimate, at
// which point the false-positive rate is no longer bounded by p.
func (f *Filter) Saturated() bool {
	return f.inserted > uint64(max(f.expected, 0))
}
