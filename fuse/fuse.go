// Package fuse implements the associative, non-commutative 256-bit mixer
// that the identity engine uses to combine hashes (dacite spec §4.3). Its
// word layout is co-designed with the HAMT indexer in package hamt: fuse
// concentrates the most mixing in w0, and hamt reads its descent bits from
// the top of w0 downward.
package fuse

import (
	"errors"

	"github.com/dacite/dacite/hash"
	"github.com/dacite/dacite/metrics"
)

// ErrLowEntropy is returned by Fuse when its output satisfies the §4.3
// low-entropy predicate: the low 32 bits of all four words are zero.
var ErrLowEntropy = errors.New("fuse: low-entropy output")

// Fuse combines a and b into a single 256-bit hash. All arithmetic is
// 64-bit unsigned wrapping. It fails with ErrLowEntropy if the result would
// cross the API boundary with 128 degenerate zero bits; see LowEntropy.
func Fuse(a, b hash.H) (hash.H, error) {
	metrics.FuseTotal.Inc()
	out := FuseUnchecked(a, b)
	if LowEntropy(out) {
		metrics.LowEntropyTotal.Inc()
		return hash.H{}, ErrLowEntropy
	}
	return out, nil
}

// FuseUnchecked performs the mix without the low-entropy check. It exists
// for internal reductions (e.g. a left-fold over many children) that will
// themselves be validated once at the boundary by Fuse; every hash that
// actually leaves the engine must have gone through Fuse.
func FuseUnchecked(a, b hash.H) hash.H {
	a0, a1, a2, a3 := a.ToWords()
	b0, b1, b2, b3 := b.ToWords()

	c0 := a0 + a3*b2 + b0
	c1 := a1 + b1
	c2 := a2 + b2
	c3 := a3 + b3

	return hash.FromWords(c0, c1, c2, c3)
}

// LowEntropy reports whether h has its low 32 bits zero in all four words
// (128 bits of zero in aggregate) — the degenerate pattern Fuse rejects.
func LowEntropy(h hash.H) bool {
	w0, w1, w2, w3 := h.ToWords()
	const mask = 0xFFFFFFFF
	return w0&mask == 0 && w1&mask == 0 && w2&mask == 0 && w3&mask == 0
}
