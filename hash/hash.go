// Package hash implements the digest primitive and word codec that the rest
// of the identity engine is built on (dacite spec §4.1, §4.2).
package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Size is the length in bytes of an H.
const Size = 32

// H is an opaque 256-bit content hash. The zero value is the all-zero hash
// (SHA-256 of nothing never collides with it: the empty-input digest has
// nonzero bytes).
type H [Size]byte

// Sum returns the SHA-256 digest of data.
func Sum(data []byte) H {
	return H(sha256.Sum256(data))
}

// Bytes returns the 32-byte big-endian representation of h.
func (h H) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, h[:])
	return b
}

// Hex returns the lowercase hex encoding of h, the wire format named in §6.
func (h H) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements fmt.Stringer as a human-readable, hex-only rendering.
func (h H) String() string {
	return h.Hex()
}

// Parse decodes a lowercase (or uppercase) hex string into an H.
func Parse(s string) (H, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return H{}, fmt.Errorf("hash: invalid hex: %w", err)
	}
	if len(b) != Size {
		return H{}, fmt.Errorf("hash: expected %d bytes, got %d", Size, len(b))
	}
	var h H
	copy(h[:], b)
	return h, nil
}

// ToWords splits h into four 64-bit big-endian words, w0 most significant
// (bytes 0-7) through w3 least significant (bytes 24-31), per §3/§4.2.
func (h H) ToWords() (w0, w1, w2, w3 uint64) {
	w0 = binary.BigEndian.Uint64(h[0:8])
	w1 = binary.BigEndian.Uint64(h[8:16])
	w2 = binary.BigEndian.Uint64(h[16:24])
	w3 = binary.BigEndian.Uint64(h[24:32])
	return
}

// FromWords is the exact inverse of ToWords: FromWords(h.ToWords()) == h for
// every H, byte-for-byte.
func FromWords(w0, w1, w2, w3 uint64) H {
	var h H
	binary.BigEndian.PutUint64(h[0:8], w0)
	binary.BigEndian.PutUint64(h[8:16], w1)
	binary.BigEndian.PutUint64(h[16:24], w2)
	binary.BigEndian.PutUint64(h[24:32], w3)
	return h
}
