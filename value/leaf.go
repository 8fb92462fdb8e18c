// Package value implements dacite's tagged-union Value type and the
// identity rules of spec §4.4, §4.6 and §4.7: value_hash = fuse(type_hash,
// data_hash), with data_hash computed differently per kind (leaf bytes,
// sequence fold, map fold).
package value

import (
	"encoding/binary"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/dacite/dacite/fuse"
	"github.com/dacite/dacite/hash"
	"github.com/dacite/dacite/metrics"
	"github.com/dacite/dacite/typeid"
)

// Value is any dacite value: a leaf, a sequence (string/blob/vector), or a
// map. Hash computes its value_hash, propagating fuse.ErrLowEntropy should
// any fuse call along the way land in the rejected subspace (spec §7: the
// error is surfaced, never swallowed).
type Value interface {
	Hash() (hash.H, error)
}

func leafHash(typeName string, canonical []byte) (hash.H, error) {
	return valueHash(typeName, hash.Sum(canonical))
}

func valueHash(typeName string, dataHash hash.H) (hash.H, error) {
	metrics.ValueHashesTotal.WithLabelValues(typeName).Inc()
	return fuse.Fuse(typeid.Hash(typeName), dataHash)
}

// foldFuse implements §4.7's reduce_left(fuse, ...) over already-computed
// child hashes, falling back to SHA-256(empty) for the empty case (§4.4's
// leaf convention, reused so an empty vector and an empty string still get
// distinct value hashes via distinct type hashes). Collection hashers do
// not catch ErrLowEntropy (§7): a degenerate mid-fold propagates.
func foldFuse(kind string, hs []hash.H) (hash.H, error) {
	metrics.FoldLength.WithLabelValues(kind).Observe(float64(len(hs)))
	if len(hs) == 0 {
		return hash.Sum(nil), nil
	}
	acc := hs[0]
	for _, h := range hs[1:] {
		var err error
		acc, err = fuse.Fuse(acc, h)
		if err != nil {
			return hash.H{}, err
		}
	}
	return acc, nil
}

// Null is the nil leaf value; its canonical byte form is the empty
// sequence (§4.6).
type Null struct{}

func (Null) Hash() (hash.H, error) { return leafHash(typeid.Null, nil) }

// Bool is the boolean leaf; canonical form is a single byte, 0x00 or 0x01.
type Bool bool

func (b Bool) Hash() (hash.H, error) {
	if b {
		return leafHash(typeid.Bool, []byte{0x01})
	}
	return leafHash(typeid.Bool, []byte{0x00})
}

// Int8/Int16/Int32/Int64 are signed integer leaves whose canonical form is
// big-endian two's complement at their declared width.
type Int8 int8
type Int16 int16
type Int32 int32
type Int64 int64

func (v Int8) Hash() (hash.H, error) { return leafHash(typeid.I8, []byte{byte(v)}) }

func (v Int16) Hash() (hash.H, error) {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return leafHash(typeid.I16, b)
}

func (v Int32) Hash() (hash.H, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return leafHash(typeid.I32, b)
}

func (v Int64) Hash() (hash.H, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return leafHash(typeid.I64, b)
}

// Uint8/Uint16/Uint32/Uint64 are unsigned integer leaves, canonical
// big-endian at their declared width.
type Uint8 uint8
type Uint16 uint16
type Uint32 uint32
type Uint64 uint64

func (v Uint8) Hash() (hash.H, error) { return leafHash(typeid.U8, []byte{byte(v)}) }

func (v Uint16) Hash() (hash.H, error) {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return leafHash(typeid.U16, b)
}

func (v Uint32) Hash() (hash.H, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return leafHash(typeid.U32, b)
}

func (v Uint64) Hash() (hash.H, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return leafHash(typeid.U64, b)
}

// Int128/Int256/Uint128/Uint256 cover the widths spec §9's Open Question
// resolves onto math/big: a fixed-width, zero/sign-extended big-endian
// buffer is what actually gets hashed, so two implementations agree
// byte-for-byte regardless of how they represent the value internally.
type Int128 struct{ V *big.Int }
type Int256 struct{ V *big.Int }
type Uint128 struct{ V *big.Int }
type Uint256 struct{ V *big.Int }

func (v Int128) Hash() (hash.H, error) { return leafHash(typeid.I128, signedWidth(16, v.V)) }
func (v Int256) Hash() (hash.H, error) { return leafHash(typeid.I256, signedWidth(32, v.V)) }
func (v Uint128) Hash() (hash.H, error) {
	return leafHash(typeid.U128, unsignedWidth(16, v.V))
}
func (v Uint256) Hash() (hash.H, error) {
	return leafHash(typeid.U256, unsignedWidth(32, v.V))
}

func unsignedWidth(width int, v *big.Int) []byte {
	out := make([]byte, width)
	b := v.Bytes()
	copy(out[width-len(b):], b)
	return out
}

func signedWidth(width int, v *big.Int) []byte {
	if v.Sign() >= 0 {
		return unsignedWidth(width, v)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	twos := new(big.Int).Add(mod, v)
	return unsignedWidth(width, twos)
}

// canonicalNaN64/32 are the single quiet-NaN bit patterns every NaN
// payload collapses to before hashing (§4.6, Open Question resolved in
// DESIGN.md: the pattern math.NaN()/float32(math.NaN()) actually produce).
var (
	canonicalNaN64 = math.Float64bits(math.NaN())
	canonicalNaN32 = math.Float32bits(float32(math.NaN()))
)

// Float32/Float64 are IEEE-754 leaves, canonical big-endian bytes with NaN
// payloads canonicalized so invariant #2 (structural equality implies hash
// equality) holds across distinct NaN bit patterns.
type Float32 float32
type Float64 float64

func (v Float32) Hash() (hash.H, error) {
	bits := math.Float32bits(float32(v))
	if math.IsNaN(float64(v)) {
		bits = canonicalNaN32
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, bits)
	return leafHash(typeid.F32, b)
}

func (v Float64) Hash() (hash.H, error) {
	bits := math.Float64bits(float64(v))
	if math.IsNaN(float64(v)) {
		bits = canonicalNaN64
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, bits)
	return leafHash(typeid.F64, b)
}

// Char is a single Unicode code point; canonical form is its UTF-8
// encoding (1-4 bytes).
type Char rune

func (v Char) Hash() (hash.H, error) {
	r := rune(v)
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	buf := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(buf, r)
	return leafHash(typeid.Char, buf)
}
