// Package typeid implements the open type registry of dacite spec §4.5: a
// mapping from canonical UTF-8 type names to 256-bit type hashes. Built-in
// names are precomputed at init; extension names hash on demand with no
// central coordination.
package typeid

import "github.com/dacite/dacite/hash"

// Built-in canonical type names, exact UTF-8 bytes per spec §6. These
// define the built-in type hashes and must never change once shipped.
const (
	Null   = "dacite.core/null"
	Bool   = "dacite.core/bool"
	I8     = "dacite.core/i8"
	I16    = "dacite.core/i16"
	I32    = "dacite.core/i32"
	I64    = "dacite.core/i64"
	I128   = "dacite.core/i128"
	I256   = "dacite.core/i256"
	U8     = "dacite.core/u8"
	U16    = "dacite.core/u16"
	U32    = "dacite.core/u32"
	U64    = "dacite.core/u64"
	U128   = "dacite.core/u128"
	U256   = "dacite.core/u256"
	F32    = "dacite.core/f32"
	F64    = "dacite.core/f64"
	Char   = "dacite.core/char"
	String = "dacite.core/string"
	Blob   = "dacite.core/blob"
	Vector = "dacite.core/vector"
	Map    = "dacite.core/map"
)

// builtins lists every built-in name, in the order §6 enumerates them.
var builtins = []string{
	Null, Bool,
	I8, I16, I32, I64, I128, I256,
	U8, U16, U32, U64, U128, U256,
	F32, F64, Char,
	String, Blob, Vector, Map,
}

// table is the precomputed, read-only built-in name -> hash mapping,
// populated once at package init and never mutated afterward (§5: "the
// built-in type-hash table is computed once at initialization and
// thereafter read-only").
var table map[string]hash.H

func init() {
	table = make(map[string]hash.H, len(builtins))
	for _, name := range builtins {
		table[name] = compute(name)
	}
}

func compute(name string) hash.H {
	return hash.Sum([]byte(name))
}

// Hash returns TypeHash = SHA-256(utf8(name)). Built-in names resolve
// against the precomputed table; any other name hashes on demand, which is
// how the registry stays open to extension without central allocation.
func Hash(name string) hash.H {
	if h, ok := table[name]; ok {
		return h
	}
	return compute(name)
}

// Builtins returns the canonical built-in type names, in §6's order.
func Builtins() []string {
	out := make([]string, len(builtins))
	copy(out, builtins)
	return out
}
