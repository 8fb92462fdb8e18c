package store

import (
	"encoding/hex"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/dacite/dacite/hash"
)

// Addr renders h as an IPFS-compatible content address: a raw-codec CIDv1
// wrapping a sha2-256 multihash of h's 32 bytes. This is presentation
// only — it has no bearing on identity (§1, §2), which is computed by
// fuse/value/hash before a blob ever reaches store.
func Addr(h hash.H) (cid.Cid, error) {
	mh, err := multihash.Encode(h.Bytes(), multihash.SHA2_256)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// ParseAddr recovers the H encoded in an IPFS content address produced by
// Addr, rejecting anything that isn't a sha2-256 multihash of 32 bytes
// (the wire contract §6 calls "hex lowercase", here the CID equivalent).
func ParseAddr(c cid.Cid) (hash.H, error) {
	decoded, err := multihash.Decode(c.Hash())
	if err != nil {
		return hash.H{}, err
	}
	if decoded.Code != multihash.SHA2_256 || decoded.Length != hash.Size {
		return hash.H{}, fmt.Errorf("store: unsupported content address (code=%d length=%d)", decoded.Code, decoded.Length)
	}
	return hash.Parse(hex.EncodeToString(decoded.Digest))
}
