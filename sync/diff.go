// Package sync is a deliberately thin stand-in for the sync/diffing layer
// spec §1 calls out of scope: given two roots, it walks reachable
// structure hash by hash and reports what the first root has that the
// second doesn't, short-circuiting whenever a subtree hash matches
// between the two sides. Invariant 6/7 (identical value_hash implies
// identical subtree, full stop) is what makes that short-circuit sound
// without this package knowing anything about tree shape or value
// kinds.
package sync

import (
	"context"

	events "github.com/docker/go-events"

	"github.com/dacite/dacite/hash"
	"github.com/dacite/dacite/store"
)

// Fetched is published to a Sink once per hash Diff determines the
// caller needs to pull from the remote side.
type Fetched hash.H

// ChildrenFunc resolves the immediate child hashes of h, if any (a leaf
// returns no children). Diff is agnostic to how those children are
// recovered — in practice an embedder decodes the blob at h and reads
// off the value_hashes of its parts — which keeps this package out of
// the business of defining a wire encoding (§1 non-goal).
type ChildrenFunc func(ctx context.Context, h hash.H) ([]hash.H, error)

// Diff returns the set of hashes reachable from rootA that are not
// reachable from rootB, fetching each one's bytes from blobs (if
// non-nil) and publishing a Fetched event to sink (if non-nil) as it
// goes. No network transport is implemented: fetching here means only
// "read out of the local store.Blob".
func Diff(ctx context.Context, rootA, rootB hash.H, children ChildrenFunc, blobs store.Blob, sink events.Sink) (map[hash.H]struct{}, error) {
	inB, err := reachable(ctx, rootB, children, nil)
	if err != nil {
		return nil, err
	}

	// Recursion into rootA stops the instant it hits a hash already
	// known reachable from rootB: by invariant 6/7 that subtree is
	// bit-for-bit identical on both sides, so none of its descendants
	// can be missing either.
	inA, err := reachable(ctx, rootA, children, inB)
	if err != nil {
		return nil, err
	}

	missing := make(map[hash.H]struct{})
	for h := range inA {
		if _, ok := inB[h]; ok {
			continue
		}
		missing[h] = struct{}{}

		if blobs != nil {
			if _, err := blobs.Get(ctx, h); err != nil && err != store.ErrNotFound {
				return nil, err
			}
		}
		if sink != nil {
			if err := sink.Write(Fetched(h)); err != nil {
				return nil, err
			}
		}
	}
	return missing, nil
}

// reachable walks root via children, collecting every hash visited.
// Recursion does not descend past a hash already present in stop.
func reachable(ctx context.Context, root hash.H, children ChildrenFunc, stop map[hash.H]struct{}) (map[hash.H]struct{}, error) {
	visited := make(map[hash.H]struct{})

	var walk func(h hash.H) error
	walk = func(h hash.H) error {
		if _, ok := visited[h]; ok {
			return nil
		}
		visited[h] = struct{}{}
		if _, ok := stop[h]; ok {
			return nil
		}

		kids, err := children(ctx, h)
		if err != nil {
			return err
		}
		for _, k := range kids {
			if err := walk(k); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return visited, nil
}
