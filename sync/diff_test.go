package sync

import (
	"context"
	"testing"

	events "github.com/docker/go-events"
	"github.com/stretchr/testify/require"

	"github.com/dacite/dacite/hash"
	"github.com/dacite/dacite/store"
)

// fakeSink records every event written to it, a minimal stub for
// events.Sink.
type fakeSink struct {
	events []events.Event
	closed bool
}

func (s *fakeSink) Write(e events.Event) error {
	s.events = append(s.events, e)
	return nil
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

func h(b byte) hash.H {
	var out hash.H
	out[31] = b
	return out
}

func childrenOf(graph map[hash.H][]hash.H) ChildrenFunc {
	return func(ctx context.Context, k hash.H) ([]hash.H, error) {
		return graph[k], nil
	}
}

func TestDiffFindsHashesOnlyReachableFromRootA(t *testing.T) {
	root := h(1)
	shared := h(2)
	onlyA := h(3)

	graph := map[hash.H][]hash.H{
		root:   {shared, onlyA},
		shared: nil,
		onlyA:  nil,
	}

	sink := &fakeSink{}
	missing, err := Diff(context.Background(), root, shared, childrenOf(graph), nil, sink)
	require.NoError(t, err)
	require.Contains(t, missing, root)
	require.Contains(t, missing, onlyA)
	require.NotContains(t, missing, shared)
	require.Len(t, sink.events, 2)
}

func TestDiffShortCircuitsOnMatchingSubtreeHash(t *testing.T) {
	sharedSubtree := h(9)
	rootA := h(1)
	rootB := h(2)

	// unreachableChild sits behind sharedSubtree, which rootB also
	// reaches directly. The walk from rootB resolves sharedSubtree's
	// children once; if the walk from rootA descended into sharedSubtree
	// instead of short-circuiting on the match, it would resolve them a
	// second time.
	unreachableChild := h(99)

	graph := map[hash.H][]hash.H{
		rootA:         {sharedSubtree},
		rootB:         {sharedSubtree},
		sharedSubtree: {unreachableChild},
	}

	calls := make(map[hash.H]int)
	children := func(ctx context.Context, k hash.H) ([]hash.H, error) {
		calls[k]++
		return graph[k], nil
	}

	missing, err := Diff(context.Background(), rootA, rootB, children, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, calls[sharedSubtree])
	// rootA itself is reachable from rootA but not rootB, so it is
	// legitimately missing (Diff is root-inclusive, per
	// TestDiffFindsHashesOnlyReachableFromRootA). Nothing else should be.
	require.Equal(t, map[hash.H]struct{}{rootA: {}}, missing)
	require.NotContains(t, missing, unreachableChild)
}

func TestDiffIdenticalRootsProduceNoDiff(t *testing.T) {
	root := h(5)
	graph := map[hash.H][]hash.H{root: nil}

	missing, err := Diff(context.Background(), root, root, childrenOf(graph), nil, nil)
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestDiffFetchesBlobsFromStore(t *testing.T) {
	root := h(7)
	graph := map[hash.H][]hash.H{root: nil}
	empty := h(0)

	mem := store.NewMemory()
	require.NoError(t, mem.Put(context.Background(), root, []byte("payload")))

	missing, err := Diff(context.Background(), root, empty, childrenOf(graph), mem, nil)
	require.NoError(t, err)
	require.Contains(t, missing, root)
}
