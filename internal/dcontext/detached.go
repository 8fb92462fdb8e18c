package dcontext

import "context"

// DetachedContext returns a context that won't be canceled when the parent
// context is canceled. This is useful for operations that need to complete
// even after the triggering request's context is canceled (e.g., a store
// write or a sync.Diff fetch that should finish even if the CLI command
// that started it is interrupted).
//
// The detached context preserves all values from the parent context (logger,
// instance id, etc.) but removes cancellation/deadline behavior.
//
// Example usage:
//
//	detachedCtx := dcontext.DetachedContext(ctx)
//	if err := blobStore.Put(detachedCtx, h, data); err != nil {
//		GetLogger(ctx).Errorf("store write failed: %v", err)
//	}
func DetachedContext(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
