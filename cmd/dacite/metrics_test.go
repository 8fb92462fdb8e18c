package main

import (
	"testing"

	"github.com/dacite/dacite/configuration"
)

func TestMaybeServeMetricsNoAddrIsNoop(t *testing.T) {
	// No assertion beyond "doesn't panic/block": an empty Addr must be a
	// pure no-op, since most dacite invocations are one-shot CLI calls
	// with no metrics server configured.
	maybeServeMetrics(&configuration.Configuration{})
}
