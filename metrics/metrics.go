// Package metrics exposes the identity engine's Prometheus instrumentation:
// counters and histograms for fuse calls, low-entropy rejections, value
// hashes by kind, HAMT trie depth, and sequence/map fold length. The
// engine never blocks on a scrape; every hook here is a fire-and-forget
// Inc/Observe.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Namespace is the prefix for every metric this package registers.
const Namespace = "dacite"

var (
	// FuseTotal counts every call to fuse.Fuse, successful or not.
	FuseTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "fuse",
		Name:      "calls_total",
		Help:      "Total number of fuse.Fuse invocations.",
	})

	// LowEntropyTotal counts fuse.Fuse calls rejected by the §4.3
	// low-entropy predicate.
	LowEntropyTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "fuse",
		Name:      "low_entropy_rejections_total",
		Help:      "Total number of fuse.Fuse calls rejected as low-entropy.",
	})

	// ValueHashesTotal counts value_hash computations, labeled by kind
	// (the canonical type name from package typeid).
	ValueHashesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "value",
		Name:      "hashes_total",
		Help:      "Total number of value hashes computed, by type name.",
	}, []string{"kind"})

	// TrieDepth observes the depth at which a HAMT trie insert finally
	// placed a leaf (or fell back to a collision bucket).
	TrieDepth = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "hamt",
		Name:      "insert_depth",
		Help:      "Depth at which a HAMT trie insert placed a leaf.",
		Buckets:   prometheus.LinearBuckets(0, 4, 13),
	})

	// FoldLength observes the number of child hashes folded by a
	// sequence or map hasher.
	FoldLength = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "value",
		Name:      "fold_length",
		Help:      "Number of child hashes folded to produce a collection's data_hash.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(FuseTotal, LowEntropyTotal, ValueHashesTotal, TrieDepth, FoldLength)
}
