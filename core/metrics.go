package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "hygraph"
	subsystem        = "core"
)

var (
	// InsertTotal counts insertion operations by element kind and status.
	InsertTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "insert_total",
			Help:      "Total number of element insertions",
		},
		[]string{"kind", "status"}, // status: success, error
	)

	// RemoveTotal counts public removal requests by the kind of the
	// requested identifier (not the kinds swept up by the cascade).
	RemoveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "remove_total",
			Help:      "Total number of removal requests",
		},
		[]string{"kind"},
	)

	// CascadeSize observes how many elements each removal actually removed.
	CascadeSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "cascade_size",
			Help:      "Number of elements removed per removal request",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// ExtendTotal counts merge operations between hypergraph instances.
	ExtendTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "extend_total",
			Help:      "Total number of extend (merge) operations",
		},
	)

	// TransformTotal counts structure-preserving transforms by operation.
	TransformTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "transform_total",
			Help:      "Total number of map/filter/clone transforms",
		},
		[]string{"op"}, // map, filter, clone
	)
)

const (
	statusSuccess = "success"
	statusError   = "error"
)
