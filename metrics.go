// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import "github.com/prometheus/client_golang/prometheus"

// WithMetrics registers identity-cache counters with reg.
// Metrics are off by default; resolution fast paths never touch them.
func WithMetrics(reg prometheus.Registerer) CacheOption {
	return func(cfg *cacheConfig) { cfg.registry = reg }
}

// cacheMetrics holds the identity-cache counters. Methods are nil-safe so
// the disabled path costs a single pointer check.
type cacheMetrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	invalidations prometheus.Counter
	evictions     prometheus.Counter
}

func newCacheMetrics(reg prometheus.Registerer) *cacheMetrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "susp",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Lookups that returned an existing computation.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "susp",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Lookups that created a new computation.",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "susp",
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Explicit entry removals via Invalidate.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "susp",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Entries dropped by the capacity or TTL bound.",
		}),
	}
	reg.MustRegister(m.hits, m.misses, m.invalidations, m.evictions)
	return m
}

func (m *cacheMetrics) hit() {
	if m == nil {
		return
	}
	m.hits.Inc()
}

func (m *cacheMetrics) miss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}

func (m *cacheMetrics) invalidation() {
	if m == nil {
		return
	}
	m.invalidations.Inc()
}

func (m *cacheMetrics) eviction() {
	if m == nil {
		return
	}
	m.evictions.Inc()
}
