// Package metrics instruments the process environment with real Prometheus
// collectors (§2a, §3a), replacing the teacher's markdown/Mermaid table
// renderer with the kind of counter/gauge pair an embedding service would
// actually register against its own /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rfielding/csp-lts/process"
)

// Registry wraps the Prometheus collectors an Env reports interning
// activity to via process.WithMetrics. It implements process.Hooks.
type Registry struct {
	nodesInterned     *prometheus.CounterVec
	hashHits          prometheus.Counter
	hashMisses        prometheus.Counter
	eventRegistrySize prometheus.Gauge
}

var _ process.Hooks = (*Registry)(nil)

// NewRegistry returns a Registry with its collectors created but not yet
// registered with any prometheus.Registerer; call Collectors and register
// them with the caller's own registry (§6: no HTTP endpoint is started by
// this package).
func NewRegistry() *Registry {
	return &Registry{
		nodesInterned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csp_lts",
			Name:      "nodes_interned_total",
			Help:      "Process nodes newly interned into an Env, by operator kind.",
		}, []string{"kind"}),
		hashHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csp_lts",
			Name:      "hash_cons_hits_total",
			Help:      "Intern calls that reused an existing canonical node.",
		}),
		hashMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csp_lts",
			Name:      "hash_cons_misses_total",
			Help:      "Intern calls that created a new canonical node.",
		}),
		eventRegistrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "csp_lts",
			Name:      "event_registry_size",
			Help:      "Number of distinct events interned into the Env's event.Registry.",
		}),
	}
}

// NodeInterned implements process.Hooks.
func (r *Registry) NodeInterned(kind string) { r.nodesInterned.WithLabelValues(kind).Inc() }

// HashHit implements process.Hooks.
func (r *Registry) HashHit() { r.hashHits.Inc() }

// HashMiss implements process.Hooks.
func (r *Registry) HashMiss() { r.hashMisses.Inc() }

// EventRegistrySize implements process.Hooks.
func (r *Registry) EventRegistrySize(size int) { r.eventRegistrySize.Set(float64(size)) }

// Collectors returns every collector this Registry owns, for the embedding
// application to register with its own prometheus.Registerer (or the
// default one via prometheus.MustRegister).
func (r *Registry) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.nodesInterned, r.hashHits, r.hashMisses, r.eventRegistrySize}
}
