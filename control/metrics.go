// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Live Prometheus-format exposition of a ring's monitoring hints via
// github.com/VictoriaMetrics/metrics, wired the way
// Borislavv-adv-cache/pkg/prometheus/metrics/meter.go wires the same
// library: GetOrCreateGauge/GetOrCreateCounter keyed by a per-ring label.
// Replaces the teacher's free-form map[string]any registry with typed,
// scrape-able gauges, since size()/used/free are explicitly documented as
// monitoring hints rather than correctness-bearing values (design §4.4) --
// a live exposition is the natural home for "hint", not an in-process map.

package control

import (
	"fmt"

	vm "github.com/VictoriaMetrics/metrics"
)

// RingSource supplies the live values a Metrics registers gauges against.
// ringbuf.Ring satisfies this via its Size/Capacity methods.
type RingSource interface {
	Size() int
	Capacity() int
}

// Metrics registers a capacity gauge, live size/free gauges, and
// completed-operation counters for one named ring. CAS-retry counts are
// deliberately not exposed here: they are only observable from inside the
// reserve/commit protocol itself, and instrumenting that hot path with a
// metrics call would violate the "no logging on the hot path" rule this
// package otherwise enforces (see doc.go).
type Metrics struct {
	name string

	writes *vm.Counter
	reads  *vm.Counter
}

// NewMetrics registers gauges/counters for a ring named name and returns
// the handle used to increment the counters. Gauges are sourced live from
// src on every scrape; they are never cached.
func NewMetrics(name string, src RingSource) *Metrics {
	vm.GetOrCreateGauge(fmt.Sprintf(`bytering_capacity_bytes{ring=%q}`, name), func() float64 {
		return float64(src.Capacity())
	})
	vm.GetOrCreateGauge(fmt.Sprintf(`bytering_size_bytes{ring=%q}`, name), func() float64 {
		return float64(src.Size())
	})
	vm.GetOrCreateGauge(fmt.Sprintf(`bytering_free_bytes{ring=%q}`, name), func() float64 {
		return float64(src.Capacity() - src.Size())
	})

	return &Metrics{
		name:   name,
		writes: vm.GetOrCreateCounter(fmt.Sprintf(`bytering_ops_total{ring=%q,role="write"}`, name)),
		reads:  vm.GetOrCreateCounter(fmt.Sprintf(`bytering_ops_total{ring=%q,role="read"}`, name)),
	}
}

// IncWrite / IncRead count one completed reserve-copy-release cycle per role.
func (m *Metrics) IncWrite() { m.writes.Inc() }
func (m *Metrics) IncRead()  { m.reads.Inc() }
