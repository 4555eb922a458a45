// File: ringbuf/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options wiring the ambient/domain stack onto a Ring without
// touching the reserve/commit protocol's signature, the way the teacher's
// server/options.go wires transport, affinity and logging concerns onto
// its server type.

package ringbuf

import (
	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/control"
	"github.com/momentics/bytering/pool"
)

// Option configures a Ring at construction time.
type Option func(*config)

type config struct {
	source  api.BufferSource
	logger  control.Logger
	debug   *control.DebugProbes
	metrics bool
}

func defaultConfig() config {
	return config{
		source: pool.NewHeapSource(),
		logger: control.NopLogger(),
	}
}

// WithBufferSource selects the allocator backing the ring's byte array.
// The default is pool.NewHeapSource().
func WithBufferSource(src api.BufferSource) Option {
	return func(c *config) { c.source = src }
}

// WithLogger attaches a lifecycle logger. The default discards everything.
func WithLogger(l control.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithDebugProbes registers the ring's advisory cursor/counter snapshot
// under "ring.<name>" in the given registry, the way
// (*control.DebugProbes).RegisterRingProbe is documented to be used.
func WithDebugProbes(dp *control.DebugProbes) Option {
	return func(c *config) { c.debug = dp }
}

// WithMetrics enables a live VictoriaMetrics/metrics exposition for the
// ring (capacity/size/free gauges plus completed-operation counters,
// registered under the ring's Name). Since the exposition reads the ring
// itself as its control.RingSource, it can only be built once the ring
// exists; NewRing does that internally when this option is present.
func WithMetrics() Option {
	return func(c *config) { c.metrics = true }
}
