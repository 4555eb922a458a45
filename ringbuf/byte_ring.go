// File: ringbuf/byte_ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is the public, constructible lock-free byte ring. It wraps
// internal/ring.Core -- the reserve/commit protocol -- and wires it to a
// buffer source, a lifecycle logger, debug probes and metrics, the way the
// teacher's server type wires a reactor, a transport and a buffer pool
// behind one constructible facade (server/hioload.go).

package ringbuf

import (
	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/control"
	"github.com/momentics/bytering/internal/ring"
)

// Ring is a lock-free, multi-producer multi-consumer byte ring backed by a
// fixed-capacity buffer obtained from an api.BufferSource. The zero value
// is not usable; construct with NewRing.
type Ring struct {
	name    string
	core    *ring.Core
	source  api.BufferSource
	logger  control.Logger
	metrics *control.Metrics
	closed  bool
}

var _ api.ByteRing = (*Ring)(nil)

// NewRing allocates a capacity-byte ring named name, sourcing its backing
// buffer from the configured (or default) api.BufferSource. capacity must
// be > 0; use internal/ring.New directly (unexported outside this module)
// for the zero-capacity degenerate ring described by the design, which has
// no externally useful construction path.
func NewRing(name string, capacity int, opts ...Option) (*Ring, error) {
	cfg := control.Config{Name: name, Capacity: capacity}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	buf, err := c.source.Alloc(capacity)
	if err != nil {
		c.logger.AllocFailed(capacity, err)
		return nil, api.NewError(api.ErrCodeAllocFailed, api.ErrAllocFailed.Error()).
			WithContext("ring", name).
			WithContext("requested", capacity).
			WithContext("cause", err.Error())
	}

	r := &Ring{
		name:   name,
		core:   ring.New(buf),
		source: c.source,
		logger: c.logger,
	}

	if c.debug != nil {
		c.debug.RegisterRingProbe(name, r)
		control.RegisterPlatformProbes(c.debug)
	}
	if c.metrics {
		r.metrics = control.NewMetrics(name, r)
	}

	c.logger.Opened(capacity)
	return r, nil
}

// Read implements api.ByteRing.
func (r *Ring) Read(dst []byte) {
	r.requireSized(len(dst))
	r.core.ReadInto(dst)
	if r.metrics != nil {
		r.metrics.IncRead()
	}
}

// Write implements api.ByteRing.
func (r *Ring) Write(src []byte) {
	r.requireSized(len(src))
	r.core.WriteFrom(src)
	if r.metrics != nil {
		r.metrics.IncWrite()
	}
}

// TryRead implements api.ByteRing. An oversize request (len(dst) >
// Capacity()) returns false rather than panicking, per the try-path
// open-question resolution in SPEC_FULL.md §4.2: only the blocking
// Read/Write enforce requireSized, since a try-variant is documented to
// fail rather than assert on an unsatisfiable request.
func (r *Ring) TryRead(dst []byte) bool {
	ok := r.core.TryReadInto(dst)
	if ok && r.metrics != nil {
		r.metrics.IncRead()
	}
	return ok
}

// TryWrite implements api.ByteRing. See TryRead for the oversize contract.
func (r *Ring) TryWrite(src []byte) bool {
	ok := r.core.TryWriteFrom(src)
	if ok && r.metrics != nil {
		r.metrics.IncWrite()
	}
	return ok
}

// requireSized panics on a request that exceeds capacity, the same debug
// convenience internal/ring's blocking acquire path takes rather than
// hanging silently on an unsatisfiable reservation. Only Read/Write call
// this; TryRead/TryWrite instead rely on internal/ring's try-acquire
// paths returning false for an oversize request.
func (r *Ring) requireSized(n int) {
	if n > r.core.Capacity() {
		panic(api.NewError(api.ErrCodeOversizeRequest, api.ErrOversizeRequest.Error()).
			WithContext("ring", r.name).
			WithContext("requested", n).
			WithContext("capacity", r.core.Capacity()))
	}
}

// Size implements api.ByteRing. Advisory only; see internal/ring.Core.Size.
func (r *Ring) Size() int { return r.core.Size() }

// Capacity implements api.ByteRing.
func (r *Ring) Capacity() int { return r.core.Capacity() }

// Close implements api.ByteRing. The caller must ensure no operation is in
// flight; Close returns the backing buffer to its source regardless, but
// logs whether the ring was quiescent at the moment of the call.
func (r *Ring) Close() error {
	if r.closed {
		return api.ErrRingClosed
	}
	quiescent := r.core.Quiescent()
	r.logger.Closed(quiescent)
	buf := r.core.RawBuffer()
	r.source.Free(buf)
	r.closed = true
	return nil
}

// Move transfers this ring's buffer and cursor state into a freshly
// constructed Ring under a new name, leaving this Ring empty (capacity 0).
// The caller must guarantee quiescence and exclusivity themselves; Move
// offers no synchronization of its own, matching internal/ring.Core.Move.
func (r *Ring) Move(newName string) *Ring {
	dst := &Ring{
		name:   newName,
		core:   r.core.Move(),
		source: r.source,
		logger: r.logger,
	}
	r.name = ""
	return dst
}

// DiagnosticSnapshot implements control.RingDiagnostics.
func (r *Ring) DiagnosticSnapshot() map[string]int64 {
	s := r.core.Snapshot()
	return map[string]int64{
		"used":     s.Used,
		"free":     s.Free,
		"rptr":     int64(s.RPtr),
		"rbuf":     int64(s.RBuf),
		"wptr":     int64(s.WPtr),
		"wbuf":     int64(s.WBuf),
		"capacity": int64(s.Capacity),
	}
}
