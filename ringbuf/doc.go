// File: ringbuf/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ringbuf exposes the lock-free, multi-producer multi-consumer
// byte ring as a concrete, constructible type: Read/Write/TryRead/TryWrite,
// Size/Capacity, construction, Move, and Close. The reserve/commit
// protocol itself lives in internal/ring; this package wires it to an
// api.BufferSource, an optional zerolog logger, and optional
// VictoriaMetrics/metrics gauges/counters via functional options.
package ringbuf
