// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability layer for bytering: structured lifecycle logging
// (zerolog), live gauges/counters exposing the ring's used/free/size
// monitoring hints (VictoriaMetrics/metrics), and an advisory
// cursor/counter snapshot probe registry for operator diagnostics.
// Nothing here sits on the acquire/release hot path: the reserve/commit
// protocol itself performs no logging, retry, or backoff, by design.
//
// Cross-platform, build-tag-partitioned where a probe needs it.
package control
