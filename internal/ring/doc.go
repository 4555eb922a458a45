// File: internal/ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements the lock-free reserve/commit protocol that
// backs the public byte ring (package ringbuf) and the typed record
// wrapper (package typed). It owns the contiguous byte array, the four
// cursors, and the two accounting counters described by the design; it
// has no notion of records, NUMA, metrics, or logging -- those are layered
// on top by the packages that embed a *Core.
package ring
