// Package api
// Author: momentics@gmail.com
//
// Lock-free ring buffer contracts for cross-thread producer/consumer.

package api

// ByteRing is a lock-free, multi-producer multi-consumer ring of opaque
// bytes. Blocking operations spin until satisfiable; try-variants never
// block. No wait-freedom guarantee: a stalled participant can delay other
// same-role participants' releases.
type ByteRing interface {
	// Read blocks until len(dst) bytes are available, then copies them out.
	Read(dst []byte)
	// Write blocks until len(src) bytes of space are available, then
	// copies them in.
	Write(src []byte)
	// TryRead copies len(dst) bytes out without blocking. Returns false
	// if fewer than len(dst) bytes were available at the check.
	TryRead(dst []byte) bool
	// TryWrite copies len(src) bytes in without blocking. Returns false
	// if less than len(src) bytes of space were available at the check.
	TryWrite(src []byte) bool
	// Size reports the current non-reserved used bytes. Advisory only;
	// callers must not derive correctness from it.
	Size() int
	// Capacity reports the fixed byte capacity.
	Capacity() int
	// Close releases the underlying buffer. Caller must ensure no
	// operation is in flight.
	Close() error
}

// RecordRing is the fixed-size-record analog of ByteRing.
type RecordRing[T any] interface {
	Read() T
	Write(value T)
	TryRead() (T, bool)
	TryWrite(value T) bool
	Size() int
	Capacity() int
	Close() error
}
