// Package api
// Author: momentics
//
// External allocator collaborator for the byte ring. Allocation strategy
// is explicitly out of the ring's scope: the ring accepts any contiguous
// byte block of the requested length from a BufferSource and never
// allocates by itself beyond calling Alloc once at construction.

package api

// BufferSource supplies the contiguous byte block a Ring is built on top
// of. Implementations may source memory from the heap, from hugepages, from
// an anonymous mmap region, or from a fixed caller-owned array -- the ring
// protocol is indifferent to the origin.
type BufferSource interface {
	// Alloc returns a byte slice of length exactly n. Must not be called
	// concurrently with Free on the same slice.
	Alloc(n int) ([]byte, error)

	// Free releases a slice previously returned by Alloc. After Free,
	// the slice must not be used by the caller.
	Free(buf []byte)

	// Stats exposes allocation accounting for observability.
	Stats() BufferSourceStats
}

// BufferSourceStats aggregates allocation/free accounting for a BufferSource.
type BufferSourceStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
