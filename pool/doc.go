// Package pool
// Author: momentics <momentics@gmail.com>
//
// Buffer sourcing for bytering. Concrete api.BufferSource implementations:
// a plain heap source, and a page-aligned anonymous-mmap source on Linux
// with a heap-backed stub elsewhere. The ring protocol itself (package
// internal/ring, surfaced as package ringbuf) is indifferent to which
// source backs it -- allocation strategy is explicitly out of its scope.
// See source.go, mmap_linux.go, mmap_stub.go for implementation details.
package pool
