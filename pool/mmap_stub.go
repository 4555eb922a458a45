//go:build !linux
// +build !linux

// File: pool/mmap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-Linux fallback: MmapSource degrades to a heap allocation, following
// the teacher's cross-platform *_stub.go / *_windows.go split convention
// (pool/numa_stub.go, pool/bufferpool_windows.go) rather than requiring a
// platform-specific mmap equivalent for a feature that is purely a
// locality/page-alignment hint.

package pool

import "github.com/momentics/bytering/api"

// MmapSource on non-Linux platforms is a thin alias over HeapSource.
type MmapSource struct {
	HeapSource
}

// NewMmapSource creates a heap-backed fallback BufferSource.
func NewMmapSource() *MmapSource {
	return &MmapSource{}
}

var _ api.BufferSource = (*MmapSource)(nil)
