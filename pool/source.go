// File: pool/source.go
// Author: momentics <momentics@gmail.com>
//
// HeapSource is the default api.BufferSource: plain make([]byte, n),
// GC-reclaimed on Free. Adapted from the simplicity of pool/bytepool.go's
// fallback path in the teacher lineage, generalized into a first-class
// BufferSource rather than a NUMA-pool fallback branch.

package pool

import (
	"sync/atomic"

	"github.com/momentics/bytering/api"
)

// HeapSource allocates ring buffers on the Go heap.
type HeapSource struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
}

// NewHeapSource creates a heap-backed BufferSource.
func NewHeapSource() *HeapSource {
	return &HeapSource{}
}

// Alloc implements api.BufferSource.
func (h *HeapSource) Alloc(n int) ([]byte, error) {
	buf := make([]byte, n)
	h.totalAlloc.Add(1)
	h.inUse.Add(1)
	return buf, nil
}

// Free implements api.BufferSource. The GC reclaims the memory; Free only
// updates accounting.
func (h *HeapSource) Free(buf []byte) {
	h.totalFree.Add(1)
	h.inUse.Add(-1)
}

// Stats implements api.BufferSource.
func (h *HeapSource) Stats() api.BufferSourceStats {
	return api.BufferSourceStats{
		TotalAlloc: h.totalAlloc.Load(),
		TotalFree:  h.totalFree.Load(),
		InUse:      h.inUse.Load(),
	}
}

var _ api.BufferSource = (*HeapSource)(nil)
