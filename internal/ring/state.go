// File: internal/ring/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte buffer and cursor state. Ported from the reserve/commit design of
// Trevor Wilson's wilt::Ring_ (2016), restated over slice offsets instead
// of raw pointers since Go gives no arithmetic over unsafe.Pointer without
// ceremony and offsets play just as well with normalize().

package ring

import "sync/atomic"

// Core owns the contiguous byte array and the four cursors plus two
// counters described by the design. All six dynamic fields are
// independently atomic; buf's length is immutable for Core's lifetime
// until Move. Core has no notion of records or allocation strategy --
// the buffer it operates on is handed to it fully formed by New.
type Core struct {
	buf []byte

	// used/free are signed so that optimistic multi-reserver races can
	// drive them transiently negative and have the losing reservers
	// restore them. Declared on their own cache lines to avoid false
	// sharing with the cursors below.
	used atomic.Int64
	_    [56]byte
	free atomic.Int64
	_    [56]byte

	// Reader cursors share a line: the same role's threads touch them
	// together.
	rptr atomic.Uint64 // reader reserve cursor
	rbuf atomic.Uint64 // reader publish cursor
	_    [48]byte

	// Writer cursors share a line for the same reason.
	wbuf atomic.Uint64 // writer reserve cursor
	wptr atomic.Uint64 // writer publish cursor
	_    [48]byte
}

// New constructs a Core over buf, whose length is the ring's fixed byte
// capacity C. buf must not be shared with any other owner; New takes it
// over entirely. A nil or zero-length buf is legal and yields the empty
// ring described by the design (C == 0; all cursors at offset 0).
func New(buf []byte) *Core {
	c := &Core{buf: buf}
	c.free.Store(int64(len(buf)))
	return c
}

// Capacity returns the fixed byte capacity C.
func (c *Core) Capacity() int {
	return len(c.buf)
}

// Size returns the current non-reserved used byte count. Advisory: may be
// momentarily stale or, internally, negative; callers must not derive
// correctness from it. Clamped to [0, C] for reporting per the public
// surface contract -- internal callers needing the raw signed value use
// c.used.Load() directly.
func (c *Core) Size() int {
	u := c.used.Load()
	n := int64(len(c.buf))
	if u < 0 {
		return 0
	}
	if u > n {
		return int(n)
	}
	return int(u)
}

// normalize wraps offset p+d back into [0, C) given 0 <= d <= C. Supports
// at most one wrap per step because no reservation exceeds C.
func (c *Core) normalize(p uint64) uint64 {
	n := uint64(len(c.buf))
	if n == 0 {
		return 0
	}
	if p < n {
		return p
	}
	return p - n
}

// quiescent reports whether the ring currently shows no in-flight
// reservation, i.e. rbuf==rptr and wptr==wbuf. It is a best-effort,
// unsynchronized snapshot: callers (Move, Close) are contractually
// required to ensure actual quiescence themselves: the ring cannot detect
// the violation, only offer a convenience check for the common case of
// programmer error.
func (c *Core) quiescent() bool {
	return c.rbuf.Load() == c.rptr.Load() && c.wptr.Load() == c.wbuf.Load()
}

// snapshot is an advisory, unsynchronized read of every dynamic field, for
// diagnostics only (see package control). It must never be used to drive
// correctness decisions.
type snapshot struct {
	Used, Free             int64
	RPtr, RBuf, WPtr, WBuf uint64
	Capacity               int
}

func (c *Core) snapshot() snapshot {
	return snapshot{
		Used:     c.used.Load(),
		Free:     c.free.Load(),
		RPtr:     c.rptr.Load(),
		RBuf:     c.rbuf.Load(),
		WPtr:     c.wptr.Load(),
		WBuf:     c.wbuf.Load(),
		Capacity: len(c.buf),
	}
}

// detach moves the buffer and every cursor/counter value out of c and
// resets c to the empty state, returning the moved-out backing buffer. The
// caller (ringbuf.Ring.Move) is responsible for quiescence; detach itself
// only performs the mechanical transfer, matching Ring_'s move
// constructor/assignment.
func (c *Core) detach() (buf []byte, used, free int64, rptr, rbuf, wptr, wbuf uint64) {
	buf = c.buf
	used = c.used.Load()
	free = c.free.Load()
	rptr = c.rptr.Load()
	rbuf = c.rbuf.Load()
	wptr = c.wptr.Load()
	wbuf = c.wbuf.Load()

	c.buf = nil
	c.used.Store(0)
	c.free.Store(0)
	c.rptr.Store(0)
	c.rbuf.Store(0)
	c.wptr.Store(0)
	c.wbuf.Store(0)
	return
}

// attach installs a previously detached state into c, which must itself be
// empty (freshly constructed or itself just detached).
func (c *Core) attach(buf []byte, used, free int64, rptr, rbuf, wptr, wbuf uint64) {
	c.buf = buf
	c.used.Store(used)
	c.free.Store(free)
	c.rptr.Store(rptr)
	c.rbuf.Store(rbuf)
	c.wptr.Store(wptr)
	c.wbuf.Store(wbuf)
}
