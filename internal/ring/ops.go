// File: internal/ring/ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public (package-exported, module-internal) composition of acquire,
// transfer and release into the four byte operations. Ported from
// wilt::Ring_::read/write/try_read/try_write.

package ring

// ReadInto blocks until len(dst) bytes are available, then copies them
// into dst in writer release-order.
func (c *Core) ReadInto(dst []byte) {
	n := len(dst)
	block := c.acquireRead(n)
	c.copyOut(block, dst, n)
	c.releaseRead(block, n)
}

// WriteFrom blocks until len(src) bytes of space are available, then
// copies them into the ring.
func (c *Core) WriteFrom(src []byte) {
	n := len(src)
	block := c.acquireWrite(n)
	c.copyIn(block, src, n)
	c.releaseWrite(block, n)
}

// TryReadInto is the non-blocking analog of ReadInto.
func (c *Core) TryReadInto(dst []byte) bool {
	n := len(dst)
	block, ok := c.tryAcquireRead(n)
	if !ok {
		return false
	}
	c.copyOut(block, dst, n)
	c.releaseRead(block, n)
	return true
}

// TryWriteFrom is the non-blocking analog of WriteFrom.
func (c *Core) TryWriteFrom(src []byte) bool {
	n := len(src)
	block, ok := c.tryAcquireWrite(n)
	if !ok {
		return false
	}
	c.copyIn(block, src, n)
	c.releaseWrite(block, n)
	return true
}

// Quiescent reports whether no operation currently appears in flight. It
// is advisory; see the note on (*Core).quiescent.
func (c *Core) Quiescent() bool {
	return c.quiescent()
}

// Move transfers buf and every cursor/counter value out of c into a newly
// allocated *Core, leaving c in the empty state (C == 0, all cursors at
// offset 0). The caller must guarantee quiescence and exclusivity: Move
// cannot detect a violation, only perform the mechanical transfer.
func (c *Core) Move() *Core {
	buf, used, free, rptr, rbuf, wptr, wbuf := c.detach()
	dst := &Core{}
	dst.attach(buf, used, free, rptr, rbuf, wptr, wbuf)
	return dst
}

// RawBuffer exposes the backing slice for the buffer source to reclaim on
// Close. It must only be called when the ring is quiescent and no longer
// in use.
func (c *Core) RawBuffer() []byte {
	return c.buf
}

// Snapshot returns an advisory, unsynchronized read of every dynamic
// field for diagnostics (see package control). Never use for correctness.
type Snapshot = snapshot

func (c *Core) Snapshot() Snapshot {
	return c.snapshot()
}
