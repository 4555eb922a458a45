// File: typed/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue[T] is the fixed-record analog of ringbuf.Ring, grounded on Trevor
// Wilson's templated wilt::Ring<T> (original_source/wilt-ring/ring.h):
// construct over size*sizeof(T) bytes, and read/write one T at a time
// instead of an arbitrary byte span. Go has no placement-new or destructor
// hook, so where Ring<T> constructs/destructs T in place over the raw
// bytes, Queue[T] marshals T to/from a fixed-width byte record with
// encoding/binary, the way protocol/frame_codec.go marshals frame fields.
// T must be a fixed-size type as defined by encoding/binary (fixed-size
// numeric fields and arrays of them, no strings, slices, or maps).
package typed

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/ringbuf"
)

// Queue is a lock-free, multi-producer multi-consumer ring of fixed-size
// records of type T.
type Queue[T any] struct {
	ring       *ringbuf.Ring
	recordSize int
}

// NewQueue constructs a Queue holding up to capacity records of type T.
// The backing ring is sized capacity*binary.Size(T) bytes, mirroring
// Ring<T>::Ring(size_t) constructing Ring_(size * sizeof(T)).
func NewQueue[T any](name string, capacity int, opts ...ringbuf.Option) (*Queue[T], error) {
	var zero T
	recordSize := binary.Size(zero)
	if recordSize <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument.Error()).
			WithContext("type", fmt.Sprintf("%T", zero)).
			WithContext("reason", "not a fixed-size record type")
	}
	r, err := ringbuf.NewRing(name, capacity*recordSize, opts...)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{ring: r, recordSize: recordSize}, nil
}

// Write blocks until a slot is free, then enqueues value.
func (q *Queue[T]) Write(value T) {
	q.ring.Write(q.encode(value))
}

// Read blocks until a record is available, then dequeues and returns it.
func (q *Queue[T]) Read() T {
	buf := make([]byte, q.recordSize)
	q.ring.Read(buf)
	return q.decode(buf)
}

// TryWrite is the non-blocking analog of Write.
func (q *Queue[T]) TryWrite(value T) bool {
	return q.ring.TryWrite(q.encode(value))
}

// TryRead is the non-blocking analog of Read.
func (q *Queue[T]) TryRead() (T, bool) {
	buf := make([]byte, q.recordSize)
	if !q.ring.TryRead(buf) {
		var zero T
		return zero, false
	}
	return q.decode(buf), true
}

// Size returns the current non-reserved used record count, Ring_::size()
// divided by sizeof(T) as in Ring<T>::size().
func (q *Queue[T]) Size() int { return q.ring.Size() / q.recordSize }

// Capacity returns the fixed record capacity.
func (q *Queue[T]) Capacity() int { return q.ring.Capacity() / q.recordSize }

// Close releases the underlying ring's buffer.
func (q *Queue[T]) Close() error { return q.ring.Close() }

func (q *Queue[T]) encode(value T) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, q.recordSize))
	if err := binary.Write(buf, binary.BigEndian, value); err != nil {
		panic(fmt.Sprintf("typed: encode %T: %v", value, err))
	}
	return buf.Bytes()
}

func (q *Queue[T]) decode(raw []byte) T {
	var value T
	if err := binary.Read(bytes.NewReader(raw), binary.BigEndian, &value); err != nil {
		panic(fmt.Sprintf("typed: decode %T: %v", value, err))
	}
	return value
}
