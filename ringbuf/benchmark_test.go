package ringbuf_test

import (
	"testing"

	"github.com/momentics/bytering/ringbuf"
)

// BenchmarkRing_TryWriteTryRead mirrors the teacher's BenchmarkRingBufferThroughput:
// one b.RunParallel loop hammering try-write/try-read on a shared ring.
func BenchmarkRing_TryWriteTryRead(b *testing.B) {
	r, err := ringbuf.NewRing("bench", 4096)
	if err != nil {
		b.Fatalf("NewRing: %v", err)
	}
	defer r.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		buf := make([]byte, 64)
		for pb.Next() {
			if !r.TryWrite(buf) {
				r.TryRead(buf)
				r.TryWrite(buf)
			}
		}
	})
}

// BenchmarkRing_BlockingWriteRead measures the steady-state cost of the
// blocking reserve/commit path under single-goroutine contention-free use.
func BenchmarkRing_BlockingWriteRead(b *testing.B) {
	r, err := ringbuf.NewRing("bench-blocking", 4096)
	if err != nil {
		b.Fatalf("NewRing: %v", err)
	}
	defer r.Close()

	buf := make([]byte, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Write(buf)
		r.Read(buf)
	}
}
