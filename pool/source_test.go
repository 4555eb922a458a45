package pool_test

import (
	"testing"

	"github.com/momentics/bytering/pool"
)

func TestHeapSource_AllocFreeAccounting(t *testing.T) {
	s := pool.NewHeapSource()
	buf, err := s.Alloc(128)
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	if len(buf) != 128 {
		t.Fatalf("len(buf) = %d, want 128", len(buf))
	}
	if stats := s.Stats(); stats.TotalAlloc != 1 || stats.InUse != 1 {
		t.Fatalf("unexpected stats after alloc: %+v", stats)
	}
	s.Free(buf)
	if stats := s.Stats(); stats.TotalFree != 1 || stats.InUse != 0 {
		t.Fatalf("unexpected stats after free: %+v", stats)
	}
}

func TestMmapSource_AllocFreeRoundTrip(t *testing.T) {
	s := pool.NewMmapSource()
	buf, err := s.Alloc(4096)
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	if len(buf) != 4096 {
		t.Fatalf("len(buf) = %d, want 4096", len(buf))
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		if buf[i] != byte(i) {
			t.Fatalf("region not writable at %d", i)
		}
	}
	s.Free(buf)
}
