package ring

import "testing"

func TestNew_EmptyRing(t *testing.T) {
	c := New(nil)
	if c.Capacity() != 0 {
		t.Fatalf("expected capacity 0, got %d", c.Capacity())
	}
	if c.Size() != 0 {
		t.Fatalf("expected size 0, got %d", c.Size())
	}
	if !c.Quiescent() {
		t.Fatal("fresh empty ring must be quiescent")
	}
}

func TestNew_SteadyStateInvariants(t *testing.T) {
	c := New(make([]byte, 16))
	if c.Capacity() != 16 {
		t.Fatalf("expected capacity 16, got %d", c.Capacity())
	}
	if c.used.Load() != 0 || c.free.Load() != 16 {
		t.Fatalf("expected used=0 free=16, got used=%d free=%d", c.used.Load(), c.free.Load())
	}
	if !c.Quiescent() {
		t.Fatal("fresh ring must be quiescent")
	}
}

func TestNormalize(t *testing.T) {
	c := New(make([]byte, 10))
	cases := []struct{ in, want uint64 }{
		{0, 0},
		{5, 5},
		{9, 9},
		{10, 0},
		{15, 5},
	}
	for _, tc := range cases {
		if got := c.normalize(tc.in); got != tc.want {
			t.Errorf("normalize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMove_TransfersStateAndEmptiesSource(t *testing.T) {
	src := New(make([]byte, 8))
	src.WriteFrom([]byte("abcd"))

	dst := src.Move()

	if src.Capacity() != 0 {
		t.Fatalf("source capacity after move = %d, want 0", src.Capacity())
	}
	if !src.Quiescent() {
		t.Fatal("source must be quiescent (empty) after move")
	}
	if dst.Capacity() != 8 {
		t.Fatalf("dest capacity after move = %d, want 8", dst.Capacity())
	}
	out := make([]byte, 4)
	dst.ReadInto(out)
	if string(out) != "abcd" {
		t.Fatalf("dest data after move = %q, want %q", out, "abcd")
	}
}
