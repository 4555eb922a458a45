package control_test

import (
	"testing"

	"github.com/momentics/bytering/control"
)

type fakeRingSource struct {
	size, capacity int
}

func (f fakeRingSource) Size() int     { return f.size }
func (f fakeRingSource) Capacity() int { return f.capacity }

func TestNewMetrics_RegistersWithoutPanicking(t *testing.T) {
	src := fakeRingSource{size: 4, capacity: 16}
	m := control.NewMetrics("metrics-test-ring", src)
	if m == nil {
		t.Fatalf("NewMetrics returned nil")
	}
	m.IncWrite()
	m.IncRead()
}
