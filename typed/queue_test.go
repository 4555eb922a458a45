package typed_test

import (
	"sync"
	"testing"

	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/typed"
)

var _ api.RecordRing[uint32] = (*typed.Queue[uint32])(nil)

func TestQueue_WriteThenRead_RoundTrips(t *testing.T) {
	q, err := typed.NewQueue[uint32]("u32", 8)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	defer q.Close()

	q.Write(42)
	if got := q.Read(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestQueue_TryWrite_FullThenTryReadEmpty(t *testing.T) {
	q, err := typed.NewQueue[uint32]("u32-try", 2)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	defer q.Close()

	if !q.TryWrite(1) || !q.TryWrite(2) {
		t.Fatalf("expected first two writes into a 2-capacity queue to succeed")
	}
	if q.TryWrite(3) {
		t.Fatalf("expected write against a full queue to fail")
	}
	if _, ok := q.TryRead(); !ok {
		t.Fatalf("expected read to succeed")
	}
	if _, ok := q.TryRead(); !ok {
		t.Fatalf("expected second read to succeed")
	}
	if _, ok := q.TryRead(); ok {
		t.Fatalf("expected read against an empty queue to fail")
	}
}

func TestQueue_RejectsVariableSizedType(t *testing.T) {
	type notFixed struct {
		S string
	}
	if _, err := typed.NewQueue[notFixed]("bad", 4); err == nil {
		t.Fatalf("expected error constructing a queue over a variable-size type")
	}
}

// TestQueue_MPMC_TwoProducersTwoConsumers mirrors the byte ring's MPMC test
// at the typed layer: every produced uint32 must be observed exactly once.
func TestQueue_MPMC_TwoProducersTwoConsumers(t *testing.T) {
	const perProducer = 5000
	q, err := typed.NewQueue[uint32]("mpmc-u32", 16)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	defer q.Close()

	var wg sync.WaitGroup
	for p := 0; p < 2; p++ {
		wg.Add(1)
		go func(base uint32) {
			defer wg.Done()
			for j := uint32(0); j < perProducer; j++ {
				q.Write(base + j)
			}
		}(uint32(p) * 1_000_000)
	}

	total := 2 * perProducer
	results := make(chan uint32, total)
	var cwg sync.WaitGroup
	var mu sync.Mutex
	consumed := 0
	for c := 0; c < 2; c++ {
		cwg.Add(1)
		go func() {
			defer cwg.Done()
			for {
				mu.Lock()
				if consumed >= total {
					mu.Unlock()
					return
				}
				consumed++
				mu.Unlock()
				results <- q.Read()
			}
		}()
	}

	wg.Wait()
	cwg.Wait()
	close(results)

	seen := make(map[uint32]struct{}, total)
	for v := range results {
		if _, dup := seen[v]; dup {
			t.Fatalf("value %d observed twice", v)
		}
		seen[v] = struct{}{}
	}
	if len(seen) != total {
		t.Fatalf("observed %d distinct values, want %d", len(seen), total)
	}
}
