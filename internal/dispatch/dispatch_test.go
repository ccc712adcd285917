package dispatch

import (
	"sync/atomic"
	"testing"
)

func TestMap_PreservesOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	got := Map(8, items, func(v int) int { return v * 2 })
	for i, v := range got {
		if v != i*2 {
			t.Fatalf("result[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestMap_BoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int64
	items := make([]int, 64)
	Map(4, items, func(int) struct{} {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		active.Add(-1)
		return struct{}{}
	})
	if p := peak.Load(); p > 4 {
		t.Errorf("observed %d concurrent workers, limit 4", p)
	}
}

func TestMap_Empty(t *testing.T) {
	if got := Map(0, nil, func(v int) int { return v }); len(got) != 0 {
		t.Errorf("got %d results for empty input", len(got))
	}
}
