package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

var sink []int

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()
	sink = make([]int, 1<<17) // 1 MiB on 64-bit
	after := mc.Snapshot()

	d := Delta(before, after)
	if d.Allocated < 1<<17 {
		t.Errorf("Allocated = %d, want at least %d", d.Allocated, 1<<17)
	}
	if d.PeakHeap < before.HeapAlloc || d.PeakHeap < after.HeapAlloc {
		t.Errorf("PeakHeap = %d below a snapshot reading", d.PeakHeap)
	}
}
