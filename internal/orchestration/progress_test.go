package orchestration

import "testing"

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	if agg := NewProgressAggregator(3); agg == nil || agg.NumRuns() != 3 || !agg.IsMultiRun() {
		t.Errorf("NewProgressAggregator(3) = %+v", agg)
	}
	if agg := NewProgressAggregator(1); agg == nil || agg.IsMultiRun() {
		t.Errorf("NewProgressAggregator(1) = %+v", agg)
	}
	for _, n := range []int{0, -1} {
		if agg := NewProgressAggregator(n); agg != nil {
			t.Errorf("NewProgressAggregator(%d) = %+v, want nil", n, agg)
		}
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	ap := agg.Update(ProgressUpdate{RunIndex: 0, Value: 0.5})
	if ap.RunIndex != 0 || ap.Value != 0.5 {
		t.Errorf("Update echoed %+v", ap)
	}
	if ap.AverageProgress != 0.25 {
		t.Errorf("AverageProgress = %v, want 0.25", ap.AverageProgress)
	}

	ap = agg.Update(ProgressUpdate{RunIndex: 1, Value: 1})
	if ap.AverageProgress != 0.75 {
		t.Errorf("AverageProgress = %v, want 0.75", ap.AverageProgress)
	}
	if agg.CalculateAverage() != 0.75 {
		t.Errorf("CalculateAverage = %v, want 0.75", agg.CalculateAverage())
	}
	if agg.GetETA() < 0 {
		t.Error("ETA must not be negative")
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	ch <- ProgressUpdate{}
	ch <- ProgressUpdate{}
	close(ch)
	DrainChannel(ch)
	if len(ch) != 0 {
		t.Errorf("channel still holds %d updates", len(ch))
	}
}
