package sysmon

import (
	"context"
	"runtime"
	"slices"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	u := Sample(context.Background())
	if u.CPUPercent < 0 || u.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", u.CPUPercent)
	}
	if u.BusiestCPU < u.CPUPercent {
		t.Errorf("BusiestCPU %f below average %f", u.BusiestCPU, u.CPUPercent)
	}
	if u.MemPercent < 0 || u.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", u.MemPercent)
	}
}

func TestHost(t *testing.T) {
	h := Host(context.Background())
	if h.OS != runtime.GOOS || h.Arch != runtime.GOARCH {
		t.Errorf("Host() platform = %s/%s", h.OS, h.Arch)
	}
	if h.LogicalCores < 1 || h.GOMAXPROCS < 1 {
		t.Errorf("Host() cores = %d, GOMAXPROCS = %d", h.LogicalCores, h.GOMAXPROCS)
	}
	if h.PhysicalCores < 0 {
		t.Errorf("PhysicalCores = %d", h.PhysicalCores)
	}
}

func TestCPUFeatures_AMD64HasSSE2(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("amd64 only")
	}
	if !slices.Contains(CPUFeatures(), "sse2") {
		t.Error("every amd64 CPU reports SSE2")
	}
}
