package sysmon

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// HostInfo describes the machine the benchmark runs on. Fields gopsutil
// cannot read on the current platform are left at their zero value.
type HostInfo struct {
	OS            string
	Arch          string
	GoVersion     string
	CPUModel      string
	LogicalCores  int
	PhysicalCores int
	GOMAXPROCS    int
	TotalMemory   uint64
	Features      []string
}

// Host gathers a HostInfo. Errors from individual probes are ignored.
func Host(ctx context.Context) HostInfo {
	h := HostInfo{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		GoVersion:    runtime.Version(),
		LogicalCores: runtime.NumCPU(),
		GOMAXPROCS:   runtime.GOMAXPROCS(0),
		Features:     CPUFeatures(),
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil && n > 0 {
		h.PhysicalCores = n
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		h.TotalMemory = vmem.Total
	}
	return h
}
