// Package sysmon samples host-wide CPU and memory load while a benchmark runs
// and describes the host the benchmark runs on.
package sysmon

import (
	"context"
	"slices"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Usage is one host-wide load reading. Percentages are in [0, 100].
type Usage struct {
	CPUPercent float64
	// BusiestCPU is the highest per-core load. A parallel phase running on
	// fewer cores than the host has shows up here before it moves the average.
	BusiestCPU float64
	MemPercent float64
	MemUsed    uint64
}

// Sample reads CPU load since the previous call and the current memory use.
// Readings that fail are left at zero.
func Sample(ctx context.Context) Usage {
	var u Usage
	if perCore, err := cpu.PercentWithContext(ctx, 0, true); err == nil && len(perCore) > 0 {
		var total float64
		for _, p := range perCore {
			total += p
		}
		u.CPUPercent = total / float64(len(perCore))
		u.BusiestCPU = slices.Max(perCore)
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		u.MemPercent = vm.UsedPercent
		u.MemUsed = vm.Used
	}
	return u
}
