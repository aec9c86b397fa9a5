package renderer

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemInfo describes the host the renderer runs on
type SystemInfo struct {
	CPUModel     string // First reported CPU model name
	LogicalCores int    // Logical cores, used as the default worker count
	TotalMemory  uint64 // Total memory in bytes, 0 if unknown
}

// GetSystemInfo queries the host, falling back to the Go runtime for the core count
func GetSystemInfo() SystemInfo {
	info := SystemInfo{
		CPUModel:     "unknown",
		LogicalCores: runtime.NumCPU(),
	}

	if cores, err := cpu.Counts(true); err == nil && cores > 0 {
		info.LogicalCores = cores
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 && cpus[0].ModelName != "" {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}

	return info
}

func (s SystemInfo) String() string {
	return fmt.Sprintf("%s, %d logical cores, %.1f GB RAM", s.CPUModel, s.LogicalCores, float64(s.TotalMemory)/(1<<30))
}

// DefaultWorkerCount returns the number of workers used when none is configured
func DefaultWorkerCount() int {
	return GetSystemInfo().LogicalCores
}
