package types

import "time"

// DefaultTopN controls how many top CPU consumers we display per cycle.
const DefaultTopN = 10

// DefaultScanLimit caps how many of the highest-numbered PIDs are scanned
// per cycle. This bounds scan cost, not correctness.
const DefaultScanLimit = 200

// DefaultInterval is the pause between reporting cycles.
const DefaultInterval = time.Second

// DefaultSettle is the wait between the priming and measuring CPU probes.
const DefaultSettle = 100 * time.Millisecond

// RankedProcess is one row of the process table, built once per cycle and
// never mutated afterwards.
type RankedProcess struct {
	PID        int32
	Name       string
	Status     string
	CPUPercent float64
	Threads    int32
	RSSBytes   uint64
}

// MemoryStats describes system-wide virtual memory at one instant.
type MemoryStats struct {
	Total       uint64
	Used        uint64
	Available   uint64
	UsedPercent float64
}

// DiskStats describes usage of a single filesystem path.
type DiskStats struct {
	Path        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// Identity holds the OS and network identity block printed at the top of
// every cycle.
type Identity struct {
	OSType   string
	Platform string
	Kernel   string
	Arch     string
	Hostname string
	IPAddr   string
}
