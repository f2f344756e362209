package host

import (
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/srodi/hostpulse/pkg/types"
)

// Stats answers the host-level queries the monitor needs each cycle.
// Failures here have no degraded mode; callers treat them as fatal.
type Stats interface {
	Identity() (types.Identity, error)
	Memory() (types.MemoryStats, error)
	Disk(path string) (types.DiskStats, error)
}

// Package vars allow tests to stub the OS queries.
var (
	hostInfo      = host.Info
	virtualMemory = mem.VirtualMemory
	diskUsage     = disk.Usage
	hostname      = os.Hostname
	lookupHost    = net.LookupHost
)

// OSStats reads real host statistics through gopsutil.
type OSStats struct{}

// NewOSStats returns a Stats backed by the host OS.
func NewOSStats() *OSStats {
	return &OSStats{}
}

// Identity collects the OS and network identity block.
func (s *OSStats) Identity() (types.Identity, error) {
	info, err := hostInfo()
	if err != nil {
		return types.Identity{}, fmt.Errorf("querying host info: %w", err)
	}
	name, err := hostname()
	if err != nil {
		return types.Identity{}, fmt.Errorf("resolving hostname: %w", err)
	}

	id := types.Identity{
		OSType:   runtime.GOOS,
		Platform: fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion),
		Kernel:   info.KernelVersion,
		Arch:     info.KernelArch,
		Hostname: name,
	}
	// Hostnames without a resolvable address are common on laptops; the
	// identity block still renders, just without an IP.
	if addrs, err := lookupHost(name); err == nil && len(addrs) > 0 {
		id.IPAddr = addrs[0]
	}
	return id, nil
}

// Memory returns system-wide virtual memory usage.
func (s *OSStats) Memory() (types.MemoryStats, error) {
	vm, err := virtualMemory()
	if err != nil {
		return types.MemoryStats{}, fmt.Errorf("querying virtual memory: %w", err)
	}
	return types.MemoryStats{
		Total:       vm.Total,
		Used:        vm.Used,
		Available:   vm.Available,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// Disk returns usage for a single filesystem path.
func (s *OSStats) Disk(path string) (types.DiskStats, error) {
	usage, err := diskUsage(path)
	if err != nil {
		return types.DiskStats{}, fmt.Errorf("querying disk usage for %s: %w", path, err)
	}
	return types.DiskStats{
		Path:        path,
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}
