package host

import (
	"errors"
	"net"
	"os"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/v4/disk"
	gohost "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

func TestIdentityCollectsBlock(t *testing.T) {
	t.Cleanup(func() {
		hostInfo = gohost.Info
		hostname = os.Hostname
		lookupHost = net.LookupHost
	})
	hostInfo = func() (*gohost.InfoStat, error) {
		return &gohost.InfoStat{
			Platform:        "ubuntu",
			PlatformVersion: "24.04",
			KernelVersion:   "6.8.0",
			KernelArch:      "x86_64",
		}, nil
	}
	hostname = func() (string, error) { return "build-07", nil }
	lookupHost = func(name string) ([]string, error) {
		if name != "build-07" {
			t.Fatalf("unexpected lookup target %q", name)
		}
		return []string{"10.1.2.3", "fe80::1"}, nil
	}

	id, err := NewOSStats().Identity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.OSType != runtime.GOOS {
		t.Fatalf("unexpected OS type: %q", id.OSType)
	}
	if id.Platform != "ubuntu 24.04" || id.Kernel != "6.8.0" || id.Arch != "x86_64" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if id.Hostname != "build-07" || id.IPAddr != "10.1.2.3" {
		t.Fatalf("unexpected network identity: %+v", id)
	}
}

func TestIdentityToleratesUnresolvableHostname(t *testing.T) {
	t.Cleanup(func() {
		hostInfo = gohost.Info
		hostname = os.Hostname
		lookupHost = net.LookupHost
	})
	hostInfo = func() (*gohost.InfoStat, error) { return &gohost.InfoStat{}, nil }
	hostname = func() (string, error) { return "island", nil }
	lookupHost = func(string) ([]string, error) { return nil, errors.New("no such host") }

	id, err := NewOSStats().Identity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.IPAddr != "" {
		t.Fatalf("expected empty IP, got %q", id.IPAddr)
	}
}

func TestIdentityPropagatesHostInfoFailure(t *testing.T) {
	t.Cleanup(func() { hostInfo = gohost.Info })
	hostInfo = func() (*gohost.InfoStat, error) { return nil, errors.New("procfs unavailable") }

	if _, err := NewOSStats().Identity(); err == nil {
		t.Fatalf("expected host info failure to propagate")
	}
}

func TestMemoryMapsFields(t *testing.T) {
	t.Cleanup(func() { virtualMemory = mem.VirtualMemory })
	virtualMemory = func() (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 100, Used: 60, Available: 40, UsedPercent: 60}, nil
	}

	stats, err := NewOSStats().Memory()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 100 || stats.Used != 60 || stats.Available != 40 || stats.UsedPercent != 60 {
		t.Fatalf("unexpected memory stats: %+v", stats)
	}
}

func TestDiskMapsFields(t *testing.T) {
	t.Cleanup(func() { diskUsage = disk.Usage })
	diskUsage = func(path string) (*disk.UsageStat, error) {
		if path != "/data" {
			t.Fatalf("unexpected path %q", path)
		}
		return &disk.UsageStat{Total: 500, Used: 100, Free: 400, UsedPercent: 20}, nil
	}

	stats, err := NewOSStats().Disk("/data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Path != "/data" || stats.Total != 500 || stats.Free != 400 {
		t.Fatalf("unexpected disk stats: %+v", stats)
	}
}

func TestDiskPropagatesFailure(t *testing.T) {
	t.Cleanup(func() { diskUsage = disk.Usage })
	diskUsage = func(string) (*disk.UsageStat, error) { return nil, errors.New("mount gone") }

	if _, err := NewOSStats().Disk("/"); err == nil {
		t.Fatalf("expected disk failure to propagate")
	}
}
