package proc

import (
	"errors"
	"io/fs"
	"sort"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// Handle exposes per-process queries. A process may exit at any moment, so
// every accessor can fail; callers classify failures with IsGone/IsDenied.
type Handle interface {
	PID() int32
	Name() (string, error)
	Status() (string, error)
	NumThreads() (int32, error)
	ResidentMemory() (uint64, error)
	// CPUPercent returns the CPU usage since the previous CPUPercent call
	// on this handle. The first call after Open has no baseline and its
	// value must be discarded.
	CPUPercent() (float64, error)
}

// Provider enumerates live processes and opens handles to them. The PID
// list is a point-in-time snapshot, not a live view.
type Provider interface {
	PIDs() ([]int32, error)
	Open(pid int32) (Handle, error)
	LogicalCores() (int, error)
}

// OSProvider reads the real process table through gopsutil.
type OSProvider struct{}

// NewOSProvider returns a Provider backed by the host OS.
func NewOSProvider() *OSProvider {
	return &OSProvider{}
}

// PIDs returns all live process ids in ascending order.
func (p *OSProvider) PIDs() ([]int32, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, err
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
	return pids, nil
}

// Open builds a handle for pid, failing if the process no longer exists.
func (p *OSProvider) Open(pid int32) (Handle, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return nil, err
	}
	return &osHandle{proc: proc}, nil
}

// LogicalCores returns the logical CPU count used for normalization.
func (p *OSProvider) LogicalCores() (int, error) {
	return cpu.Counts(true)
}

type osHandle struct {
	proc *process.Process
}

func (h *osHandle) PID() int32 { return h.proc.Pid }

func (h *osHandle) Name() (string, error) { return h.proc.Name() }

func (h *osHandle) Status() (string, error) {
	states, err := h.proc.Status()
	if err != nil {
		return "", err
	}
	return strings.Join(states, ","), nil
}

func (h *osHandle) NumThreads() (int32, error) { return h.proc.NumThreads() }

func (h *osHandle) ResidentMemory() (uint64, error) {
	info, err := h.proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

func (h *osHandle) CPUPercent() (float64, error) {
	// Percent(0) measures against the previous Percent call on the same
	// Process value, which is exactly the prime-then-measure contract.
	return h.proc.Percent(0)
}

// IsGone reports whether err means the process exited between enumeration
// and the failing query.
func IsGone(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, process.ErrorProcessNotRunning) ||
		errors.Is(err, syscall.ESRCH) ||
		errors.Is(err, fs.ErrNotExist)
}

// IsDenied reports whether err means we lack the rights to query the
// process, e.g. one owned by another user.
func IsDenied(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.EACCES) ||
		errors.Is(err, fs.ErrPermission)
}
