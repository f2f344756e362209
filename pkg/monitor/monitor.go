package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/srodi/hostpulse/pkg/collector/host"
	"github.com/srodi/hostpulse/pkg/collector/proc"
	"github.com/srodi/hostpulse/pkg/report"
	"github.com/srodi/hostpulse/pkg/types"
)

// Options tune one monitor instance. Zero values fall back to the
// defaults in pkg/types.
type Options struct {
	Interval  time.Duration
	Settle    time.Duration
	TopN      int
	ScanLimit int
	DiskPath  string
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = types.DefaultInterval
	}
	if o.Settle <= 0 {
		o.Settle = types.DefaultSettle
	}
	if o.TopN <= 0 {
		o.TopN = types.DefaultTopN
	}
	if o.ScanLimit <= 0 {
		o.ScanLimit = types.DefaultScanLimit
	}
	if o.DiskPath == "" {
		o.DiskPath = "/"
	}
	return o
}

// Monitor drives the snapshot -> sample -> rank -> render cycle. Each
// cycle is rebuilt from scratch; nothing persists across iterations.
type Monitor struct {
	opts     Options
	provider proc.Provider
	stats    host.Stats
	sampler  *proc.Sampler
	out      io.Writer
	log      zerolog.Logger
}

// New wires a monitor from its collaborators. Rendered cycles are written
// to out as one string per cycle.
func New(provider proc.Provider, stats host.Stats, out io.Writer, opts Options, log zerolog.Logger) *Monitor {
	opts = opts.withDefaults()
	return &Monitor{
		opts:     opts,
		provider: provider,
		stats:    stats,
		sampler:  proc.NewSampler(provider, opts.Settle, log),
		out:      out,
		log:      log,
	}
}

// RunCycle performs exactly one reporting cycle. Host-level query failures
// are returned as-is; per-process failures never surface here.
func (m *Monitor) RunCycle(ctx context.Context) error {
	id, err := m.stats.Identity()
	if err != nil {
		return err
	}
	memStats, err := m.stats.Memory()
	if err != nil {
		return err
	}
	diskStats, err := m.stats.Disk(m.opts.DiskPath)
	if err != nil {
		return err
	}

	pids, err := m.provider.PIDs()
	if err != nil {
		return fmt.Errorf("enumerating processes: %w", err)
	}
	if len(pids) > m.opts.ScanLimit {
		pids = pids[len(pids)-m.opts.ScanLimit:]
	}

	samples, err := m.sampler.Sample(ctx, pids)
	if err != nil {
		return err
	}
	rows := report.TopN(samples, m.opts.TopN, m.log)

	text := report.Render(id, memStats, diskStats, rows, m.opts.TopN)
	if _, err := io.WriteString(m.out, text); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Run cycles immediately and then on every interval tick until ctx is
// cancelled. Cancellation is a clean stop; any other error is fatal to
// the loop and returned.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.opts.Interval)
	defer ticker.Stop()

	if err := m.RunCycle(ctx); err != nil {
		return m.stopErr(err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := m.RunCycle(ctx); err != nil {
				return m.stopErr(err)
			}
		}
	}
}

func (m *Monitor) stopErr(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
