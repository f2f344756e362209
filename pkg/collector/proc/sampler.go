package proc

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Sample pairs a still-open handle with its normalized CPU percent for one
// sampling window. Slice order follows enumeration order so downstream
// ranking ties break deterministically.
type Sample struct {
	Handle  Handle
	Percent float64
}

// Sampler measures per-process CPU usage with two time-separated probes:
// one priming call that resets each handle's delta baseline, a shared
// settle wait, then one measuring call whose value is divided by the
// logical core count.
type Sampler struct {
	provider Provider
	settle   time.Duration
	log      zerolog.Logger
}

// NewSampler builds a sampler on top of provider. A non-positive settle
// falls back to the default.
func NewSampler(provider Provider, settle time.Duration, log zerolog.Logger) *Sampler {
	if settle <= 0 {
		settle = 100 * time.Millisecond
	}
	return &Sampler{provider: provider, settle: settle, log: log}
}

// Sample opens and measures the given pids. Processes that exit or deny
// access at any probe are skipped silently; other per-process errors are
// logged and the process skipped. The cycle itself only fails when the
// settle wait is cancelled or core count cannot be read.
func (s *Sampler) Sample(ctx context.Context, pids []int32) ([]Sample, error) {
	cores, err := s.provider.LogicalCores()
	if err != nil {
		return nil, fmt.Errorf("counting logical cores: %w", err)
	}
	if cores < 1 {
		cores = 1
	}

	handles := make([]Handle, 0, len(pids))
	for _, pid := range pids {
		h, err := s.provider.Open(pid)
		if err != nil {
			s.skip(pid, "open", err)
			continue
		}
		// Primer: the first reading after open has no baseline.
		if _, err := h.CPUPercent(); err != nil {
			s.skip(pid, "prime", err)
			continue
		}
		handles = append(handles, h)
	}

	if err := sleepCtx(ctx, s.settle); err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(handles))
	for _, h := range handles {
		percent, err := h.CPUPercent()
		if err != nil {
			s.skip(h.PID(), "measure", err)
			continue
		}
		samples = append(samples, Sample{Handle: h, Percent: percent / float64(cores)})
	}
	return samples, nil
}

func (s *Sampler) skip(pid int32, stage string, err error) {
	if IsGone(err) || IsDenied(err) {
		return
	}
	s.log.Warn().Int32("pid", pid).Str("stage", stage).Err(err).Msg("skipping process")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
