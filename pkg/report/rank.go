package report

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/srodi/hostpulse/pkg/collector/proc"
	"github.com/srodi/hostpulse/pkg/types"
)

// TopN selects the topN highest-CPU samples and materializes a row for
// each. The sort is stable over enumeration order, so equal percentages
// keep their relative order after the descending flip. Rows whose process
// exited between selection and materialization are dropped; partial output
// is expected under process churn.
func TopN(samples []proc.Sample, topN int, log zerolog.Logger) []types.RankedProcess {
	if topN <= 0 || len(samples) == 0 {
		return nil
	}

	ordered := make([]proc.Sample, len(samples))
	copy(ordered, samples)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Percent < ordered[j].Percent })
	if len(ordered) > topN {
		ordered = ordered[len(ordered)-topN:]
	}
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}

	rows := make([]types.RankedProcess, 0, len(ordered))
	for _, sample := range ordered {
		row, err := materialize(sample)
		if err != nil {
			if !proc.IsGone(err) && !proc.IsDenied(err) {
				log.Warn().Int32("pid", sample.Handle.PID()).Err(err).Msg("dropping ranked process")
			}
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func materialize(sample proc.Sample) (types.RankedProcess, error) {
	h := sample.Handle
	name, err := h.Name()
	if err != nil {
		return types.RankedProcess{}, err
	}
	status, err := h.Status()
	if err != nil {
		return types.RankedProcess{}, err
	}
	threads, err := h.NumThreads()
	if err != nil {
		return types.RankedProcess{}, err
	}
	rss, err := h.ResidentMemory()
	if err != nil {
		return types.RankedProcess{}, err
	}
	return types.RankedProcess{
		PID:        h.PID(),
		Name:       name,
		Status:     status,
		CPUPercent: sample.Percent,
		Threads:    threads,
		RSSBytes:   rss,
	}, nil
}
