package report

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/srodi/hostpulse/pkg/types"
)

// Render formats one full cycle: identity block, memory table, disk table,
// process table, in that order. It is a pure function of its inputs, so
// rendering the same values twice yields identical text.
func Render(id types.Identity, mem types.MemoryStats, disk types.DiskStats, procs []types.RankedProcess, topN int) string {
	var buf bytes.Buffer

	buf.WriteString("OS info\n")
	fmt.Fprintf(&buf, " OS type: %s\n", id.OSType)
	fmt.Fprintf(&buf, " OS version: %s %s\n", id.Platform, id.Kernel)
	fmt.Fprintf(&buf, " OS architecture: %s\n", id.Arch)
	fmt.Fprintf(&buf, " Server hostname: %s\n", id.Hostname)
	fmt.Fprintf(&buf, " Server ip address: %s\n", id.IPAddr)
	buf.WriteString("\n")

	buf.WriteString("Memory usage\n")
	writeUsageTable(&buf, mem.Total, mem.Used, mem.Available, mem.UsedPercent)
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "Disk usage (%s)\n", disk.Path)
	writeUsageTable(&buf, disk.Total, disk.Used, disk.Free, disk.UsedPercent)
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "Top %d processes with highest cpu usage\n", topN)
	writeProcessTable(&buf, procs)

	return buf.String()
}

func writeUsageTable(buf *bytes.Buffer, total, used, available uint64, percent float64) {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Total\tUsed\tAvailable\tPercentage")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%.1f\n", total, used, available, percent)
	tw.Flush()
}

func writeProcessTable(buf *bytes.Buffer, procs []types.RankedProcess) {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Pid\tName\tStatus\tCPU Usage\tThreads\tMemory(MB)")
	for _, p := range procs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f%%\t%d\t%.3f\n",
			p.PID, p.Name, p.Status, p.CPUPercent, p.Threads, float64(p.RSSBytes)/1e6)
	}
	tw.Flush()
}
