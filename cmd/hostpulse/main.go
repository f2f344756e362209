package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/srodi/hostpulse/pkg/collector/host"
	"github.com/srodi/hostpulse/pkg/collector/proc"
	"github.com/srodi/hostpulse/pkg/config"
	"github.com/srodi/hostpulse/pkg/monitor"
)

func parseConfig(log zerolog.Logger) *config.Config {
	configPath := flag.String("config", "", "optional yaml config file")
	interval := flag.Duration("interval", time.Duration(config.Default().Interval), "pause between reporting cycles (e.g. 1s, 5s)")
	settle := flag.Duration("settle", time.Duration(config.Default().Settle), "wait between the two CPU probes")
	topN := flag.Int("topn", config.Default().TopN, "number of processes to display")
	scanLimit := flag.Int("scan-limit", config.Default().ScanLimit, "scan at most this many of the highest-numbered pids")
	diskPath := flag.String("disk", config.Default().DiskPath, "filesystem path for the disk usage table")
	plain := flag.Bool("plain", false, "plain scrolling output instead of the alternate-screen view")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["interval"] {
		cfg.Interval = config.Duration(*interval)
	}
	if set["settle"] {
		cfg.Settle = config.Duration(*settle)
	}
	if set["topn"] {
		cfg.TopN = *topN
	}
	if set["scan-limit"] {
		cfg.ScanLimit = *scanLimit
	}
	if set["disk"] {
		cfg.DiskPath = *diskPath
	}
	if set["plain"] {
		cfg.Plain = *plain
	}
	if cfg.Interval <= 0 {
		cfg.Interval = config.Default().Interval
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 1
	}
	return cfg
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("component", "hostpulse").Logger()

	cfg := parseConfig(log)
	// run owns the deferred terminal restore; Fatal would skip it.
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("monitor stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var out io.Writer
	if cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		out = newPlainWriter(os.Stdout)
	} else {
		cleanupTerminal := enableSingleView(log)
		defer cleanupTerminal()
		out = newScreenWriter(os.Stdout, time.Duration(cfg.Interval))
	}

	mon := monitor.New(proc.NewOSProvider(), host.NewOSStats(), out, monitor.Options{
		Interval:  time.Duration(cfg.Interval),
		Settle:    time.Duration(cfg.Settle),
		TopN:      cfg.TopN,
		ScanLimit: cfg.ScanLimit,
		DiskPath:  cfg.DiskPath,
	}, log)

	return mon.Run(ctx)
}
