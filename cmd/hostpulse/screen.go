package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/srodi/hostpulse/pkg/ui"
)

// screenWriter repaints the whole screen on every cycle: banner, status
// line, then the rendered report. The monitor hands it one Write per cycle.
type screenWriter struct {
	out      io.Writer
	interval time.Duration
	banner   string
}

func newScreenWriter(out io.Writer, interval time.Duration) *screenWriter {
	return &screenWriter{out: out, interval: interval, banner: ui.Banner()}
}

func (w *screenWriter) Write(p []byte) (int, error) {
	var buf bytes.Buffer
	buf.WriteString("\033[H\033[2J")
	buf.WriteString(w.banner)
	fmt.Fprintf(&buf, "hostpulse (press Ctrl+C to exit)\n")
	fmt.Fprintf(&buf, "Updated: %s | Interval: %v\n\n", time.Now().Format(time.RFC3339), w.interval)
	buf.Write(p)
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// plainWriter separates consecutive cycles with a blank line, the way the
// report reads when piped to a file.
type plainWriter struct {
	out   io.Writer
	first bool
}

func newPlainWriter(out io.Writer) *plainWriter {
	return &plainWriter{out: out, first: true}
}

func (w *plainWriter) Write(p []byte) (int, error) {
	if !w.first {
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return 0, err
		}
	}
	w.first = false
	if _, err := w.out.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// enableSingleView switches to the terminal's alternate buffer and hides
// the cursor; the returned func undoes everything in reverse order.
func enableSingleView(log zerolog.Logger) func() {
	stdoutFD := int(os.Stdout.Fd())
	stdinFD := int(os.Stdin.Fd())
	if !term.IsTerminal(stdoutFD) {
		return func() {}
	}

	fmt.Print("\033[?1049h") // switch to alternate buffer
	fmt.Print("\033[?25l")   // hide cursor

	var restore []func()
	if term.IsTerminal(stdinFD) {
		if undoEcho, err := disableInputEcho(stdinFD); err != nil {
			log.Warn().Err(err).Msg("unable to suppress stdin echo")
		} else if undoEcho != nil {
			restore = append(restore, undoEcho)
		}
	}

	return func() {
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
		fmt.Print("\033[?25h")   // show cursor
		fmt.Print("\033[?1049l") // restore main buffer
	}
}
