package ui

import "strings"

const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	pulseRed  = "\033[38;5;203m"
	ember     = "\033[38;5;209m"
	gold      = "\033[38;5;220m"
	leaf      = "\033[38;5;114m"
	sky       = "\033[38;5;75m"
	heartbeat = "\033[38;5;205m"
)

// Banner renders a colored hostpulse wordmark.
func Banner() string {
	var b strings.Builder

	pulseLetters := [][]string{
		{"██████╗ ", "██╔══██╗", "██████╔╝", "██╔═══╝ ", "██║     ", "╚═╝     "},
		{"██╗   ██╗", "██║   ██║", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{"██╗     ", "██║     ", "██║     ", "██║     ", "███████╗", "╚══════╝"},
		{"███████╗", "██╔════╝", "███████╗", "╚════██║", "███████║", "╚══════╝"},
		{"███████╗", "██╔════╝", "█████╗  ", "██╔══╝  ", "███████╗", "╚══════╝"},
	}
	pulseGradient := []string{pulseRed, ember, gold, leaf, sky}
	pulseRows := make([]string, len(pulseLetters[0]))
	for i, letter := range pulseLetters {
		color := pulseGradient[i%len(pulseGradient)]
		for row := 0; row < len(letter); row++ {
			pulseRows[row] += color + letter[row] + "  "
		}
	}
	for _, line := range pulseRows {
		b.WriteString(bold + line + reset + "\n")
	}

	b.WriteString("\n")
	b.WriteString(bold + heartbeat + "hostpulse" + reset + "  •  host telemetry at a glance\n\n")

	return b.String()
}
