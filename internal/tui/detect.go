package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode is how results are presented in the current terminal.
type OutputMode int

const (
	// OutputModePlain is uncolored text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is lipgloss output without interaction.
	OutputModeStyled
	// OutputModeInteractive is the full Bubble Tea form.
	OutputModeInteractive
)

// defaultTerminalWidth is used when the width cannot be detected.
const defaultTerminalWidth = 80

// IsTTY reports whether both stdin and stdout are terminals.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or 80 if unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// DetectOutputMode picks the richest mode the environment supports.
// forcePlain and noColor come from flags; NO_COLOR and TERM=dumb are honored too.
func DetectOutputMode(forcePlain, noColor, nonInteractive bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, nonInteractive, IsTTY(), os.LookupEnv)
}

func detectOutputMode(
	forcePlain, noColor, nonInteractive, tty bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if forcePlain || !tty {
		return OutputModePlain
	}
	if t, ok := lookupEnv("TERM"); ok && t == "dumb" {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok || noColor {
		if nonInteractive {
			return OutputModePlain
		}
		return OutputModeInteractive
	}
	if nonInteractive {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// DisableColor switches all lipgloss rendering to plain ASCII.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
