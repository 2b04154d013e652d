package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonState is the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Enabled
	ButtonDisabled                    // Grayed out
	ButtonFocused                     // Primary action
)

// Button is a single entry in the button bar.
type Button struct {
	Label string
	State ButtonState
}

var (
	buttonBase = lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)

	buttonNormalStyle   = buttonBase.Background(ColorButton)
	buttonDisabledStyle = buttonBase.Foreground(ColorMuted).Faint(true)
	buttonFocusedStyle  = buttonBase.Bold(true).Reverse(true)
)

// RenderButtonBar renders buttons side by side, centered in width.
func RenderButtonBar(buttons []Button, width int) string {
	if len(buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(buttons))
	for _, b := range buttons {
		switch b.State {
		case ButtonDisabled:
			rendered = append(rendered, buttonDisabledStyle.Render(b.Label))
		case ButtonFocused:
			rendered = append(rendered, buttonFocusedStyle.Render(b.Label))
		default:
			rendered = append(rendered, buttonNormalStyle.Render(b.Label))
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rendered, ""))
}

// NavButtons returns the Previous / Next pair for an input step. On the last
// input step the forward button reads "Calculate".
func NavButtons(s Stepper) []Button {
	back := Button{Label: "← Previous", State: ButtonNormal}
	if s.IsFirst() {
		back.State = ButtonDisabled
	}

	next := Button{Label: "Next →", State: ButtonFocused}
	if s.IsLastInput() {
		next.Label = "Calculate"
	}

	return []Button{back, next}
}
