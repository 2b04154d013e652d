package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/coalprint/internal/footprint"
	"github.com/rshade/coalprint/internal/greenops"
)

// Default dimensions for the calculator model.
const (
	calculatorDefaultWidth  = 80
	calculatorDefaultHeight = 24
	inputWidth              = 32
	barWidthMax             = 60
	barPadding              = 8
)

// CalculatorModel is the Bubble Tea model for the footprint form.
//
// States 0..6 each show one category's input; state 7 shows the summary.
// Fields are validated together when Calculate is pressed on the last step,
// never per keystroke.
type CalculatorModel struct {
	ctx    context.Context
	logger zerolog.Logger

	stepper Stepper
	inputs  [footprint.CategoryCount]textinput.Model
	errs    footprint.FieldErrors

	result      footprint.Result
	submitted   bool
	equivalency string

	showTooltip bool
	keys        keyMap
	help        help.Model
	stepBar     progress.Model
	gauge       progress.Model

	width    int
	height   int
	quitting bool
}

// NewCalculatorModel creates a form positioned on the first category.
func NewCalculatorModel(ctx context.Context) *CalculatorModel {
	m := &CalculatorModel{
		ctx:     ctx,
		logger:  zerolog.Ctx(ctx).With().Str("component", "tui").Logger(),
		keys:    newKeyMap(),
		help:    help.New(),
		stepBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		gauge:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:   calculatorDefaultWidth,
		height:  calculatorDefaultHeight,
	}

	for _, c := range footprint.Categories() {
		ti := textinput.New()
		ti.Placeholder = "Enter value in " + c.Unit()
		ti.CharLimit = 32
		ti.Width = inputWidth
		m.inputs[c] = ti
	}

	m.resize(m.width)
	m.focusActive()
	return m
}

// Init starts the cursor blinking in the first field.
func (m *CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateActiveInput(msg)
}

// handleKeyMsg routes a key press. Keys that are not bindings go to the
// active text field.
func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case m.stepper.IsSummary():
		if key.Matches(msg, m.keys.Close) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Tooltip):
		m.showTooltip = !m.showTooltip
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.Retreat()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Next):
		if m.stepper.IsLastInput() {
			m.Submit()
			return m, nil
		}
		m.Advance()
		return m, textinput.Blink
	}

	return m.updateActiveInput(msg)
}

func (m *CalculatorModel) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	c, ok := m.stepper.Category()
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[c], cmd = m.inputs[c].Update(msg)
	return m, cmd
}

// Advance moves to the next input step, clamped to the last one.
func (m *CalculatorModel) Advance() {
	m.stepper.Advance()
	m.focusActive()
}

// Retreat moves to the previous input step, clamped to the first one.
func (m *CalculatorModel) Retreat() {
	m.stepper.Retreat()
	m.focusActive()
}

// Submit validates every field. On success it computes the result and moves
// to the summary from whatever step is active. On failure the step does not
// change and the failing fields are flagged until the next attempt.
func (m *CalculatorModel) Submit() bool {
	if m.stepper.IsSummary() {
		return true
	}

	res, err := footprint.Submit(m.ctx, m.Values())
	if err != nil {
		var fieldErrs footprint.FieldErrors
		if errors.As(err, &fieldErrs) {
			m.errs = fieldErrs
		}
		m.logger.Info().
			Int("invalid_fields", len(m.errs)).
			Msg("calculation blocked by invalid fields")
		return false
	}

	m.errs = nil
	m.result = res
	m.submitted = true
	m.equivalency = ""
	if !res.Overflow() {
		m.equivalency = greenops.DisplayLine(m.ctx, res.TotalKg)
	}
	m.stepper.Finish()
	m.focusActive()

	m.logger.Info().
		Float64("total_kg", res.TotalKg).
		Msg("footprint submitted")
	return true
}

// SetValue replaces the text of a category's field.
func (m *CalculatorModel) SetValue(c footprint.Category, v string) {
	if !c.Valid() {
		return
	}
	m.inputs[c].SetValue(v)
}

// Values returns the raw text of every field.
func (m *CalculatorModel) Values() footprint.Values {
	values := make(footprint.Values, footprint.CategoryCount)
	for _, c := range footprint.Categories() {
		values[c] = m.inputs[c].Value()
	}
	return values
}

// Step returns the active step.
func (m *CalculatorModel) Step() Step { return m.stepper.Current() }

// Errors returns the fields flagged by the last submit attempt.
func (m *CalculatorModel) Errors() footprint.FieldErrors { return m.errs }

// Result returns the calculated result. ok is false until a submit succeeds.
func (m *CalculatorModel) Result() (footprint.Result, bool) {
	return m.result, m.submitted
}

// Quitting reports whether the user asked to exit.
func (m *CalculatorModel) Quitting() bool { return m.quitting }

// focusActive focuses the active step's field and blurs the rest, then
// refreshes which key bindings apply.
func (m *CalculatorModel) focusActive() {
	active, ok := m.stepper.Category()
	for _, c := range footprint.Categories() {
		if ok && c == active {
			m.inputs[c].Focus()
			continue
		}
		m.inputs[c].Blur()
	}
	m.keys.syncToStep(m.stepper)
}

func (m *CalculatorModel) resize(width int) {
	barWidth := width - barPadding
	if barWidth > barWidthMax {
		barWidth = barWidthMax
	}
	if barWidth < 10 { //nolint:mnd // Minimum usable bar.
		barWidth = 10
	}
	m.stepBar.Width = barWidth
	m.gauge.Width = barWidth
	m.help.Width = width
}
