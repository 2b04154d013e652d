package tui

import (
	"fmt"

	"github.com/rshade/coalprint/internal/footprint"
)

// Step is the position in the form: 0..6 index a category, 7 is the summary.
type Step int

const (
	// FirstStep is the first category input.
	FirstStep Step = 0
	// LastInputStep is the last category input, where Next becomes Calculate.
	LastInputStep Step = footprint.CategoryCount - 1
	// StepSummary is the terminal summary state.
	StepSummary Step = footprint.CategoryCount
)

// Stepper moves linearly through the input steps. It never wraps, and once it
// reaches the summary it stays there.
type Stepper struct {
	step Step
}

// Current returns the active step.
func (s Stepper) Current() Step { return s.step }

// IsSummary reports whether the summary is showing.
func (s Stepper) IsSummary() bool { return s.step == StepSummary }

// IsFirst reports whether the first input step is active.
func (s Stepper) IsFirst() bool { return s.step == FirstStep }

// IsLastInput reports whether the last input step is active.
func (s Stepper) IsLastInput() bool { return s.step == LastInputStep }

// Advance moves forward one step, clamped to LastInputStep. Only Finish
// reaches the summary.
func (s *Stepper) Advance() {
	if s.step < LastInputStep {
		s.step++
	}
}

// Retreat moves back one step, clamped to FirstStep. It is a no-op on the summary.
func (s *Stepper) Retreat() {
	if s.step > FirstStep && s.step != StepSummary {
		s.step--
	}
}

// Finish jumps to the summary. Call it only after a successful submit.
func (s *Stepper) Finish() {
	s.step = StepSummary
}

// Category returns the category for the active input step. ok is false on the summary.
func (s Stepper) Category() (footprint.Category, bool) {
	if s.step < FirstStep || s.step > LastInputStep {
		return 0, false
	}
	return footprint.Category(s.step), true
}

// Fraction returns progress through the input steps in [0, 1].
func (s Stepper) Fraction() float64 {
	if s.step >= LastInputStep {
		return 1
	}
	return float64(s.step) / float64(LastInputStep)
}

// Label returns the "N/7" step indicator. The summary shows the last step.
func (s Stepper) Label() string {
	n := int(s.step) + 1
	if n > footprint.CategoryCount {
		n = footprint.CategoryCount
	}
	return fmt.Sprintf("%d/%d", n, footprint.CategoryCount)
}
