package footprint

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Result is the outcome of a successful calculation.
type Result struct {
	// Values are the raw inputs the result was computed from.
	Values Values `json:"-"`

	// Contributions holds value × factor per category, indexed by Category.
	Contributions [CategoryCount]float64 `json:"-"`

	// Coerced marks categories whose non-empty input did not parse and counted as 0.
	Coerced [CategoryCount]bool `json:"-"`

	// TotalKg is the unrounded sum of all contributions in kg CO2e.
	TotalKg float64 `json:"total_kg"`

	// Percent is TotalKg as a share of ReferenceKg, capped at 100.
	Percent float64 `json:"percent"`
}

// ParseValue converts raw input to a number. Empty, unparsable and non-finite
// input all yield 0.
func ParseValue(raw string) float64 {
	v, ok := parseNumber(strings.TrimSpace(raw))
	if !ok {
		return 0
	}
	return v
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

// Calculate sums value × factor over all seven categories. No rounding is
// applied; use FormatTotal and FormatPercent for display.
//
// Calculate does not validate. Callers that enforce the submit rule run
// Validate first. A non-empty value that fails to parse is counted as 0 and
// logged at warn level through the logger carried by ctx.
func Calculate(ctx context.Context, values Values) Result {
	logger := zerolog.Ctx(ctx)

	res := Result{Values: values}
	for _, c := range Categories() {
		raw := strings.TrimSpace(values[c])
		v, ok := parseNumber(raw)
		if !ok && raw != "" {
			res.Coerced[c] = true
			logger.Warn().
				Str("component", "footprint").
				Str("category", c.String()).
				Str("raw", raw).
				Msg("non-numeric value counted as 0")
		}
		res.Contributions[c] = v * Factor(c)
		res.TotalKg += res.Contributions[c]
	}
	res.Percent = Percent(res.TotalKg)

	if res.Overflow() {
		logger.Warn().
			Str("component", "footprint").
			Msg("total too large to represent")
	}

	logger.Debug().
		Str("component", "footprint").
		Float64("total_kg", res.TotalKg).
		Float64("percent", res.Percent).
		Msg("footprint calculated")

	return res
}

// Overflow reports whether the inputs were too large for the total to be
// represented as a finite number.
func (r Result) Overflow() bool {
	return !isFinite(r.TotalKg)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Percent returns totalKg as a percentage of ReferenceKg, capped at 100.
// A NaN total yields 0.
func Percent(totalKg float64) float64 {
	if math.IsNaN(totalKg) {
		return 0
	}
	return math.Min((totalKg/ReferenceKg)*100, 100) //nolint:mnd // Percentage calculation.
}

// OverflowText replaces amounts that are not finite.
const OverflowText = "too large to display"

// FormatTotal renders a kg CO2e amount with two decimal places, or
// OverflowText when kg is not finite.
func FormatTotal(kg float64) string {
	if !isFinite(kg) {
		return OverflowText
	}
	return strconv.FormatFloat(kg, 'f', 2, 64)
}

// FormatKg renders "X.XX kg CO2e", or OverflowText when kg is not finite.
func FormatKg(kg float64) string {
	if !isFinite(kg) {
		return OverflowText
	}
	return FormatTotal(kg) + " kg CO2e"
}

// FormatPercent renders a percentage with one decimal place and a % sign.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// DisplayValue returns the raw value as entered, or "0" when it is empty.
func DisplayValue(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "0"
	}
	return raw
}

// Submit validates values and, when every field passes, calculates the result.
// On failure the returned error is a FieldErrors.
func Submit(ctx context.Context, values Values) (Result, error) {
	if errs := Validate(values); errs != nil {
		zerolog.Ctx(ctx).Debug().
			Str("component", "footprint").
			Int("invalid_fields", len(errs)).
			Msg("submit rejected")
		return Result{}, errs
	}
	return Calculate(ctx, values), nil
}
