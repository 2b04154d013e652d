package greenops

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Calculate computes equivalencies for a total expressed in kg CO2e.
//
// Totals below MinEquivalencyThresholdKg return an empty output and no error.
// Tree seedlings are only listed once the total reaches MinSeedlingThresholdKg.
func Calculate(ctx context.Context, kg float64) (EquivalencyOutput, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	if math.IsInf(miles, 0) || math.IsInf(phones, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatEquivalencyValue(miles)
	phonesFormatted := formatEquivalencyValue(phones)

	results := []EquivalencyResult{
		{
			Type:           EquivalencyMilesDriven,
			Value:          miles,
			FormattedValue: milesFormatted,
			Label:          "miles driven",
		},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          phones,
			FormattedValue: phonesFormatted,
			Label:          "smartphones charged",
		},
	}

	if kg >= MinSeedlingThresholdKg {
		seedlings := kg / EPATreeSeedlingFactor
		results = append(results, EquivalencyResult{
			Type:           EquivalencyTreeSeedlings,
			Value:          seedlings,
			FormattedValue: formatEquivalencyValue(seedlings),
			Label:          "tree seedlings grown for 10 years",
		})
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "greenops").
		Float64("kg", kg).
		Int("equivalencies", len(results)).
		Msg("equivalencies calculated")

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", milesFormatted, phonesFormatted),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", milesFormatted, phonesFormatted),
	}, nil
}

// DisplayLine returns the prose line for kg, or "" when nothing should be shown.
// Calculation errors are logged and swallowed; the summary renders without the line.
func DisplayLine(ctx context.Context, kg float64) string {
	out, err := Calculate(ctx, kg)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("component", "greenops").Msg("equivalency calculation failed")
		return ""
	}
	if out.IsEmpty {
		return ""
	}
	return out.DisplayText
}

// formatEquivalencyValue rounds small values to comma-separated integers and
// abbreviates values of a million or more.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
