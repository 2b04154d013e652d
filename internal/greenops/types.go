// Package greenops turns a kg CO2e total into relatable comparisons such as
// miles driven or smartphones charged, using EPA-published factors.
package greenops

import "fmt"

// EquivalencyType is a category of real-world comparison.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings is tree seedlings grown for 10 years to absorb the total.
	EquivalencyTreeSeedlings
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// EquivalencyResult is a single calculated comparison.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds every comparison for one total.
type EquivalencyOutput struct {
	// InputKg is the kg CO2e total the comparisons were computed from.
	InputKg float64 `json:"input_kg"`

	// Results are in display priority order.
	Results []EquivalencyResult `json:"results,omitempty"`

	// DisplayText is the prose line shown under the total.
	// Example: "Equivalent to driving ~394 miles or charging ~9,197 smartphones"
	DisplayText string `json:"display_text,omitempty"`

	// CompactText is the short form used in plain table output.
	// Example: "(≈ 394 mi, 9,197 phones)"
	CompactText string `json:"compact_text,omitempty"`

	IsEmpty bool `json:"is_empty"`
}
