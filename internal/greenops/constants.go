package greenops

// EPA equivalency factors, kg CO2e per unit of activity.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed by one tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest total that gets an equivalency line.
	// Below it the comparisons round to nothing useful.
	MinEquivalencyThresholdKg = 1.0

	// MinSeedlingThresholdKg is the smallest total that lists tree seedlings.
	MinSeedlingThresholdKg = EPATreeSeedlingFactor

	// LargeNumberThreshold switches to "~X.X million" notation.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" notation.
	BillionThreshold = 1_000_000_000
)
