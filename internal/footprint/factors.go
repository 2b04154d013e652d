package footprint

// Emission factors convert a category's raw quantity into kg CO2e.
const (
	ExcavationFactor     = 0.8
	TransportationFactor = 0.1
	EquipmentFactor      = 2.5
	ElectricityFactor    = 0.5
	HeatFactor           = 0.0001
	AirFactor            = 0.02
	OtherFactor          = 1.0
)

// ReferenceKg is the kg CO2e value the summary gauge measures against.
// It is a display scale, not a limit.
const ReferenceKg = 1000.0

//nolint:gochecknoglobals // Static lookup table, parallel to categoryInfo.
var emissionFactors = [CategoryCount]float64{
	Excavation:     ExcavationFactor,
	Transportation: TransportationFactor,
	Equipment:      EquipmentFactor,
	Electricity:    ElectricityFactor,
	Heat:           HeatFactor,
	Air:            AirFactor,
	Other:          OtherFactor,
}

// Factor returns the emission factor for c, or 0 for an unknown category.
func Factor(c Category) float64 {
	if !c.Valid() {
		return 0
	}
	return emissionFactors[c]
}
