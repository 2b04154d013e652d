// Package footprint holds the compiled-in emission categories and the calculator
// that turns raw form input into a kg CO2e total.
//
// Category metadata and emission factors are two parallel static tables indexed by
// the Category enum. Neither table is configurable at runtime.
package footprint

import (
	"fmt"
	"strings"
)

// Category identifies one emission-contributing activity tracked by the form.
type Category int

const (
	// Excavation is coal excavated, in tons.
	Excavation Category = iota
	// Transportation is distance traveled hauling coal, in km.
	Transportation
	// Equipment is equipment operating time, in hours.
	Equipment
	// Electricity is electricity consumed, in kWh.
	Electricity
	// Heat is process heat energy, in BTU.
	Heat
	// Air is air quality impact, in m³.
	Air
	// Other is any other direct source, already in kg CO2e.
	Other
)

// CategoryCount is the number of input categories.
const CategoryCount = 7

// Info is the static display metadata for a Category.
type Info struct {
	Name    string
	Unit    string
	Tooltip string
	Icon    string
}

//nolint:gochecknoglobals // Static lookup table, indexed by Category.
var categoryInfo = [CategoryCount]Info{
	Excavation:     {Name: "excavation", Unit: "tons", Tooltip: "Amount of coal excavated", Icon: "⛏"},
	Transportation: {Name: "transportation", Unit: "km", Tooltip: "Distance traveled for coal transportation", Icon: "🚚"},
	Equipment:      {Name: "equipment", Unit: "hours", Tooltip: "Hours of equipment operation", Icon: "⛑"},
	Electricity:    {Name: "electricity", Unit: "kWh", Tooltip: "Electricity consumed in operations", Icon: "⚡"},
	Heat:           {Name: "heat", Unit: "BTU", Tooltip: "Heat energy used in processes", Icon: "🌡"},
	Air:            {Name: "air", Unit: "m³", Tooltip: "Air quality impact", Icon: "💨"},
	Other:          {Name: "other", Unit: "kg CO2e", Tooltip: "Other sources of emissions", Icon: "✚"},
}

// Categories returns all categories in form order.
func Categories() []Category {
	out := make([]Category, CategoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is one of the seven defined categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < CategoryCount
}

// String returns the category identifier, e.g. "excavation".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryInfo[c].Name
}

// Info returns the display metadata for c. Unknown categories yield a zero Info.
func (c Category) Info() Info {
	if !c.Valid() {
		return Info{}
	}
	return categoryInfo[c]
}

// Unit returns the unit label the category's value is entered in.
func (c Category) Unit() string {
	return c.Info().Unit
}

// ParseCategory resolves a category identifier, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, info := range categoryInfo {
		if info.Name == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
