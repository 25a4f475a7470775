package flood

import (
	"github.com/evanpanlabs-design/Beijing-Urban-Flood-Sim-2025Dec18/scscn"
)

// Scenario is one rainfall/land-use realization to evaluate.
type Scenario struct {
	Name string
	P    float64 // storm depth [mm]
	LuFP string  // land-use raster; empty: the base CN raster applies
}

// Config collects the file paths, scenario table and remap rules for a
// simulation. Loaded once from a control file and passed explicitly; the
// computation layers never read ambient state.
type Config struct {
	GdefFP, DemFP, SwsFP, CnFP string
	OutDir                     string
	Scenarios                  []Scenario
	Rules                      scscn.Rules
}
