// Package flood estimates per-watershed flood inundation depths under
// rainfall/land-use scenarios: an SCS curve-number runoff volume is filled
// into the watershed's terrain to find the water-surface elevation whose
// below-ground storage matches, and the stage is differenced against the
// DEM to produce a depth grid.
package flood

// raster no-data sentinel, kept distinct from a true zero depth
const nodata = -9999.
