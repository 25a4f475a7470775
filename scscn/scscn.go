// Package scscn implements the Soil Conservation Service curve-number
// rainfall-runoff model.
// ref: USDA-NRCS, 2004. Estimation of direct runoff from storm rainfall.
// National Engineering Handbook, Part 630 Hydrology, Chapter 10.
package scscn

// curve-number validity bounds; CNs at or below cnmin describe near-total
// infiltration and carry no predictive value here, CN=100 (fully
// impervious) remains valid.
const (
	cnmin = 10.
	cnmax = 100.
)

// Retention returns the potential maximum retention S [mm] for a curve
// number on the standard 0-100 scale.
func Retention(cn float64) float64 {
	return 25400./cn - 254.
}

// InitialAbstraction returns Ia [mm], the rainfall depth absorbed before
// runoff begins, from the potential maximum retention S [mm].
func InitialAbstraction(s float64) float64 {
	return .2 * s
}

// RunoffDepth returns the excess rainfall depth Q [mm] generated by a storm
// of depth p [mm] over a surface of curve number cn.
func RunoffDepth(p, cn float64) float64 {
	s := Retention(cn)
	ia := InitialAbstraction(s)
	if p <= ia {
		return 0. // storm fully absorbed by initial losses
	}
	return (p - ia) * (p - ia) / (p - ia + s)
}

// Volume returns the runoff volume [m³] generated over a contributing area
// [m²] of average curve number avgcn by a storm of depth p [mm].
// Out-of-range curve numbers (avgcn<=10 or avgcn>100) yield zero volume,
// treated as physically unreliable rather than an error.
func Volume(p, avgcn, area float64) float64 {
	if avgcn <= cnmin || avgcn > cnmax {
		return 0.
	}
	return RunoffDepth(p, avgcn) / 1000. * area
}
