// Package pond estimates ponded storage over a terrain sample and solves
// for the water-surface elevation holding a target runoff volume.
package pond

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// nbisect fixed bisection iterations; the bracket narrows to 2^-25 of its
// initial width, sufficient precision for elevations in metres.
const nbisect = 25

// buffer fraction of the terrain relief added above the terrain maximum
// when bracketing; the stage can exceed the highest cell when a watershed
// floods above its rim.
const buffer = .1

// ErrOverCapacity reports that the target volume exceeds the storage
// available below the buffered bracket ceiling; the returned stage is the
// ceiling itself and understates the true water surface.
var ErrOverCapacity = errors.New("pond: target volume exceeds storage capacity at buffered ceiling")

// VolumeBelow returns the total volume of empty space below a water surface
// across all cells; cells at or above the surface contribute nothing.
// Monotone non-decreasing in surface for fixed z and area.
func VolumeBelow(z []float64, area, surface float64) float64 {
	s := 0.
	for _, zi := range z {
		if zi < surface {
			s += surface - zi
		}
	}
	return s * area
}

// FindStage returns the minimum water-surface elevation whose below-surface
// storage is at least targetvol [m³]. z holds one elevation per valid cell
// (order irrelevant), area the planar cell area [m²]. A non-positive target
// returns the terrain minimum. An empty sample is a caller precondition
// violation.
func FindStage(z []float64, targetvol, area float64) (float64, error) {
	if len(z) == 0 {
		panic("pond.FindStage: empty elevation sample")
	}
	zmin := floats.Min(z)
	if targetvol <= 0. {
		return zmin, nil // no runoff, no rise above bare terrain
	}
	zmax := floats.Max(z)
	low, high := zmin, zmax+buffer*(zmax-zmin)
	if VolumeBelow(z, area, high) < targetvol {
		return high, ErrOverCapacity
	}
	for i := 0; i < nbisect; i++ {
		mid := (low + high) / 2.
		if VolumeBelow(z, area, mid) < targetvol {
			low = mid // not enough storage yet
		} else {
			high = mid
		}
	}
	return high, nil // over-estimate side: storage at high >= target
}
