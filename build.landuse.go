package flood

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

// LoadLandUse reads a land-use index raster, returning the classification
// code per active cell; cells with no coverage hold 0 (no data) and are
// masked from evaluation.
func (d *Domain) LoadLandUse(luFP string) []int {
	if _, ok := mmio.FileExists(luFP); !ok {
		log.Fatalf(" LoadLandUse file not found: %s", luFP)
	}
	tt := time.Now()
	fmt.Printf("   loading: %s\n", luFP)
	var g grid.Indx
	switch filepath.Ext(luFP) {
	case ".bil":
		g.LoadGDef(d.GD)
		g.NewShort(luFP, true)
	case ".indx":
		if _, ok := mmio.FileExists(luFP + ".gdef"); !ok {
			g.LoadGDef(d.GD)
		}
		g.New(luFP, true)
	default:
		log.Fatalf("unrecognized file format: " + luFP)
	}
	m := g.Values()
	aout := make([]int, d.Nc)
	for i, c := range d.GD.Sactives {
		if v, ok := m[c]; ok && v > 0 {
			aout[i] = v
		}
	}
	fmt.Printf(" %s - %v\n", "LU loaded", time.Since(tt))
	return aout
}

// LoadCN reads a pre-computed curve-number raster, returning the CN per
// active cell; cells with no positive CN hold 0 and are masked from
// evaluation.
func (d *Domain) LoadCN(cnFP string) []float64 {
	if _, ok := mmio.FileExists(cnFP); !ok {
		log.Fatalf(" LoadCN file not found: %s", cnFP)
	}
	fmt.Printf("   loading: %s\n", cnFP)
	var g grid.Real
	g.NewGD32(cnFP, d.GD)
	aout := make([]float64, d.Nc)
	for i, c := range d.GD.Sactives {
		if v, ok := g.A[c]; ok && v > 0. {
			aout[i] = v
		}
	}
	return aout
}
