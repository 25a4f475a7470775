package flood

import (
	"fmt"
	"log"

	"github.com/maseology/goHydro/grid"
)

// BuildDomain loads a grid definition and its DEM into a terrain Domain.
func BuildDomain(gdefFP, demFP string) Domain {

	println(" > step 1: load grid definition with active cells defined")
	gd := func() *grid.Definition {
		gd, err := grid.ReadGDEF(gdefFP, true)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if len(gd.Sactives) <= 0 {
			log.Fatalf("error: grid definition requires active cells")
		}
		return gd
	}()

	fmt.Printf(" > step 2: load DEM\n   loading: %s\n", demFP)
	z := func() []float64 {
		var g grid.Real
		g.NewGD32(demFP, gd)
		zs, nwarn := make([]float64, gd.Nact), 0
		for i, c := range gd.Sactives {
			if v, ok := g.A[c]; ok && v != nodata {
				zs[i] = v
			} else {
				zs[i] = nodata
				nwarn++
			}
		}
		if nwarn > 0 {
			fmt.Printf("    WARNING no elevation assigned to %d active cells\n", nwarn)
		}
		return zs
	}()

	return Domain{GD: gd, Z: z, Nc: gd.Nact}
}
