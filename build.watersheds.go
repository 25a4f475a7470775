package flood

import (
	"fmt"
	"sort"

	"github.com/maseology/goHydro/grid"
)

// LoadWatersheds reads a watershed-index raster and partitions the domain's
// active cells by watershed. Delineation itself is upstream of this model;
// the raster is its product.
func (d *Domain) LoadWatersheds(swsFP string) Watersheds {

	sids := func(fp string) []int {
		fmt.Printf(" loading: %s\n", fp)
		var g grid.Indx
		g.LoadGDef(d.GD)
		g.NewShort(fp, true)
		m := g.Values()
		aout := make([]int, d.Nc)
		for i, c := range d.GD.Sactives {
			if v, ok := m[c]; ok {
				aout[i] = v
			} else {
				aout[i] = -1 // outside watershed coverage
			}
		}
		return aout
	}(swsFP)

	// set mapped watershed IDs to a 0-base array index, sorted on source ID
	xsws, isws := func() (map[int]int, []int) {
		cnt := make(map[int]int)
		for _, s := range sids {
			if s >= 0 {
				cnt[s]++
			}
		}
		u := make([]int, 0, len(cnt))
		for k := range cnt {
			u = append(u, k)
		}
		sort.Ints(u)
		for i, uu := range u {
			cnt[uu] = i
		}
		return cnt, u
	}()

	ws := Watersheds{
		Isws:  make([]int, d.Nc),
		Sids:  isws,
		Scids: make([][]int, len(isws)),
		Ns:    len(isws),
	}
	for i, s := range sids {
		if s < 0 {
			ws.Isws[i] = -1
			continue
		}
		k := xsws[s]
		ws.Isws[i] = k
		ws.Scids[k] = append(ws.Scids[k], i)
	}
	fmt.Printf("   %d watersheds loaded\n", ws.Ns)
	return ws
}
