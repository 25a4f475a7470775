package flood

import (
	"github.com/evanpanlabs-design/Beijing-Urban-Flood-Sim-2025Dec18/pond"
	"github.com/evanpanlabs-design/Beijing-Urban-Flood-Sim-2025Dec18/scscn"
)

// Evaluator pairs a built domain with its watershed partition; Rules
// convert land-use codes to curve numbers per scenario.
type Evaluator struct {
	Dom   *Domain
	Ws    *Watersheds
	Rules scscn.Rules
}

// Result of one watershed-scenario evaluation.
type Result struct {
	Isw, Ncell int             // watershed array index; valid cells evaluated
	AvgCN      float64         // mean curve number over the valid mask
	Vol        float64         // runoff volume [m³]
	Stage      float64         // converged water-surface elevation [m]
	Depth      map[int]float64 // grid-cell ID to flood depth [m], valid cells only
	OverCap    bool            // stage capped at the bracket ceiling
}

// realization collects the sample arrays of one watershed for one scenario.
// Everything here is built fresh per evaluation and never shared.
type realization struct {
	isw   int
	gids  []int     // grid-cell IDs
	z, cn []float64 // elevation and curve number per cell, unmasked
	carea float64   // cell area [m²]
	p     float64   // storm depth [mm]
}

func (ev *Evaluator) buildRealization(k int, cn []float64, p float64) *realization {
	cids := ev.Ws.Scids[k]
	r := realization{
		isw:   k,
		gids:  make([]int, len(cids)),
		z:     make([]float64, len(cids)),
		cn:    make([]float64, len(cids)),
		carea: ev.Dom.CellArea(),
		p:     p,
	}
	for i, ic := range cids {
		r.gids[i] = ev.Dom.GD.Sactives[ic]
		r.z[i] = ev.Dom.Z[ic]
		r.cn[i] = cn[ic]
	}
	return &r
}

// pond generates the watershed's SCS-CN runoff volume and fills its terrain
// to the matching stage, returning the per-cell depth field.
func (r *realization) pond() Result {

	// validity mask: elevation present and a live curve number
	zv := make([]float64, 0, len(r.z))
	gv := make([]int, 0, len(r.z))
	scn := 0.
	for i, z := range r.z {
		if z == nodata || r.cn[i] <= 0. {
			continue
		}
		zv = append(zv, z)
		gv = append(gv, r.gids[i])
		scn += r.cn[i]
	}
	if len(zv) == 0 {
		return Result{Isw: r.isw} // nothing to evaluate; caller logs the skip
	}

	avgcn := scn / float64(len(zv))
	vol := scscn.Volume(r.p, avgcn, float64(len(zv))*r.carea)
	stage, err := pond.FindStage(zv, vol, r.carea)

	res := Result{
		Isw:     r.isw,
		Ncell:   len(zv),
		AvgCN:   avgcn,
		Vol:     vol,
		Stage:   stage,
		Depth:   make(map[int]float64, len(zv)),
		OverCap: err == pond.ErrOverCapacity,
	}
	for i, z := range zv {
		if stage > z {
			res.Depth[gv[i]] = stage - z
		} else {
			res.Depth[gv[i]] = 0.
		}
	}
	return res
}
