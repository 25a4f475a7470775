package flood

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"
)

// WriteScenario persists the per-watershed depth grids (full-grid float32
// .bil plus a cell-id keyed .rmap) and a summary table for one scenario.
// The .bil carries the no-data sentinel outside the valid mask; a written 0
// is a true zero depth, not a gap. Per-watershed write failures are logged
// and the batch continues.
func (ev *Evaluator) WriteScenario(res []Result, sc Scenario, outdir string) {
	gd := ev.Dom.GD

	tw, err := mmio.NewTXTwriter(outdir + "summary." + sc.Name + ".csv")
	if err != nil {
		log.Fatalf(" WriteScenario: %v", err)
	}
	defer tw.Close()
	tw.WriteLine("swsid,ncells,avgcn,volume_m3,stage_m,overcapacity")

	for k, r := range res {
		sid := ev.Ws.Sids[k]
		tw.WriteLine(fmt.Sprintf("%d,%d,%.2f,%.1f,%.3f,%t", sid, r.Ncell, r.AvgCN, r.Vol, r.Stage, r.OverCap))
		if r.Ncell == 0 {
			log.Printf(" WARNING sws %d: no valid cells, skipped", sid)
			continue
		}
		if r.OverCap {
			log.Printf(" WARNING sws %d: runoff volume %.0f m³ exceeds terrain storage, stage capped at %.2f m", sid, r.Vol, r.Stage)
		}

		fp := fmt.Sprintf("%sflood.%s.sws%d", outdir, sc.Name, sid)
		mmio.WriteRMAP(fp+".rmap", r.Depth, false)
		a := gd.NullArray(nodata)
		for c, d := range r.Depth {
			a[c] = d
		}
		if err := writeFloats(fp+".bil", a); err != nil {
			log.Printf(" WARNING sws %d: %v", sid, err)
		}
	}
}
