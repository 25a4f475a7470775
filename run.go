package flood

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/maseology/mmio"
)

// Sim builds the model domain and evaluates every rainfall/land-use
// scenario, writing per-watershed depth grids and summaries. A scenario
// failure is logged and the batch moves on to the next scenario.
func Sim(cfg *Config, concurrent bool) {
	tt := mmio.NewTimer()
	mmio.MakeDir(cfg.OutDir)

	dom := func(fp string) *Domain {
		if _, ok := mmio.FileExists(fp); ok {
			if d, err := LoadGobDomain(fp); err == nil {
				fmt.Printf(" loaded cached domain: %s\n", fp)
				return d
			} else {
				log.Printf(" WARNING stale %s: %v; rebuilding", fp, err)
			}
		}
		d := BuildDomain(cfg.GdefFP, cfg.DemFP)
		if err := d.SaveGob(fp); err != nil {
			log.Printf(" WARNING %v", err)
		}
		return &d
	}(cfg.OutDir + "domain.gob")

	ws := loadWatersheds(dom, cfg.SwsFP, cfg.OutDir+"watersheds.gob")
	fmt.Printf(" catchment area: %.1f km² (%s cells)\n", float64(dom.Nc)*dom.CellArea()/1000./1000., mmio.Thousands(int64(dom.Nc)))
	ev := Evaluator{Dom: dom, Ws: ws, Rules: cfg.Rules}
	tt.Lap("domain build complete")

	for _, sc := range cfg.Scenarios {
		fmt.Printf("\n>>> scenario %s: P = %.1f mm\n", sc.Name, sc.P)
		if err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%v", r)
				}
			}()
			cleanScenario(cfg.OutDir, sc.Name)
			cn := ev.scenarioCN(cfg, sc)
			var res []Result
			if concurrent {
				res = ev.Evaluate(cn, sc.P)
			} else {
				res = ev.EvaluateSerial(cn, sc.P)
			}
			ev.WriteScenario(res, sc, cfg.OutDir)
			return nil
		}(); err != nil {
			log.Printf(" WARNING scenario %s failed: %v", sc.Name, err)
			continue
		}
		tt.Lap("scenario " + sc.Name + " complete")
	}
	tt.Print("simulation complete")
}

// loadWatersheds returns the cached watershed partition when one sits
// beside the outputs, otherwise builds it from the index raster and caches
// it for the next run.
func loadWatersheds(dom *Domain, swsFP, gobFP string) *Watersheds {
	if _, ok := mmio.FileExists(gobFP); ok {
		if w, err := LoadGobWatersheds(gobFP); err == nil {
			fmt.Printf(" loaded cached watersheds: %s\n", gobFP)
			return w
		} else {
			log.Printf(" WARNING stale %s: %v; rebuilding", gobFP, err)
		}
	}
	w := dom.LoadWatersheds(swsFP)
	if err := w.SaveGob(gobFP); err != nil {
		log.Printf(" WARNING %v", err)
	}
	return &w
}

// scenarioCN returns the curve number per active cell for one scenario,
// zero where the cell carries no land-use/CN signal.
func (ev *Evaluator) scenarioCN(cfg *Config, sc Scenario) []float64 {
	if sc.LuFP == "" {
		return ev.Dom.LoadCN(cfg.CnFP)
	}
	lu := ev.Dom.LoadLandUse(sc.LuFP)
	cn := ev.Rules.Remap(lu)
	for i, l := range lu {
		if l <= 0 {
			cn[i] = 0. // no land-use signal, masked from evaluation
		}
	}
	return cn
}

// cleanScenario removes depth grids left by an earlier run so a skipped
// watershed cannot leave stale results behind. Best effort: failures are
// logged, never swallowed.
func cleanScenario(outdir, name string) {
	prfx := "flood." + name + ".sws"
	for _, ext := range []string{".bil", ".rmap"} {
		for _, fp := range mmio.FileListExt(outdir, ext) {
			if !strings.HasPrefix(filepath.Base(fp), prfx) {
				continue
			}
			if err := os.Remove(fp); err != nil && !os.IsNotExist(err) {
				log.Printf(" WARNING could not remove %s: %v", fp, err)
			}
		}
	}
}
