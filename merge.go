package flood

import (
	"fmt"
	"log"
	"strings"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

// Merge mosaics the per-watershed depth grids of one scenario into a single
// composite written to outdir/merged/. Watersheds do not overlap by
// construction, but where tiles do collide the deeper value wins; gaps stay
// at the no-data sentinel.
func Merge(gd *grid.Definition, outdir, scenario string) error {
	prfx := "flood." + scenario + ".sws"
	var fps []string
	for _, fp := range mmio.FileListExt(outdir, ".bil") {
		if strings.HasPrefix(mmio.FileName(fp, true), prfx) {
			fps = append(fps, fp)
		}
	}
	if len(fps) == 0 {
		return fmt.Errorf("no depth grids found for scenario %q in %s", scenario, outdir)
	}
	fmt.Printf(" merging %d depth grids: %s\n", len(fps), scenario)

	comp := gd.NullArray(nodata)
	for _, fp := range fps {
		a, err := readFloats(fp)
		if err != nil {
			return err
		}
		if len(a) != len(comp) {
			return fmt.Errorf("grid size mismatch: %s holds %d cells, domain %d", fp, len(a), len(comp))
		}
		foldMax(comp, a)
	}

	mmio.MakeDir(outdir + "merged")
	return writeFloats(outdir+"merged/flood."+scenario+".bil", comp)
}

// MergeAll mosaics every scenario in the config; per-scenario failures are
// logged and the batch continues.
func MergeAll(cfg *Config) {
	dom, err := LoadGobDomain(cfg.OutDir + "domain.gob")
	if err != nil {
		log.Printf(" no cached domain (%v); rebuilding", err)
		d := BuildDomain(cfg.GdefFP, cfg.DemFP)
		dom = &d
	}
	for _, sc := range cfg.Scenarios {
		if err := Merge(dom.GD, cfg.OutDir, sc.Name); err != nil {
			log.Printf(" WARNING merge %s failed: %v", sc.Name, err)
		}
	}
}

// foldMax accumulates a tile into the composite, no-data aware.
func foldMax(comp, a []float64) {
	for i, v := range a {
		if v == nodata {
			continue
		}
		if comp[i] == nodata || v > comp[i] {
			comp[i] = v
		}
	}
}
