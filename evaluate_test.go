package flood

import (
	"math"
	"testing"

	"github.com/evanpanlabs-design/Beijing-Urban-Flood-Sim-2025Dec18/scscn"
	"github.com/maseology/goHydro/grid"
)

// a 3x3 domain, one inactive cell (8), two watersheds
func testEvaluator() *Evaluator {
	dom := Domain{
		GD: &grid.Definition{
			Sactives: []int{0, 1, 2, 3, 4, 5, 6, 7},
			Nact:     8,
			Cwidth:   30.,
		},
		Z:  []float64{10., 11., 12., 13., 20., 21., nodata, 23.},
		Nc: 8,
	}
	ws := Watersheds{
		Isws:  []int{0, 0, 0, 0, 1, 1, 1, 1},
		Sids:  []int{101, 102},
		Scids: [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}},
		Ns:    2,
	}
	return &Evaluator{Dom: &dom, Ws: &ws}
}

func TestRealizationPond(t *testing.T) {
	ev := testEvaluator()
	cn := []float64{70., 70., 70., 70., 85., 85., 85., 85.}

	r := ev.buildRealization(0, cn, 230.).pond()
	if r.Ncell != 4 {
		t.Fatalf("watershed 0: %d valid cells, want 4", r.Ncell)
	}
	if math.Abs(r.AvgCN-70.) > 1e-12 {
		t.Errorf("watershed 0 avg CN = %v, want 70", r.AvgCN)
	}
	carea := 30. * 30.
	wantVol := scscn.Volume(230., 70., 4.*carea)
	if math.Abs(r.Vol-wantVol) > 1e-9 {
		t.Errorf("watershed 0 volume = %v, want %v", r.Vol, wantVol)
	}
	if len(r.Depth) != 4 {
		t.Fatalf("watershed 0 depth field holds %d cells, want 4", len(r.Depth))
	}
	for c, d := range r.Depth {
		z := ev.Dom.Z[c]
		if d < 0. {
			t.Errorf("negative depth %v at cell %d", d, c)
		}
		if want := math.Max(r.Stage-z, 0.); math.Abs(d-want) > 1e-9 {
			t.Errorf("depth at cell %d = %v, want stage-z = %v", c, d, want)
		}
	}
}

func TestRealizationMasksNodata(t *testing.T) {
	ev := testEvaluator()
	cn := []float64{70., 70., 70., 70., 85., 0., 85., 85.}

	// cell 6 has no elevation, cell 5 no CN signal
	r := ev.buildRealization(1, cn, 230.).pond()
	if r.Ncell != 2 {
		t.Fatalf("watershed 1: %d valid cells, want 2", r.Ncell)
	}
	if _, ok := r.Depth[6]; ok {
		t.Error("no-data cell 6 present in depth field")
	}
	if _, ok := r.Depth[5]; ok {
		t.Error("masked cell 5 present in depth field")
	}
}

func TestRealizationEmptyMask(t *testing.T) {
	ev := testEvaluator()
	cn := make([]float64, 8) // no CN signal anywhere

	r := ev.buildRealization(0, cn, 230.).pond()
	if r.Ncell != 0 || r.Depth != nil {
		t.Errorf("empty mask: got Ncell=%d Depth=%v, want zero-value skip", r.Ncell, r.Depth)
	}
}

func TestRealizationNoRunoff(t *testing.T) {
	ev := testEvaluator()
	cn := []float64{70., 70., 70., 70., 70., 70., 70., 70.}

	// storm below the initial abstraction: stage settles at terrain minimum
	r := ev.buildRealization(0, cn, 5.).pond()
	if r.Vol != 0. {
		t.Fatalf("volume = %v, want 0 for p below Ia", r.Vol)
	}
	if r.Stage != 10. {
		t.Errorf("stage = %v, want terrain minimum 10", r.Stage)
	}
	for c, d := range r.Depth {
		if d != 0. {
			t.Errorf("cell %d flooded to %v with zero runoff", c, d)
		}
	}
}

func TestEvaluateMatchesSerialCore(t *testing.T) {
	ev := testEvaluator()
	cn := []float64{70., 70., 70., 70., 85., 85., 85., 85.}

	conc := ev.Evaluate(cn, 230.)
	if len(conc) != 2 {
		t.Fatalf("Evaluate returned %d results, want 2", len(conc))
	}
	for k := range conc {
		want := ev.buildRealization(k, cn, 230.).pond()
		got := conc[k]
		if got.Ncell != want.Ncell || got.AvgCN != want.AvgCN || got.Vol != want.Vol || got.Stage != want.Stage {
			t.Errorf("watershed %d: concurrent result %+v differs from direct %+v", k, got, want)
		}
	}
}

func TestScenarioCNMasking(t *testing.T) {
	ev := testEvaluator()
	ev.Rules = scscn.Rules{
		Rules:   []scscn.Rule{{Codes: []int{5}, CN: 100.}},
		Default: 50.,
	}
	lu := []int{5, 0, 9, 5, 0, 0, 0, 0}
	cn := ev.Rules.Remap(lu)
	for i, l := range lu {
		if l <= 0 {
			cn[i] = 0.
		}
	}
	want := []float64{100., 0., 50., 100., 0., 0., 0., 0.}
	for i, w := range want {
		if cn[i] != w {
			t.Errorf("cn[%d] = %v, want %v", i, cn[i], w)
		}
	}
}
