package scscn

// Rule assigns one curve number to a set of land-use classification codes.
type Rule struct {
	Codes []int
	CN    float64
}

// Rules is an ordered remap table; where rule code-sets overlap, the first
// rule holding a code wins. Codes matched by no rule take Default.
type Rules struct {
	Rules   []Rule
	Default float64
}

// Remap converts per-cell land-use codes to per-cell curve numbers.
func (r *Rules) Remap(lu []int) []float64 {
	x := make(map[int]float64, len(r.Rules)*4)
	for _, rl := range r.Rules {
		for _, c := range rl.Codes {
			if _, ok := x[c]; !ok { // first rule wins
				x[c] = rl.CN
			}
		}
	}
	cn := make([]float64, len(lu))
	for i, c := range lu {
		if v, ok := x[c]; ok {
			cn[i] = v
		} else {
			cn[i] = r.Default
		}
	}
	return cn
}
