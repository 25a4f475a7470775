package flood

import "sync"

// Evaluate runs every watershed for one scenario concurrently. Each
// evaluation is independent (fresh sample arrays, read-only domain), so no
// coordination beyond the final join is needed.
func (ev *Evaluator) Evaluate(cn []float64, p float64) []Result {
	var wg sync.WaitGroup
	res := make([]Result, ev.Ws.Ns)
	wg.Add(ev.Ws.Ns)
	for k := 0; k < ev.Ws.Ns; k++ {
		go func(k int) {
			res[k] = ev.buildRealization(k, cn, p).pond()
			wg.Done()
		}(k)
	}
	wg.Wait()
	return res
}
