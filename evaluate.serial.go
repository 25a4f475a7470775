package flood

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// EvaluateSerial runs every watershed for one scenario, no concurrency.
// cn holds the curve number per active cell, p the storm depth [mm].
func (ev *Evaluator) EvaluateSerial(cn []float64, p float64) []Result {

	uiprogress.Start()
	wsid, last := make(chan string, 1), ""
	bar := uiprogress.AddBar(ev.Ws.Ns).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		select {
		case last = <-wsid:
		default:
		}
		return last
	})

	res := make([]Result, ev.Ws.Ns)
	for k := 0; k < ev.Ws.Ns; k++ {
		select {
		case wsid <- fmt.Sprint(ev.Ws.Sids[k]):
		default:
		}
		res[k] = ev.buildRealization(k, cn, p).pond()
		bar.Incr()
	}
	uiprogress.Stop()
	return res
}
