package flood

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Watersheds partitions the model domain: Isws holds the watershed array
// index per active cell (-1 outside coverage), Sids the source raster IDs
// sorted ascending, and Scids the active-cell array indices belonging to
// each watershed. Watersheds are evaluated independently.
type Watersheds struct {
	Isws  []int
	Sids  []int
	Scids [][]int
	Ns    int
}

func (w *Watersheds) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" watersheds.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(w); err != nil {
		return fmt.Errorf(" watersheds.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobWatersheds(fp string) (*Watersheds, error) {
	var w Watersheds
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&w); err != nil {
		return nil, err
	}
	f.Close()
	return &w, nil
}
