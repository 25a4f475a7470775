package flood

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
)

// Domain holds the terrain model: the grid definition and one elevation per
// active cell, ordered as GD.Sactives. Cells with no elevation carry the
// no-data sentinel.
type Domain struct {
	GD *grid.Definition
	Z  []float64
	Nc int
}

// CellArea returns the planar area of one raster cell [m²].
func (d *Domain) CellArea() float64 {
	return d.GD.Cwidth * d.GD.Cwidth
}

func (d *Domain) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobDomain(fp string) (*Domain, error) {
	var d Domain
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&d); err != nil {
		return nil, err
	}
	f.Close()
	return &d, nil
}
