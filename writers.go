package flood

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}

func readFloats(fp string) ([]float64, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("readFloats failed: %v", err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("readFloats failed: %s truncated (%d bytes)", fp, len(b))
	}
	f32 := make([]float32, len(b)/4)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, f32); err != nil {
		return nil, fmt.Errorf("readFloats failed: %v", err)
	}
	o := make([]float64, len(f32))
	for i, v := range f32 {
		o[i] = float64(v)
	}
	return o, nil
}
