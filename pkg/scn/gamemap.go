package scn

import (
	"fmt"
	"math"

	"github.com/genie-archive/scn/pkg/scnio"
)

// Tile is one map cell.
type Tile struct {
	Terrain   uint8
	Elevation uint8
	Overlay   uint8
}

// Map is the terrain block of the scenario body: dimensions followed by
// width*height tiles in row-major order.
type Map struct {
	Width  uint32
	Height uint32
	Tiles  []Tile
}

// Tile returns the tile at (x, y).
func (m *Map) Tile(x, y int) Tile {
	return m.Tiles[y*int(m.Width)+x]
}

func readMap(r *scnio.Reader) (Map, error) {
	var m Map
	var err error

	if m.Width, err = r.Uint32(); err != nil {
		return m, fmt.Errorf("width: %w", err)
	}
	if m.Height, err = r.Uint32(); err != nil {
		return m, fmt.Errorf("height: %w", err)
	}

	// The product of two u32 dimensions can overflow int on 32-bit
	// platforms and flip negative even on 64-bit ones, so size the tile
	// list in 64 bits and bound it before reading.
	tileCount := uint64(m.Width) * uint64(m.Height)
	if tileCount > math.MaxInt32 {
		return m, fmt.Errorf("tiles: dimensions %dx%d exceed tile limit", m.Width, m.Height)
	}
	m.Tiles, err = scnio.ReadArray(r, int(tileCount), readTile)
	if err != nil {
		return m, fmt.Errorf("tiles: %w", err)
	}
	return m, nil
}

func readTile(r *scnio.Reader) (Tile, error) {
	var t Tile
	var err error
	if t.Terrain, err = r.Uint8(); err != nil {
		return t, err
	}
	if t.Elevation, err = r.Uint8(); err != nil {
		return t, err
	}
	t.Overlay, err = r.Uint8()
	return t, err
}
