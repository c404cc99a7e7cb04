// Package dat decodes tables from the game database file (empires.dat)
// that the scenario decoder's consumers need alongside scenario data.
package dat

import (
	"fmt"

	"github.com/genie-archive/scn/pkg/scnio"
)

// PlayerColor maps a player color id to its palette entry.
type PlayerColor struct {
	Name         string
	ID           uint16
	PaletteIndex uint8
}

// ReadPlayerColors reads the u16-count-prefixed player color table.
func ReadPlayerColors(r *scnio.Reader) ([]PlayerColor, error) {
	count, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("dat: player color count: %w", err)
	}
	colors, err := scnio.ReadArray(r, int(count), readPlayerColor)
	if err != nil {
		return nil, fmt.Errorf("dat: player colors: %w", err)
	}
	return colors, nil
}

func readPlayerColor(r *scnio.Reader) (PlayerColor, error) {
	var c PlayerColor
	var err error
	if c.Name, err = r.SizedString(30); err != nil {
		return c, err
	}
	if c.ID, err = r.Uint16(); err != nil {
		return c, err
	}
	if err = r.Skip(2); err != nil { // unknown
		return c, err
	}
	if c.PaletteIndex, err = r.Uint8(); err != nil {
		return c, err
	}
	err = r.Skip(1) // unknown
	return c, err
}
