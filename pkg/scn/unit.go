package scn

import "github.com/genie-archive/scn/pkg/scnio"

// PlayerUnit is one placed unit in a player's starting lineup.
type PlayerUnit struct {
	// X, Y, Z are the map position in tile coordinates.
	X float32
	Y float32
	Z float32

	// ID is the unit's instance id within the scenario.
	ID uint32

	// TypeID selects the unit type in the game database.
	TypeID uint16

	// State is an opaque status code.
	State uint8

	// Rotation is the facing angle in radians.
	Rotation float32
}

func readPlayerUnit(r *scnio.Reader) (PlayerUnit, error) {
	var u PlayerUnit
	var err error
	if u.X, err = r.Float32(); err != nil {
		return u, err
	}
	if u.Y, err = r.Float32(); err != nil {
		return u, err
	}
	if u.Z, err = r.Float32(); err != nil {
		return u, err
	}
	if u.ID, err = r.Uint32(); err != nil {
		return u, err
	}
	if u.TypeID, err = r.Uint16(); err != nil {
		return u, err
	}
	if u.State, err = r.Uint8(); err != nil {
		return u, err
	}
	u.Rotation, err = r.Float32()
	return u, err
}
