package scn

import (
	"fmt"

	"github.com/genie-archive/scn/pkg/scnio"
)

// PlayerResources is one player's starting stockpile.
type PlayerResources struct {
	Gold  uint32
	Wood  uint32
	Food  uint32
	Stone uint32
}

// readAllPlayerResources reads the count-prefixed resource table, one record
// per player group.
func readAllPlayerResources(r *scnio.Reader) ([]PlayerResources, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	return scnio.ReadArray(r, int(count), readPlayerResources)
}

func readPlayerResources(r *scnio.Reader) (PlayerResources, error) {
	var res PlayerResources
	var err error
	if res.Gold, err = r.Uint32(); err != nil {
		return res, err
	}
	if res.Wood, err = r.Uint32(); err != nil {
		return res, err
	}
	if res.Food, err = r.Uint32(); err != nil {
		return res, err
	}
	res.Stone, err = r.Uint32()
	return res, err
}
