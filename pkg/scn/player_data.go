package scn

import (
	"fmt"

	"github.com/genie-archive/scn/pkg/scnio"
)

// playerSlotCount is the fixed number of player slots a scenario carries,
// regardless of how many are active.
const playerSlotCount = 16

// PlayerSlot describes one of the fixed player slots.
type PlayerSlot struct {
	// Active is nonzero if the slot participates in the scenario.
	Active uint32

	// Human is nonzero if the slot is reserved for a human player.
	Human uint32

	// CivilizationID selects the slot's civilization in the game database.
	CivilizationID uint32
}

// PlayerData is the player metadata block of the scenario body: the fixed
// slot name table followed by the fixed slot attribute table.
type PlayerData struct {
	Names []string
	Slots []PlayerSlot
}

func readPlayerData(r *scnio.Reader) (PlayerData, error) {
	var pd PlayerData

	pd.Names = make([]string, playerSlotCount)
	for i := range pd.Names {
		name, err := r.SizedString(64)
		if err != nil {
			return pd, fmt.Errorf("slot %d name: %w", i, err)
		}
		pd.Names[i] = name
	}

	pd.Slots = make([]PlayerSlot, playerSlotCount)
	for i := range pd.Slots {
		slot := &pd.Slots[i]
		var err error
		if slot.Active, err = r.Uint32(); err != nil {
			return pd, fmt.Errorf("slot %d active: %w", i, err)
		}
		if slot.Human, err = r.Uint32(); err != nil {
			return pd, fmt.Errorf("slot %d human: %w", i, err)
		}
		if slot.CivilizationID, err = r.Uint32(); err != nil {
			return pd, fmt.Errorf("slot %d civilization: %w", i, err)
		}
	}

	return pd, nil
}
