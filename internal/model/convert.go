package model

import (
	"encoding/json"
	"fmt"

	"github.com/genie-archive/scn/pkg/scn"
)

// FromScenario converts a decoded scenario into its catalog record.
// path is stored as provided; callers decide absolute vs relative.
func FromScenario(path string, s *scn.Scenario) (ScenarioRecord, error) {
	rec := ScenarioRecord{
		Path:           path,
		Version:        s.Header.Version,
		SaveType:       s.Header.SaveType,
		LastSaveTime:   s.Header.LastSaveTime,
		Instructions:   s.Header.Instructions,
		VictoryType:    s.Header.VictoryType,
		PlayerCount:    s.Header.PlayerCount,
		MapWidth:       s.Map.Width,
		MapHeight:      s.Map.Height,
		UnitGroupCount: uint32(s.UnitGroupCount()),
	}

	for i, slot := range s.PlayerData.Slots {
		sr := PlayerSlotRecord{
			PlayerIndex:    uint32(i),
			Name:           s.PlayerData.Names[i],
			Active:         slot.Active != 0,
			Human:          slot.Human != 0,
			CivilizationID: slot.CivilizationID,
		}
		// The resource table carries its own count; it need not cover
		// every slot.
		if i < s.ResourceCount() {
			res := s.PlayerResources(i)
			sr.Gold = res.Gold
			sr.Wood = res.Wood
			sr.Food = res.Food
			sr.Stone = res.Stone
		}
		rec.Slots = append(rec.Slots, sr)
	}

	for _, player := range s.PlayerIDs() {
		units := s.PlayerUnits(player)
		payload, err := json.Marshal(units)
		if err != nil {
			return rec, fmt.Errorf("marshal units for player %d: %w", player, err)
		}
		rec.UnitGroups = append(rec.UnitGroups, UnitGroupRecord{
			PlayerIndex: uint32(player),
			UnitCount:   uint32(len(units)),
			Units:       payload,
		})
		rec.TotalUnits += uint32(len(units))
	}

	return rec, nil
}
