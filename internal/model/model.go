// Package model defines the catalog records that decoded scenarios are
// stored as, plus the conversion from decoded values to records.
package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels lists every struct that maps to a table in the catalog
// schema, in migration order.
var DatabaseModels = []interface{}{
	&ScenarioRecord{},
	&PlayerSlotRecord{},
	&UnitGroupRecord{},
}

// ScenarioRecord is one cataloged scenario file.
type ScenarioRecord struct {
	gorm.Model
	Path           string `json:"path" gorm:"size:512;index:idx_scenario_path"`
	Version        string `json:"version" gorm:"size:8"`
	SaveType       int32  `json:"saveType"`
	LastSaveTime   uint32 `json:"lastSaveTime"`
	Instructions   string `json:"instructions"`
	VictoryType    uint32 `json:"victoryType"`
	PlayerCount    uint32 `json:"playerCount"`
	MapWidth       uint32 `json:"mapWidth"`
	MapHeight      uint32 `json:"mapHeight"`
	UnitGroupCount uint32 `json:"unitGroupCount"`
	TotalUnits     uint32 `json:"totalUnits"`

	Slots      []PlayerSlotRecord `json:"slots" gorm:"constraint:OnDelete:CASCADE;foreignKey:ScenarioRecordID"`
	UnitGroups []UnitGroupRecord  `json:"unitGroups" gorm:"constraint:OnDelete:CASCADE;foreignKey:ScenarioRecordID"`
}

func (*ScenarioRecord) TableName() string {
	return "scenarios"
}

// PlayerSlotRecord is one player slot of a cataloged scenario, joined with
// the player's starting resources when the body carries them.
type PlayerSlotRecord struct {
	gorm.Model
	ScenarioRecordID uint   `json:"scenarioId" gorm:"index:idx_slot_scenario_id"`
	PlayerIndex      uint32 `json:"playerIndex"`
	Name             string `json:"name" gorm:"size:64"`
	Active           bool   `json:"active"`
	Human            bool   `json:"human"`
	CivilizationID   uint32 `json:"civilizationId"`

	Gold  uint32 `json:"gold"`
	Wood  uint32 `json:"wood"`
	Food  uint32 `json:"food"`
	Stone uint32 `json:"stone"`
}

func (*PlayerSlotRecord) TableName() string {
	return "player_slots"
}

// UnitGroupRecord is one player's placed-unit list. The unit payload is
// kept as a JSON document; the catalog never queries individual units.
type UnitGroupRecord struct {
	gorm.Model
	ScenarioRecordID uint           `json:"scenarioId" gorm:"index:idx_unitgroup_scenario_id"`
	PlayerIndex      uint32         `json:"playerIndex"`
	UnitCount        uint32         `json:"unitCount"`
	Units            datatypes.JSON `json:"units"`
}

func (*UnitGroupRecord) TableName() string {
	return "unit_groups"
}
