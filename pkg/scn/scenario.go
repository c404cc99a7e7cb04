// Package scn decodes Age of Empires scenario (.scn) save files, format
// version "1.11", into structured values.
//
// A scenario file is a fixed-layout uncompressed header followed by a
// raw-DEFLATE compressed body. The body is an ordered sequence of sections
// whose shapes depend on counts read inline, so decoding is strictly
// sequential: header, decompression boundary, then each body section in
// turn. Decoding either fully succeeds or fails with the first error; no
// partially populated Scenario is ever returned.
//
// The trigger subsystem and any trailing sections beyond the per-player
// unit lists are not read.
package scn

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/genie-archive/scn/pkg/scnio"
)

// Scenario is a fully decoded scenario file. It is populated in a fixed
// order during decode and not mutated afterwards.
type Scenario struct {
	Header     Header
	PlayerData PlayerData
	Map        Map

	playerResources []PlayerResources
	playerUnits     [][]PlayerUnit
}

// ReadFromFile opens the named file and decodes it as a scenario.
func ReadFromFile(name string) (*Scenario, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFromStream(f)
}

// ReadFromStream decodes a scenario from src, which must be positioned at
// the start of the file. The whole decode is a single synchronous pass;
// failure at any step aborts it.
func ReadFromStream(src io.Reader) (*Scenario, error) {
	s := &Scenario{}

	r := scnio.NewReader(src)
	header, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("scn: header: %w", err)
	}
	s.Header = header

	// Everything after the header is compressed. From here on the
	// decompressed buffer is the only input.
	buf, err := decompressBody(src)
	if err != nil {
		return nil, fmt.Errorf("scn: %w", err)
	}
	body := scnio.NewReader(bytes.NewReader(buf))

	// Reserved for a future "next unit id"; nothing downstream uses it.
	if _, err := body.Uint32(); err != nil {
		return nil, fmt.Errorf("scn: next unit id: %w", err)
	}

	if s.PlayerData, err = readPlayerData(body); err != nil {
		return nil, fmt.Errorf("scn: player data: %w", err)
	}
	if s.Map, err = readMap(body); err != nil {
		return nil, fmt.Errorf("scn: map: %w", err)
	}

	// Count of players with unit data. Distinct from the header's player
	// count; the format never cross-checks them.
	groupCount, err := body.Uint32()
	if err != nil {
		return nil, fmt.Errorf("scn: unit group count: %w", err)
	}

	if s.playerResources, err = readAllPlayerResources(body); err != nil {
		return nil, fmt.Errorf("scn: player resources: %w", err)
	}

	s.playerUnits = make([][]PlayerUnit, 0, min(int(groupCount), 64))
	for i := 0; i < int(groupCount); i++ {
		unitCount, err := body.Uint32()
		if err != nil {
			return nil, fmt.Errorf("scn: unit count for player %d: %w", i, err)
		}
		units, err := scnio.ReadArray(body, int(unitCount), readPlayerUnit)
		if err != nil {
			return nil, fmt.Errorf("scn: units for player %d: %w", i, err)
		}
		s.playerUnits = append(s.playerUnits, units)
	}

	// Trailing sections (triggers and later additions) are left unread.

	return s, nil
}

// PlayerResources returns the starting resources for the given player index.
func (s *Scenario) PlayerResources(player int) PlayerResources {
	return s.playerResources[player]
}

// ResourceCount returns the number of resource records the body carried.
// The format does not guarantee it matches the unit group count.
func (s *Scenario) ResourceCount() int {
	return len(s.playerResources)
}

// PlayerUnits returns the units placed for the given player index, in file
// order.
func (s *Scenario) PlayerUnits(player int) []PlayerUnit {
	return s.playerUnits[player]
}

// PlayerCivilizationID returns the civilization of the given player index.
func (s *Scenario) PlayerCivilizationID(player int) uint32 {
	return s.PlayerData.Slots[player].CivilizationID
}

// PlayerIDs returns the indices of all players the scenario has unit data
// for.
func (s *Scenario) PlayerIDs() []int {
	ids := make([]int, len(s.playerUnits))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// UnitGroupCount returns the number of per-player unit lists in the body.
func (s *Scenario) UnitGroupCount() int {
	return len(s.playerUnits)
}
