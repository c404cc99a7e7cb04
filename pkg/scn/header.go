package scn

import (
	"fmt"

	"github.com/genie-archive/scn/pkg/scnio"
)

// supportedVersion is the only scenario format version this decoder accepts.
const supportedVersion = "1.11"

// MaxInstructionsLen is the ceiling on the declared instructions length.
// A corrupt or hostile header could otherwise declare a multi-gigabyte
// string and stall the decode before any structural check runs.
const MaxInstructionsLen = 512 * 1024

// Header is the uncompressed fixed-layout prefix of a scenario file.
type Header struct {
	// Version is the 4-byte format version literal.
	Version string

	// Length is the on-disk record of the body length. The format does not
	// require it to match the actual byte count and neither do we.
	Length uint32

	// SaveType is an opaque classification code.
	SaveType int32

	// LastSaveTime is the save timestamp as stored on disk.
	LastSaveTime uint32

	// Instructions is the textual scenario briefing.
	Instructions string

	// VictoryType is an opaque victory condition code.
	VictoryType uint32

	// PlayerCount is the player count as declared in the header. The body
	// carries its own unit group count and the format never cross-checks
	// the two.
	PlayerCount uint32
}

// readHeader decodes the header from the start of the raw stream.
func readHeader(r *scnio.Reader) (Header, error) {
	var h Header
	var err error

	if h.Version, err = r.SizedString(4); err != nil {
		return h, fmt.Errorf("version: %w", err)
	}
	if h.Version != supportedVersion {
		return h, fmt.Errorf("%w: %q", ErrUnrecognizedVersion, h.Version)
	}

	if h.Length, err = r.Uint32(); err != nil {
		return h, fmt.Errorf("length: %w", err)
	}
	if h.SaveType, err = r.Int32(); err != nil {
		return h, fmt.Errorf("save type: %w", err)
	}
	if h.LastSaveTime, err = r.Uint32(); err != nil {
		return h, fmt.Errorf("last save time: %w", err)
	}

	instructionsLen, err := r.Uint32()
	if err != nil {
		return h, fmt.Errorf("instructions length: %w", err)
	}
	// The ceiling check must happen before the payload read; its whole
	// point is to reject the length without paying for it.
	if instructionsLen > MaxInstructionsLen {
		return h, fmt.Errorf("%w: declared %d bytes", ErrInstructionsTooLarge, instructionsLen)
	}
	if h.Instructions, err = r.SizedString(int(instructionsLen)); err != nil {
		return h, fmt.Errorf("instructions: %w", err)
	}

	if h.VictoryType, err = r.Uint32(); err != nil {
		return h, fmt.Errorf("victory type: %w", err)
	}
	if h.PlayerCount, err = r.Uint32(); err != nil {
		return h, fmt.Errorf("player count: %w", err)
	}

	return h, nil
}
