package scn

import "errors"

var (
	// ErrUnrecognizedVersion is returned when the header version bytes are
	// not the single supported literal. There is no forward-compatibility
	// path; newer versions are rejected the same as garbage.
	ErrUnrecognizedVersion = errors.New("scn: unrecognized scenario version")

	// ErrInstructionsTooLarge is returned when the declared instructions
	// length exceeds MaxInstructionsLen. Raised before any allocation so a
	// hostile length field cannot drive memory use.
	ErrInstructionsTooLarge = errors.New("scn: scenario instructions too large")
)
