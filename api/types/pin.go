package types

import (
	"strings"

	"golang.org/x/xerrors"
)

// PinMode describes how the daemon retains an object in its pinset.
type PinMode int

const (
	// PinModeUnknown mode not reported by the daemon
	PinModeUnknown PinMode = iota
	// PinModeDirect pinned by itself
	PinModeDirect
	// PinModeRecursive pinned together with everything it references
	PinModeRecursive
	// PinModeIndirect retained as the child of a recursive pin
	PinModeIndirect
	// PinModeAll matches every mode, only meaningful as a list filter
	PinModeAll
)

// String mode to the daemon's lower-case vocabulary
func (m PinMode) String() string {
	switch m {
	case PinModeDirect:
		return "direct"
	case PinModeRecursive:
		return "recursive"
	case PinModeIndirect:
		return "indirect"
	case PinModeAll:
		return "all"
	}
	return "unknown"
}

// ErrUnknownPinMode the daemon reported a pin type outside the known vocabulary
var ErrUnknownPinMode = xerrors.New("unknown pin mode")

var pinModes = map[string]PinMode{
	"direct":    PinModeDirect,
	"recursive": PinModeRecursive,
	"indirect":  PinModeIndirect,
	"all":       PinModeAll,
}

// PinModeFromString maps the daemon's type vocabulary to a PinMode,
// case-insensitive
func PinModeFromString(s string) (PinMode, error) {
	mode, ok := pinModes[strings.ToLower(s)]
	if !ok {
		return PinModeUnknown, xerrors.Errorf("%q: %w", s, ErrUnknownPinMode)
	}
	return mode, nil
}

// PinnedObject pin record returned by the daemon. Add and remove results
// carry the cid only, list results also carry the mode.
type PinnedObject struct {
	Cid  string
	Mode PinMode
}
