package gamedomain

import (
	"strconv"
	"strings"
)

// RollKind records how a ball was marked on the score sheet.
type RollKind uint8

const (
	KindPins RollKind = iota
	KindStrike
	KindSpare
)

// Roll is a single ball. Pins is the roll's pin value: 10 for a strike, the
// pins needed to clear the rack for a spare, otherwise the pins knocked down.
type Roll struct {
	Kind RollKind
	Pins int
}

// IsStrike reports whether the roll cleared a full rack.
func (r Roll) IsStrike() bool { return r.Kind == KindStrike }

// IsSpare reports whether the roll cleared a partial rack.
func (r Roll) IsSpare() bool { return r.Kind == KindSpare }

// String returns the wire mark for the roll.
func (r Roll) String() string {
	switch r.Kind {
	case KindStrike:
		return "X"
	case KindSpare:
		return "/"
	default:
		return strconv.Itoa(r.Pins)
	}
}

// mark is a parsed but not yet validated wire character.
type mark struct {
	kind RollKind
	pins int
}

// parseMark decodes the single-character wire format: 0-9, '-' for a miss,
// 'X' for a strike and '/' for a spare. Anything else, including the empty
// string and a literal "10", is malformed.
func parseMark(raw string) (mark, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 1 {
		return mark{}, false
	}

	switch c := raw[0]; {
	case c == 'X' || c == 'x':
		return mark{kind: KindStrike, pins: PinCount}, true
	case c == '/':
		return mark{kind: KindSpare}, true
	case c == '-':
		return mark{kind: KindPins}, true
	case c >= '0' && c <= '9':
		return mark{kind: KindPins, pins: int(c - '0')}, true
	default:
		return mark{}, false
	}
}

// ValidMark reports whether raw is a well-formed roll character. It says
// nothing about whether the roll is legal at any particular point in a frame.
func ValidMark(raw string) bool {
	_, ok := parseMark(raw)
	return ok
}
