package gamedomain

const (
	// FrameCount is the number of frames each player bowls.
	FrameCount = 10
	// PinCount is the number of pins in a full rack.
	PinCount = 10

	finalFrame = FrameCount - 1
)

// Frame holds the rolls bowled in one frame together with the values derived
// from them. Score and Complete are only ever written by the game after a roll
// is accepted.
type Frame struct {
	Rolls    []Roll
	Score    int
	Complete bool
}

// Strike reports whether the frame opened with a strike.
func (f Frame) Strike() bool {
	return len(f.Rolls) > 0 && f.Rolls[0].IsStrike()
}

// Spare reports whether the frame's second ball cleared the rack.
func (f Frame) Spare() bool {
	return len(f.Rolls) > 1 && f.Rolls[1].IsSpare()
}

// Marks returns the wire marks of the recorded rolls.
func (f Frame) Marks() []string {
	marks := make([]string, len(f.Rolls))
	for i, r := range f.Rolls {
		marks[i] = r.String()
	}
	return marks
}

func (f Frame) clone() Frame {
	f.Rolls = append([]Roll(nil), f.Rolls...)
	return f
}

// frameComplete derives completion purely from the frame's rolls. A standard
// frame ends after a strike or two balls; the final frame earns a third ball
// only for a strike on the first or a spare on the second.
func frameComplete(index int, rolls []Roll) bool {
	if index < finalFrame {
		return len(rolls) == 2 || (len(rolls) == 1 && rolls[0].IsStrike())
	}

	switch len(rolls) {
	case 3:
		return true
	case 2:
		return !rolls[0].IsStrike() && !rolls[1].IsSpare()
	default:
		return false
	}
}

// rackState returns how many pins are standing for the next ball of the
// frame and whether that ball is the first at a full rack. The rack is reset
// whenever it has been cleared, which only matters in the final frame.
func rackState(rolls []Roll) (standing int, fresh bool) {
	standing, fresh = PinCount, true
	for _, r := range rolls {
		standing -= r.Pins
		fresh = false
		if standing <= 0 {
			standing, fresh = PinCount, true
		}
	}
	return standing, fresh
}

// nextRoll validates m as the next ball of a frame holding rolls and returns
// the roll to record. A numeric ball that clears a partial rack is recorded
// as a spare so the explicit marker and the count are interchangeable.
func nextRoll(rolls []Roll, m mark) (Roll, bool) {
	standing, fresh := rackState(rolls)

	switch m.kind {
	case KindStrike:
		if !fresh {
			return Roll{}, false
		}
		return Roll{Kind: KindStrike, Pins: PinCount}, true
	case KindSpare:
		if fresh {
			return Roll{}, false
		}
		return Roll{Kind: KindSpare, Pins: standing}, true
	default:
		if m.pins > standing {
			return Roll{}, false
		}
		if !fresh && m.pins == standing {
			return Roll{Kind: KindSpare, Pins: standing}, true
		}
		return Roll{Kind: KindPins, Pins: m.pins}, true
	}
}
