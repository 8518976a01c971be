package gamedomain

// ScoreFrame returns the score credited to frames[index], including any
// strike or spare bonus found in later frames. Bonus balls that have not been
// bowled yet count as zero, so the result is provisional until FrameSettled
// reports true. An empty frame scores zero. frames is never modified.
func ScoreFrame(frames []Frame, index int) int {
	if index < 0 || index >= len(frames) {
		return 0
	}

	f := frames[index]
	if len(f.Rolls) == 0 {
		return 0
	}

	// The final frame carries its own bonus balls.
	if index == finalFrame {
		return sumPins(f.Rolls)
	}

	switch {
	case f.Strike():
		return PinCount + sumPins(bonusRolls(frames, index, 2))
	case f.Spare():
		return PinCount + sumPins(bonusRolls(frames, index, 1))
	default:
		return sumPins(f.Rolls)
	}
}

// FrameSettled reports whether a frame's score is final: the frame is complete
// and every bonus ball it is owed has been bowled.
func FrameSettled(frames []Frame, index int) bool {
	if index < 0 || index >= len(frames) || !frames[index].Complete {
		return false
	}
	if index == finalFrame {
		return true
	}

	f := frames[index]
	switch {
	case f.Strike():
		return len(bonusRolls(frames, index, 2)) == 2
	case f.Spare():
		return len(bonusRolls(frames, index, 1)) == 1
	default:
		return true
	}
}

// Rescore recomputes the score of every frame from 0 through last and returns
// the sum of all frame scores. Scores are always rebuilt from the rolls rather
// than patched as bonus balls arrive.
func Rescore(frames []Frame, last int) int {
	if last >= len(frames) {
		last = len(frames) - 1
	}
	for i := 0; i <= last; i++ {
		frames[i].Score = ScoreFrame(frames, i)
	}

	total := 0
	for _, f := range frames {
		total += f.Score
	}
	return total
}

// Cumulative returns the running total after each frame, as printed on a
// score sheet.
func Cumulative(frames []Frame) []int {
	running := make([]int, len(frames))
	sum := 0
	for i := range frames {
		sum += ScoreFrame(frames, i)
		running[i] = sum
	}
	return running
}

// bonusRolls collects up to n balls bowled after frames[index], crossing
// frame boundaries in order.
func bonusRolls(frames []Frame, index, n int) []Roll {
	bonus := make([]Roll, 0, n)
	for j := index + 1; j < len(frames); j++ {
		for _, r := range frames[j].Rolls {
			if len(bonus) == n {
				return bonus
			}
			bonus = append(bonus, r)
		}
		if len(frames[j].Rolls) == 0 {
			break
		}
	}
	return bonus
}

func sumPins(rolls []Roll) int {
	sum := 0
	for _, r := range rolls {
		sum += r.Pins
	}
	return sum
}
