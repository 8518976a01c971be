package gamedomain

import (
	"fmt"
	"strings"
)

const (
	// MinPlayers and MaxPlayers bound the roster size.
	MinPlayers = 1
	MaxPlayers = 5
)

// Turn addresses the ball that is up next. It is the single source of truth
// for whose turn it is; any input slot is active exactly when its coordinate
// equals the game's Turn.
type Turn struct {
	Player int `json:"player"`
	Frame  int `json:"frame"`
	Roll   int `json:"roll"`
}

// Terminal reports whether the turn lies past the last frame.
func (t Turn) Terminal() bool { return t.Frame >= FrameCount }

func (t Turn) String() string {
	return fmt.Sprintf("player %d frame %d roll %d", t.Player, t.Frame, t.Roll)
}

// Player is one bowler's line on the score sheet.
type Player struct {
	Name       string
	Frames     [FrameCount]Frame
	TotalScore int
}

func (p *Player) clone() Player {
	c := *p
	for i := range c.Frames {
		c.Frames[i] = p.Frames[i].clone()
	}
	return c
}

// Verdict is the outcome of a roll submission. Every verdict other than
// Accepted leaves the game untouched.
type Verdict uint8

const (
	Accepted Verdict = iota
	RejectedGameOver
	RejectedWrongTurn
	RejectedMalformed
	RejectedIllegal
)

// OK reports whether the roll was recorded.
func (v Verdict) OK() bool { return v == Accepted }

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case RejectedGameOver:
		return "game_over"
	case RejectedWrongTurn:
		return "wrong_turn"
	case RejectedMalformed:
		return "malformed"
	case RejectedIllegal:
		return "illegal"
	default:
		return fmt.Sprintf("verdict(%d)", uint8(v))
	}
}

// Game is a single game of ten-pin bowling for up to MaxPlayers bowlers.
// Players bowl frame by frame: every player finishes frame N before anyone
// starts frame N+1. A Game is not safe for concurrent use.
type Game struct {
	players []*Player
	turn    Turn
}

// NewGame starts a game for the given bowlers in order. Names are trimmed and
// must not be blank.
func NewGame(names []string) (*Game, error) {
	switch {
	case len(names) < MinPlayers:
		return nil, ErrNoPlayers
	case len(names) > MaxPlayers:
		return nil, fmt.Errorf("%w: %d, maximum is %d", ErrTooManyPlayers, len(names), MaxPlayers)
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: player %d", ErrBlankName, i+1)
		}
		players[i] = &Player{Name: name}
	}

	return &Game{players: players}, nil
}

// Turn returns the coordinate of the next ball.
func (g *Game) Turn() Turn { return g.turn }

// Complete reports whether every player has finished the last frame.
func (g *Game) Complete() bool { return g.turn.Terminal() }

// PlayerCount returns the number of bowlers.
func (g *Game) PlayerCount() int { return len(g.players) }

// Players returns a snapshot of every player's line.
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	for i, p := range g.players {
		out[i] = p.clone()
	}
	return out
}

// Player returns a snapshot of one player's line.
func (g *Game) Player(index int) (Player, bool) {
	if index < 0 || index >= len(g.players) {
		return Player{}, false
	}
	return g.players[index].clone(), true
}

// Current returns the bowler who is up, or false once the game is complete.
func (g *Game) Current() (Player, bool) {
	if g.Complete() {
		return Player{}, false
	}
	return g.Player(g.turn.Player)
}

// SubmitRoll records raw as the ball addressed by at. Submissions for any
// coordinate other than the current turn, malformed marks and rolls that
// would break the rules are rejected without changing the game. An accepted
// roll rescores the player's frames and advances the turn.
func (g *Game) SubmitRoll(at Turn, raw string) Verdict {
	if g.Complete() {
		return RejectedGameOver
	}
	if at != g.turn {
		return RejectedWrongTurn
	}

	m, ok := parseMark(raw)
	if !ok {
		return RejectedMalformed
	}

	p := g.players[at.Player]
	f := &p.Frames[at.Frame]
	if len(f.Rolls) != at.Roll {
		return RejectedWrongTurn
	}

	roll, ok := nextRoll(f.Rolls, m)
	if !ok {
		return RejectedIllegal
	}

	f.Rolls = append(f.Rolls, roll)
	f.Complete = frameComplete(at.Frame, f.Rolls)
	p.TotalScore = Rescore(p.Frames[:], at.Frame)

	g.advance()
	return Accepted
}

// Roll submits raw for whoever is up.
func (g *Game) Roll(raw string) Verdict {
	return g.SubmitRoll(g.turn, raw)
}

// advance moves the turn on after an accepted roll: the same bowler keeps
// rolling until the frame is complete, then the next bowler takes the same
// frame, and after the last bowler play returns to the first bowler in the
// next frame.
func (g *Game) advance() {
	t := g.turn
	if !g.players[t.Player].Frames[t.Frame].Complete {
		g.turn.Roll++
		return
	}
	if t.Player+1 < len(g.players) {
		g.turn = Turn{Player: t.Player + 1, Frame: t.Frame}
		return
	}
	g.turn = Turn{Frame: t.Frame + 1}
}

// Rescore rebuilds every frame score and total from the recorded rolls.
func (g *Game) Rescore() {
	for _, p := range g.players {
		p.TotalScore = Rescore(p.Frames[:], finalFrame)
	}
}

// Winner returns the first player holding the highest total. It reports false
// until the game is complete. Use Leaders to detect a tie.
func (g *Game) Winner() (Player, bool) {
	if !g.Complete() {
		return Player{}, false
	}

	best := g.players[0]
	for _, p := range g.players[1:] {
		if p.TotalScore > best.TotalScore {
			best = p
		}
	}
	return best.clone(), true
}

// Leaders returns every player tied for the highest total, in seat order.
func (g *Game) Leaders() []Player {
	top := g.players[0].TotalScore
	for _, p := range g.players[1:] {
		top = max(top, p.TotalScore)
	}

	var leaders []Player
	for _, p := range g.players {
		if p.TotalScore == top {
			leaders = append(leaders, p.clone())
		}
	}
	return leaders
}
