package gamedto

import (
	"time"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
)

// Turn addresses one ball of a game.
type Turn struct {
	Player int `json:"player"`
	Frame  int `json:"frame"`
	Roll   int `json:"roll"`
}

func (t Turn) Domain() gamedomain.Turn {
	return gamedomain.Turn{Player: t.Player, Frame: t.Frame, Roll: t.Roll}
}

func TurnFromDomain(t gamedomain.Turn) Turn {
	return Turn{Player: t.Player, Frame: t.Frame, Roll: t.Roll}
}

// FrameView is one box of a score sheet.
type FrameView struct {
	Rolls      []string `json:"rolls"`
	Score      int      `json:"score"`
	Cumulative int      `json:"cumulative"`
	Complete   bool     `json:"complete"`
	Settled    bool     `json:"settled"`
}

// PlayerView is one bowler's line.
type PlayerView struct {
	Name       string      `json:"name"`
	Frames     []FrameView `json:"frames"`
	TotalScore int         `json:"total_score"`
}

// GameView is the full state a presentation layer needs to draw a game.
type GameView struct {
	ID            string       `json:"id"`
	CreatedAt     time.Time    `json:"created_at"`
	Players       []PlayerView `json:"players"`
	Turn          Turn         `json:"turn"`
	CurrentPlayer string       `json:"current_player,omitempty"`
	Complete      bool         `json:"complete"`
	Winners       []string     `json:"winners,omitempty"`
	Tie           bool         `json:"tie"`
}

// GameSummary is a list entry.
type GameSummary struct {
	ID        string    `json:"id"`
	Players   []string  `json:"players"`
	Frame     int       `json:"frame"`
	Complete  bool      `json:"complete"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlayerView renders a player's line.
func NewPlayerView(p gamedomain.Player) PlayerView {
	running := gamedomain.Cumulative(p.Frames[:])
	frames := make([]FrameView, len(p.Frames))
	for i, f := range p.Frames {
		frames[i] = FrameView{
			Rolls:      f.Marks(),
			Score:      f.Score,
			Cumulative: running[i],
			Complete:   f.Complete,
			Settled:    gamedomain.FrameSettled(p.Frames[:], i),
		}
	}
	return PlayerView{Name: p.Name, Frames: frames, TotalScore: p.TotalScore}
}

// NewGameView renders the whole game. Winners lists every player tied for
// the top score once the game is complete.
func NewGameView(id string, createdAt time.Time, g *gamedomain.Game) GameView {
	players := g.Players()
	view := GameView{
		ID:        id,
		CreatedAt: createdAt,
		Players:   make([]PlayerView, len(players)),
		Turn:      TurnFromDomain(g.Turn()),
		Complete:  g.Complete(),
	}
	for i, p := range players {
		view.Players[i] = NewPlayerView(p)
	}

	if current, ok := g.Current(); ok {
		view.CurrentPlayer = current.Name
	}
	if view.Complete {
		for _, p := range g.Leaders() {
			view.Winners = append(view.Winners, p.Name)
		}
		view.Tie = len(view.Winners) > 1
	}
	return view
}

// NewGameSummary renders a list entry.
func NewGameSummary(id string, createdAt, updatedAt time.Time, g *gamedomain.Game) GameSummary {
	players := g.Players()
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return GameSummary{
		ID:        id,
		Players:   names,
		Frame:     g.Turn().Frame,
		Complete:  g.Complete(),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
