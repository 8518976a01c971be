package gamehandlers

import (
	"context"
	"sync"

	gameservice "github.com/Black-And-White-Club/bowling-bot/app/modules/game/application"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// FakeService implements gameservice.Service with overridable funcs.
type FakeService struct {
	CreateGameFunc       func(ctx context.Context, names []string) (gameservice.CreateGameResult, error)
	SubmitRollFunc       func(ctx context.Context, gameID uuid.UUID, turn gamedto.Turn, value string) (gameservice.SubmitRollResult, error)
	GetGameFunc          func(ctx context.Context, gameID uuid.UUID) (gamedto.GameView, error)
	ListGamesFunc        func(ctx context.Context) ([]gamedto.GameSummary, error)
	DeleteGameFunc       func(ctx context.Context, gameID uuid.UUID) error
	ExportScorecardFunc  func(ctx context.Context, gameID uuid.UUID) ([]byte, error)
	RenderScoreChartFunc func(ctx context.Context, gameID uuid.UUID) ([]byte, error)
}

func (f *FakeService) CreateGame(ctx context.Context, names []string) (gameservice.CreateGameResult, error) {
	if f.CreateGameFunc != nil {
		return f.CreateGameFunc(ctx, names)
	}
	return gameservice.CreateGameResult{}, nil
}

func (f *FakeService) SubmitRoll(ctx context.Context, gameID uuid.UUID, turn gamedto.Turn, value string) (gameservice.SubmitRollResult, error) {
	if f.SubmitRollFunc != nil {
		return f.SubmitRollFunc(ctx, gameID, turn, value)
	}
	return gameservice.SubmitRollResult{}, nil
}

func (f *FakeService) GetGame(ctx context.Context, gameID uuid.UUID) (gamedto.GameView, error) {
	if f.GetGameFunc != nil {
		return f.GetGameFunc(ctx, gameID)
	}
	return gamedto.GameView{ID: gameID.String()}, nil
}

func (f *FakeService) ListGames(ctx context.Context) ([]gamedto.GameSummary, error) {
	if f.ListGamesFunc != nil {
		return f.ListGamesFunc(ctx)
	}
	return []gamedto.GameSummary{}, nil
}

func (f *FakeService) DeleteGame(ctx context.Context, gameID uuid.UUID) error {
	if f.DeleteGameFunc != nil {
		return f.DeleteGameFunc(ctx, gameID)
	}
	return nil
}

func (f *FakeService) ExportScorecard(ctx context.Context, gameID uuid.UUID) ([]byte, error) {
	if f.ExportScorecardFunc != nil {
		return f.ExportScorecardFunc(ctx, gameID)
	}
	return []byte("xlsx"), nil
}

func (f *FakeService) RenderScoreChart(ctx context.Context, gameID uuid.UUID) ([]byte, error) {
	if f.RenderScoreChartFunc != nil {
		return f.RenderScoreChartFunc(ctx, gameID)
	}
	return []byte("png"), nil
}

var _ gameservice.Service = (*FakeService)(nil)

// FakePublisher records published messages by topic.
type FakePublisher struct {
	mu        sync.Mutex
	published map[string][]*message.Message
	err       error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{published: make(map[string][]*message.Message)}
}

func (p *FakePublisher) Publish(topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published[topic] = append(p.published[topic], msgs...)
	return nil
}

func (p *FakePublisher) Close() error { return nil }

func (p *FakePublisher) Messages(topic string) []*message.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*message.Message(nil), p.published[topic]...)
}

func (p *FakePublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.published))
	for t := range p.published {
		out = append(out, t)
	}
	return out
}
