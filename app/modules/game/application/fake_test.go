package gameservice

import (
	"context"
	"sync"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/repositories"
	gamemetrics "github.com/Black-And-White-Club/bowling-bot/pkg/observability/metrics/game"
	"github.com/google/uuid"
)

// ------------------------
// Fake Game Repo
// ------------------------

// FakeGameRepository delegates to a real in-memory registry unless a Func
// override is set.
type FakeGameRepository struct {
	inner *gamedb.MemoryRepository
	trace []string

	CreateFunc func(ctx context.Context, game *gamedomain.Game) (*gamedb.Record, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*gamedb.Record, error)
	ListFunc   func(ctx context.Context) ([]*gamedb.Record, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func NewFakeGameRepository() *FakeGameRepository {
	return &FakeGameRepository{inner: gamedb.NewMemoryRepository(0, 0)}
}

func (f *FakeGameRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGameRepository) Create(ctx context.Context, game *gamedomain.Game) (*gamedb.Record, error) {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, game)
	}
	return f.inner.Create(ctx, game)
}

func (f *FakeGameRepository) Get(ctx context.Context, id uuid.UUID) (*gamedb.Record, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return f.inner.Get(ctx, id)
}

func (f *FakeGameRepository) List(ctx context.Context) ([]*gamedb.Record, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return f.inner.List(ctx)
}

func (f *FakeGameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return f.inner.Delete(ctx, id)
}

func (f *FakeGameRepository) Count() int {
	return f.inner.Count()
}

func (f *FakeGameRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ gamedb.Repository = (*FakeGameRepository)(nil)

// ------------------------
// Fake Metrics
// ------------------------

type fakeMetrics struct {
	gamemetrics.NoOpMetrics

	mu        sync.Mutex
	rolls     []string
	completed []int
	failures  []string
	active    int
}

func (m *fakeMetrics) RecordRoll(_ context.Context, verdict string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, verdict)
}

func (m *fakeMetrics) RecordGameCompleted(_ context.Context, topScore int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = append(m.completed, topScore)
}

func (m *fakeMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, operation)
}

func (m *fakeMetrics) RecordActiveGames(_ context.Context, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = count
}
