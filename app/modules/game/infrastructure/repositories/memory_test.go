package gamedb

import (
	"context"
	"sync"
	"testing"
	"time"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T) *gamedomain.Game {
	t.Helper()
	g, err := gamedomain.NewGame([]string{"Ann"})
	require.NoError(t, err)
	return g
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(10, time.Hour)

	rec, err := repo.Create(ctx, newGame(t))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, 1, repo.Count())

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Same(t, rec, got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, rec.ID))
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)

	_, err = repo.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)}
	repo := NewMemoryRepository(0, 0)
	repo.now = clock.Now

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		rec, err := repo.Create(ctx, newGame(t))
		require.NoError(t, err)
		ids = append(ids, rec.ID)
		clock.Advance(time.Minute)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, rec := range list {
		assert.Equal(t, ids[i], rec.ID)
	}
}

func TestMemoryRepository_Capacity(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)}
	repo := NewMemoryRepository(2, 30*time.Minute)
	repo.now = clock.Now

	stale, err := repo.Create(ctx, newGame(t))
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	busy, err := repo.Create(ctx, newGame(t))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newGame(t))
	assert.ErrorIs(t, err, ErrCapacity, "nothing idle long enough to evict")

	clock.Advance(15 * time.Minute)
	busy.Update(func(g *gamedomain.Game) { g.Roll("5") })

	_, err = repo.Create(ctx, newGame(t))
	require.NoError(t, err)

	_, err = repo.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrNotFound, "idle game evicted")
	_, err = repo.Get(ctx, busy.ID)
	assert.NoError(t, err)
}

func TestRecord_UpdateSerializes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(0, 0)
	rec, err := repo.Create(ctx, newGame(t))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Update(func(g *gamedomain.Game) { g.Roll("0") })
		}()
	}
	wg.Wait()

	rec.View(func(g *gamedomain.Game, _ time.Time) {
		assert.True(t, g.Complete())
		p, _ := g.Player(0)
		for _, f := range p.Frames {
			assert.Len(t, f.Rolls, 2)
		}
	})
}
