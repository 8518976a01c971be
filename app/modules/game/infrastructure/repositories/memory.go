package gamedb

import (
	"context"
	"sort"
	"sync"
	"time"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	"github.com/google/uuid"
)

// Record is a live game. All access to the game goes through Update or View,
// which serialize submissions so a game only ever sees one roll at a time.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
	game      *gamedomain.Game
	now       func() time.Time
}

// Update runs fn with exclusive access to the game and marks the record as
// touched.
func (r *Record) Update(fn func(g *gamedomain.Game)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.game)
	r.updatedAt = r.now()
}

// View runs fn with exclusive access to the game without touching it. fn
// must not mutate the game.
func (r *Record) View(fn func(g *gamedomain.Game, updatedAt time.Time)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.game, r.updatedAt)
}

func (r *Record) lastTouched() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updatedAt
}

// MemoryRepository keeps games in a map. Games idle for longer than idleTTL
// are evicted when room is needed for a new one.
type MemoryRepository struct {
	mu       sync.RWMutex
	games    map[uuid.UUID]*Record
	maxGames int
	idleTTL  time.Duration
	now      func() time.Time
}

// NewMemoryRepository creates a registry holding at most maxGames games.
func NewMemoryRepository(maxGames int, idleTTL time.Duration) *MemoryRepository {
	return &MemoryRepository{
		games:    make(map[uuid.UUID]*Record),
		maxGames: maxGames,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (m *MemoryRepository) Create(_ context.Context, game *gamedomain.Game) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxGames > 0 && len(m.games) >= m.maxGames {
		m.pruneLocked()
		if len(m.games) >= m.maxGames {
			return nil, ErrCapacity
		}
	}

	now := m.now()
	rec := &Record{
		ID:        uuid.New(),
		CreatedAt: now,
		updatedAt: now,
		game:      game,
		now:       m.now,
	}
	m.games[rec.ID] = rec
	return rec, nil
}

func (m *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// List returns every live game, oldest first.
func (m *MemoryRepository) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.games))
	for _, rec := range m.games {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *MemoryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// pruneLocked drops games idle past idleTTL. Caller holds m.mu.
func (m *MemoryRepository) pruneLocked() {
	if m.idleTTL <= 0 {
		return
	}
	cutoff := m.now().Add(-m.idleTTL)
	for id, rec := range m.games {
		if rec.lastTouched().Before(cutoff) {
			delete(m.games, id)
		}
	}
}

var _ Repository = (*MemoryRepository)(nil)
