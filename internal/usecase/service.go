package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/game"
	"svw.info/woodoku/internal/ports"
	"svw.info/woodoku/internal/score"
	"svw.info/woodoku/internal/shape"
)

var (
	errNotConfigured   = errors.New("usecase dependency not configured")
	ErrSessionNotFound = errors.New("session not found")
)

// Settings apply to every game the service starts.
type Settings struct {
	HandSize int
	Seed     int64 // nonzero replays the same deal in every game
	Rules    score.Rules
}

// session serializes all access to one game.
type session struct {
	mu      sync.Mutex
	game    *game.Game
	started time.Time
}

// Service keeps live games in memory, keyed by session id.
type Service struct {
	Catalog  ports.Catalog
	Hinter   ports.Hinter
	Logger   *slog.Logger
	Settings Settings

	catalogMu sync.Mutex
	shapes    []shape.Shape

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewService(c ports.Catalog, h ports.Hinter, logger *slog.Logger, s Settings) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if s.Rules == (score.Rules{}) {
		s.Rules = score.DefaultRules()
	}
	return &Service{Catalog: c, Hinter: h, Logger: logger, Settings: s, sessions: make(map[string]*session)}
}

// Shapes returns the catalog, loading it on first use.
func (u *Service) Shapes(ctx context.Context) ([]shape.Shape, error) {
	if u.Catalog == nil {
		return nil, errNotConfigured
	}
	u.catalogMu.Lock()
	defer u.catalogMu.Unlock()
	if u.shapes == nil {
		shapes, err := u.Catalog.Load(ctx)
		if err != nil {
			return nil, err
		}
		u.shapes = shapes
	}
	return u.shapes, nil
}

// NewGame deals a fresh game. A zero seed falls back to the configured seed,
// then to the clock.
func (u *Service) NewGame(ctx context.Context, seed int64) (domain.GameState, error) {
	shapes, err := u.Shapes(ctx)
	if err != nil {
		return domain.GameState{}, err
	}
	if seed == 0 {
		seed = u.Settings.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rules := u.Settings.Rules
	g, err := game.New(shapes, game.Options{HandSize: u.Settings.HandSize, Seed: seed, Rules: &rules})
	if err != nil {
		return domain.GameState{}, fmt.Errorf("new game: %w", err)
	}
	id := uuid.NewString()
	u.mu.Lock()
	u.sessions[id] = &session{game: g, started: time.Now()}
	u.mu.Unlock()

	u.Logger.Info("game started", "id", id, "seed", seed)
	st := g.State()
	st.ID = id
	return st, nil
}

func (u *Service) lookup(id string) (*session, error) {
	u.mu.RLock()
	s, ok := u.sessions[id]
	u.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

func (u *Service) State(ctx context.Context, id string) (domain.GameState, error) {
	s, err := u.lookup(id)
	if err != nil {
		return domain.GameState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.game.State()
	st.ID = id
	return st, nil
}

// Place applies m to the session and returns the outcome with the new state.
func (u *Service) Place(ctx context.Context, id string, m domain.Move) (domain.Outcome, domain.GameState, error) {
	s, err := u.lookup(id)
	if err != nil {
		return domain.Outcome{}, domain.GameState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := s.game.Play(m.Slot, m.Origin.Row, m.Origin.Col)
	if err != nil {
		return domain.Outcome{}, domain.GameState{}, err
	}
	u.Logger.Debug("placed", "id", id, "slot", m.Slot, "row", m.Origin.Row, "col", m.Origin.Col,
		"groups", len(out.Groups), "earned", out.Earned)
	if out.Over {
		u.Logger.Info("game over", "id", id, "score", out.Score, "turns", s.game.Turn(),
			"dur", time.Since(s.started).Round(time.Second))
	}
	st := s.game.State()
	st.ID = id
	return out, st, nil
}

// Hint suggests a move for the session's current hand.
func (u *Service) Hint(ctx context.Context, id string, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	s, err := u.lookup(id)
	if err != nil {
		return domain.Hint{}, false, err
	}
	s.mu.Lock()
	if s.game.Over() {
		s.mu.Unlock()
		return domain.Hint{}, false, game.ErrGameOver
	}
	b := s.game.Board()
	hand, avail := s.game.Hand()
	s.mu.Unlock()
	return u.Hinter.Hint(ctx, b, hand, avail, max)
}

// Delete ends a session and returns its final state.
func (u *Service) Delete(ctx context.Context, id string) (domain.GameState, error) {
	u.mu.Lock()
	s, ok := u.sessions[id]
	delete(u.sessions, id)
	u.mu.Unlock()
	if !ok {
		return domain.GameState{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Logger.Info("game ended", "id", id, "score", s.game.Score(), "turns", s.game.Turn())
	st := s.game.State()
	st.ID = id
	return st, nil
}

// Len reports the number of live sessions.
func (u *Service) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.sessions)
}
