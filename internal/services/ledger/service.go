package ledger

import (
	"context"
	"log/slog"

	"github.com/mcoot/rummyledger/internal/collection"
	"github.com/mcoot/rummyledger/internal/dependencies/clock"
	"github.com/mcoot/rummyledger/internal/dependencies/random"
	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/narrative"
	"github.com/mcoot/rummyledger/internal/services/registry"
	"github.com/mcoot/rummyledger/internal/services/stats"
)

// DocumentKey is the blob store key for the games collection
const DocumentKey = "games.json"

const (
	// IDLength is the length of generated game identifiers
	IDLength = 9
	// IDAlphabet is the characters used in generated identifiers
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Service owns the games collection. Recording a game also drives the
// registry's win/loss bookkeeping, statistics derivation, and the recap.
type Service struct {
	store    *collection.Store[model.Game]
	registry *registry.Service
	narrator narrative.Generator
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// New creates a new ledger service
func New(
	store *collection.Store[model.Game],
	reg *registry.Service,
	narrator narrative.Generator,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:    store,
		registry: reg,
		narrator: narrator,
		clock:    clk,
		random:   rnd,
		logger:   logger,
	}
}

// Load populates the cache from the blob store
func (s *Service) Load(ctx context.Context) {
	s.store.Load(ctx)
}

// Create records a completed game. Both referenced players must resolve in
// the registry before anything is mutated. The game is persisted once as
// soon as it is appended, and a second time after the recap is attached, so
// a concurrent reader may observe it without a summary.
func (s *Service) Create(
	ctx context.Context,
	settings *model.GameSettings,
	hands []model.HandResult,
	final *model.FinalResult,
) (*model.Game, error) {
	if settings == nil || hands == nil || final == nil {
		return nil, model.ErrInvalidGameData
	}
	// A non-tie winner must be one of the two players in the settings
	if w := final.WinnerID; w != nil && *w != settings.Player1ID && *w != settings.Player2ID {
		return nil, model.ErrInvalidGameData
	}

	player1, err := s.registry.Get(settings.Player1ID)
	if err != nil {
		return nil, err
	}
	player2, err := s.registry.Get(settings.Player2ID)
	if err != nil {
		return nil, err
	}

	game := model.Game{
		ID:          s.newID(),
		Date:        s.clock.Now().UTC(),
		Settings:    *settings,
		Hands:       hands,
		FinalResult: *final,
	}

	snapshot := s.store.Mutate(func(games []model.Game) []model.Game {
		return append(games, game)
	})
	if err := s.store.Replace(ctx, snapshot); err != nil {
		return nil, err
	}

	if err := s.registry.RecordOutcome(ctx, &game); err != nil {
		return nil, err
	}

	// The snapshot already holds the current game as its final entry
	bundle := stats.Derive(snapshot, player1.ID, player2.ID, &game.FinalResult)

	summary := s.narrator.Summary(ctx, narrative.Request{
		Player1Name:  player1.Name,
		Player2Name:  player2.Name,
		FinalResult:  game.FinalResult,
		HandCount:    len(game.Hands),
		TargetScore:  model.TargetScore,
		HandWinBonus: model.HandWinBonus,
		Stats:        bundle,
	})

	withSummary := s.store.Mutate(func(games []model.Game) []model.Game {
		for i := range games {
			if games[i].ID == game.ID {
				games[i].AISummary = &summary
				break
			}
		}
		return games
	})
	if err := s.store.Replace(ctx, withSummary); err != nil {
		return nil, err
	}

	game.AISummary = &summary

	s.logger.Info("game recorded",
		slog.String("game_id", string(game.ID)),
		slog.String("player1_id", string(player1.ID)),
		slog.String("player2_id", string(player2.ID)),
		slog.Int("hands", len(game.Hands)))
	return &game, nil
}

// Get returns the game with the given identifier
func (s *Service) Get(id model.GameID) (*model.Game, error) {
	for _, g := range s.store.Snapshot() {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, model.ErrGameNotFound
}

// ListAll returns all games in insertion order
func (s *Service) ListAll() []model.Game {
	return s.store.Snapshot()
}

// ListForPlayer returns all games whose settings reference the given player,
// in insertion order. An unknown identifier yields an empty list.
func (s *Service) ListForPlayer(id model.PlayerID) []model.Game {
	games := make([]model.Game, 0)
	for _, g := range s.store.Snapshot() {
		if g.InvolvesPlayer(id) {
			games = append(games, g)
		}
	}
	return games
}

// newID allocates an identifier not currently in use
func (s *Service) newID() model.GameID {
	for {
		id := model.GameID(s.random.String(IDLength, IDAlphabet))
		if _, err := s.Get(id); err != nil {
			return id
		}
	}
}
