package registry

import (
	"context"
	"log/slog"

	"github.com/mcoot/rummyledger/internal/collection"
	"github.com/mcoot/rummyledger/internal/dependencies/random"
	"github.com/mcoot/rummyledger/internal/model"
)

// DocumentKey is the blob store key for the users collection
const DocumentKey = "users.json"

const (
	// IDLength is the length of generated player identifiers
	IDLength = 9
	// IDAlphabet is the characters used in generated identifiers
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Service owns the users collection: profile CRUD plus the win/loss
// bookkeeping driven by game recording.
type Service struct {
	store  *collection.Store[model.Player]
	random random.Random
	logger *slog.Logger
}

// New creates a new registry service
func New(store *collection.Store[model.Player], rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		random: rnd,
		logger: logger,
	}
}

// Load populates the cache from the blob store
func (s *Service) Load(ctx context.Context) {
	s.store.Load(ctx)
}

// Create registers a new player with zeroed counters
func (s *Service) Create(ctx context.Context, name string) (*model.Player, error) {
	if name == "" {
		return nil, model.ErrNameRequired
	}

	player := model.Player{
		ID:             s.newID(),
		Name:           name,
		GamesPlayedIDs: []model.GameID{},
	}

	snapshot := s.store.Mutate(func(players []model.Player) []model.Player {
		return append(players, player)
	})

	if err := s.store.Replace(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name))
	return &player, nil
}

// Get returns the player with the given identifier
func (s *Service) Get(id model.PlayerID) (*model.Player, error) {
	for _, p := range s.store.Snapshot() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

// List returns all players in registration order
func (s *Service) List() []model.Player {
	return s.store.Snapshot()
}

// Update renames the player; an empty name leaves it unchanged
func (s *Service) Update(ctx context.Context, id model.PlayerID, name string) (*model.Player, error) {
	var updated *model.Player
	snapshot := s.store.Mutate(func(players []model.Player) []model.Player {
		for i := range players {
			if players[i].ID == id {
				if name != "" {
					players[i].Name = name
				}
				p := players[i]
				updated = &p
				break
			}
		}
		return players
	})

	if updated == nil {
		return nil, model.ErrPlayerNotFound
	}

	if err := s.store.Replace(ctx, snapshot); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the player. Historical game records are left untouched, so
// the deleted identifier may remain referenced by the ledger.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	found := false
	snapshot := s.store.Mutate(func(players []model.Player) []model.Player {
		kept := players[:0]
		for _, p := range players {
			if p.ID == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		return kept
	})

	if !found {
		return model.ErrPlayerNotFound
	}

	if err := s.store.Replace(ctx, snapshot); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}

// RecordOutcome applies a completed game to both referenced players: the
// game id joins each player's history, and a non-tie result moves exactly
// one win and one loss counter. Persists once after both updates.
func (s *Service) RecordOutcome(ctx context.Context, game *model.Game) error {
	winner := game.FinalResult.WinnerID

	snapshot := s.store.Mutate(func(players []model.Player) []model.Player {
		for i := range players {
			p := &players[i]
			if p.ID != game.Settings.Player1ID && p.ID != game.Settings.Player2ID {
				continue
			}
			p.GamesPlayedIDs = append(p.GamesPlayedIDs, game.ID)
			if winner == nil {
				continue
			}
			// A winner naming neither player leaves both counters alone
			if p.ID == *winner {
				p.GamesWon++
			} else if *winner == game.Settings.Player1ID || *winner == game.Settings.Player2ID {
				p.GamesLost++
			}
		}
		return players
	})

	return s.store.Replace(ctx, snapshot)
}

// newID allocates an identifier not currently in use
func (s *Service) newID() model.PlayerID {
	for {
		id := model.PlayerID(s.random.String(IDLength, IDAlphabet))
		if _, err := s.Get(id); err != nil {
			return id
		}
	}
}
