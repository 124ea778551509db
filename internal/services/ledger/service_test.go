package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rummyledger/internal/blob/memory"
	"github.com/mcoot/rummyledger/internal/collection"
	"github.com/mcoot/rummyledger/internal/dependencies/mocks"
	"github.com/mcoot/rummyledger/internal/dependencies/random"
	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/narrative"
	"github.com/mcoot/rummyledger/internal/services/registry"
	"github.com/mcoot/rummyledger/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	blob     *memory.Store
	registry *registry.Service
	service  *Service
	clock    *mocks.MockClock
	ctx      context.Context

	alice *model.Player
	bob   *model.Player
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.blob = memory.New()
	logger := testutil.NopLogger()
	rnd := random.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	users := collection.New[model.Player](s.blob, registry.DocumentKey, logger)
	games := collection.New[model.Game](s.blob, DocumentKey, logger)

	s.registry = registry.New(users, rnd, logger)
	s.service = New(games, s.registry, narrative.Static{Text: "A fine game."}, s.clock, rnd, logger)
	s.ctx = context.Background()

	var err error
	s.alice, err = s.registry.Create(s.ctx, "Alice")
	s.Require().NoError(err)
	s.bob, err = s.registry.Create(s.ctx, "Bob")
	s.Require().NoError(err)
}

func (s *ServiceSuite) settings() *model.GameSettings {
	return &model.GameSettings{
		Player1ID:   s.alice.ID,
		Player2ID:   s.bob.ID,
		Player1Name: s.alice.Name,
		Player2Name: s.bob.Name,
	}
}

func (s *ServiceSuite) finalWonBy(winner *model.Player) *model.FinalResult {
	final := &model.FinalResult{
		Player1ID:         s.alice.ID,
		Player2ID:         s.bob.ID,
		Player1Name:       s.alice.Name,
		Player2Name:       s.bob.Name,
		Player1Cumulative: 180,
		Player2Cumulative: 120,
		Player1FinalScore: 210,
		Player2FinalScore: 140,
		HandWinBonus:      model.HandWinBonus,
	}
	if winner != nil {
		final.WinnerID = &winner.ID
		final.WinnerName = winner.Name
	} else {
		final.WinnerName = "It's a Tie!"
	}
	return final
}

func (s *ServiceSuite) hands() []model.HandResult {
	w := model.HandWinnerPlayer1
	return []model.HandResult{
		{ID: "hand-1", Player1Score: 40, Player2Score: 25, Winner: &w},
		{ID: "hand-2", Player1Score: 140, Player2Score: 95, Winner: &w},
	}
}

func (s *ServiceSuite) mustCreate(winner *model.Player) *model.Game {
	game, err := s.service.Create(s.ctx, s.settings(), s.hands(), s.finalWonBy(winner))
	s.Require().NoError(err)
	return game
}

func (s *ServiceSuite) TestCreateValidatesPayload() {
	_, err := s.service.Create(s.ctx, nil, s.hands(), s.finalWonBy(s.alice))
	s.ErrorIs(err, model.ErrInvalidGameData)

	_, err = s.service.Create(s.ctx, s.settings(), nil, s.finalWonBy(s.alice))
	s.ErrorIs(err, model.ErrInvalidGameData)

	_, err = s.service.Create(s.ctx, s.settings(), s.hands(), nil)
	s.ErrorIs(err, model.ErrInvalidGameData)
}

func (s *ServiceSuite) TestCreateRejectsWinnerOutsidePair() {
	final := s.finalWonBy(s.alice)
	foreign := model.PlayerID("notaplayer")
	final.WinnerID = &foreign
	final.WinnerName = "Ghost"

	_, err := s.service.Create(s.ctx, s.settings(), s.hands(), final)
	s.ErrorIs(err, model.ErrInvalidGameData)

	s.Empty(s.service.ListAll())
	for _, id := range []model.PlayerID{s.alice.ID, s.bob.ID} {
		player, getErr := s.registry.Get(id)
		s.Require().NoError(getErr)
		s.Empty(player.GamesPlayedIDs)
		s.Zero(player.GamesWon)
		s.Zero(player.GamesLost)
	}
}

func (s *ServiceSuite) TestCreateUnknownPlayerMutatesNothing() {
	settings := s.settings()
	settings.Player2ID = "missing"

	_, err := s.service.Create(s.ctx, settings, s.hands(), s.finalWonBy(s.alice))
	s.ErrorIs(err, model.ErrPlayerNotFound)

	s.Empty(s.service.ListAll())
	alice, _ := s.registry.Get(s.alice.ID)
	s.Empty(alice.GamesPlayedIDs)
	s.Zero(alice.GamesWon)
}

func (s *ServiceSuite) TestCreateStampsDateAndSummary() {
	game := s.mustCreate(s.alice)

	s.Equal(s.clock.CurrentTime, game.Date)
	s.Require().NotNil(game.AISummary)
	s.Equal("A fine game.", *game.AISummary)

	stored, err := s.service.Get(game.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.AISummary)
	s.Equal("A fine game.", *stored.AISummary)
}

func (s *ServiceSuite) TestCreateUpdatesCounters() {
	s.mustCreate(s.alice)

	alice, _ := s.registry.Get(s.alice.ID)
	bob, _ := s.registry.Get(s.bob.ID)

	s.Equal(1, alice.GamesWon)
	s.Zero(alice.GamesLost)
	s.Equal(1, bob.GamesLost)
	s.Zero(bob.GamesWon)
}

func (s *ServiceSuite) TestCreateTieLeavesCountersUnchanged() {
	s.mustCreate(nil)

	alice, _ := s.registry.Get(s.alice.ID)
	bob, _ := s.registry.Get(s.bob.ID)

	s.Zero(alice.GamesWon + alice.GamesLost)
	s.Zero(bob.GamesWon + bob.GamesLost)
	s.Len(alice.GamesPlayedIDs, 1)
}

func (s *ServiceSuite) TestGetUnknownGame() {
	_, err := s.service.Get("missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestListForPlayer() {
	game := s.mustCreate(s.alice)

	carol, err := s.registry.Create(s.ctx, "Carol")
	s.Require().NoError(err)

	s.Len(s.service.ListForPlayer(s.alice.ID), 1)
	s.Equal(game.ID, s.service.ListForPlayer(s.bob.ID)[0].ID)
	s.Empty(s.service.ListForPlayer(carol.ID))
	s.Empty(s.service.ListForPlayer("missing"))
}

func (s *ServiceSuite) TestListAllInsertionOrder() {
	first := s.mustCreate(s.alice)
	second := s.mustCreate(s.bob)

	games := s.service.ListAll()
	s.Require().Len(games, 2)
	s.Equal(first.ID, games[0].ID)
	s.Equal(second.ID, games[1].ID)
}

func (s *ServiceSuite) TestDeletedPlayerLeavesOrphanReference() {
	game := s.mustCreate(s.alice)

	s.Require().NoError(s.registry.Delete(s.ctx, s.alice.ID))

	stored, err := s.service.Get(game.ID)
	s.Require().NoError(err)
	s.Equal(s.alice.ID, stored.Settings.Player1ID)

	_, err = s.registry.Get(s.alice.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestGamesPersistAcrossReload() {
	game := s.mustCreate(s.alice)

	reloaded := collection.New[model.Game](s.blob, DocumentKey, testutil.NopLogger())
	reloaded.Load(s.ctx)

	games := reloaded.Snapshot()
	s.Require().Len(games, 1)
	s.Equal(game.ID, games[0].ID)
	s.Require().NotNil(games[0].AISummary)
}
