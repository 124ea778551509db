package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rummyledger/internal/blob/memory"
	"github.com/mcoot/rummyledger/internal/collection"
	"github.com/mcoot/rummyledger/internal/dependencies/random"
	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	blob    *memory.Store
	store   *collection.Store[model.Player]
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.blob = memory.New()
	s.store = collection.New[model.Player](s.blob, DocumentKey, testutil.NopLogger())
	s.service = New(s.store, random.New(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) mustCreate(name string) *model.Player {
	player, err := s.service.Create(s.ctx, name)
	s.Require().NoError(err)
	return player
}

func (s *ServiceSuite) gameBetween(id model.GameID, p1, p2 model.PlayerID, winner *model.PlayerID) *model.Game {
	return &model.Game{
		ID: id,
		Settings: model.GameSettings{
			Player1ID: p1,
			Player2ID: p2,
		},
		FinalResult: model.FinalResult{
			Player1ID: p1,
			Player2ID: p2,
			WinnerID:  winner,
		},
	}
}

func (s *ServiceSuite) TestCreateRequiresName() {
	_, err := s.service.Create(s.ctx, "")
	s.ErrorIs(err, model.ErrNameRequired)
	s.Empty(s.service.List())
}

func (s *ServiceSuite) TestCreateInitializesCounters() {
	player := s.mustCreate("Alice")

	s.NotEmpty(player.ID)
	s.Equal("Alice", player.Name)
	s.Empty(player.GamesPlayedIDs)
	s.Zero(player.GamesWon)
	s.Zero(player.GamesLost)
}

func (s *ServiceSuite) TestCreatedIdentifiersAreDistinct() {
	seen := make(map[model.PlayerID]bool)
	for i := 0; i < 50; i++ {
		player := s.mustCreate("Player")
		s.False(seen[player.ID], "duplicate identifier %s", player.ID)
		seen[player.ID] = true
	}
}

func (s *ServiceSuite) TestGetUnknownPlayer() {
	_, err := s.service.Get("missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdateRenames() {
	player := s.mustCreate("Alice")

	updated, err := s.service.Update(s.ctx, player.ID, "Alicia")
	s.Require().NoError(err)
	s.Equal("Alicia", updated.Name)

	got, err := s.service.Get(player.ID)
	s.Require().NoError(err)
	s.Equal("Alicia", got.Name)
}

func (s *ServiceSuite) TestUpdateWithEmptyNameKeepsExisting() {
	player := s.mustCreate("Alice")

	updated, err := s.service.Update(s.ctx, player.ID, "")
	s.Require().NoError(err)
	s.Equal("Alice", updated.Name)
}

func (s *ServiceSuite) TestUpdateUnknownPlayer() {
	_, err := s.service.Update(s.ctx, "missing", "Name")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDelete() {
	player := s.mustCreate("Alice")

	s.Require().NoError(s.service.Delete(s.ctx, player.ID))

	_, err := s.service.Get(player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeleteUnknownPlayer() {
	s.ErrorIs(s.service.Delete(s.ctx, "missing"), model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestRecordOutcomeWithWinner() {
	alice := s.mustCreate("Alice")
	bob := s.mustCreate("Bob")

	game := s.gameBetween("game-1", alice.ID, bob.ID, &alice.ID)
	s.Require().NoError(s.service.RecordOutcome(s.ctx, game))

	gotAlice, _ := s.service.Get(alice.ID)
	gotBob, _ := s.service.Get(bob.ID)

	s.Equal([]model.GameID{"game-1"}, gotAlice.GamesPlayedIDs)
	s.Equal([]model.GameID{"game-1"}, gotBob.GamesPlayedIDs)
	s.Equal(1, gotAlice.GamesWon)
	s.Zero(gotAlice.GamesLost)
	s.Equal(1, gotBob.GamesLost)
	s.Zero(gotBob.GamesWon)
}

func (s *ServiceSuite) TestRecordOutcomeTie() {
	alice := s.mustCreate("Alice")
	bob := s.mustCreate("Bob")

	game := s.gameBetween("game-1", alice.ID, bob.ID, nil)
	s.Require().NoError(s.service.RecordOutcome(s.ctx, game))

	gotAlice, _ := s.service.Get(alice.ID)
	gotBob, _ := s.service.Get(bob.ID)

	s.Zero(gotAlice.GamesWon + gotAlice.GamesLost)
	s.Zero(gotBob.GamesWon + gotBob.GamesLost)
	s.Len(gotAlice.GamesPlayedIDs, 1)
	s.Len(gotBob.GamesPlayedIDs, 1)
}

func (s *ServiceSuite) TestRecordOutcomeWinnerOutsidePairLeavesCounters() {
	alice := s.mustCreate("Alice")
	bob := s.mustCreate("Bob")

	foreign := model.PlayerID("notaplayer")
	game := s.gameBetween("game-1", alice.ID, bob.ID, &foreign)
	s.Require().NoError(s.service.RecordOutcome(s.ctx, game))

	gotAlice, _ := s.service.Get(alice.ID)
	gotBob, _ := s.service.Get(bob.ID)

	s.Len(gotAlice.GamesPlayedIDs, 1)
	s.Len(gotBob.GamesPlayedIDs, 1)
	s.Zero(gotAlice.GamesWon + gotAlice.GamesLost)
	s.Zero(gotBob.GamesWon + gotBob.GamesLost)
}

func (s *ServiceSuite) TestCountersNeverExceedGamesPlayed() {
	alice := s.mustCreate("Alice")
	bob := s.mustCreate("Bob")

	_ = s.service.RecordOutcome(s.ctx, s.gameBetween("game-1", alice.ID, bob.ID, &alice.ID))
	_ = s.service.RecordOutcome(s.ctx, s.gameBetween("game-2", bob.ID, alice.ID, nil))
	_ = s.service.RecordOutcome(s.ctx, s.gameBetween("game-3", alice.ID, bob.ID, &bob.ID))

	for _, p := range s.service.List() {
		s.LessOrEqual(p.GamesWon+p.GamesLost, len(p.GamesPlayedIDs))
	}
}

func (s *ServiceSuite) TestPersistedCollectionSurvivesReload() {
	alice := s.mustCreate("Alice")
	s.mustCreate("Bob")

	reloaded := collection.New[model.Player](s.blob, DocumentKey, testutil.NopLogger())
	reloaded.Load(s.ctx)

	players := reloaded.Snapshot()
	s.Require().Len(players, 2)
	s.Equal(alice.ID, players[0].ID)
}
