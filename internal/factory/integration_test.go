package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/narrative"
	"github.com/mcoot/rummyledger/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.app.Load(s.ctx)
}

// recording builds a full payload for a game won by player 1
func (s *IntegrationSuite) recording(p1, p2 *model.Player) (*model.GameSettings, []model.HandResult, *model.FinalResult) {
	winner := model.HandWinnerPlayer1
	settings := &model.GameSettings{
		Player1ID:   p1.ID,
		Player2ID:   p2.ID,
		Player1Name: p1.Name,
		Player2Name: p2.Name,
	}
	hands := []model.HandResult{
		{ID: "h1", Player1Score: 110, Player2Score: 25, Winner: &winner},
		{ID: "h2", Player1Score: 95, Player2Score: 40, Winner: &winner},
	}
	final := &model.FinalResult{
		Player1FinalScore: 225,
		Player2FinalScore: 65,
		WinnerName:        p1.Name,
		WinnerID:          &p1.ID,
		Player1Name:       p1.Name,
		Player2Name:       p2.Name,
		Player1ID:         p1.ID,
		Player2ID:         p2.ID,
		Player1Cumulative: 205,
		Player2Cumulative: 65,
		Player1HandsWon:   2,
		Player2HandsWon:   0,
		HandWinBonus:      model.HandWinBonus,
	}
	return settings, hands, final
}

// Test: complete flow from player registration to a recorded, recapped game
func (s *IntegrationSuite) TestCompleteRecordingFlow() {
	s.app.MockRandom.QueueString("alicealic", "bobbobbob", "game00001")

	alice, err := s.app.Registry.Create(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("alicealic"), alice.ID)

	bob, err := s.app.Registry.Create(s.ctx, "Bob")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("bobbobbob"), bob.ID)

	settings, hands, final := s.recording(alice, bob)
	game, err := s.app.Ledger.Create(s.ctx, settings, hands, final)
	s.Require().NoError(err)

	s.Equal(model.GameID("game00001"), game.ID)
	s.Equal(s.app.MockClock.Now().UTC(), game.Date)
	s.Require().NotNil(game.AISummary)
	s.Equal("A hard-fought session.", *game.AISummary)

	// Both profiles reflect the outcome
	alice, err = s.app.Registry.Get(alice.ID)
	s.Require().NoError(err)
	s.Equal([]model.GameID{game.ID}, alice.GamesPlayedIDs)
	s.Equal(1, alice.GamesWon)
	s.Equal(0, alice.GamesLost)

	bob, err = s.app.Registry.Get(bob.ID)
	s.Require().NoError(err)
	s.Equal([]model.GameID{game.ID}, bob.GamesPlayedIDs)
	s.Equal(0, bob.GamesWon)
	s.Equal(1, bob.GamesLost)
}

// Test: games recorded at different times keep distinct dates
func (s *IntegrationSuite) TestClockStampsEachGame() {
	s.app.MockRandom.QueueString("alicealic", "bobbobbob", "game00001", "game00002")

	alice, err := s.app.Registry.Create(s.ctx, "Alice")
	s.Require().NoError(err)
	bob, err := s.app.Registry.Create(s.ctx, "Bob")
	s.Require().NoError(err)

	settings, hands, final := s.recording(alice, bob)
	first, err := s.app.Ledger.Create(s.ctx, settings, hands, final)
	s.Require().NoError(err)

	s.app.MockClock.Advance(24 * time.Hour)

	settings, hands, final = s.recording(alice, bob)
	second, err := s.app.Ledger.Create(s.ctx, settings, hands, final)
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
	s.True(second.Date.After(first.Date))

	games := s.app.Ledger.ListAll()
	s.Require().Len(games, 2)
	s.Equal(first.ID, games[0].ID)
	s.Equal(second.ID, games[1].ID)
}

// Test: a fresh wiring over the same blob store sees persisted state
func (s *IntegrationSuite) TestReloadFromSharedStore() {
	s.app.MockRandom.QueueString("alicealic", "bobbobbob", "game00001")

	alice, err := s.app.Registry.Create(s.ctx, "Alice")
	s.Require().NoError(err)
	bob, err := s.app.Registry.Create(s.ctx, "Bob")
	s.Require().NoError(err)

	settings, hands, final := s.recording(alice, bob)
	game, err := s.app.Ledger.Create(s.ctx, settings, hands, final)
	s.Require().NoError(err)

	reloaded := newWithDependencies(
		s.app.Blob,
		s.app.MockClock,
		s.app.MockRandom,
		&narrative.Static{Text: "unused"},
		testutil.NopLogger(),
	)
	reloaded.Load(s.ctx)

	players := reloaded.Registry.List()
	s.Require().Len(players, 2)

	got, err := reloaded.Ledger.Get(game.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.AISummary)
	s.Equal("A hard-fought session.", *got.AISummary)
	s.Equal(1, players[0].GamesWon)
}
