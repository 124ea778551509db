package response

import (
	"time"

	"github.com/mcoot/rummyledger/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	GamesPlayedIDs []string `json:"gamesPlayedIds"`
	GamesWon       int      `json:"gamesWon"`
	GamesLost      int      `json:"gamesLost"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	gameIDs := make([]string, len(p.GamesPlayedIDs))
	for i, id := range p.GamesPlayedIDs {
		gameIDs[i] = string(id)
	}
	return Player{
		ID:             string(p.ID),
		Name:           p.Name,
		GamesPlayedIDs: gameIDs,
		GamesWon:       p.GamesWon,
		GamesLost:      p.GamesLost,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i := range players {
		out[i] = PlayerFromModel(&players[i])
	}
	return out
}

// Game represents a recorded game in API responses. The nested sections
// reuse the model shapes, which match the persisted document.
type Game struct {
	ID          string             `json:"id"`
	Date        time.Time          `json:"date"`
	Settings    model.GameSettings `json:"settings"`
	Hands       []model.HandResult `json:"hands"`
	FinalResult model.FinalResult  `json:"finalResult"`
	AISummary   *string            `json:"aiSummary"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:          string(g.ID),
		Date:        g.Date,
		Settings:    g.Settings,
		Hands:       g.Hands,
		FinalResult: g.FinalResult,
		AISummary:   g.AISummary,
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []model.Game) []Game {
	out := make([]Game, len(games))
	for i := range games {
		out[i] = GameFromModel(&games[i])
	}
	return out
}
