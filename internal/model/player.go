package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a registered participant and their running record.
// GamesWon + GamesLost never exceeds len(GamesPlayedIDs); tied games appear
// in GamesPlayedIDs without moving either counter.
type Player struct {
	ID             PlayerID `json:"id"`
	Name           string   `json:"name"`
	GamesPlayedIDs []GameID `json:"gamesPlayedIds"`
	GamesWon       int      `json:"gamesWon"`
	GamesLost      int      `json:"gamesLost"`
}
