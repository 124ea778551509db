package model

import "time"

// GameID uniquely identifies a recorded game
type GameID string

// HandWinner identifies which side took a single hand
type HandWinner string

const (
	HandWinnerPlayer1 HandWinner = "Player1"
	HandWinnerPlayer2 HandWinner = "Player2"
	HandWinnerTie     HandWinner = "Tie"
)

// Scoring rule constants for a standard session
const (
	// TargetScore is the cumulative score that ends a game
	TargetScore = 200
	// HandWinBonus is the bonus awarded per hand won when computing final scores
	HandWinBonus = 10
)

// GameSettings captures the pairing for a game, including the display names
// at time of play. Names are denormalized on purpose: renaming or deleting a
// player later must not rewrite history.
type GameSettings struct {
	Player1ID   PlayerID `json:"player1Id"`
	Player2ID   PlayerID `json:"player2Id"`
	Player1Name string   `json:"player1Name"`
	Player2Name string   `json:"player2Name"`
}

// HandResult is the outcome of a single hand
type HandResult struct {
	ID           string      `json:"id"`
	Player1Score int         `json:"player1Score"`
	Player2Score int         `json:"player2Score"`
	Winner       *HandWinner `json:"winner"`
}

// FinalResult is the settled outcome of a completed game.
// WinnerID is nil for a tie. Cumulative scores are raw points before the
// per-hand bonus; final scores include it.
type FinalResult struct {
	Player1FinalScore int       `json:"player1FinalScore"`
	Player2FinalScore int       `json:"player2FinalScore"`
	WinnerName        string    `json:"winnerName"`
	WinnerID          *PlayerID `json:"winnerId"`
	Player1Name       string    `json:"player1Name"`
	Player2Name       string    `json:"player2Name"`
	Player1ID         PlayerID  `json:"player1Id"`
	Player2ID         PlayerID  `json:"player2Id"`
	Player1Cumulative int       `json:"player1Cumulative"`
	Player2Cumulative int       `json:"player2Cumulative"`
	Player1HandsWon   int       `json:"player1HandsWon"`
	Player2HandsWon   int       `json:"player2HandsWon"`
	HandWinBonus      int       `json:"handWinBonus"`
}

// Game is one completed game in the ledger. Immutable after creation except
// for AISummary, which is populated in place once the recap arrives.
type Game struct {
	ID          GameID       `json:"id"`
	Date        time.Time    `json:"date"`
	Settings    GameSettings `json:"settings"`
	Hands       []HandResult `json:"hands"`
	FinalResult FinalResult  `json:"finalResult"`
	AISummary   *string      `json:"aiSummary"`
}

// InvolvesPlayer reports whether the game's settings reference the given player
func (g *Game) InvolvesPlayer(id PlayerID) bool {
	return g.Settings.Player1ID == id || g.Settings.Player2ID == id
}

// IsBetween reports whether the game was played between this unordered pair
func (g *Game) IsBetween(a, b PlayerID) bool {
	return (g.Settings.Player1ID == a && g.Settings.Player2ID == b) ||
		(g.Settings.Player1ID == b && g.Settings.Player2ID == a)
}
