// Package stats derives head-to-head statistics from a ledger snapshot.
// Everything here is pure: no storage, no clock, no I/O.
package stats

import (
	"github.com/mcoot/rummyledger/internal/model"
)

// Bundle is the head-to-head context derived for one just-recorded game.
// History holds every game between the pair in insertion order, with the
// current game as its final entry, so the win counts include the current
// game's outcome.
type Bundle struct {
	History     []model.Game
	Player1Wins int
	Player2Wins int
	Ties        int
	Shutout     bool
	WinStreak   int
	Margin      int
}

// Derive computes the statistics bundle for the game whose final result is
// given, from a ledger snapshot taken after that game was appended.
//
// The streak counts the current game as entry one, then walks the games
// immediately preceding it backwards while the same player kept winning.
// A tied current game reports a streak of zero.
func Derive(games []model.Game, player1, player2 model.PlayerID, final *model.FinalResult) Bundle {
	history := make([]model.Game, 0)
	for _, g := range games {
		if g.IsBetween(player1, player2) {
			history = append(history, g)
		}
	}

	bundle := Bundle{History: history}
	for _, g := range history {
		winner := g.FinalResult.WinnerID
		switch {
		case winner == nil:
			bundle.Ties++
		case *winner == player1:
			bundle.Player1Wins++
		case *winner == player2:
			bundle.Player2Wins++
		}
	}

	bundle.Shutout = final.Player1Cumulative == 0 || final.Player2Cumulative == 0
	bundle.Margin = abs(final.Player1FinalScore - final.Player2FinalScore)

	if final.WinnerID != nil {
		streak := 1
		for i := len(history) - 2; i >= 0; i-- {
			winner := history[i].FinalResult.WinnerID
			if winner == nil || *winner != *final.WinnerID {
				break
			}
			streak++
		}
		bundle.WinStreak = streak
	}

	return bundle
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
