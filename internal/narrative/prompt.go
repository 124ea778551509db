package narrative

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the recap prompt for a recorded game
func BuildPrompt(req Request) string {
	final := req.FinalResult
	shutout := "No"
	if req.Stats.Shutout {
		shutout = "Yes"
	}

	// Prior-game context excludes the current game, which history includes
	// as its final entry
	priorGames := len(req.Stats.History) - 1
	if priorGames < 0 {
		priorGames = 0
	}
	p1PriorWins := req.Stats.Player1Wins
	p2PriorWins := req.Stats.Player2Wins
	if final.WinnerID != nil {
		switch *final.WinnerID {
		case final.Player1ID:
			p1PriorWins--
		case final.Player2ID:
			p2PriorWins--
		}
	}

	var b strings.Builder
	b.WriteString("You are an insightful and witty commentator for Gin Rummy games.\n")
	b.WriteString("Game Details:\n")
	fmt.Fprintf(&b, "Player 1: %s\n", req.Player1Name)
	fmt.Fprintf(&b, "Player 2: %s\n", req.Player2Name)
	fmt.Fprintf(&b, "Winner of this game: %s\n", final.WinnerName)
	fmt.Fprintf(&b, "Final Score for %s: %d (Raw points: %d, Hands won: %d)\n",
		req.Player1Name, final.Player1FinalScore, final.Player1Cumulative, final.Player1HandsWon)
	fmt.Fprintf(&b, "Final Score for %s: %d (Raw points: %d, Hands won: %d)\n",
		req.Player2Name, final.Player2FinalScore, final.Player2Cumulative, final.Player2HandsWon)
	fmt.Fprintf(&b, "Number of Hands Played in this game: %d\n", req.HandCount)
	fmt.Fprintf(&b, "Target Score for game completion: %d\n", req.TargetScore)
	fmt.Fprintf(&b, "Bonus Points Awarded Per Hand Won: %d\n", req.HandWinBonus)
	fmt.Fprintf(&b, "Was this game a shutout (one player scored 0 raw points before bonus)? %s.\n", shutout)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Historical Context between %s and %s (before this current game):\n",
		req.Player1Name, req.Player2Name)
	fmt.Fprintf(&b, "Total past games played against each other: %d\n", priorGames)
	fmt.Fprintf(&b, "%s's previous wins against %s: %d\n", req.Player1Name, req.Player2Name, p1PriorWins)
	fmt.Fprintf(&b, "%s's previous wins against %s: %d\n", req.Player2Name, req.Player1Name, p2PriorWins)
	b.WriteString("\n")
	if final.WinnerID != nil {
		fmt.Fprintf(&b, "Win Streak Information (including this current game):\n")
		fmt.Fprintf(&b, "%s is now on a win streak of %d game(s) against their opponent.\n",
			final.WinnerName, req.Stats.WinStreak)
	} else {
		b.WriteString("This game ended in a tie, so no win streak applies.\n")
	}
	b.WriteString("\n")
	b.WriteString("Instructions for your summary:\n")
	b.WriteString("1. Provide a brief, engaging summary of THIS game (around 2-4 sentences).\n")
	b.WriteString("2. Comment on the game's length using the number of hands played ")
	b.WriteString("(under 5 hands is very quick, 5-10 is average, over 10 is long).\n")
	b.WriteString("3. If the winner has a win streak of 2 or more games, mention it.\n")
	b.WriteString("4. If this game was a shutout, definitely highlight this significant event.\n")
	b.WriteString("5. Note any other remarkable aspects, such as a dominant performance ")
	b.WriteString("(large score difference) or a very close match.\n")
	b.WriteString("6. Keep the tone light and engaging, with some celebration for the winner. Avoid being bland.\n")
	b.WriteString("7. Output ONLY plain text. Do NOT use markdown, bolding, italics, or any special formatting.\n")
	b.WriteString("8. Focus on the narrative and insights from THIS game, using historical context subtly if relevant.\n")

	return b.String()
}
