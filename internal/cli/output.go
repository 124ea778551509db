package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printPlayer(v[i])
		}
	case Game:
		o.printGame(v)
	case []Game:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printGame(v[i])
		}
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	GamesPlayedIDs []string `json:"gamesPlayedIds"`
	GamesWon       int      `json:"gamesWon"`
	GamesLost      int      `json:"gamesLost"`
}

// GameSettings response type
type GameSettings struct {
	Player1ID   string `json:"player1Id"`
	Player2ID   string `json:"player2Id"`
	Player1Name string `json:"player1Name"`
	Player2Name string `json:"player2Name"`
}

// HandResult response type
type HandResult struct {
	ID           string  `json:"id"`
	Player1Score int     `json:"player1Score"`
	Player2Score int     `json:"player2Score"`
	Winner       *string `json:"winner"`
}

// FinalResult response type
type FinalResult struct {
	Player1FinalScore int     `json:"player1FinalScore"`
	Player2FinalScore int     `json:"player2FinalScore"`
	WinnerName        string  `json:"winnerName"`
	WinnerID          *string `json:"winnerId"`
	Player1Name       string  `json:"player1Name"`
	Player2Name       string  `json:"player2Name"`
	Player1ID         string  `json:"player1Id"`
	Player2ID         string  `json:"player2Id"`
	Player1Cumulative int     `json:"player1Cumulative"`
	Player2Cumulative int     `json:"player2Cumulative"`
	Player1HandsWon   int     `json:"player1HandsWon"`
	Player2HandsWon   int     `json:"player2HandsWon"`
	HandWinBonus      int     `json:"handWinBonus"`
}

// Game response type
type Game struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	Settings    GameSettings `json:"settings"`
	Hands       []HandResult `json:"hands"`
	FinalResult FinalResult  `json:"finalResult"`
	AISummary   *string      `json:"aiSummary"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Record: %d won, %d lost, %d played\n", p.GamesWon, p.GamesLost, len(p.GamesPlayedIDs))
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Date: %s\n", g.Date.Format(time.RFC3339))
	fmt.Printf("Players: %s vs %s\n", g.Settings.Player1Name, g.Settings.Player2Name)

	fmt.Printf("Hands (%d):\n", len(g.Hands))
	for i, h := range g.Hands {
		winnerStr := "tie"
		if h.Winner != nil {
			winnerStr = *h.Winner
		}
		fmt.Printf("  %d. %d - %d (%s)\n", i+1, h.Player1Score, h.Player2Score, winnerStr)
	}

	fr := g.FinalResult
	fmt.Printf("Final: %s %d - %s %d\n",
		fr.Player1Name, fr.Player1FinalScore, fr.Player2Name, fr.Player2FinalScore)
	if fr.WinnerID != nil {
		fmt.Printf("Winner: %s\n", fr.WinnerName)
	} else {
		fmt.Println("Winner: none (tie)")
	}

	if g.AISummary != nil {
		fmt.Printf("Recap: %s\n", *g.AISummary)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
