package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game ledger commands",
	}

	cmd.AddCommand(newGameRecordCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())

	return cmd
}

func newGameRecordCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a completed game",
		Long: `Record a completed game from a JSON file.

The file must contain the full recording payload: settings, the per-hand
results, and the settled final result. Pass "-" to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			var data []byte
			var err error
			if file == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}

			var body map[string]any
			if err := json.Unmarshal(data, &body); err != nil {
				return fmt.Errorf("failed to parse payload: %w", err)
			}

			var result Game
			if err := client.Post("/games", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the recording payload JSON (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if len(result) == 0 {
				out.PrintMessage("No games recorded")
				return nil
			}
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get("/games/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
