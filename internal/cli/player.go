package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerRenameCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerGamesCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			var result Player

			if err := client.Post("/users", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if len(result) == 0 {
				out.PrintMessage("No players registered")
				return nil
			}
			out.Print(result)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a player's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/users/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRenameCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <player-id>",
		Short: "Rename a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			var result Player

			if err := client.Put("/users/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Delete a player's profile",
		Long: `Delete a player's profile.

Recorded games involving the player are not removed; the ledger keeps
history even when a profile is gone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/users/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player deleted")
			return nil
		},
	}
}

func newPlayerGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games <player-id>",
		Short: "List games involving a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/users/"+args[0]+"/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if len(result) == 0 {
				out.PrintMessage("No games recorded for this player")
				return nil
			}
			out.Print(result)
			return nil
		},
	}
}
