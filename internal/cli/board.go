package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Get(cmd.Context(), "/api/v1/board", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <row> <col>",
		Short: "Claim a square for the active participant, or clear it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row: %s", args[0])
			}
			col, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid col: %s", args[1])
			}

			var result Board
			if err := client.Post(cmd.Context(), fmt.Sprintf("/api/v1/cells/%d/%d/toggle", row, col), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRandomizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "randomize",
		Short: "Draw the row and column numbers and lock the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Post(cmd.Context(), "/api/v1/randomize", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

// newConfirmedCmd builds a command for a destructive board action that needs --yes
func newConfirmedCmd(use, short, warning, path string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("%s; re-run with --yes to confirm", warning)
			}

			var result Board
			if err := client.Post(cmd.Context(), path, nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the action")
	return cmd
}

func newUnlockCmd() *cobra.Command {
	return newConfirmedCmd("unlock", "Discard the drawn numbers and unlock the board",
		"unlocking discards the drawn numbers", "/api/v1/unlock")
}

func newResetCmd() *cobra.Command {
	return newConfirmedCmd("reset", "Erase the whole board",
		"reset erases every participant and square and cannot be undone", "/api/v1/reset")
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "view <grid|settings>",
		Short:     "Switch the organizer's view",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"grid", "settings"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"view": args[0]}
			var result Board

			if err := client.Put(cmd.Context(), "/api/v1/view", req, &result); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("View: %s", result.View))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print a code that recreates this board elsewhere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TransferCode

			if err := client.Get(cmd.Context(), "/api/v1/transfer", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <code>",
		Short: "Replace the board with one from an export code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"code": args[0]}
			var result Board

			if err := client.Post(cmd.Context(), "/api/v1/transfer", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Ask the analyst about the drawn numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AnalysisResult

			if err := client.Post(cmd.Context(), "/api/v1/analysis", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
