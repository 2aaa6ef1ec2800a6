package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "squares",
		Short: "CLI tool for the Super Bowl Squares API",
		Long: `squares manages a Super Bowl Squares board through the server's JSON API.

Register participants, claim squares, draw the numbers, and move a board
between machines with export and import codes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SQUARES_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: SQUARES_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newParticipantCmd())
	rootCmd.AddCommand(newToggleCmd())
	rootCmd.AddCommand(newRandomizeCmd())
	rootCmd.AddCommand(newUnlockCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
