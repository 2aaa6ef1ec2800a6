package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team name commands",
	}

	cmd.AddCommand(newTeamSetCmd())
	cmd.AddCommand(newTeamPresetsCmd())

	return cmd
}

func newTeamSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <team1|team2> <name>",
		Short:     "Rename the row (team1) or column (team2) team",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"team1", "team2"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[1]}
			var result Board

			if err := client.Put(cmd.Context(), "/api/v1/teams/"+args[0], req, &result); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("%s (rows) vs %s (columns)", result.Team1, result.Team2))
			return nil
		},
	}
}

func newTeamPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List suggested team names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []TeamPreset

			if err := client.Get(cmd.Context(), "/api/v1/teams/presets", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
