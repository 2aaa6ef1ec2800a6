package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up and saving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			if strict && result.SaveStatus == "failed" {
				return fmt.Errorf("the last save failed; changes since then are not durable")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if the last save failed")
	return cmd
}
