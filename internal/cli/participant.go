package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newParticipantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "participant",
		Aliases: []string{"p"},
		Short:   "Participant commands",
	}

	cmd.AddCommand(newParticipantAddCmd())
	cmd.AddCommand(newParticipantRemoveCmd())
	cmd.AddCommand(newParticipantSelectCmd())

	return cmd
}

func newParticipantAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <first> <last>",
		Short: "Register a participant and make them active",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"first_name": args[0], "last_name": args[1]}
			var result AddParticipantResult

			if err := client.Post(cmd.Context(), "/api/v1/participants", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newParticipantRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a participant and free their squares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Delete(cmd.Context(), "/api/v1/participants/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newParticipantSelectCmd() *cobra.Command {
	var clearSelection bool

	cmd := &cobra.Command{
		Use:   "select [id]",
		Short: "Choose who new squares are claimed for",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			switch {
			case clearSelection:
			case len(args) == 1:
				id = args[0]
			default:
				return fmt.Errorf("give a participant id or --clear")
			}

			req := map[string]string{"participant_id": id}
			var result Board
			if err := client.Put(cmd.Context(), "/api/v1/active", req, &result); err != nil {
				return err
			}

			if result.ActiveParticipantID == nil {
				output(cmd).PrintMessage("No active participant")
			} else {
				output(cmd).PrintMessage(fmt.Sprintf("Active: %s", *result.ActiveParticipantID))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearSelection, "clear", false, "Clear the selection")
	return cmd
}
