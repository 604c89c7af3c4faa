package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func addRemove(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "remove <trip-id>",
		Short: "Remove a trip after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid trip id: %w", err)
			}

			s, _, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			if err := s.LoadTrip(cmd.Context(), tripID, nil); err != nil {
				return err
			}

			removed, err := s.RemoveTrip(cmd.Context())
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Viagem mantida.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Viagem removida.")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
