package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func addConfirm(topLevel *cobra.Command, opts *rootOptions) {
	var (
		participant string
		name        string
		email       string
	)

	cmd := &cobra.Command{
		Use:   "confirm <trip-id>",
		Short: "Confirm your attendance on a trip you were invited to",
		Example: `
planner confirm 8f9c... --participant 1d2e... --name "Alice" --email alice@example.com
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid trip id: %w", err)
			}
			participantID, err := uuid.Parse(participant)
			if err != nil {
				return fmt.Errorf("--participant: %w", err)
			}

			s, _, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			if err := s.LoadTrip(cmd.Context(), tripID, &participantID); err != nil {
				return err
			}
			if err := s.ConfirmAttendance(cmd.Context(), name, email); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Presença confirmada.")
			return nil
		},
	}

	cmd.Flags().StringVar(&participant, "participant", "", "your participant id from the invitation link")
	cmd.Flags().StringVar(&name, "name", "", "your full name")
	cmd.Flags().StringVar(&email, "email", "", "your email address")
	_ = cmd.MarkFlagRequired("participant")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	topLevel.AddCommand(cmd)
}
