package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func addActivity(topLevel *cobra.Command, opts *rootOptions) {
	var at string

	cmd := &cobra.Command{
		Use:   "activity <trip-id> <title>",
		Short: "Schedule an activity on a trip",
		Example: `
planner activity 8f9c... "City tour" --at 2024-03-12T14:00:00Z
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid trip id: %w", err)
			}
			occursAt, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}

			s, _, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			if err := s.LoadTrip(cmd.Context(), tripID, nil); err != nil {
				return err
			}

			activity, merged, err := s.CreateActivity(cmd.Context(), args[1], occursAt)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Atividade cadastrada: %s\n", activity.ID)
			if !merged {
				fmt.Fprintln(out, "A atividade não aparece no roteiro atual; recarregue a viagem.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "when the activity happens (RFC 3339)")
	_ = cmd.MarkFlagRequired("at")

	topLevel.AddCommand(cmd)
}
