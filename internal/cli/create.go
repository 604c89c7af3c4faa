package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmaia/planner/internal/daterange"
)

func addCreate(topLevel *cobra.Command, opts *rootOptions) {
	var (
		from    string
		to      string
		invites []string
	)

	cmd := &cobra.Command{
		Use:   "create <destination>",
		Short: "Create a trip and invite guests",
		Example: `
planner create "Florianópolis" --from 2024-03-10 --to 2024-03-15 --invite alice@example.com
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := daterange.ParseDay(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := daterange.ParseDay(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			s, _, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			s.SetDestination(strings.Join(args, " "))
			s.TapDay(start)
			s.TapDay(end)
			if err := s.NextStep(); err != nil {
				return err
			}
			for _, email := range invites {
				if err := s.AddGuest(email); err != nil {
					return fmt.Errorf("invite %q: %w", email, err)
				}
			}

			id, ok, err := s.CreateTrip(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Viagem não criada.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Viagem criada: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day of the trip (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day of the trip (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&invites, "invite", nil, "guest email to invite (repeatable)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	topLevel.AddCommand(cmd)
}
