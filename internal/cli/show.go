package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func addShow(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "show <trip-id>",
		Short: "Show a trip's header and day-by-day itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid trip id: %w", err)
			}

			s, api, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			if err := s.LoadTrip(cmd.Context(), tripID, nil); err != nil {
				return err
			}
			guests, err := api.Participants().ListByTrip(cmd.Context(), tripID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.When())
			for _, section := range s.Itinerary() {
				fmt.Fprintf(out, "\nDia %02d, %s\n", section.DayNumber, section.DayName)
				if len(section.Activities) == 0 {
					fmt.Fprintln(out, "  Nenhuma atividade cadastrada nessa data.")
					continue
				}
				for _, a := range section.Activities {
					marker := " "
					if a.IsPast {
						marker = "x"
					}
					fmt.Fprintf(out, "  [%s] %s %s\n", marker, a.DisplayHour, a.Title)
				}
			}

			fmt.Fprintln(out, "\nConvidados")
			if len(guests) == 0 {
				fmt.Fprintln(out, "  Nenhum convidado.")
				return nil
			}
			for _, g := range guests {
				status := "pendente"
				if g.IsConfirmed {
					status = "confirmado"
				}
				name := g.Name
				if name == "" {
					name = g.Email
				}
				fmt.Fprintf(out, "  %s <%s> (%s)\n", name, g.Email, status)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
