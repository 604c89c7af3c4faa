package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaia/planner/internal/localstore"
)

func addTrips(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "List the trips saved on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			known, err := localstore.Open(opts.dataDir)
			if err != nil {
				return fmt.Errorf("cli: open local store: %w", err)
			}

			ids, err := known.List()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma viagem salva.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
