// Package cli implements the planner command line client. Each command
// drives a session.Session against the remote API, the same flow the
// mobile screens use: commands are split into per-action files but share
// the root command's flags and dependency wiring.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmaia/planner/internal/client"
	"github.com/rmaia/planner/internal/localstore"
	"github.com/rmaia/planner/internal/session"
	"github.com/rmaia/planner/internal/validate"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	apiURL  string
	dataDir string
}

// New constructs the root planner command with all subcommands attached.
func New() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "planner",
		Short:         "Plan trips, invite guests, and build day-by-day itineraries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("PLANNER_API_URL", "http://localhost:8080"),
		"base URL of the planner API")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", os.Getenv("PLANNER_DATA_DIR"),
		"directory for local planner data (default ~/.planner/trips)")

	addCreate(cmd, opts)
	addShow(cmd, opts)
	addActivity(cmd, opts)
	addConfirm(cmd, opts)
	addRemove(cmd, opts)
	addTrips(cmd, opts)

	return cmd
}

// newSession wires a Session against the configured API and local store,
// returning the API client alongside for commands that read collaborators
// the session does not cache (the guest list). The confirmer prompts on
// the command's own streams so tests can script answers.
func (o *rootOptions) newSession(cmd *cobra.Command) (*session.Session, *client.Client, error) {
	known, err := localstore.Open(o.dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: open local store: %w", err)
	}

	api := client.New(o.apiURL)
	s := session.New(session.Deps{
		Trips:        api.Trips(),
		Activities:   api.Activities(),
		Participants: api.Participants(),
		Known:        known,
		Confirm:      &stdioConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout()},
		ValidEmail:   validate.Email,
	})
	return s, api, nil
}

// stdioConfirmer asks a yes/no question on the terminal. Anything other
// than "y" or "yes" counts as a no.
type stdioConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c *stdioConfirmer) Confirm(_ context.Context, title, message string) (bool, error) {
	fmt.Fprintf(c.out, "%s\n%s [y/N]: ", title, message)
	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
