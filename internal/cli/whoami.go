package cli

import (
	"github.com/spf13/cobra"

	"boxroom/internal/session"
)

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Run a session check and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, machine, err := wire(app)
			if err != nil {
				return err
			}
			state, resp, err := machine.Check(cmd.Context(), client)
			if err != nil {
				return err
			}
			if state != session.StateAuthenticated {
				return writeOut(cmd, app, resp)
			}
			return writeOut(cmd, app, map[string]any{
				"authenticated": true,
				"user":          machine.User(),
			})
		},
	}
}
