package cli

import (
	"github.com/spf13/cobra"
)

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, machine, err := wire(app)
			if err != nil {
				return err
			}
			// Client-authoritative: no server round trip.
			machine.Logout()
			return writeOut(cmd, app, map[string]any{"loggedOut": true})
		},
	}
}
