package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newCustomersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "Print the customer listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := wire(app)
			if err != nil {
				return err
			}
			customers, resp, err := client.Customers(cmd.Context())
			if err != nil {
				return err
			}
			if !resp.OK {
				_ = writeOut(cmd, app, resp)
				return errors.New("customer listing failed")
			}
			return writeOut(cmd, app, customers)
		},
	}
}

func newOriginsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "origins",
		Short: "Print the valid package-origin values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := wire(app)
			if err != nil {
				return err
			}
			origins, resp, err := client.Origins(cmd.Context())
			if err != nil {
				return err
			}
			if !resp.OK {
				_ = writeOut(cmd, app, resp)
				return errors.New("origin listing failed")
			}
			return writeOut(cmd, app, origins)
		},
	}
}
