package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"boxroom/internal/session"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func newLoginCmd(app *App) *cobra.Command {
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Authenticate against the backend and store the credential",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, client, machine, err := wire(app)
			if err != nil {
				return err
			}

			username := ""
			if len(args) == 1 {
				username = strings.TrimSpace(args[0])
			}
			if username == "" {
				username = st.LastUsername()
			}
			if username == "" {
				return errors.New("username required (boxroom login <username>)")
			}

			var password string
			if passwordStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				pw, err := readPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(pw)
			}

			state, resp, err := machine.Login(cmd.Context(), client, username, password)
			if err != nil {
				return err
			}
			if state != session.StateAuthenticated {
				// Surface the server's own words, then fail the command.
				_ = writeOut(cmd, app, resp)
				return errors.New("login failed")
			}
			return writeOut(cmd, app, map[string]any{
				"authenticated": true,
				"user":          machine.User(),
			})
		},
	}

	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin instead of prompting")
	return cmd
}
