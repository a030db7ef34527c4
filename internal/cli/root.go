// Package cli wires the cobra command tree. Running boxroom with no
// subcommand starts the interactive TUI; subcommands cover the same
// operations in a scriptable JSON form.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"boxroom/internal/api"
	"boxroom/internal/config"
	"boxroom/internal/format"
	"boxroom/internal/session"
	"boxroom/internal/store"
	"boxroom/internal/tui"
)

type App struct {
	Backend    string
	StateDir   string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "boxroom",
		Short:        "Mailroom disposition console (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  boxroom

  # Scriptable commands
  boxroom login staff1
  boxroom customers --pretty
  boxroom whoami`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("BOXROOM_BACKEND", ""), "Backend base URL (overrides BOXROOM_BACKEND)")
	cmd.PersistentFlags().StringVar(&app.StateDir, "state-dir", envOr("BOXROOM_STATE_DIR", ""), "Local state dir (default: ~/.boxroom)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newCustomersCmd(app))
	cmd.AddCommand(newOriginsCmd(app))

	return cmd
}

// wire resolves config + flag overrides into the store, API client, and
// session machine shared by every command.
func wire(app *App) (store.Store, *api.Client, *session.Machine, error) {
	cfg, err := config.Load()
	if err != nil {
		return store.Store{}, nil, nil, err
	}
	if app.Backend != "" {
		cfg.Backend = app.Backend
	}
	if app.StateDir != "" {
		cfg.StateDir = app.StateDir
	}

	st := store.Store{Dir: cfg.StateDir}
	client := api.New(cfg.Backend, st)
	client.DebugLogPath = cfg.DebugLog
	return st, client, session.New(st), nil
}

func runTUI(app *App) error {
	st, client, machine, err := wire(app)
	if err != nil {
		return err
	}
	return tui.Run(st, client, machine)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}
