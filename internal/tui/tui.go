package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"boxroom/internal/api"
	"boxroom/internal/session"
	"boxroom/internal/store"
)

func Run(st store.Store, client *api.Client, machine *session.Machine) error {
	m := newAppModel(st, client, machine)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
