package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"boxroom/internal/api"
	"boxroom/internal/draft"
	"boxroom/internal/model"
	"boxroom/internal/session"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case sessionCheckedMsg:
		m.checking = false
		state := m.machine.ApplyCheck(msg.me, msg.resp, msg.err)
		if state == session.StateAuthenticated {
			m.view = viewCustomers
			m.statusText = ""
			m.loading = true
			return m, m.loadListingsCmd()
		}
		m.view = viewLogin
		m.passwordInput.SetValue("")
		if msg.err != nil {
			m.statusText = msg.err.Error()
		} else if !msg.resp.OK {
			m.statusText = msg.resp.Pretty()
		} else {
			m.statusText = "Not signed in."
		}
		return m, nil

	case loginDoneMsg:
		if msg.err != nil {
			m.checking = false
			m.statusText = msg.err.Error()
			return m, nil
		}
		if !msg.resp.OK {
			// Rejected login: stay signed out and show the server's own words.
			m.checking = false
			m.machine.ApplyCheck(api.MeResult{}, msg.resp, nil)
			m.statusText = msg.resp.Pretty()
			return m, nil
		}
		if msg.result.Token != "" {
			m.st.SetToken(msg.result.Token)
		}
		m.st.SetLastUsername(msg.username)
		// A login response claiming success is not proof of a session;
		// re-verify against /api/me before showing the table.
		m.machine.BeginCheck()
		m.statusText = "Verifying session..."
		return m, m.checkSessionCmd()

	case listingsLoadedMsg:
		m.loading = false
		if !msg.ok {
			m.statusText = msg.detail
			return m, nil
		}
		m.customers = msg.customers
		m.origins = msg.origins
		m.draft = draft.New(m.customers)
		m.refreshCustomerItems()
		m.statusText = ""
		return m, nil

	case sendDoneMsg:
		m.sending = false
		if msg.err != nil {
			m.statusText = msg.err.Error()
			return m, nil
		}
		m.statusText = msg.resp.Pretty()
		if msg.resp.OK {
			// Accepted. Start over with a clean draft for the same listing.
			m.draft = draft.New(m.customers)
			m.refreshCustomerItems()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			// Any key closes help.
			m.showHelp = false
			return m, nil
		}
		switch m.view {
		case viewLogin:
			return m.updateLogin(msg)
		case viewCustomers:
			return m.updateCustomers(msg)
		}
	}

	return m, nil
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.loginFocus == loginFocusUsername {
			m.loginFocus = loginFocusPassword
			m.usernameInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.loginFocus = loginFocusUsername
			m.passwordInput.Blur()
			m.usernameInput.Focus()
		}
		return m, nil

	case "enter":
		if m.checking {
			return m, nil
		}
		username := strings.TrimSpace(m.usernameInput.Value())
		password := m.passwordInput.Value()
		if username == "" {
			m.statusText = "Username required."
			return m, nil
		}
		m.checking = true
		m.statusText = "Logging in..."
		return m, m.loginCmd(username, password)

	case "esc":
		m.statusText = ""
		return m, nil
	}

	var cmd tea.Cmd
	if m.loginFocus == loginFocusUsername {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateCustomers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Origin picker captures keys while open.
	if m.pickingFor != "" {
		return m.updateOriginPicker(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "m":
		if c, ok := m.selectedCustomer(); ok && m.draft != nil {
			m.draft.SetType(c.CustomerID, model.DispositionMail)
			m.refreshCustomerItems()
		}
		return m, nil

	case "n":
		if c, ok := m.selectedCustomer(); ok && m.draft != nil {
			m.draft.SetType(c.CustomerID, model.DispositionNone)
			m.refreshCustomerItems()
		}
		return m, nil

	case "p":
		c, ok := m.selectedCustomer()
		if !ok || m.draft == nil {
			return m, nil
		}
		m.draft.SetType(c.CustomerID, model.DispositionPackage)
		m.refreshCustomerItems()
		return m.openOriginPicker(c.CustomerID)

	case "o":
		// Re-pick the origin for an already-package row.
		c, ok := m.selectedCustomer()
		if !ok || m.draft == nil {
			return m, nil
		}
		if m.draft.Entry(c.CustomerID).Type != model.DispositionPackage {
			return m, nil
		}
		return m.openOriginPicker(c.CustomerID)

	case "s":
		if m.sending || m.loading || m.draft == nil {
			return m, nil
		}
		items, err := draft.Build(m.customers, m.draft)
		if err != nil {
			// Validation failures never reach the network.
			m.statusText = err.Error()
			return m, nil
		}
		m.sending = true
		m.statusText = "Sending..."
		return m, m.sendCmd(items)

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.statusText = "Reloading listings..."
		return m, m.loadListingsCmd()

	case "R":
		if m.checking {
			return m, nil
		}
		m.checking = true
		m.machine.BeginCheck()
		m.statusText = "Checking session..."
		return m, m.checkSessionCmd()

	case "L":
		// Logout is local: clear the token, drop the draft, back to login.
		m.machine.Logout()
		m.customers = nil
		m.origins = nil
		m.draft = nil
		m.customerList.SetItems(nil)
		m.view = viewLogin
		m.loginFocus = loginFocusUsername
		m.passwordInput.SetValue("")
		m.passwordInput.Blur()
		m.usernameInput.Focus()
		m.statusText = "Signed out."
		return m, nil
	}

	var cmd tea.Cmd
	m.customerList, cmd = m.customerList.Update(msg)
	return m, cmd
}

func (m appModel) openOriginPicker(customerID string) (tea.Model, tea.Cmd) {
	if len(m.origins) == 0 {
		m.statusText = "No origins loaded; reload listings first."
		return m, nil
	}
	m.pickingFor = customerID
	m.refreshOriginItems()
	return m, nil
}

func (m *appModel) refreshOriginItems() {
	items := make([]list.Item, 0, len(m.origins))
	for _, o := range m.origins {
		items = append(items, originItem(o))
	}
	m.originList.SetItems(items)
	m.originList.Select(0)
}

func (m appModel) updateOriginPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pickingFor = ""
		return m, nil
	case "enter":
		if it, ok := m.originList.SelectedItem().(originItem); ok && m.draft != nil {
			m.draft.SetOrigin(m.pickingFor, string(it))
			m.refreshCustomerItems()
		}
		m.pickingFor = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.originList, cmd = m.originList.Update(msg)
	return m, cmd
}
