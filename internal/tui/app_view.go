package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"boxroom/internal/session"
)

const (
	maxContentW   = 110
	statusPaneH   = 6
	footerHeightH = 1
	headerHeightH = 2
)

func (m *appModel) resizeLists() {
	w := m.contentWidth()
	h := m.height - headerHeightH - footerHeightH - statusPaneH
	if h < 3 {
		h = 3
	}
	m.customerList.SetSize(w, h)
	m.originList.SetSize(w, h)
}

func (m appModel) contentWidth() int {
	w := m.width
	if w > maxContentW {
		w = maxContentW
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch {
	case m.showHelp:
		b.WriteString(m.renderHelp())
	case m.view == viewLogin:
		b.WriteString(m.renderLogin())
	case m.pickingFor != "":
		b.WriteString(m.renderOriginPicker())
	default:
		b.WriteString(m.renderCustomers())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusPane())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return normalizePane(b.String(), m.width, m.height)
}

func (m appModel) renderHeader() string {
	title := headerStyle.Render("boxroom")
	backend := mutedStyle.Render(m.client.Base())

	var pill string
	switch {
	case m.checking || m.machine.State() == session.StateChecking:
		pill = pillBusyStyle.Render("checking…")
	case m.machine.State() == session.StateAuthenticated:
		who := "operator"
		if u := m.machine.User(); u != nil {
			who = u.SubjectID
			if u.DisplayName != "" {
				who = u.DisplayName
			}
		}
		pill = pillAuthedStyle.Render("signed in: " + who)
	default:
		pill = pillAnonStyle.Render("signed out")
	}

	left := title + "  " + backend
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(pill)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + pill + "\n"
}

func (m appModel) renderLogin() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Sign in") + "\n\n")
	b.WriteString("  " + mutedStyle.Render("Username") + "\n")
	b.WriteString("  " + m.usernameInput.View() + "\n\n")
	b.WriteString("  " + mutedStyle.Render("Password") + "\n")
	b.WriteString("  " + m.passwordInput.View() + "\n\n")
	if m.checking {
		b.WriteString("  " + mutedStyle.Render("Logging in…") + "\n")
	} else {
		b.WriteString("  " + mutedStyle.Render("enter: sign in · tab: switch field · ctrl+c: quit") + "\n")
	}
	return b.String()
}

func (m appModel) renderCustomers() string {
	if m.loading {
		return "\n  " + mutedStyle.Render("Loading customers and origins…") + "\n"
	}
	if len(m.customers) == 0 {
		return "\n  " + mutedStyle.Render("No customers loaded. Press r to reload.") + "\n"
	}

	var b strings.Builder
	head := fmt.Sprintf("%-6s %-24s %-28s %s", "BOX", "NAME", "EMAIL", "DISPOSITION")
	b.WriteString("  " + mutedStyle.Render(head) + "\n")
	b.WriteString(m.customerList.View())
	return b.String()
}

func (m appModel) renderOriginPicker() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Package origin") + "\n")
	b.WriteString(mutedStyle.Render("enter: choose · esc: cancel") + "\n")
	b.WriteString(m.originList.View())
	return b.String()
}

func (m appModel) renderStatusPane() string {
	if m.statusText == "" {
		return ""
	}
	lines := strings.Split(m.statusText, "\n")
	if len(lines) > statusPaneH {
		lines = lines[:statusPaneH]
	}
	return statusPaneStyle.Render(strings.Join(lines, "\n"))
}

func (m appModel) renderFooter() string {
	if m.view == viewLogin {
		return ""
	}
	keys := "m mail · p package · n none · o origin · s send · r reload · R recheck · L logout · ? help · q quit"
	if m.sending {
		keys = "sending… (controls disabled)"
	}
	return mutedStyle.Render(keys)
}
