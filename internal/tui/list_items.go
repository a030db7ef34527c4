package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"boxroom/internal/model"
)

// customerItem is one table row: the immutable customer snapshot plus the
// current draft entry for it.
type customerItem struct {
	customer model.Customer
	entry    model.DraftEntry
}

func (i customerItem) FilterValue() string {
	return i.customer.Name + " " + i.customer.BoxNumber + " " + i.customer.Email
}

func (i customerItem) Title() string {
	disp := renderDisposition(i.entry)
	return fmt.Sprintf("%-6s %-24s %-28s %s",
		i.customer.BoxNumber,
		truncate(i.customer.Name, 24),
		truncate(i.customer.Email, 28),
		disp,
	)
}

func renderDisposition(e model.DraftEntry) string {
	switch e.Type {
	case model.DispositionMail:
		return dispMailStyle.Render("mail")
	case model.DispositionPackage:
		if e.Origin == "" {
			return dispPackageStyle.Render("package") + " " + dispMissingStyle.Render("(origin?)")
		}
		return dispPackageStyle.Render("package") + " " + dispOriginStyle.Render("from "+e.Origin)
	}
	return dispNoneStyle.Render("—")
}

func truncate(s string, w int) string {
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

// originItem is one entry in the origin picker.
type originItem string

func (i originItem) FilterValue() string { return string(i) }
func (i originItem) Title() string       { return string(i) }

// rowDelegate renders one-line items with a full-width selection bar,
// ANSI-aware so styled segments don't break the padding math.
type rowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newCustomerRowDelegate() rowDelegate {
	return rowDelegate{
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
	}
}

func newOriginRowDelegate() rowDelegate {
	return rowDelegate{
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
	}
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}

	line := txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}

func newList(items []list.Item, delegate list.ItemDelegate) list.Model {
	l := list.New(items, delegate, 0, 0)
	// We render our own header and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("ctrl+c")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
