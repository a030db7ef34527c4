package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"boxroom/internal/api"
	"boxroom/internal/draft"
	"boxroom/internal/model"
	"boxroom/internal/session"
	"boxroom/internal/store"
)

type appModel struct {
	st      store.Store
	client  *api.Client
	machine *session.Machine

	width  int
	height int

	view view

	// Login form.
	usernameInput textinput.Model
	passwordInput textinput.Model
	loginFocus    loginFocus

	// Loaded listing + draft state. Both are replaced whole on reload.
	customers []model.Customer
	origins   []string
	draft     *draft.Model

	customerList list.Model

	// Origin picker state. While pickingFor is set, the origin list is shown
	// and captures navigation keys.
	originList list.Model
	pickingFor string

	// In-flight flags. Each one disables the action that started it until
	// the reply message lands, so a double-press can't duplicate a call.
	checking bool
	loading  bool
	sending  bool

	showHelp bool

	// statusText mirrors the most recent normalized response or local error
	// for the operator, verbatim where the server said something.
	statusText string
}

func newAppModel(st store.Store, client *api.Client, machine *session.Machine) appModel {
	m := appModel{
		st:      st,
		client:  client,
		machine: machine,
		view:    viewLogin,
	}

	m.usernameInput = textinput.New()
	m.usernameInput.Placeholder = "username"
	m.usernameInput.CharLimit = 128
	m.usernameInput.SetValue(st.LastUsername())
	m.usernameInput.Focus()

	m.passwordInput = textinput.New()
	m.passwordInput.Placeholder = "password"
	m.passwordInput.CharLimit = 128
	m.passwordInput.EchoMode = textinput.EchoPassword

	m.customerList = newList([]list.Item{}, newCustomerRowDelegate())
	m.originList = newList([]list.Item{}, newOriginRowDelegate())

	return m
}

// Init kicks off the boot-time session check, the same way the web page
// checked /api/me on load.
func (m appModel) Init() tea.Cmd {
	m.machine.BeginCheck()
	return m.checkSessionCmd()
}

func (m appModel) checkSessionCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		me, resp, err := client.Me(context.Background())
		return sessionCheckedMsg{me: me, resp: resp, err: err}
	}
}

func (m appModel) loginCmd(username, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, resp, err := client.Login(context.Background(), username, password)
		return loginDoneMsg{username: username, result: result, resp: resp, err: err}
	}
}

// loadListingsCmd fetches the customer and origin listings together. Both
// must land before the table is populated; either failure aborts the load
// without applying the other half.
func (m appModel) loadListingsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var (
			wg        sync.WaitGroup
			customers api.CustomersResult
			origins   api.OriginsResult
			custResp  api.Response
			origResp  api.Response
			custErr   error
			origErr   error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			customers, custResp, custErr = client.Customers(context.Background())
		}()
		go func() {
			defer wg.Done()
			origins, origResp, origErr = client.Origins(context.Background())
		}()
		wg.Wait()

		if custErr != nil {
			return listingsLoadedMsg{detail: "customer listing: " + custErr.Error()}
		}
		if !custResp.OK {
			return listingsLoadedMsg{detail: "customer listing failed:\n" + custResp.Pretty()}
		}
		if origErr != nil {
			return listingsLoadedMsg{detail: "origin listing: " + origErr.Error()}
		}
		if !origResp.OK {
			return listingsLoadedMsg{detail: "origin listing failed:\n" + origResp.Pretty()}
		}
		return listingsLoadedMsg{
			customers: customers.Customers,
			origins:   origins.Origins,
			ok:        true,
		}
	}
}

func (m appModel) sendCmd(items []model.SubmissionItem) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.SendBulk(context.Background(), items)
		return sendDoneMsg{count: len(items), resp: resp, err: err}
	}
}

// selectedCustomer returns the customer under the cursor, if any.
func (m appModel) selectedCustomer() (model.Customer, bool) {
	it, ok := m.customerList.SelectedItem().(customerItem)
	if !ok {
		return model.Customer{}, false
	}
	return it.customer, true
}

// refreshCustomerItems rebuilds the list items from the current listing and
// draft so disposition changes show up immediately.
func (m *appModel) refreshCustomerItems() {
	items := make([]list.Item, 0, len(m.customers))
	for _, c := range m.customers {
		items = append(items, customerItem{customer: c, entry: m.draft.Entry(c.CustomerID)})
	}
	m.customerList.SetItems(items)
}
