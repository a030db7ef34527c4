package tui

import (
	"boxroom/internal/api"
	"boxroom/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewCustomers
)

type loginFocus int

const (
	loginFocusUsername loginFocus = iota
	loginFocusPassword
)

// sessionCheckedMsg carries one /api/me round trip back into the update
// loop. err is non-nil only for transport failures.
type sessionCheckedMsg struct {
	me   api.MeResult
	resp api.Response
	err  error
}

// loginDoneMsg carries one /api/login round trip. The machine is only
// updated from the loop, never from the command goroutine.
type loginDoneMsg struct {
	username string
	result   api.LoginResult
	resp     api.Response
	err      error
}

// listingsLoadedMsg carries the combined customer + origin load. Either
// half failing aborts the whole load; ok is false and neither slice is
// applied.
type listingsLoadedMsg struct {
	customers []model.Customer
	origins   []string
	ok        bool
	detail    string
}

// sendDoneMsg carries one /api/send-bulk round trip.
type sendDoneMsg struct {
	count int
	resp  api.Response
	err   error
}
