// Package session tracks whether the operator is authenticated and drives
// the transitions between the login and listing screens.
//
// The machine never trusts a locally stored token: authentication exists
// only after a successful server-side session check. A failed or negative
// check leaves the stored token alone — only an explicit logout clears it.
package session

import (
	"context"

	"boxroom/internal/api"
	"boxroom/internal/model"
)

// State is the machine's current position. There is no terminal state; the
// machine cycles between Authenticated and Unauthenticated for the life of
// the process.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "invalid"
}

// CredentialStore is the slice of the local store the machine needs.
type CredentialStore interface {
	Token() string
	SetToken(token string)
	ClearToken()
	SetLastUsername(name string)
}

// Machine holds the session state. It is not safe for concurrent use; the
// TUI drives it from its update loop and the CLI from a single goroutine.
type Machine struct {
	state State
	user  *model.User
	creds CredentialStore
}

// New starts a machine in StateUnknown.
func New(creds CredentialStore) *Machine {
	return &Machine{state: StateUnknown, creds: creds}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// User returns the operator reported by the last successful check, or nil.
func (m *Machine) User() *model.User { return m.user }

// BeginCheck marks a session check as in flight. Valid from any state:
// boot, after a login attempt, or a manual refresh.
func (m *Machine) BeginCheck() {
	m.state = StateChecking
}

// ApplyCheck folds one session-check outcome into the machine. A transport
// failure, a non-OK response, or authenticated:false all land in
// Unauthenticated; none of them touch the stored token.
func (m *Machine) ApplyCheck(me api.MeResult, resp api.Response, err error) State {
	if err != nil || !resp.OK || !me.Authenticated {
		m.state = StateUnauthenticated
		m.user = nil
		return m.state
	}
	m.state = StateAuthenticated
	m.user = me.User
	return m.state
}

// Logout clears the credential and transitions to Unauthenticated without a
// server round trip. Once the token is discarded the client is
// authoritative about being logged out.
func (m *Machine) Logout() {
	m.creds.ClearToken()
	m.user = nil
	m.state = StateUnauthenticated
}

// Check runs one full session check against the backend and folds the
// result in. Convenience for synchronous callers.
func (m *Machine) Check(ctx context.Context, c *api.Client) (State, api.Response, error) {
	m.BeginCheck()
	me, resp, err := c.Me(ctx)
	return m.ApplyCheck(me, resp, err), resp, err
}

// Login submits credentials and, on success, stores any returned token and
// immediately re-runs the session check — a login response claiming success
// is not taken at its word. On failure the machine stays Unauthenticated
// and the response carries the server's payload for the operator.
//
// The returned Response is the login response when login failed, the check
// response otherwise.
func (m *Machine) Login(ctx context.Context, c *api.Client, username, password string) (State, api.Response, error) {
	res, resp, err := c.Login(ctx, username, password)
	if err != nil || !resp.OK {
		m.state = StateUnauthenticated
		m.user = nil
		return m.state, resp, err
	}
	if res.Token != "" {
		m.creds.SetToken(res.Token)
	}
	m.creds.SetLastUsername(username)
	return m.Check(ctx, c)
}
