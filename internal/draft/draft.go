// Package draft holds the in-memory disposition choices for one loaded
// customer listing and derives the validated submission batch from them.
package draft

import "boxroom/internal/model"

// Model maps customerId -> pending disposition for the current listing.
// It is created whole at listing-load time and replaced whole on reload;
// entries are never removed individually.
//
// Model is not safe for concurrent use. The TUI mutates it only from its
// update loop and the CLI only from one goroutine, which is all the
// guarding it needs.
type Model struct {
	entries map[string]model.DraftEntry
	order   []string
}

// New seeds one entry per customer, in listing order, each {none, ""}.
func New(customers []model.Customer) *Model {
	m := &Model{
		entries: make(map[string]model.DraftEntry, len(customers)),
		order:   make([]string, 0, len(customers)),
	}
	for _, c := range customers {
		m.entries[c.CustomerID] = model.DraftEntry{Type: model.DispositionNone}
		m.order = append(m.order, c.CustomerID)
	}
	return m
}

// Len returns the number of entries (one per customer in the listing).
func (m *Model) Len() int { return len(m.order) }

// Entry returns the current draft entry for a customer. Unknown ids report
// a zero {none, ""} entry.
func (m *Model) Entry(customerID string) model.DraftEntry {
	e, ok := m.entries[customerID]
	if !ok {
		return model.DraftEntry{Type: model.DispositionNone}
	}
	return e
}

// SetType updates a customer's disposition. Switching away from package
// clears the origin immediately so a stale origin can never survive a type
// change. Unknown customer ids are ignored.
func (m *Model) SetType(customerID string, t model.Disposition) {
	e, ok := m.entries[customerID]
	if !ok {
		return
	}
	e.Type = t
	if t != model.DispositionPackage {
		e.Origin = ""
	}
	m.entries[customerID] = e
}

// SetOrigin updates a customer's package origin. It only takes effect while
// the entry's type is package; for any other type the write is a no-op
// (such an entry would be excluded or rejected at submission anyway, and
// accepting the write would break the type/origin invariant).
func (m *Model) SetOrigin(customerID, origin string) {
	e, ok := m.entries[customerID]
	if !ok || e.Type != model.DispositionPackage {
		return
	}
	e.Origin = origin
	m.entries[customerID] = e
}

// Snapshot returns the entries in listing order for read-only inspection.
func (m *Model) Snapshot() []model.DraftEntry {
	out := make([]model.DraftEntry, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entries[id])
	}
	return out
}
