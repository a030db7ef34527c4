package model

import "time"

// Disposition is the action to log for one customer in a bulk send.
type Disposition string

const (
	DispositionNone    Disposition = "none"
	DispositionMail    Disposition = "mail"
	DispositionPackage Disposition = "package"
)

// ValidDisposition reports whether s is one of the known disposition values.
func ValidDisposition(s string) bool {
	switch Disposition(s) {
	case DispositionNone, DispositionMail, DispositionPackage:
		return true
	}
	return false
}

// Customer is an immutable snapshot row from the customer listing. It is
// never mutated in place; a reload replaces the whole slice.
type Customer struct {
	CustomerID string `json:"customerId"`
	BoxNumber  string `json:"boxNumber"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// User describes the authenticated operator as reported by the session check.
type User struct {
	SubjectID   string `json:"sub"`
	DisplayName string `json:"name,omitempty"`

	// ExpUnix mirrors the wire `exp` claim (unix seconds, optional).
	ExpUnix *int64 `json:"exp,omitempty"`
}

// Expiry returns the session expiry derived from the `exp` claim, or a zero
// time when the server did not report one.
func (u User) Expiry() time.Time {
	if u.ExpUnix == nil {
		return time.Time{}
	}
	return time.Unix(*u.ExpUnix, 0).UTC()
}

// DraftEntry is the pending, unsaved disposition for one customer.
//
// Invariant: Origin may be non-empty only while Type is DispositionPackage.
// The draft model enforces this eagerly when the type changes.
type DraftEntry struct {
	Type   Disposition `json:"type"`
	Origin string      `json:"origin"`
}

// SubmissionItem is the read-only projection of a draft entry plus its
// customer snapshot, as posted to the send-bulk endpoint.
type SubmissionItem struct {
	CustomerID string      `json:"customerId"`
	BoxNumber  string      `json:"boxNumber"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Type       Disposition `json:"type"`
	Origin     string      `json:"origin,omitempty"`
}
