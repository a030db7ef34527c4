package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestValidDisposition(t *testing.T) {
	for _, s := range []string{"none", "mail", "package"} {
		if !ValidDisposition(s) {
			t.Fatalf("expected %q valid", s)
		}
	}
	for _, s := range []string{"", "parcel", "NONE"} {
		if ValidDisposition(s) {
			t.Fatalf("expected %q invalid", s)
		}
	}
}

func TestUserExpiry(t *testing.T) {
	var u User
	if !u.Expiry().IsZero() {
		t.Fatalf("expected zero expiry without exp claim")
	}

	exp := int64(1767225600) // 2026-01-01T00:00:00Z
	u = User{SubjectID: "staff1", ExpUnix: &exp}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := u.Expiry(); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUserDecodeFromWireShape(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"sub":"staff1","name":"Staff One","exp":1767225600}`), &u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.SubjectID != "staff1" || u.DisplayName != "Staff One" {
		t.Fatalf("unexpected decode: %+v", u)
	}
	if u.Expiry().IsZero() {
		t.Fatalf("expected expiry derived from exp claim")
	}
}

func TestSubmissionItemOmitsEmptyOrigin(t *testing.T) {
	b, err := json.Marshal(SubmissionItem{
		CustomerID: "c-1", BoxNumber: "101", Name: "Ada", Email: "ada@example.com",
		Type: DispositionMail,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"type":"mail"`; !strings.Contains(string(b), want) {
		t.Fatalf("expected %s in %s", want, b)
	}
	if strings.Contains(string(b), `"origin"`) {
		t.Fatalf("expected origin omitted for mail item, got %s", b)
	}
}
