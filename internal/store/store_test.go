package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	if got := s.Token(); got != "" {
		t.Fatalf("expected empty token before set, got %q", got)
	}

	s.SetToken("tok-abc")
	if got := s.Token(); got != "tok-abc" {
		t.Fatalf("expected stored token, got %q", got)
	}

	s.SetToken("tok-def")
	if got := s.Token(); got != "tok-def" {
		t.Fatalf("expected overwritten token, got %q", got)
	}

	s.ClearToken()
	if got := s.Token(); got != "" {
		t.Fatalf("expected empty token after clear, got %q", got)
	}
}

func TestTokenSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s := Store{Dir: dir}
	s.SetToken("tok-persist")

	// A fresh handle on the same dir models a process restart.
	s2 := Store{Dir: dir}
	if got := s2.Token(); got != "tok-persist" {
		t.Fatalf("expected token to survive reopen, got %q", got)
	}
}

func TestLastUsername(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	if got := s.LastUsername(); got != "" {
		t.Fatalf("expected empty last username, got %q", got)
	}
	s.SetLastUsername("staff1")
	if got := s.LastUsername(); got != "staff1" {
		t.Fatalf("expected last username, got %q", got)
	}
}

func TestUnavailableStateDirDegradesToNoop(t *testing.T) {
	// A regular file in the dir position makes MkdirAll fail on every open.
	base := t.TempDir()
	blocked := filepath.Join(base, "state")
	if err := os.WriteFile(blocked, []byte("not a directory"), 0o600); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	s := Store{Dir: filepath.Join(blocked, "nested")}

	// None of these may panic or surface an error.
	s.SetToken("tok")
	s.ClearToken()
	s.SetLastUsername("staff1")
	if got := s.Token(); got != "" {
		t.Fatalf("expected empty token from unavailable store, got %q", got)
	}
	if got := s.LastUsername(); got != "" {
		t.Fatalf("expected empty username from unavailable store, got %q", got)
	}
}

func TestEmptyDirDegradesToNoop(t *testing.T) {
	s := Store{}
	s.SetToken("tok")
	if got := s.Token(); got != "" {
		t.Fatalf("expected empty token from zero-value store, got %q", got)
	}
}
