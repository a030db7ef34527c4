package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the unset makes envDefault apply.
	for _, k := range []string{"BOXROOM_BACKEND", "BOXROOM_STATE_DIR", "BOXROOM_DEBUG_LOG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(cfg.Backend, "https://") {
		t.Fatalf("expected default backend URL, got %q", cfg.Backend)
	}
	if !strings.HasSuffix(cfg.StateDir, ".boxroom") {
		t.Fatalf("expected ~/.boxroom state dir, got %q", cfg.StateDir)
	}
	if cfg.DebugLog != "" {
		t.Fatalf("expected empty debug log by default, got %q", cfg.DebugLog)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BOXROOM_BACKEND", "http://localhost:8787")
	t.Setenv("BOXROOM_STATE_DIR", "/tmp/boxroom-test-state")
	t.Setenv("BOXROOM_DEBUG_LOG", "/tmp/boxroom.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != "http://localhost:8787" {
		t.Fatalf("expected env backend, got %q", cfg.Backend)
	}
	if cfg.StateDir != "/tmp/boxroom-test-state" {
		t.Fatalf("expected env state dir, got %q", cfg.StateDir)
	}
	if cfg.DebugLog != "/tmp/boxroom.log" {
		t.Fatalf("expected env debug log, got %q", cfg.DebugLog)
	}
}
