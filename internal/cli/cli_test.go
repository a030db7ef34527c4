package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		if req.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-cli"})
	})
	mux.HandleFunc("GET /api/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		authed := r.Header.Get("Authorization") == "Bearer tok-cli"
		body := map[string]any{"authenticated": authed}
		if authed {
			body["user"] = map[string]any{"sub": "staff1"}
		}
		json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("GET /api/customers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count": 1,
			"customers": []map[string]string{
				{"customerId": "c-1", "boxNumber": "101", "name": "Ada", "email": "ada@example.com"},
			},
		})
	})
	mux.HandleFunc("GET /api/origins", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"origins": []string{"Seattle"}})
	})
	return httptest.NewServer(mux)
}

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginLogoutWhoamiFlow(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()
	stateDir := t.TempDir()
	t.Setenv("BOXROOM_BACKEND", srv.URL)
	t.Setenv("BOXROOM_STATE_DIR", stateDir)

	out, err := runCmd(t, "hunter2\n", "login", "staff1", "--password-stdin")
	if err != nil {
		t.Fatalf("login failed: %v\n%s", err, out)
	}
	var loginOut struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			Sub string `json:"sub"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(out), &loginOut); err != nil {
		t.Fatalf("login output is not JSON: %v\n%s", err, out)
	}
	if !loginOut.Authenticated || loginOut.User.Sub != "staff1" {
		t.Fatalf("unexpected login output: %s", out)
	}

	out, err = runCmd(t, "", "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"authenticated":true`) {
		t.Fatalf("expected authenticated whoami, got: %s", out)
	}

	out, err = runCmd(t, "", "logout")
	if err != nil {
		t.Fatalf("logout failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"loggedOut":true`) {
		t.Fatalf("unexpected logout output: %s", out)
	}

	// Token gone: whoami now reports the raw unauthenticated response.
	out, err = runCmd(t, "", "whoami")
	if err != nil {
		t.Fatalf("whoami after logout errored: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"authenticated":false`) {
		t.Fatalf("expected unauthenticated whoami after logout, got: %s", out)
	}
}

func TestLoginRejectionFailsCommand(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()
	t.Setenv("BOXROOM_BACKEND", srv.URL)
	t.Setenv("BOXROOM_STATE_DIR", t.TempDir())

	out, err := runCmd(t, "wrong\n", "login", "staff1", "--password-stdin")
	if err == nil {
		t.Fatalf("expected login command to fail")
	}
	if !strings.Contains(out, "invalid credentials") {
		t.Fatalf("expected server payload surfaced, got: %s", out)
	}
}

func TestCustomersCommandOutput(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()
	t.Setenv("BOXROOM_BACKEND", srv.URL)
	t.Setenv("BOXROOM_STATE_DIR", t.TempDir())

	out, err := runCmd(t, "", "customers")
	if err != nil {
		t.Fatalf("customers failed: %v\n%s", err, out)
	}
	var listing struct {
		Count     int `json:"count"`
		Customers []struct {
			BoxNumber string `json:"boxNumber"`
		} `json:"customers"`
	}
	if err := json.Unmarshal([]byte(out), &listing); err != nil {
		t.Fatalf("customers output is not JSON: %v\n%s", err, out)
	}
	if listing.Count != 1 || listing.Customers[0].BoxNumber != "101" {
		t.Fatalf("unexpected customers output: %s", out)
	}
}

func TestOriginsCommandOutput(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()
	t.Setenv("BOXROOM_BACKEND", srv.URL)
	t.Setenv("BOXROOM_STATE_DIR", t.TempDir())

	out, err := runCmd(t, "", "origins", "--pretty")
	if err != nil {
		t.Fatalf("origins failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Seattle") {
		t.Fatalf("unexpected origins output: %s", out)
	}
}

func TestBackendFlagOverridesEnv(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()
	t.Setenv("BOXROOM_BACKEND", "http://127.0.0.1:1")
	t.Setenv("BOXROOM_STATE_DIR", t.TempDir())

	out, err := runCmd(t, "", "origins", "--backend", srv.URL)
	if err != nil {
		t.Fatalf("expected flag override to reach live server: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Seattle") {
		t.Fatalf("unexpected output: %s", out)
	}
}
