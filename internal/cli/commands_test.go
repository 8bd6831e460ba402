package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestVersionJSON(t *testing.T) {
	resetCLI(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = "", "", "" })
	t.Cleanup(func() { versionJSON, versionShort = false, false })

	stdout, _, err := executeRoot(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if info["version"] != "1.2.3" || info["commit"] != "abc123" || info["name"] != "create-nightwatch" {
		t.Errorf("unexpected version info: %v", info)
	}
}

func TestVersionShort(t *testing.T) {
	resetCLI(t)
	buildVersion = "0.4.0"
	t.Cleanup(func() { buildVersion = "" })
	t.Cleanup(func() { versionJSON, versionShort = false, false })

	stdout, _, err := executeRoot(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if stdout != "0.4.0\n" {
		t.Errorf("got %q, want %q", stdout, "0.4.0\n")
	}
}

func TestConfigSetThenGet(t *testing.T) {
	resetCLI(t)

	if _, _, err := executeRoot(t, "", "config", "set", "templates", "/srv/templates"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	stdout, _, err := executeRoot(t, "", "config", "get", "templates")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(stdout) != "/srv/templates" {
		t.Errorf("config get templates = %q", stdout)
	}
}

func TestDoctor(t *testing.T) {
	tests := []struct {
		name    string
		present map[string]bool
		wantErr string
	}{
		{"all present", map[string]bool{"node": true, "npm": true}, ""},
		{"npm missing", map[string]bool{"node": true}, "npm"},
		{"nothing installed", map[string]bool{}, "node, npm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCLI(t)
			prev := lookPath
			lookPath = func(name string) (string, error) {
				if tt.present[name] {
					return "/usr/bin/" + name, nil
				}
				return "", exec.ErrNotFound
			}
			t.Cleanup(func() { lookPath = prev })

			stdout, _, err := executeRoot(t, "", "doctor")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("doctor: %v", err)
				}
			} else if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("doctor error = %v, want mention of %q", err, tt.wantErr)
			}
			if tt.present["node"] && !strings.Contains(stdout, "node found at /usr/bin/node") {
				t.Errorf("missing node line:\n%s", stdout)
			}
			if !strings.Contains(stdout, "exclude   node_modules,.git") {
				t.Errorf("default exclusions not reported:\n%s", stdout)
			}
		})
	}
}

func TestCheckBinaryMissing(t *testing.T) {
	prev := lookPath
	lookPath = func(string) (string, error) { return "", errors.New("nope") }
	t.Cleanup(func() { lookPath = prev })

	var buf bytes.Buffer
	if checkBinary(&buf, "node") {
		t.Error("checkBinary should report a missing binary")
	}
	if !strings.Contains(buf.String(), "node not found") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
