package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

func noEnv(string) (string, bool) { return "", false }

func ignoreCaseEnv(key string) (string, bool) {
	if key == "IGNORE_CASE" {
		return "", true
	}
	return "", false
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	if err := os.WriteFile(path, []byte(poem), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name       string
		args       []string
		lookup     func(string) (string, bool)
		wantCode   int
		wantStdout string
		wantStderr []string // substrings; nil means stderr must be empty
	}{
		{
			name:       "case sensitive match",
			args:       []string{"Trust", path},
			wantStdout: "Trust me.\n",
		},
		{
			name:       "no match is success",
			args:       []string{"zzz", path},
			wantStdout: "",
		},
		{
			name:       "ignore case from environment",
			args:       []string{"rUsT", path},
			lookup:     ignoreCaseEnv,
			wantStdout: "Rust:\nTrust me.\n",
		},
		{
			name:       "line numbers",
			args:       []string{"-n", "Pick", path},
			wantStdout: "3:Pick three.\n",
		},
		{
			name:       "count",
			args:       []string{"--count", "e", path},
			wantStdout: "3\n",
		},
		{
			name:       "dash query after separator",
			args:       []string{"--", "-fast", path},
			wantStdout: "",
		},
		{
			name:       "version",
			args:       []string{"--version"},
			wantStdout: "minigrep version ",
		},
		{
			name:       "missing file path",
			args:       []string{"Trust"},
			wantCode:   1,
			wantStderr: []string{"Problem parsing arguments: did not get a file path"},
		},
		{
			name:       "missing query",
			args:       nil,
			wantCode:   1,
			wantStderr: []string{"Problem parsing arguments: did not get a query string"},
		},
		{
			name:       "unreadable file",
			args:       []string{"x", missing},
			wantCode:   1,
			wantStderr: []string{"Application error: read " + missing},
		},
		{
			name:       "dash query without separator",
			args:       []string{"-fast", path},
			wantCode:   2,
			wantStderr: []string{"Problem parsing arguments:", "put -- before a QUERY"},
		},
		{
			name:       "invalid color mode",
			args:       []string{"--color", "sometimes", "x", path},
			wantCode:   1,
			wantStderr: []string{"invalid color mode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := tt.lookup
			if lookup == nil {
				lookup = noEnv
			}

			var stdout, stderr bytes.Buffer
			code := run(append([]string{"minigrep"}, tt.args...), &stdout, &stderr, lookup)

			if code != tt.wantCode {
				t.Errorf("run() = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}

			if strings.HasSuffix(tt.wantStdout, " ") {
				if !strings.HasPrefix(stdout.String(), tt.wantStdout) {
					t.Errorf("stdout = %q, want prefix %q", stdout.String(), tt.wantStdout)
				}
			} else if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}

			if tt.wantStderr == nil && stderr.Len() != 0 {
				t.Errorf("stderr = %q, want nothing", stderr.String())
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr = %q, want it to contain %q", stderr.String(), want)
				}
			}
		})
	}
}

func TestRunHelpGoesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"minigrep", "--help"}, &stdout, &stderr, noEnv); code != 0 {
		t.Errorf("run(--help) = %d, want 0", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Usage: minigrep") {
		t.Errorf("stderr = %q, want usage", stderr.String())
	}
}
