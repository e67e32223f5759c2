package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.md")
	if err := os.WriteFile(path, []byte("| a\t| b |\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		args   []string
		stdin  string
		code   int
		check  func(t *testing.T, out string)
		errOut string
	}{
		{
			name:  "stdin report",
			stdin: "|x|y|\n",
			check: func(t *testing.T, out string) {
				if got := gjson.Get(out, "documents.0.rows.0.cells.#").Int(); got != 2 {
					t.Errorf("cells = %d, want 2", got)
				}
			},
		},
		{
			name: "file with expansion and trim",
			args: []string{"-expand-tabs", "-tab-size", "8", "-trim", "-select", "documents.0.rows.0.cells.0", path},
			check: func(t *testing.T, out string) {
				cell := gjson.Parse(out)
				if cell.Get("text").String() != "a" {
					t.Errorf("text = %q, want a", cell.Get("text").String())
				}
				if cell.Get("source.offset").Int() != 2 {
					t.Errorf("source.offset = %d, want 2", cell.Get("source.offset").Int())
				}
			},
		},
		{
			name:  "pretty",
			args:  []string{"-pretty", "-select", "documents.0"},
			stdin: "a",
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "\n  \"name\"") {
					t.Errorf("output not indented: %q", out)
				}
			},
		},
		{
			name: "version",
			args: []string{"-version"},
			check: func(t *testing.T, out string) {
				if !strings.HasPrefix(out, "smartseq dev") {
					t.Errorf("output = %q", out)
				}
			},
		},
		{name: "bad log level", args: []string{"-log-level", "loud"}, code: 2, errOut: "invalid log level"},
		{name: "bad flag", args: []string{"-nope"}, code: 2, errOut: "flag provided but not defined"},
		{name: "negative tab size", args: []string{"-tab-size", "-1"}, code: 2, errOut: "invalid tab size"},
		{name: "missing file", args: []string{filepath.Join(t.TempDir(), "none")}, code: 1, errOut: "documents"},
		{name: "no match", args: []string{"-select", "zzz"}, stdin: "a", code: 1, errOut: "matched nothing"},
		{name: "help", args: []string{"-help"}, code: 0, errOut: "Usage: smartseq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)
			if code != tt.code {
				t.Fatalf("run() = %d, want %d (stderr: %s)", code, tt.code, stderr.String())
			}
			if tt.errOut != "" && !strings.Contains(stderr.String(), tt.errOut) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.errOut)
			}
			if tt.check != nil {
				tt.check(t, stdout.String())
			}
		})
	}
}
