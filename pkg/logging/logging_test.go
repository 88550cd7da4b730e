package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "member_id", "m-1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO line written at WARN level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "member_id=m-1") {
		t.Errorf("expected WARN line with attributes, got:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color codes for a buffer, got %q", out)
	}
}

func TestNew_FileIsNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "bucketwise.log"))
	if err != nil {
		t.Fatalf("failed to create log file: %v", err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Fatal("a regular file must not be treated as a terminal")
	}

	New(f, slog.LevelInfo).Info("to file", "member_id", "m-1")

	out, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(out), "member_id=m-1") {
		t.Errorf("expected the log line in the file, got %q", out)
	}
	if strings.Contains(string(out), "\x1b[") {
		t.Errorf("expected no color codes in a file, got %q", out)
	}
}
