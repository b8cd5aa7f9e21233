package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggerWritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "cinelog.log")
	cfg := &LoggingConfig{File: logPath, Level: "DEBUG"}

	logger, err := SetupLogger(cfg)
	if err != nil {
		t.Fatalf("setup logger: %v", err)
	}

	logger.Debug("hello", "answer", 42)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"hello"`) || !strings.Contains(line, `"answer":42`) {
		t.Fatalf("unexpected log line: %s", line)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, c := range cases {
		cfg := LoggingConfig{Level: c.in}
		if got := cfg.SlogLevel(); got != c.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := expandHome("~/logs/app.log")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "logs", "app.log") {
		t.Fatalf("unexpected expansion: %s", got)
	}

	got, err = expandHome("/var/log/app.log")
	if err != nil || got != "/var/log/app.log" {
		t.Fatalf("absolute path must pass through, got %s err=%v", got, err)
	}
}
