package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReadingCommand(t *testing.T) {
	out, err := execute(t, "reading", "--name", "Su Su", "--date", "1978-10-10", "--lang", "en")
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if !strings.Contains(out, "Su Su") {
		t.Errorf("output should mention the name:\n%s", out)
	}
	if !strings.Contains(out, "Tuesday") {
		t.Errorf("1978-10-10 is a Tuesday, output:\n%s", out)
	}
}

func TestReadingCommand_WithForecast(t *testing.T) {
	out, err := execute(t, "reading", "--date", "1978-10-10", "--lang", "en", "--forecast")
	if err != nil {
		t.Fatalf("reading --forecast: %v", err)
	}
	if !strings.Contains(out, "Forecast") {
		t.Errorf("forecast section missing:\n%s", out)
	}
}

func TestReadingCommand_BadDate(t *testing.T) {
	if _, err := execute(t, "reading", "--date", "10/10/1978"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestOnboardAndStatus(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := execute(t, "onboard")
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if !strings.Contains(out, "Created config") {
		t.Errorf("onboard output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(home, ".mahabote", "config.json")); err != nil {
		t.Errorf("config.json not written: %v", err)
	}

	// Second run keeps the existing config
	out, err = execute(t, "onboard")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("second onboard output:\n%s", out)
	}

	out, err = execute(t, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "Web UI: enabled=true") {
		t.Errorf("status output:\n%s", out)
	}
}
