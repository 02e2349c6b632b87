package main

import (
	"bytes"
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
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagResolved, flagDifficulty, flagConfig = false, "", ""
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels")
	if err != nil {
		t.Fatalf("levels failed: %v", err)
	}
	if !strings.Contains(out, "level2") || !strings.Contains(out, "embedded") {
		t.Errorf("levels output missing built-in level:\n%s", out)
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "scroll_limit") {
		t.Errorf("config output missing world settings:\n%s", out)
	}
}

func TestConfigCommandRejectsUnknownDifficulty(t *testing.T) {
	if _, err := execute(t, "config", "--resolved", "--difficulty", "brutal"); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestRunsCommandEmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	out, err := execute(t, "runs", "--db", db)
	if err != nil {
		t.Fatalf("runs failed: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := execute(t, "runs", "--db", db, "missing-id"); err == nil {
		t.Error("unknown run ID accepted")
	}
}
