package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relink/internal/classify"
	"relink/internal/scan"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("[paths]\nlog_dir = %q\n", filepath.Join(dir, "logs"))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRequiresMinFilesize(t *testing.T) {
	cfgPath := writeTestConfig(t)
	_, err := runCommand(t, "-c", cfgPath, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "minimum filesize") {
		t.Fatalf("expected min filesize error, got %v", err)
	}
}

func TestRootRejectsUnknownEscalateMode(t *testing.T) {
	cfgPath := writeTestConfig(t)
	_, err := runCommand(t, "-c", cfgPath, "-m", "1", "--escalate", "aggressive", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "escalation mode") {
		t.Fatalf("expected escalation mode error, got %v", err)
	}
}

func TestRootRefusesWithoutConfirmation(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := t.TempDir()
	_, err := runCommand(t, "-c", cfgPath, "-m", "1", root)
	if err == nil {
		t.Fatal("expected refusal when no confirmation is possible")
	}
}

func TestRootDryRunReportsDuplicates(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := t.TempDir()

	payload := bytes.Repeat([]byte{0xAB}, 2*scan.MB)
	for _, name := range []string{"Show.S01E01.mkv", "Show.S01E01.720p.mkv"} {
		if err := os.WriteFile(filepath.Join(root, name), payload, 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	out, err := runCommand(t, "-c", cfgPath, "-m", "1", "-y", root)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Total files scanned: 2") {
		t.Fatalf("missing scan total: %q", out)
	}
	if !strings.Contains(out, "would merge") {
		t.Fatalf("expected dry run merge action: %q", out)
	}

	// Dry run must leave both copies on distinct inodes.
	a, _ := os.Stat(filepath.Join(root, "Show.S01E01.mkv"))
	b, _ := os.Stat(filepath.Join(root, "Show.S01E01.720p.mkv"))
	if os.SameFile(a, b) {
		t.Fatal("dry run merged files")
	}
}

func TestRootHardlinkMergesDuplicates(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := t.TempDir()

	payload := bytes.Repeat([]byte{0xCD}, 2*scan.MB)
	for _, name := range []string{"Show.S02E04.mkv", "Show.S02E04.copy.mkv"} {
		if err := os.WriteFile(filepath.Join(root, name), payload, 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	out, err := runCommand(t, "-c", cfgPath, "-m", "1", "-y", "--hardlink", root)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "merged") {
		t.Fatalf("expected merged action: %q", out)
	}

	a, err := os.Stat(filepath.Join(root, "Show.S02E04.mkv"))
	if err != nil {
		t.Fatalf("stat survivor: %v", err)
	}
	b, err := os.Stat(filepath.Join(root, "Show.S02E04.copy.mkv"))
	if err != nil {
		t.Fatalf("stat member: %v", err)
	}
	if !os.SameFile(a, b) {
		t.Fatal("copies were not collapsed onto one inode")
	}
}

func TestShowProgressOffWhenVerboseOrInteractive(t *testing.T) {
	if showProgress(1, classify.ModeSkip) {
		t.Error("progress should stay off under verbose logging")
	}
	if showProgress(0, classify.ModeInteractive) {
		t.Error("progress should stay off in interactive mode")
	}
}
