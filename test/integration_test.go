// ABOUTME: Integration tests for workseq CLI.
// ABOUTME: Builds the binary and runs a full create/start/export workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "workseq")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/workseq")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	dataDir := t.TempDir()
	configHome := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--backend", "sqlite", "--data-dir", dataDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome, "NO_COLOR=1")
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("add", "Morning", "-e", "squats:10", "-e", "plank:30s", "--break", "5")
	if err != nil {
		t.Fatalf("Failed to add sequence: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added workout Morning") {
		t.Errorf("Expected 'Added workout Morning' in output, got: %s", output)
	}
	if !strings.Contains(output, "~55s") {
		t.Errorf("Expected estimate '~55s' in output, got: %s", output)
	}

	output, err = run("add", "Loosen", "--category", "warmup", "-e", "arm circles:60s")
	if err != nil {
		t.Fatalf("Failed to add warmup: %v\n%s", err, output)
	}

	output, err = run("list", "--category", "warmup")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Loosen") || strings.Contains(output, "Morning") {
		t.Errorf("Expected only warm-ups in list output, got: %s", output)
	}

	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, `"breakDuration": 5`) {
		t.Errorf("Expected browser field names in export, got: %s", output)
	}

	// Start by name prefix lookup via the list's short ID
	output, err = run("list", "--category", "workout")
	if err != nil {
		t.Fatalf("Failed to list workouts: %v\n%s", err, output)
	}
	id := strings.Fields(output)[0]

	output, err = run("start", id)
	if err != nil {
		t.Fatalf("Failed to start: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Started Morning") {
		t.Errorf("Expected 'Started Morning' in output, got: %s", output)
	}

	output, err = run("recent")
	if err != nil {
		t.Fatalf("Failed to show recent: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Morning") {
		t.Errorf("Expected 'Morning' in recent output, got: %s", output)
	}
}
