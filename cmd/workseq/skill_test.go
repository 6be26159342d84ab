// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, confirmation, and file content.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSkillEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	for _, marker := range []string{
		"name: workseq",
		"description:",
		"NAME:SECONDSs",
		"mcp__workseq__list_sequences",
		"mcp__workseq__record_launch",
	} {
		if !strings.Contains(string(content), marker) {
			t.Errorf("Expected SKILL.md to contain %q", marker)
		}
	}
}

func TestInstallSkillWritesFile(t *testing.T) {
	tmpHome := t.TempDir()
	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(tmpHome, strings.NewReader("")); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	skillPath := filepath.Join(tmpHome, ".claude", "skills", "workseq", "SKILL.md")
	written, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
	embedded, _ := skillFS.ReadFile("skill/SKILL.md")
	if string(written) != string(embedded) {
		t.Error("Installed skill does not match embedded content")
	}

	info, err := os.Stat(skillPath)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected file mode 0600, got %o", info.Mode().Perm())
	}
}

func TestInstallSkillOverwritesExisting(t *testing.T) {
	tmpHome := t.TempDir()
	skillDir := filepath.Join(tmpHome, ".claude", "skills", "workseq")
	if err := os.MkdirAll(skillDir, 0750); err != nil {
		t.Fatal(err)
	}
	skillPath := filepath.Join(skillDir, "SKILL.md")
	if err := os.WriteFile(skillPath, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := installSkill(tmpHome, strings.NewReader("yes\n")); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	written, _ := os.ReadFile(skillPath)
	if string(written) == "old" {
		t.Error("Expected existing skill file to be overwritten")
	}
}

func TestInstallSkillDeclined(t *testing.T) {
	tmpHome := t.TempDir()

	if err := installSkill(tmpHome, strings.NewReader("n\n")); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	skillPath := filepath.Join(tmpHome, ".claude", "skills", "workseq", "SKILL.md")
	if _, err := os.Stat(skillPath); !os.IsNotExist(err) {
		t.Error("Expected no skill file when installation is declined")
	}
}

func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag on install-skill command")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
}
