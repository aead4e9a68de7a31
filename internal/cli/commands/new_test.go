package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	testCases := []struct {
		name        string
		projectName string
		expectError bool
	}{
		{
			name:        "valid name",
			projectName: "my-extension",
			expectError: false,
		},
		{
			name:        "valid name with underscores",
			projectName: "my_extension",
			expectError: false,
		},
		{
			name:        "valid name alphanumeric",
			projectName: "extension123",
			expectError: false,
		},
		{
			name:        "empty string",
			projectName: "",
			expectError: true,
		},
		{
			name:        "contains slash",
			projectName: "my/extension",
			expectError: true,
		},
		{
			name:        "contains space",
			projectName: "my extension",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateProjectName(tc.projectName)
			if tc.expectError && err == nil {
				t.Errorf("expected error for %q, got none", tc.projectName)
			}
			if !tc.expectError && err != nil {
				t.Errorf("unexpected error for %q: %v", tc.projectName, err)
			}
		})
	}
}

func TestRunNewCreatesProject(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)

	if err := runNew("demo-game", "Player", "CharacterBody2D", false); err != nil {
		t.Fatalf("runNew failed: %v", err)
	}

	for _, path := range []string{
		"demo-game/tether.yml",
		"demo-game/src/player.tet",
		"demo-game/README.md",
	} {
		if _, err := os.Stat(filepath.Join(tmpDir, path)); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}

func TestRunNewThenCheck(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)

	if err := runNew("fresh-game", "Main", "Node", false); err != nil {
		t.Fatalf("runNew failed: %v", err)
	}
	if err := os.Chdir(filepath.Join(tmpDir, "fresh-game")); err != nil {
		t.Fatal(err)
	}

	// An untouched scaffold compiles with no configuration.
	if err := runCheck(false, true); err != nil {
		t.Fatalf("check on a fresh project failed: %v", err)
	}
}

func TestRunNewRejectsBadName(t *testing.T) {
	if err := runNew("bad name!", "Main", "Node", false); err == nil {
		t.Error("expected error for invalid project name")
	}
}
