package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPaths(t *testing.T) {
	paths, err := NewPaths()
	if err != nil {
		t.Fatalf("NewPaths error: %v", err)
	}
	if paths.HomeDir == "" {
		t.Error("HomeDir should not be empty")
	}
}

func TestPaths_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{HomeDir: tmpDir}

	if got, want := paths.BaseDir(), filepath.Join(tmpDir, DefaultBaseDir); got != want {
		t.Errorf("BaseDir() = %q, want %q", got, want)
	}
	if got, want := paths.ConfigFile(), filepath.Join(tmpDir, DefaultBaseDir, DefaultConfigFile); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestPaths_EnsureBaseDir(t *testing.T) {
	paths := &Paths{HomeDir: t.TempDir()}
	if err := paths.EnsureBaseDir(); err != nil {
		t.Fatalf("EnsureBaseDir error: %v", err)
	}
	info, err := os.Stat(paths.BaseDir())
	if err != nil || !info.IsDir() {
		t.Errorf("BaseDir not created: %v", err)
	}
}
