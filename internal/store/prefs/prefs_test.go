package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	p, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Theme != "" {
		t.Fatalf("expected empty prefs, got %+v", p)
	}
}

func TestSaveTheme_RoundTrips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv(EnvDir, dir)

	if err := SaveTheme("light"); err != nil {
		t.Fatalf("save: %v", err)
	}
	p, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Theme != "light" {
		t.Fatalf("theme = %q", p.Theme)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := SaveTheme("dark"); err != nil {
		t.Fatalf("SaveTheme must overwrite a corrupt file: %v", err)
	}
}
