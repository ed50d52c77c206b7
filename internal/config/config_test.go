package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/todoboard/internal/api"
	"github.com/idilsaglam/todoboard/internal/store/prefs"
)

func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(prefs.EnvDir, filepath.Join(dir, "cfg"))
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvDebug, "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != api.DefaultBaseURL || cfg.Theme != "" || cfg.Debug {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoad_EnvAndSavedTheme(t *testing.T) {
	isolate(t)
	if err := prefs.SaveTheme("light"); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIURL, "http://todo.test")
	t.Setenv(EnvDebug, "yes")

	cfg, _ := Load()
	if cfg.APIURL != "http://todo.test" || cfg.Theme != "light" || !cfg.Debug {
		t.Fatalf("unexpected config %+v", cfg)
	}

	t.Setenv(EnvTheme, "dark")
	if cfg, _ := Load(); cfg.Theme != "dark" {
		t.Fatalf("env theme must beat saved preference, got %q", cfg.Theme)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolate(t)
	os.Unsetenv(EnvAPIURL)
	if err := os.WriteFile(".env", []byte("TODO_API_URL=http://from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvAPIURL) })

	cfg, _ := Load()
	if cfg.APIURL != "http://from-dotenv" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
}
