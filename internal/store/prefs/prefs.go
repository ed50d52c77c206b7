package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed preferences. Single file, human-readable.
// Only view preferences live here; todos stay on the server.

const fileName = "prefs.json"

// EnvDir overrides the directory prefs.json is kept in.
const EnvDir = "TODO_CONFIG_DIR"

type Prefs struct {
	Theme string `json:"theme,omitempty"`
}

func dataPath() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return filepath.Join(dir, fileName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "todo", fileName), nil
}

// Load returns the saved preferences; a missing file yields zero Prefs.
func Load() (Prefs, error) {
	p, err := dataPath()
	if err != nil {
		return Prefs{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("read file: %w", err)
	}
	var out Prefs
	if err := json.Unmarshal(b, &out); err != nil {
		return Prefs{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return out, nil
}

func Save(p Prefs) error {
	path, err := dataPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// SaveTheme updates only the theme field.
func SaveTheme(theme string) error {
	p, err := Load()
	if err != nil {
		p = Prefs{}
	}
	p.Theme = theme
	return Save(p)
}
