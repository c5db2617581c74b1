// Package prefs persists the choices a user makes on the notes board (the
// theme and whether the store inspector is shown) between sessions.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs is the content of prefs.toml.
type Prefs struct {
	Theme         string `toml:"theme"`
	ShowInspector bool   `toml:"show_inspector"`
}

const (
	defaultPrefsPath = "~/.config/curtain/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath is used when no prefs path is given.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default is the board's first-run state.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load returns the saved preferences. A missing file yields Default and no
// error. An unreadable or malformed file also yields Default, together with
// the error so the caller can report it; the board still starts.
func Load(path string) (Prefs, error) {
	resolved, err := resolve(path)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Default(), nil
	case err != nil:
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p, nil
}

// Save writes p to path, creating the parent directory.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// resolve expands a leading ~ and makes path absolute. Blank paths use
// DefaultPath.
func resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
