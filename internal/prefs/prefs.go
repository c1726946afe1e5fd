// Package prefs remembers the combo demo's theme between runs.
//
// Only the theme name is stored. Field selections come from the config file
// on every start and are never written back.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/combo/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath is used when no --prefs flag is given.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load never fails. A missing, unreadable or malformed file yields the
// default theme so a bad prefs file cannot keep the demo from starting. The
// error result is kept for callers that treat Load like the config loader.
func Load(path string) (Prefs, error) {
	p, ok := read(path)
	if !ok {
		p = Prefs{}
	}
	p.normalize()
	return p, nil
}

func read(path string) (Prefs, bool) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}, false
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Prefs{}, false
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, false
	}
	return p, true
}

func (p *Prefs) normalize() {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
}

// Save replaces the prefs file in one rename, so a crash mid-write leaves the
// previous theme in place.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// resolvePath expands a leading ~ and makes the path absolute. Blank means
// the default location.
func resolvePath(path string) (string, error) {
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
