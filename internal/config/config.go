package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/combo/internal/combobox"
)

// ErrInvalidValue reports an option or field value that is neither a string
// nor a number.
var ErrInvalidValue = errors.New("option value must be a string or a number")

// Config describes the demo form: its fields and how their panels behave.
type Config struct {
	MaxVisible   int
	SmoothScroll bool
	Fields       []Field
}

// Field is one combobox on the form. Value points into Options, or is nil
// when nothing is selected initially.
type Field struct {
	ID      string
	Label   string
	Options []*combobox.Option
	Value   *combobox.Option
}

const (
	defaultConfigPath = "~/.config/combo/config.toml"
	defaultMaxVisible = 6
)

type rawOption struct {
	Label string `toml:"label"`
	Value any    `toml:"value"`
}

type rawField struct {
	ID      string      `toml:"id"`
	Label   string      `toml:"label"`
	Value   any         `toml:"value"`
	Options []rawOption `toml:"options"`
}

type rawConfig struct {
	MaxVisible   int        `toml:"max_visible"`
	SmoothScroll *bool      `toml:"smooth_scroll"`
	Fields       []rawField `toml:"field"`
}

// Load locates and parses the form config, falling back to the built-in demo
// form when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes)
}

// Parse decodes TOML config bytes. A config without fields gets the demo
// fields.
func Parse(data []byte) (Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{MaxVisible: raw.MaxVisible, SmoothScroll: true}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = defaultMaxVisible
	}
	if raw.SmoothScroll != nil {
		cfg.SmoothScroll = *raw.SmoothScroll
	}

	seen := make(map[string]bool, len(raw.Fields))
	for i, rf := range raw.Fields {
		f, err := buildField(i, rf)
		if err != nil {
			return Config{}, err
		}
		if seen[f.ID] {
			return Config{}, fmt.Errorf("field %q: duplicate id", f.ID)
		}
		seen[f.ID] = true
		cfg.Fields = append(cfg.Fields, f)
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = DemoFields()
	}
	return cfg, nil
}

func buildField(index int, rf rawField) (Field, error) {
	f := Field{
		ID:    strings.TrimSpace(rf.ID),
		Label: strings.TrimSpace(rf.Label),
	}
	if f.ID == "" {
		f.ID = "field-" + strconv.Itoa(index+1)
	}

	for j, ro := range rf.Options {
		if !validValue(ro.Value) {
			return Field{}, fmt.Errorf("field %q option %d (%q): %w", f.ID, j, ro.Label, ErrInvalidValue)
		}
		f.Options = append(f.Options, combobox.NewOption(ro.Label, ro.Value))
	}

	if rf.Value != nil {
		if !validValue(rf.Value) {
			return Field{}, fmt.Errorf("field %q value: %w", f.ID, ErrInvalidValue)
		}
		// Duplicated values bind to the first matching option.
		for _, opt := range f.Options {
			if sameValue(opt.Value, rf.Value) {
				f.Value = opt
				break
			}
		}
	}
	return f, nil
}

// sameValue compares decoded scalars. TOML decodes 2 as int64 and 2.0 as
// float64; both name the same option value.
func sameValue(a, b any) bool {
	fa, aNum := number(a)
	fb, bNum := number(b)
	if aNum && bNum {
		return fa == fb
	}
	return a == b
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func validValue(v any) bool {
	switch v.(type) {
	case string, int64, float64:
		return true
	}
	return false
}

// Default returns the built-in demo form.
func Default() Config {
	return Config{
		MaxVisible:   defaultMaxVisible,
		SmoothScroll: true,
		Fields:       DemoFields(),
	}
}

// DemoFields builds the demo form: a short list with a duplicated value, a
// numeric list, a list long enough to scroll, and an empty one.
func DemoFields() []Field {
	fruit := combobox.Options(
		"Apple", "apple",
		"Banana", "banana",
		"Cherry", "cherry",
		"Apple (green)", "apple",
	)
	sizes := combobox.Options(
		"Small", int64(1),
		"Medium", int64(2),
		"Large", int64(3),
		"Extra large", int64(4),
	)
	many := make([]*combobox.Option, 50)
	for i := range many {
		many[i] = combobox.NewOption("Option "+strconv.Itoa(i+1), int64(i+1))
	}

	return []Field{
		{ID: "fruit", Label: "Fruit", Options: fruit, Value: fruit[1]},
		{ID: "size", Label: "Size", Options: sizes},
		{ID: "number", Label: "Number", Options: many, Value: many[24]},
		{ID: "empty", Label: "Nothing to pick"},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
