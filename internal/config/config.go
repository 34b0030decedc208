// Package config loads promptpaint settings. Values are layered: built-in
// defaults, then the YAML settings file, then PROMPTPAINT_* environment
// variables. Command-line flags are applied on top by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the settings file.
const (
	EnvOutputDir = "PROMPTPAINT_OUTPUT_DIR"
	EnvFont      = "PROMPTPAINT_FONT"
	EnvLogLevel  = "PROMPTPAINT_LOG_LEVEL"
	EnvStyle     = "PROMPTPAINT_STYLE"
)

// Settings are the user-tunable defaults for generation.
type Settings struct {
	OutputDir string `yaml:"output_dir" validate:"required"`
	Width     int    `yaml:"width" validate:"gte=1,lte=8192"`
	Height    int    `yaml:"height" validate:"gte=1,lte=8192"`
	Style     string `yaml:"style" validate:"oneof=auto gradient abstract geometric"`
	Effect    string `yaml:"effect" validate:"oneof=random none blur sharpen emboss edge_enhance smooth"`
	// Font is empty for a system font search, "go" for the bundled font,
	// or a path to a TrueType/OpenType file.
	Font     string `yaml:"font"`
	LogLevel string `yaml:"log_level" validate:"oneof=trace debug info warn error off"`
	SeedMode string `yaml:"seed_mode" validate:"oneof=random prompt manual"`
	Seed     *int64 `yaml:"seed,omitempty" validate:"required_if=SeedMode manual"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		OutputDir: "generated_images",
		Width:     800,
		Height:    600,
		Style:     "auto",
		Effect:    "random",
		LogLevel:  "info",
		SeedMode:  "random",
	}
}

// DefaultPath returns the settings file location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "promptpaint", "config.yaml"), nil
}

// Load reads settings from path, or from DefaultPath when path is empty,
// and applies environment overrides. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (Settings, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			// no config dir means no settings file to read
			p = ""
		}
		path = p
	}

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 - settings file chosen by the user
		switch {
		case err == nil:
			if err := decode(data, &s); err != nil {
				return Settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	s.applyEnv(lookup)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func decode(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		s.OutputDir = v
	}
	if v, ok := lookup(EnvFont); ok {
		s.Font = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = v
	}
	if v, ok := lookup(EnvStyle); ok && v != "" {
		s.Style = v
	}
}

// SetSeed switches to manual seeding with value.
func (s *Settings) SetSeed(value int64) {
	s.SeedMode = "manual"
	s.Seed = &value
}

// String renders the settings as YAML.
func (s Settings) String() string {
	out, err := yaml.Marshal(s)
	if err != nil {
		// plain has no methods, so %+v does not call back into String.
		type plain Settings
		return fmt.Sprintf("%+v", plain(s))
	}
	return string(out)
}
