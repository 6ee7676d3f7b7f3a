// Package config resolves chart settings from a YAML file, a .env file and
// BARH_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/barh/engine"
)

// ErrInvalidSetting is wrapped by every validation and env parsing error.
var ErrInvalidSetting = errors.New("invalid setting")

// DefaultListen is the serve address when none is configured.
const DefaultListen = ":8080"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BARH_"

// Settings is everything the CLI needs to load, shape and serve a chart.
type Settings struct {
	Chart  engine.Config `yaml:"chart"`
	Data   string        `yaml:"data"`
	Sheet  string        `yaml:"sheet"`
	Listen string        `yaml:"listen"`
}

// Default returns settings for an unconfigured run.
func Default() Settings {
	return Settings{
		Chart:  engine.DefaultConfig(),
		Listen: DefaultListen,
	}
}

// Options converts the chart settings into engine options.
func (s Settings) Options() []engine.Option {
	return []engine.Option{engine.WithConfig(s.Chart)}
}

// Validate rejects settings the engine would have to silently correct.
func (s Settings) Validate() error {
	if s.Chart.Cutoff < 0 {
		return fmt.Errorf("%w: cutoff must be >= 0, got %d", ErrInvalidSetting, s.Chart.Cutoff)
	}
	if s.Chart.LogScale && s.Chart.MinLogScale <= 0 {
		return fmt.Errorf("%w: minLogScale must be > 0 on a log scale, got %g", ErrInvalidSetting, s.Chart.MinLogScale)
	}
	return nil
}

// Load builds settings from defaults, the YAML file at path (skipped when
// path is empty), the .env file in the working directory and the process
// environment.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parsing config %s: %w", path, err)
		}
		log.Printf("📋 Loaded config: %s", path)
	}

	if err := LoadDotEnv(".env"); err != nil {
		return s, err
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// LoadDotEnv loads KEY=VALUE pairs from envfile into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv(envfile string) error {
	if _, err := os.Stat(envfile); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(envfile); err != nil {
		return fmt.Errorf("loading %s: %w", envfile, err)
	}
	log.Printf("🔑 Loaded env file: %s", envfile)
	return nil
}

// ApplyEnv overrides settings from BARH_* variables found through lookup.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	if v, ok := get("TITLE"); ok {
		s.Chart.Title = v
	}
	if v, ok := get("DATA"); ok {
		s.Data = v
	}
	if v, ok := get("SHEET"); ok {
		s.Sheet = v
	}
	if v, ok := get("LISTEN"); ok && v != "" {
		s.Listen = v
	}
	if v, ok := get("CUTOFF"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("CUTOFF", v, err)
		}
		s.Chart.Cutoff = n
	}
	if v, ok := get("MIN_LOG_SCALE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("MIN_LOG_SCALE", v, err)
		}
		s.Chart.MinLogScale = f
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"PERCENTUAL", &s.Chart.Percentual},
		{"LOG_SCALE", &s.Chart.LogScale},
		{"STACKED", &s.Chart.Stacked},
	}
	for _, f := range flags {
		v, ok := get(f.name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(f.name, v, err)
		}
		*f.dst = b
	}
	return nil
}

func envError(name, value string, err error) error {
	return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidSetting, EnvPrefix, name, value, err)
}
