package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const appName = "threadnav"

// ErrConfigFile marks a config file that exists but could not be read or
// parsed. The Config returned alongside it is still usable.
var ErrConfigFile = errors.New("config file unusable")

var Themes = []string{"auto", "light", "dark", "blue", "lavender"}

// Config holds runtime settings for the CLI app.
type Config struct {
	DBPath          string
	LogLevel        string
	LogFile         string
	Theme           string
	ScrollDebounce  time.Duration
	RefreshDebounce time.Duration
	LongPress       time.Duration
	TopOffset       int
	TimelinePadding int
	Sites           map[string]bool
}

type fileConfig struct {
	DBPath          string          `yaml:"db_path" toml:"db_path"`
	LogLevel        string          `yaml:"log_level" toml:"log_level"`
	LogFile         string          `yaml:"log_file" toml:"log_file"`
	Theme           string          `yaml:"theme" toml:"theme"`
	ScrollDebounce  string          `yaml:"scroll_debounce" toml:"scroll_debounce"`
	RefreshDebounce string          `yaml:"refresh_debounce" toml:"refresh_debounce"`
	LongPress       string          `yaml:"long_press" toml:"long_press"`
	TopOffset       *int            `yaml:"top_offset" toml:"top_offset"`
	TimelinePadding *int            `yaml:"timeline_padding" toml:"timeline_padding"`
	Sites           map[string]bool `yaml:"sites" toml:"sites"`
}

func Defaults() Config {
	return Config{
		DBPath:          filepath.Join(xdg.DataHome, appName, "pins.db"),
		LogLevel:        "info",
		LogFile:         filepath.Join(xdg.StateHome, appName, appName+".log"),
		Theme:           "auto",
		ScrollDebounce:  150 * time.Millisecond,
		RefreshDebounce: time.Second,
		LongPress:       500 * time.Millisecond,
		TopOffset:       2,
		TimelinePadding: 1,
		Sites:           map[string]bool{},
	}
}

// DefaultPath is the first config file found under $XDG_CONFIG_HOME/threadnav,
// or the YAML path when none exists.
func DefaultPath() string {
	dir := filepath.Join(xdg.ConfigHome, appName)
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads path (DefaultPath when empty), then applies THREADNAV_*
// environment overrides and validates the result. A missing file is not an
// error unless path was given explicitly. An unreadable one yields defaults
// plus an error wrapping ErrConfigFile.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Defaults()
	fileErr := loadFile(&cfg, path)
	if fileErr != nil && errors.Is(fileErr, os.ErrNotExist) {
		if explicit {
			return Config{}, fmt.Errorf("config file %s: %w", path, fileErr)
		}
		fileErr = nil
	}
	if fileErr != nil {
		cfg = Defaults()
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if fileErr != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrConfigFile, path, fileErr)
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		err = yaml.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return fc.apply(cfg)
}

func (fc fileConfig) apply(cfg *Config) error {
	setString(&cfg.DBPath, fc.DBPath)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.Theme, fc.Theme)
	for _, d := range []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"scroll_debounce", fc.ScrollDebounce, &cfg.ScrollDebounce},
		{"refresh_debounce", fc.RefreshDebounce, &cfg.RefreshDebounce},
		{"long_press", fc.LongPress, &cfg.LongPress},
	} {
		if err := setDuration(d.dst, d.name, d.raw); err != nil {
			return err
		}
	}
	if fc.TopOffset != nil {
		cfg.TopOffset = *fc.TopOffset
	}
	if fc.TimelinePadding != nil {
		cfg.TimelinePadding = *fc.TimelinePadding
	}
	for host, enabled := range fc.Sites {
		cfg.Sites[strings.ToLower(strings.TrimSpace(host))] = enabled
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.DBPath, os.Getenv("THREADNAV_DB_PATH"))
	setString(&cfg.LogLevel, os.Getenv("THREADNAV_LOG_LEVEL"))
	setString(&cfg.LogFile, os.Getenv("THREADNAV_LOG_FILE"))
	setString(&cfg.Theme, os.Getenv("THREADNAV_THEME"))

	if err := setDuration(&cfg.ScrollDebounce, "THREADNAV_SCROLL_DEBOUNCE", os.Getenv("THREADNAV_SCROLL_DEBOUNCE")); err != nil {
		return err
	}
	if err := setDuration(&cfg.RefreshDebounce, "THREADNAV_REFRESH_DEBOUNCE", os.Getenv("THREADNAV_REFRESH_DEBOUNCE")); err != nil {
		return err
	}
	if err := setDuration(&cfg.LongPress, "THREADNAV_LONG_PRESS", os.Getenv("THREADNAV_LONG_PRESS")); err != nil {
		return err
	}
	if err := setInt(&cfg.TopOffset, "THREADNAV_TOP_OFFSET", os.Getenv("THREADNAV_TOP_OFFSET")); err != nil {
		return err
	}
	return setInt(&cfg.TimelinePadding, "THREADNAV_TIMELINE_PADDING", os.Getenv("THREADNAV_TIMELINE_PADDING"))
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}

func setInt(dst *int, name, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	if !isTheme(c.Theme) {
		return fmt.Errorf("theme must be one of %s: %s", strings.Join(Themes, ", "), c.Theme)
	}
	if c.ScrollDebounce < 0 || c.RefreshDebounce < 0 || c.LongPress < 0 {
		return errors.New("durations must not be negative")
	}
	if c.TopOffset < 0 {
		return fmt.Errorf("top_offset must not be negative: %d", c.TopOffset)
	}
	if c.TimelinePadding < 0 {
		return fmt.Errorf("timeline_padding must not be negative: %d", c.TimelinePadding)
	}
	for pattern := range c.Sites {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("sites: invalid host pattern %q", pattern)
		}
	}
	return nil
}

// SiteEnabled reports whether adapters for host may run. An exact entry
// wins over a glob pattern such as "*.openai.com"; hosts matched by neither
// are enabled.
func (c Config) SiteEnabled(host string) bool {
	host = strings.ToLower(host)
	if enabled, ok := c.Sites[host]; ok {
		return enabled
	}
	patterns := make([]string, 0, len(c.Sites))
	for pattern := range c.Sites {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, host); err == nil && ok {
			return c.Sites[pattern]
		}
	}
	return true
}

func isTheme(name string) bool {
	for _, theme := range Themes {
		if theme == name {
			return true
		}
	}
	return false
}
