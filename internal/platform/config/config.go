package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	stateDir       = ".studyplan"
	configFileName = "config.yaml"
)

type Config struct {
	DataPath        string
	DBPath          string
	ActiveTimerPath string

	// UserID enables the remote mirror when set together with Remote.DSN.
	UserID string       `yaml:"user_id"`
	Remote RemoteConfig `yaml:"remote"`
	HTTP   HTTPConfig   `yaml:"http"`
	Log    LogConfig    `yaml:"log"`
}

type RemoteConfig struct {
	Driver string `yaml:"driver"` // postgres | sqlite
	DSN    string `yaml:"dsn"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

func New(dataPath string) (Config, error) {
	if strings.TrimSpace(dataPath) == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath:        dataPath,
		DBPath:          filepath.Join(dataPath, stateDir, "studyplan.db"),
		ActiveTimerPath: filepath.Join(dataPath, stateDir, "active-timer.json"),
		Remote:          RemoteConfig{Driver: "postgres"},
		HTTP:            HTTPConfig{Addr: "127.0.0.1:8080"},
	}, nil
}

// Load builds the default config for dataPath, overlays the optional
// config.yaml in the state directory, then applies environment overrides.
func Load(dataPath string) (Config, error) {
	cfg, err := New(dataPath)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(cfg.FilePath())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c Config) FilePath() string {
	return filepath.Join(c.DataPath, stateDir, configFileName)
}

// RemoteEnabled reports whether saves are mirrored to the remote tables.
func (c Config) RemoteEnabled() bool {
	return strings.TrimSpace(c.UserID) != "" && strings.TrimSpace(c.Remote.DSN) != ""
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STUDYPLAN_USER_ID"); v != "" {
		c.UserID = v
	}
	if v := os.Getenv("STUDYPLAN_REMOTE_DRIVER"); v != "" {
		c.Remote.Driver = v
	}
	if v := os.Getenv("STUDYPLAN_REMOTE_DSN"); v != "" {
		c.Remote.DSN = v
	}
	if v := os.Getenv("STUDYPLAN_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
}
