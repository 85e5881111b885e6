// Package config loads optional user-level client defaults from a TOML
// file: client identification, initial speech parameters and event
// notification subscriptions.
//
// The configuration is pure data; it never dials the daemon. The address
// field is an opaque string for the caller's own transport setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level go-ssip client configuration.
type Config struct {
	// Address is an opaque daemon address for the caller's dialer, e.g. a
	// Unix socket path or a host:port pair.
	Address string `toml:"address"`

	// LogLevel selects the client log level: "debug", "info", "warn" or
	// "error". Empty means the logger package default.
	LogLevel string `toml:"log_level"`

	// EventQueueSize overrides the pending event queue capacity when
	// positive.
	EventQueueSize int `toml:"event_queue_size"`

	ClientName ClientNameConfig `toml:"client_name"`
	Defaults   DefaultsConfig   `toml:"defaults"`

	// Notifications lists the event notification types to enable after
	// connecting, e.g. ["begin", "end", "index_mark"] or ["all"].
	Notifications []string `toml:"notifications"`
}

// ClientNameConfig identifies the client connection to the server.
type ClientNameConfig struct {
	User        string `toml:"user"`
	Application string `toml:"application"`
	Component   string `toml:"component"`
}

// DefaultsConfig holds initial speech parameters applied after connecting.
// Pointer fields distinguish "unset" from zero values.
type DefaultsConfig struct {
	Rate         *int `toml:"rate"`
	Pitch        *int `toml:"pitch"`
	Volume       *int `toml:"volume"`
	PauseContext *int `toml:"pause_context"`

	Priority       string `toml:"priority"`
	Language       string `toml:"language"`
	Punctuation    string `toml:"punctuation"`
	CapLetRecogn   string `toml:"cap_let_recogn"`
	OutputModule   string `toml:"output_module"`
	SynthesisVoice string `toml:"synthesis_voice"`
	VoiceType      string `toml:"voice_type"`

	SSMLMode *bool `toml:"ssml_mode"`
	Spelling *bool `toml:"spelling"`
}

// Load reads the config file from the default path and returns the parsed
// Config.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads and parses a config file at the given path.
// If the config file does not exist, it returns an empty Config (no error).
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return &cfg, nil
}

// DefaultPath returns the default config file path,
// $XDG_CONFIG_HOME/go-ssip/config.toml, falling back to
// ~/.config/go-ssip/config.toml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("go-ssip", "config.toml")
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, "go-ssip", "config.toml")
}
