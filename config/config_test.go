package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
address = "/run/user/1000/speech-dispatcher/speechd.sock"
log_level = "debug"
event_queue_size = 128
notifications = ["begin", "end", "index_mark"]

[client_name]
user = "joe"
application = "reader"
component = "main"

[defaults]
rate = 20
pitch = -10
priority = "message"
language = "en"
punctuation = "some"
output_module = "espeak-ng"
ssml_mode = true
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/run/user/1000/speech-dispatcher/speechd.sock", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 128, cfg.EventQueueSize)
	assert.Equal(t, ClientNameConfig{User: "joe", Application: "reader", Component: "main"}, cfg.ClientName)
	assert.Equal(t, []string{"begin", "end", "index_mark"}, cfg.Notifications)

	require.NotNil(t, cfg.Defaults.Rate)
	assert.Equal(t, 20, *cfg.Defaults.Rate)
	require.NotNil(t, cfg.Defaults.Pitch)
	assert.Equal(t, -10, *cfg.Defaults.Pitch)
	assert.Nil(t, cfg.Defaults.Volume)
	assert.Equal(t, "message", cfg.Defaults.Priority)
	assert.Equal(t, "en", cfg.Defaults.Language)
	assert.Equal(t, "some", cfg.Defaults.Punctuation)
	assert.Equal(t, "espeak-ng", cfg.Defaults.OutputModule)
	require.NotNil(t, cfg.Defaults.SSMLMode)
	assert.True(t, *cfg.Defaults.SSMLMode)

	require.NoError(t, cfg.ValidateNotifications())
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, `address = not quoted`)

	cfg, err := LoadFrom(path)
	require.Error(t, err)
	require.Nil(t, cfg)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	tests := []struct {
		desc    string
		content string
	}{
		{
			desc:    "rate out of range",
			content: "[defaults]\nrate = 150\n",
		},
		{
			desc:    "negative pause context",
			content: "[defaults]\npause_context = -1\n",
		},
		{
			desc:    "unknown priority",
			content: "[defaults]\npriority = \"urgent\"\n",
		},
		{
			desc:    "unknown punctuation",
			content: "[defaults]\npunctuation = \"lots\"\n",
		},
		{
			desc:    "unknown cap let recogn",
			content: "[defaults]\ncap_let_recogn = \"shout\"\n",
		},
		{
			desc:    "unknown log level",
			content: "log_level = \"trace\"\n",
		},
		{
			desc:    "negative event queue size",
			content: "event_queue_size = -1\n",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			path := writeConfig(t, test.content)
			cfg, err := LoadFrom(path)
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestValidateNotifications(t *testing.T) {
	cfg := &Config{Notifications: []string{"begin", "all"}}
	require.NoError(t, cfg.ValidateNotifications())

	cfg = &Config{Notifications: []string{"begin", "finished"}}
	err := cfg.ValidateNotifications()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finished")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "go-ssip", "config.toml"), DefaultPath())
}
