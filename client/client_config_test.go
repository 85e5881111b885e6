package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-ssip/logger"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := NewClientConfig()
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.EventQueueSize())
	assert.Equal(t, 50*time.Millisecond, cfg.WaitPollInterval())
	assert.NotNil(t, cfg.Logger())
}

func TestNewClientConfig_Options(t *testing.T) {
	mockLogger := logger.NewMockLogger()
	cfg, err := NewClientConfig(
		WithEventQueueSize(16),
		WithWaitPollInterval(10*time.Millisecond),
		WithLogger(mockLogger),
	)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.EventQueueSize())
	assert.Equal(t, 10*time.Millisecond, cfg.WaitPollInterval())
	assert.Equal(t, mockLogger, cfg.Logger())
}

func TestNewClientConfig_InvalidOptions(t *testing.T) {
	tests := []struct {
		desc string
		opt  ClientOption
	}{
		{desc: "zero queue size", opt: WithEventQueueSize(0)},
		{desc: "negative queue size", opt: WithEventQueueSize(-1)},
		{desc: "poll interval too short", opt: WithWaitPollInterval(100 * time.Microsecond)},
		{desc: "poll interval too long", opt: WithWaitPollInterval(2 * time.Second)},
		{desc: "nil logger", opt: WithLogger(nil)},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := NewClientConfig(test.opt)
			require.Error(t, err)
		})
	}
}
