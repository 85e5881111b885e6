package client

import (
	"errors"
	"sync"
	"time"

	"github.com/arloliu/go-ssip/logger"
)

// ClientConfig represents the configuration parameters for an SSIP client.
type ClientConfig struct {
	mu sync.RWMutex

	// eventQueueSize defines the capacity of the pending event notification
	// queue drained by PollEvents.
	//
	// When the queue is full, the oldest event is dropped and a warning is
	// logged.
	//
	// Defaults to 64.
	eventQueueSize int

	// waitPollInterval defines how long WaitEvent backs off before
	// re-checking its channel when another goroutine owns the stream.
	//
	// Defaults to 50 milliseconds.
	waitPollInterval time.Duration

	// logger provides a logger instance for logging client events and
	// errors.
	logger logger.Logger
}

// NewClientConfig creates a new SSIP client configuration with optional
// functional options.
//
// It initializes a ClientConfig struct with default values and then applies
// the provided options to customize the configuration.
//
// See the documentation for ClientOption and the various WithXXX functions
// for available configuration options.
func NewClientConfig(opts ...ClientOption) (*ClientConfig, error) {
	cfg := &ClientConfig{
		eventQueueSize:   64,
		waitPollInterval: 50 * time.Millisecond,
		logger:           logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// EventQueueSize returns the capacity of the pending event queue.
func (cfg *ClientConfig) EventQueueSize() int {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.eventQueueSize
}

// WaitPollInterval returns the WaitEvent backoff interval.
func (cfg *ClientConfig) WaitPollInterval() time.Duration {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.waitPollInterval
}

// Logger returns the configured logger instance.
func (cfg *ClientConfig) Logger() logger.Logger {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.logger
}

// ClientOption represents a functional option for configuring a
// ClientConfig.
type ClientOption interface {
	apply(*ClientConfig) error
}

type clientOptFunc struct {
	name      string
	applyFunc func(*ClientConfig) error
}

func (c *clientOptFunc) apply(cfg *ClientConfig) error { return c.applyFunc(cfg) }

func newClientOptFunc(name string, f func(*ClientConfig) error) *clientOptFunc {
	return &clientOptFunc{name: name, applyFunc: f}
}

// WithEventQueueSize sets the capacity of the pending event notification
// queue.
//
// An error is returned if the size is not positive or if the configuration
// is nil.
//
// The default queue size is 64.
func WithEventQueueSize(size int) ClientOption {
	return newClientOptFunc("WithEventQueueSize", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if size <= 0 {
			return errors.New("event queue size should be a positive number")
		}
		cfg.eventQueueSize = size

		return nil
	})
}

// WithWaitPollInterval sets the WaitEvent backoff interval. It should be
// between 1 millisecond and 1 second.
//
// The default interval is 50 milliseconds.
func WithWaitPollInterval(interval time.Duration) ClientOption {
	return newClientOptFunc("WithWaitPollInterval", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if interval < time.Millisecond || interval > time.Second {
			return errors.New("wait poll interval is out of range [1ms, 1s]")
		}
		cfg.waitPollInterval = interval

		return nil
	})
}

// WithLogger sets the logger instance used by the client.
//
// The default logger is the package-level logger of the logger package.
func WithLogger(l logger.Logger) ClientOption {
	return newClientOptFunc("WithLogger", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l

		return nil
	})
}
