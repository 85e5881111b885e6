package config

import (
	"fmt"

	"github.com/arloliu/go-ssip/ssip"
)

var validPriorities = map[string]struct{}{
	string(ssip.PriorityProgress):     {},
	string(ssip.PriorityNotification): {},
	string(ssip.PriorityMessage):      {},
	string(ssip.PriorityText):         {},
	string(ssip.PriorityImportant):    {},
}

var validPunctuations = map[string]struct{}{
	string(ssip.PunctuationNone): {},
	string(ssip.PunctuationSome): {},
	string(ssip.PunctuationMost): {},
	string(ssip.PunctuationAll):  {},
}

var validCapLetRecogns = map[string]struct{}{
	string(ssip.CapLetRecognNone):  {},
	string(ssip.CapLetRecognSpell): {},
	string(ssip.CapLetRecognIcon):  {},
}

var validNotifications = map[string]struct{}{
	string(ssip.NotificationBegin):     {},
	string(ssip.NotificationEnd):       {},
	string(ssip.NotificationCancel):    {},
	string(ssip.NotificationPause):     {},
	string(ssip.NotificationResume):    {},
	string(ssip.NotificationIndexMark): {},
	string(ssip.NotificationAll):       {},
}

var validLogLevels = map[string]struct{}{
	"": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
}

// Validate checks numeric ranges and enumerated values. It returns the
// first problem found.
func (c *Config) Validate() error {
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}

	if c.EventQueueSize < 0 {
		return fmt.Errorf("event_queue_size %d is negative", c.EventQueueSize)
	}

	return c.Defaults.validate()
}

func (d *DefaultsConfig) validate() error {
	for name, val := range map[string]*int{
		"rate": d.Rate, "pitch": d.Pitch, "volume": d.Volume,
	} {
		if val != nil && (*val < -100 || *val > 100) {
			return fmt.Errorf("%s %d is out of range [-100, 100]", name, *val)
		}
	}

	if d.PauseContext != nil && *d.PauseContext < 0 {
		return fmt.Errorf("pause_context %d is negative", *d.PauseContext)
	}

	if d.Priority != "" {
		if _, ok := validPriorities[d.Priority]; !ok {
			return fmt.Errorf("priority %q is not a valid priority", d.Priority)
		}
	}

	if d.Punctuation != "" {
		if _, ok := validPunctuations[d.Punctuation]; !ok {
			return fmt.Errorf("punctuation %q is not a valid punctuation mode", d.Punctuation)
		}
	}

	if d.CapLetRecogn != "" {
		if _, ok := validCapLetRecogns[d.CapLetRecogn]; !ok {
			return fmt.Errorf("cap_let_recogn %q is not a valid recognition mode", d.CapLetRecogn)
		}
	}

	return nil
}

// ValidateNotifications checks the notification subscription names.
// It is split from Validate so partially hand-built configs can skip it.
func (c *Config) ValidateNotifications() error {
	for _, n := range c.Notifications {
		if _, ok := validNotifications[n]; !ok {
			return fmt.Errorf("notification %q is not a valid notification type", n)
		}
	}

	return nil
}
