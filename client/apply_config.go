package client

import (
	"github.com/arloliu/go-ssip/config"
	"github.com/arloliu/go-ssip/logger"
	"github.com/arloliu/go-ssip/ssip"
)

// ApplyConfig issues the session setup commands described by a loaded
// configuration: client identification, initial speech parameters and
// event notification subscriptions.
//
// Commands are sent in declaration order and the first failure aborts the
// remainder. Unset fields are skipped, so an empty configuration is a
// no-op.
func (c *Client) ApplyConfig(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if err := cfg.ValidateNotifications(); err != nil {
		return err
	}

	if cfg.LogLevel != "" {
		c.logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	}

	if cfg.ClientName.Application != "" {
		name := ssip.NewClientName(cfg.ClientName.User, cfg.ClientName.Application)
		if cfg.ClientName.Component != "" {
			name.Component = cfg.ClientName.Component
		}
		if err := c.SetClientName(name); err != nil {
			return err
		}
	}

	if err := c.applyDefaults(&cfg.Defaults); err != nil {
		return err
	}

	for _, n := range cfg.Notifications {
		if err := c.SetNotification(ssip.NotificationType(n), true); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) applyDefaults(d *config.DefaultsConfig) error {
	if d.Priority != "" {
		if err := c.SetPriority(ssip.Priority(d.Priority)); err != nil {
			return err
		}
	}

	if d.OutputModule != "" {
		if err := c.SetOutputModule(ssip.ScopeSelf, d.OutputModule); err != nil {
			return err
		}
	}

	if d.Language != "" {
		if err := c.SetLanguage(ssip.ScopeSelf, d.Language); err != nil {
			return err
		}
	}

	if d.SynthesisVoice != "" {
		if err := c.SetSynthesisVoice(ssip.ScopeSelf, d.SynthesisVoice); err != nil {
			return err
		}
	}

	if d.VoiceType != "" {
		if err := c.SetVoiceType(ssip.ScopeSelf, ssip.VoiceType(d.VoiceType)); err != nil {
			return err
		}
	}

	if d.Rate != nil {
		if err := c.SetRate(ssip.ScopeSelf, *d.Rate); err != nil {
			return err
		}
	}

	if d.Pitch != nil {
		if err := c.SetPitch(ssip.ScopeSelf, *d.Pitch); err != nil {
			return err
		}
	}

	if d.Volume != nil {
		if err := c.SetVolume(ssip.ScopeSelf, *d.Volume); err != nil {
			return err
		}
	}

	if d.Punctuation != "" {
		if err := c.SetPunctuation(ssip.ScopeSelf, ssip.PunctuationMode(d.Punctuation)); err != nil {
			return err
		}
	}

	if d.CapLetRecogn != "" {
		if err := c.SetCapLetRecogn(ssip.ScopeSelf, ssip.CapLetRecognMode(d.CapLetRecogn)); err != nil {
			return err
		}
	}

	if d.Spelling != nil {
		if err := c.SetSpelling(ssip.ScopeSelf, *d.Spelling); err != nil {
			return err
		}
	}

	if d.SSMLMode != nil {
		if err := c.SetSSMLMode(*d.SSMLMode); err != nil {
			return err
		}
	}

	if d.PauseContext != nil {
		if err := c.SetPauseContext(ssip.ScopeSelf, *d.PauseContext); err != nil {
			return err
		}
	}

	return nil
}
