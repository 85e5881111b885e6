package client

import (
	"github.com/arloliu/go-ssip/ssip"
)

// SetClientName identifies the client to the server. It should be the
// first call on a fresh connection.
func (c *Client) SetClientName(name ssip.ClientName) error {
	_, err := c.Send(ssip.SetClientName{Name: name})
	return err
}

// Speak queues a text message and returns the message identifier the
// server assigned to it. The text may span multiple lines.
func (c *Client) Speak(text string) (ssip.MessageID, error) {
	resp, err := c.Send(ssip.Speak{Text: text})
	if err != nil {
		return "", err
	}

	// The queued acknowledgement carries the message id in its body.
	if len(resp.Body) > 0 {
		return resp.Body[0], nil
	}

	return "", nil
}

// Char speaks a single character.
func (c *Client) Char(r rune) error {
	_, err := c.Send(ssip.Char{Char: r})
	return err
}

// Key speaks a symbolic key name, e.g. "space" or "kp-enter".
func (c *Client) Key(name string) error {
	_, err := c.Send(ssip.Key{Name: name})
	return err
}

// SoundIcon plays a named sound icon.
func (c *Client) SoundIcon(name string) error {
	_, err := c.Send(ssip.SoundIcon{Name: name})
	return err
}

// Stop immediately stops the addressed messages.
func (c *Client) Stop(scope ssip.MessageScope) error {
	_, err := c.Send(ssip.Stop{Scope: scope})
	return err
}

// Cancel stops the addressed messages and discards them from the queue.
func (c *Client) Cancel(scope ssip.MessageScope) error {
	_, err := c.Send(ssip.Cancel{Scope: scope})
	return err
}

// Pause pauses speaking of the addressed messages.
func (c *Client) Pause(scope ssip.MessageScope) error {
	_, err := c.Send(ssip.Pause{Scope: scope})
	return err
}

// Resume resumes previously paused messages.
func (c *Client) Resume(scope ssip.MessageScope) error {
	_, err := c.Send(ssip.Resume{Scope: scope})
	return err
}

// SetPriority sets the priority of subsequent messages from this client.
func (c *Client) SetPriority(priority ssip.Priority) error {
	_, err := c.Send(ssip.SetPriority{Priority: priority})
	return err
}

// SetLanguage sets the speech language as an RFC 1766 code, e.g. "en".
func (c *Client) SetLanguage(scope ssip.ClientScope, language string) error {
	_, err := c.Send(ssip.SetLanguage{Scope: scope, Language: language})
	return err
}

// SetRate sets the speech rate in [-100, 100].
func (c *Client) SetRate(scope ssip.ClientScope, rate int) error {
	_, err := c.Send(ssip.SetRate{Scope: scope, Rate: rate})
	return err
}

// SetPitch sets the speech pitch in [-100, 100].
func (c *Client) SetPitch(scope ssip.ClientScope, pitch int) error {
	_, err := c.Send(ssip.SetPitch{Scope: scope, Pitch: pitch})
	return err
}

// SetVolume sets the speech volume in [-100, 100].
func (c *Client) SetVolume(scope ssip.ClientScope, volume int) error {
	_, err := c.Send(ssip.SetVolume{Scope: scope, Volume: volume})
	return err
}

// SetPunctuation sets the punctuation verbosity mode.
func (c *Client) SetPunctuation(scope ssip.ClientScope, mode ssip.PunctuationMode) error {
	_, err := c.Send(ssip.SetPunctuation{Scope: scope, Mode: mode})
	return err
}

// SetCapLetRecogn sets the capital letters recognition mode.
func (c *Client) SetCapLetRecogn(scope ssip.ClientScope, mode ssip.CapLetRecognMode) error {
	_, err := c.Send(ssip.SetCapLetRecogn{Scope: scope, Mode: mode})
	return err
}

// SetSpelling enables or disables spelling mode.
func (c *Client) SetSpelling(scope ssip.ClientScope, on bool) error {
	_, err := c.Send(ssip.SetSpelling{Scope: scope, On: on})
	return err
}

// SetSSMLMode enables or disables SSML interpretation of message bodies.
func (c *Client) SetSSMLMode(on bool) error {
	_, err := c.Send(ssip.SetSSMLMode{On: on})
	return err
}

// SetPauseContext sets the number of words repeated when a paused message
// is resumed.
func (c *Client) SetPauseContext(scope ssip.ClientScope, context int) error {
	_, err := c.Send(ssip.SetPauseContext{Scope: scope, Context: context})
	return err
}

// SetNotification enables or disables delivery of one event notification
// type for this client.
func (c *Client) SetNotification(ntype ssip.NotificationType, on bool) error {
	_, err := c.Send(ssip.SetNotification{Type: ntype, On: on})
	return err
}

// SetOutputModule selects the synthesizer output module by name.
func (c *Client) SetOutputModule(scope ssip.ClientScope, module string) error {
	_, err := c.Send(ssip.SetOutputModule{Scope: scope, Module: module})
	return err
}

// SetSynthesisVoice selects a concrete synthesis voice by name.
func (c *Client) SetSynthesisVoice(scope ssip.ClientScope, voice string) error {
	_, err := c.Send(ssip.SetSynthesisVoice{Scope: scope, Voice: voice})
	return err
}

// SetVoiceType selects a symbolic voice type.
func (c *Client) SetVoiceType(scope ssip.ClientScope, voice ssip.VoiceType) error {
	_, err := c.Send(ssip.SetVoiceType{Scope: scope, Voice: voice})
	return err
}

// SetDebug enables or disables server debug logging.
func (c *Client) SetDebug(on bool) error {
	_, err := c.Send(ssip.SetDebug{On: on})
	return err
}

// ListOutputModules returns the names of the available output modules.
func (c *Client) ListOutputModules() ([]string, error) {
	resp, err := c.Send(ssip.ListOutputModules{})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// ListSynthesisVoices returns the concrete synthesis voices of the current
// output module.
func (c *Client) ListSynthesisVoices() ([]ssip.SynthesisVoice, error) {
	resp, err := c.Send(ssip.ListSynthesisVoices{})
	if err != nil {
		return nil, err
	}

	return ssip.ParseSynthesisVoices(resp.Body), nil
}

// ListVoiceTypes returns the symbolic voice type names.
func (c *Client) ListVoiceTypes() ([]string, error) {
	resp, err := c.Send(ssip.ListVoiceTypes{})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// BlockBegin opens a block; messages inside a block are spoken as one
// uninterruptible unit.
func (c *Client) BlockBegin() error {
	_, err := c.Send(ssip.BlockBegin{})
	return err
}

// BlockEnd closes the current block.
func (c *Client) BlockEnd() error {
	_, err := c.Send(ssip.BlockEnd{})
	return err
}

// Quit ends the session without closing the local stream. Most callers
// should use Close instead.
func (c *Client) Quit() error {
	_, err := c.Send(ssip.Quit{})
	return err
}
