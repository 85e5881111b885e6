package ssip

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// bodyTerminator is the line that ends a text body on the wire.
const bodyTerminator = "."

// EncodeCommand renders a command into the exact ordered wire lines to
// write, without line terminators.
//
// lines holds the command line(s). body is non-nil only for commands that
// carry a text body (Speak); it holds the dot-stuffed payload lines plus
// the final lone "." terminator line and must be written only after the
// server prompts with a ClassContinue status.
//
// EncodeCommand is a pure transformation, it performs no I/O.
func EncodeCommand(cmd Command) (lines []string, body []string, err error) {
	line, err := cmd.encode()
	if err != nil {
		return nil, nil, err
	}

	if sp, ok := cmd.(Speak); ok {
		body, err = EscapeBody(sp.Text)
		if err != nil {
			return nil, nil, err
		}
	}

	return []string{line}, body, nil
}

// EscapeBody splits text into wire payload lines, applying dot-stuffing,
// and appends the lone "." terminator line.
//
// It returns ErrTextHasCarriageReturn if the text contains a raw CR byte,
// which cannot be represented inside a protocol line.
func EscapeBody(text string) ([]string, error) {
	if strings.ContainsRune(text, '\r') {
		return nil, ErrTextHasCarriageReturn
	}

	raw := strings.Split(text, "\n")
	body := make([]string, 0, len(raw)+1)
	for _, line := range raw {
		body = append(body, EscapeLine(line))
	}

	return append(body, bodyTerminator), nil
}

// EscapeLine applies dot-stuffing to a single payload line: a line
// beginning with "." gets one extra "." prefixed so it cannot be mistaken
// for the body terminator.
func EscapeLine(line string) string {
	if strings.HasPrefix(line, ".") {
		return "." + line
	}
	return line
}

// UnescapeLine reverses EscapeLine, stripping one leading "." from a
// dot-stuffed line. It is the identity for lines not beginning with "..".
func UnescapeLine(line string) string {
	if strings.HasPrefix(line, "..") {
		return line[1:]
	}
	return line
}

// checkArg validates a single-line command argument. The argument must be
// non-empty and cannot contain a raw CR or LF byte.
func checkArg(arg string) error {
	if arg == "" {
		return ErrEmptyArgument
	}
	if strings.ContainsAny(arg, "\r\n") {
		return ErrArgHasLineBreak
	}

	return nil
}

// onOff renders a boolean switch argument.
func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (c SetClientName) encode() (string, error) {
	for _, part := range []string{c.Name.User, c.Name.Application, c.Name.Component} {
		if err := checkArg(part); err != nil {
			return "", err
		}
		if strings.ContainsAny(part, ": ") {
			return "", fmt.Errorf("client name part %q: %w", part, ErrArgHasReservedChar)
		}
	}

	return fmt.Sprintf("SET self CLIENT_NAME %s:%s:%s",
		c.Name.User, c.Name.Application, c.Name.Component), nil
}

func (c Speak) encode() (string, error) {
	return "SPEAK", nil
}

func (c Char) encode() (string, error) {
	if c.Char == 0 || c.Char == utf8.RuneError {
		return "", ErrNotSingleChar
	}
	// The space character has no single-byte representation on the wire.
	if c.Char == ' ' {
		return "CHAR space", nil
	}
	if c.Char == '\r' || c.Char == '\n' {
		return "", ErrArgHasLineBreak
	}

	return "CHAR " + string(c.Char), nil
}

func (c Key) encode() (string, error) {
	if err := checkArg(c.Name); err != nil {
		return "", err
	}
	if strings.ContainsRune(c.Name, ' ') {
		return "", fmt.Errorf("key name %q: %w", c.Name, ErrArgHasReservedChar)
	}

	return "KEY " + c.Name, nil
}

func (c SoundIcon) encode() (string, error) {
	if err := checkArg(c.Name); err != nil {
		return "", err
	}

	return "SOUND_ICON " + c.Name, nil
}

// scopeArg validates and renders a message or client scope argument,
// defaulting an empty scope to "self".
func scopeArg(scope string) (string, error) {
	if scope == "" {
		return "self", nil
	}
	if err := checkArg(scope); err != nil {
		return "", err
	}
	if strings.ContainsRune(scope, ' ') {
		return "", fmt.Errorf("scope %q: %w", scope, ErrArgHasReservedChar)
	}

	return scope, nil
}

func encodeMsgCmd(verb string, scope MessageScope) (string, error) {
	arg, err := scopeArg(string(scope))
	if err != nil {
		return "", err
	}

	return verb + " " + arg, nil
}

func (c Stop) encode() (string, error)   { return encodeMsgCmd("STOP", c.Scope) }
func (c Cancel) encode() (string, error) { return encodeMsgCmd("CANCEL", c.Scope) }
func (c Pause) encode() (string, error)  { return encodeMsgCmd("PAUSE", c.Scope) }
func (c Resume) encode() (string, error) { return encodeMsgCmd("RESUME", c.Scope) }

func encodeSetCmd(scope ClientScope, param string, value string) (string, error) {
	arg, err := scopeArg(string(scope))
	if err != nil {
		return "", err
	}
	if err := checkArg(value); err != nil {
		return "", err
	}

	return fmt.Sprintf("SET %s %s %s", arg, param, value), nil
}

func (c SetPriority) encode() (string, error) {
	return encodeSetCmd(ScopeSelf, "PRIORITY", string(c.Priority))
}

func (c SetLanguage) encode() (string, error) {
	return encodeSetCmd(c.Scope, "LANGUAGE", c.Language)
}

func (c SetRate) encode() (string, error) {
	if c.Rate < -100 || c.Rate > 100 {
		return "", ErrRateOutOfRange
	}

	return encodeSetCmd(c.Scope, "RATE", strconv.Itoa(c.Rate))
}

func (c SetPitch) encode() (string, error) {
	if c.Pitch < -100 || c.Pitch > 100 {
		return "", ErrPitchOutOfRange
	}

	return encodeSetCmd(c.Scope, "PITCH", strconv.Itoa(c.Pitch))
}

func (c SetVolume) encode() (string, error) {
	if c.Volume < -100 || c.Volume > 100 {
		return "", ErrVolumeOutOfRange
	}

	return encodeSetCmd(c.Scope, "VOLUME", strconv.Itoa(c.Volume))
}

func (c SetPunctuation) encode() (string, error) {
	return encodeSetCmd(c.Scope, "PUNCTUATION", string(c.Mode))
}

func (c SetCapLetRecogn) encode() (string, error) {
	return encodeSetCmd(c.Scope, "CAP_LET_RECOGN", string(c.Mode))
}

func (c SetSpelling) encode() (string, error) {
	return encodeSetCmd(c.Scope, "SPELLING", onOff(c.On))
}

func (c SetSSMLMode) encode() (string, error) {
	return encodeSetCmd(ScopeSelf, "SSML_MODE", onOff(c.On))
}

func (c SetPauseContext) encode() (string, error) {
	if c.Context < 0 {
		return "", ErrPauseContextOutOfRange
	}

	return encodeSetCmd(c.Scope, "PAUSE_CONTEXT", strconv.Itoa(c.Context))
}

func (c SetNotification) encode() (string, error) {
	if err := checkArg(string(c.Type)); err != nil {
		return "", err
	}

	return fmt.Sprintf("SET self NOTIFICATION %s %s", c.Type, onOff(c.On)), nil
}

func (c SetOutputModule) encode() (string, error) {
	return encodeSetCmd(c.Scope, "OUTPUT_MODULE", c.Module)
}

func (c SetSynthesisVoice) encode() (string, error) {
	return encodeSetCmd(c.Scope, "SYNTHESIS_VOICE", c.Voice)
}

func (c SetVoiceType) encode() (string, error) {
	return encodeSetCmd(c.Scope, "VOICE_TYPE", string(c.Voice))
}

func (c SetDebug) encode() (string, error) {
	return encodeSetCmd(ScopeAll, "DEBUG", onOff(c.On))
}

func (c ListOutputModules) encode() (string, error)   { return "LIST OUTPUT_MODULES", nil }
func (c ListSynthesisVoices) encode() (string, error) { return "LIST SYNTHESIS_VOICES", nil }
func (c ListVoiceTypes) encode() (string, error)      { return "LIST VOICES", nil }
func (c BlockBegin) encode() (string, error)          { return "BLOCK BEGIN", nil }
func (c BlockEnd) encode() (string, error)            { return "BLOCK END", nil }
func (c Quit) encode() (string, error)                { return "QUIT", nil }
