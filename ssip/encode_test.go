package ssip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCommand_Rendering(t *testing.T) {
	tests := []struct {
		desc     string
		cmd      Command
		expected string
	}{
		{
			desc:     "set client name",
			cmd:      SetClientName{Name: NewClientName("joe", "reader")},
			expected: "SET self CLIENT_NAME joe:reader:main",
		},
		{
			desc:     "speak",
			cmd:      Speak{Text: "hello"},
			expected: "SPEAK",
		},
		{
			desc:     "char",
			cmd:      Char{Char: 'x'},
			expected: "CHAR x",
		},
		{
			desc:     "char space",
			cmd:      Char{Char: ' '},
			expected: "CHAR space",
		},
		{
			desc:     "key",
			cmd:      Key{Name: "kp-enter"},
			expected: "KEY kp-enter",
		},
		{
			desc:     "sound icon",
			cmd:      SoundIcon{Name: "message"},
			expected: "SOUND_ICON message",
		},
		{
			desc:     "stop defaults to self",
			cmd:      Stop{},
			expected: "STOP self",
		},
		{
			desc:     "cancel all",
			cmd:      Cancel{Scope: ScopeAllMessages},
			expected: "CANCEL all",
		},
		{
			desc:     "pause one message",
			cmd:      Pause{Scope: ScopeMessage("42")},
			expected: "PAUSE 42",
		},
		{
			desc:     "resume",
			cmd:      Resume{Scope: ScopeLastMessage},
			expected: "RESUME self",
		},
		{
			desc:     "set priority",
			cmd:      SetPriority{Priority: PriorityImportant},
			expected: "SET self PRIORITY important",
		},
		{
			desc:     "set language",
			cmd:      SetLanguage{Scope: ScopeSelf, Language: "en"},
			expected: "SET self LANGUAGE en",
		},
		{
			desc:     "set rate for all clients",
			cmd:      SetRate{Scope: ScopeAll, Rate: -50},
			expected: "SET all RATE -50",
		},
		{
			desc:     "set pitch upper bound",
			cmd:      SetPitch{Pitch: 100},
			expected: "SET self PITCH 100",
		},
		{
			desc:     "set volume lower bound",
			cmd:      SetVolume{Volume: -100},
			expected: "SET self VOLUME -100",
		},
		{
			desc:     "set punctuation",
			cmd:      SetPunctuation{Mode: PunctuationSome},
			expected: "SET self PUNCTUATION some",
		},
		{
			desc:     "set cap let recogn",
			cmd:      SetCapLetRecogn{Mode: CapLetRecognSpell},
			expected: "SET self CAP_LET_RECOGN spell",
		},
		{
			desc:     "set spelling on",
			cmd:      SetSpelling{On: true},
			expected: "SET self SPELLING on",
		},
		{
			desc:     "set ssml mode off",
			cmd:      SetSSMLMode{On: false},
			expected: "SET self SSML_MODE off",
		},
		{
			desc:     "set pause context",
			cmd:      SetPauseContext{Context: 3},
			expected: "SET self PAUSE_CONTEXT 3",
		},
		{
			desc:     "set notification",
			cmd:      SetNotification{Type: NotificationIndexMark, On: true},
			expected: "SET self NOTIFICATION index_mark on",
		},
		{
			desc:     "set output module for one client",
			cmd:      SetOutputModule{Scope: ScopeClient("7"), Module: "espeak-ng"},
			expected: "SET 7 OUTPUT_MODULE espeak-ng",
		},
		{
			desc:     "set synthesis voice",
			cmd:      SetSynthesisVoice{Voice: "en+f2"},
			expected: "SET self SYNTHESIS_VOICE en+f2",
		},
		{
			desc:     "set voice type",
			cmd:      SetVoiceType{Voice: VoiceFemale1},
			expected: "SET self VOICE_TYPE female1",
		},
		{
			desc:     "set debug targets all",
			cmd:      SetDebug{On: true},
			expected: "SET all DEBUG on",
		},
		{
			desc:     "list output modules",
			cmd:      ListOutputModules{},
			expected: "LIST OUTPUT_MODULES",
		},
		{
			desc:     "list synthesis voices",
			cmd:      ListSynthesisVoices{},
			expected: "LIST SYNTHESIS_VOICES",
		},
		{
			desc:     "list voice types",
			cmd:      ListVoiceTypes{},
			expected: "LIST VOICES",
		},
		{
			desc:     "block begin",
			cmd:      BlockBegin{},
			expected: "BLOCK BEGIN",
		},
		{
			desc:     "block end",
			cmd:      BlockEnd{},
			expected: "BLOCK END",
		},
		{
			desc:     "quit",
			cmd:      Quit{},
			expected: "QUIT",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			lines, _, err := EncodeCommand(test.cmd)
			require.NoError(t, err)
			require.Len(t, lines, 1)
			require.Equal(t, test.expected, lines[0])
		})
	}
}

func TestEncodeCommand_SpeakBody(t *testing.T) {
	tests := []struct {
		desc     string
		text     string
		expected []string
	}{
		{
			desc:     "single line",
			text:     "hello world",
			expected: []string{"hello world", "."},
		},
		{
			desc:     "multi line",
			text:     "first\nsecond",
			expected: []string{"first", "second", "."},
		},
		{
			desc:     "lone dot line gets stuffed",
			text:     "hello\n.\nworld",
			expected: []string{"hello", "..", "world", "."},
		},
		{
			desc:     "leading dot gets stuffed",
			text:     ".hidden",
			expected: []string{"..hidden", "."},
		},
		{
			desc:     "empty text is one empty payload line",
			text:     "",
			expected: []string{"", "."},
		},
		{
			desc:     "trailing newline yields empty last payload line",
			text:     "hello\n",
			expected: []string{"hello", "", "."},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, body, err := EncodeCommand(Speak{Text: test.text})
			require.NoError(t, err)
			require.Equal(t, test.expected, body)

			// the receiver reconstructs the original text by unescaping
			// every payload line before the terminator
			payload := body[:len(body)-1]
			lines := make([]string, 0, len(payload))
			for _, line := range payload {
				lines = append(lines, UnescapeLine(line))
			}
			require.Equal(t, test.text, strings.Join(lines, "\n"))
		})
	}
}

func TestEncodeCommand_Errors(t *testing.T) {
	tests := []struct {
		desc        string
		cmd         Command
		expectedErr error
	}{
		{
			desc:        "rate above range",
			cmd:         SetRate{Rate: 101},
			expectedErr: ErrRateOutOfRange,
		},
		{
			desc:        "rate below range",
			cmd:         SetRate{Rate: -101},
			expectedErr: ErrRateOutOfRange,
		},
		{
			desc:        "pitch out of range",
			cmd:         SetPitch{Pitch: 200},
			expectedErr: ErrPitchOutOfRange,
		},
		{
			desc:        "volume out of range",
			cmd:         SetVolume{Volume: -200},
			expectedErr: ErrVolumeOutOfRange,
		},
		{
			desc:        "negative pause context",
			cmd:         SetPauseContext{Context: -1},
			expectedErr: ErrPauseContextOutOfRange,
		},
		{
			desc:        "speak text with carriage return",
			cmd:         Speak{Text: "bad\r\nline"},
			expectedErr: ErrTextHasCarriageReturn,
		},
		{
			desc:        "client name part with colon",
			cmd:         SetClientName{Name: ClientName{User: "a:b", Application: "app", Component: "main"}},
			expectedErr: ErrArgHasReservedChar,
		},
		{
			desc:        "client name part empty",
			cmd:         SetClientName{Name: ClientName{User: "joe", Application: "", Component: "main"}},
			expectedErr: ErrEmptyArgument,
		},
		{
			desc:        "key name with space",
			cmd:         Key{Name: "bad key"},
			expectedErr: ErrArgHasReservedChar,
		},
		{
			desc:        "key name with newline",
			cmd:         Key{Name: "bad\nkey"},
			expectedErr: ErrArgHasLineBreak,
		},
		{
			desc:        "empty sound icon name",
			cmd:         SoundIcon{Name: ""},
			expectedErr: ErrEmptyArgument,
		},
		{
			desc:        "language with line break",
			cmd:         SetLanguage{Language: "en\n"},
			expectedErr: ErrArgHasLineBreak,
		},
		{
			desc:        "scope with space",
			cmd:         Stop{Scope: MessageScope("bad scope")},
			expectedErr: ErrArgHasReservedChar,
		},
		{
			desc:        "zero char",
			cmd:         Char{},
			expectedErr: ErrNotSingleChar,
		},
		{
			desc:        "newline char",
			cmd:         Char{Char: '\n'},
			expectedErr: ErrArgHasLineBreak,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			lines, body, err := EncodeCommand(test.cmd)
			require.ErrorIs(t, err, test.expectedErr)
			require.Nil(t, lines)
			require.Nil(t, body)
		})
	}
}

func TestEscapeLine(t *testing.T) {
	assert.Equal(t, "hello", EscapeLine("hello"))
	assert.Equal(t, "..", EscapeLine("."))
	assert.Equal(t, "...", EscapeLine(".."))
	assert.Equal(t, "..dot", EscapeLine(".dot"))
	assert.Equal(t, "", EscapeLine(""))

	// escaping then unescaping is the identity
	for _, line := range []string{"hello", ".", "..", ".dot", "", "a.b"} {
		assert.Equal(t, line, UnescapeLine(EscapeLine(line)), "line %q", line)
	}
}
