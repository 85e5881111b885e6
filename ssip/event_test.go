package ssip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		desc     string
		line     string
		expected Event
	}{
		{
			desc:     "begin",
			line:     "BEGIN 21 5",
			expected: Event{Type: EventBegin, MessageID: "21", ClientID: "5"},
		},
		{
			desc:     "end",
			line:     "END 21 5",
			expected: Event{Type: EventEnd, MessageID: "21", ClientID: "5"},
		},
		{
			desc:     "cancel",
			line:     "CANCEL 7 2",
			expected: Event{Type: EventCancel, MessageID: "7", ClientID: "2"},
		},
		{
			desc:     "pause",
			line:     "PAUSE 7 2",
			expected: Event{Type: EventPause, MessageID: "7", ClientID: "2"},
		},
		{
			desc:     "resume",
			line:     "RESUME 7 2",
			expected: Event{Type: EventResume, MessageID: "7", ClientID: "2"},
		},
		{
			desc:     "index mark",
			line:     "INDEX_MARK 21 5 chapter-2",
			expected: Event{Type: EventIndexMark, MessageID: "21", ClientID: "5", IndexMark: "chapter-2"},
		},
		{
			desc:     "extra whitespace between fields",
			line:     "BEGIN  21   5",
			expected: Event{Type: EventBegin, MessageID: "21", ClientID: "5"},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ev, err := ParseEvent(test.line)
			require.NoError(t, err)
			require.Equal(t, test.expected, ev)
		})
	}
}

func TestParseEvent_Errors(t *testing.T) {
	tests := []struct {
		desc string
		line string
	}{
		{desc: "empty line", line: ""},
		{desc: "whitespace only", line: "   "},
		{desc: "unknown keyword", line: "SPOKEN 21 5"},
		{desc: "lowercase keyword", line: "begin 21 5"},
		{desc: "missing client id", line: "BEGIN 21"},
		{desc: "missing identifiers", line: "END"},
		{desc: "index mark without mark name", line: "INDEX_MARK 21 5"},
		{desc: "trailing fields", line: "BEGIN 21 5 extra"},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ev, err := ParseEvent(test.line)
			require.Error(t, err)
			require.Equal(t, Event{}, ev)

			var perr *ProtocolError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, test.line, perr.Line)
		})
	}
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "BEGIN", EventBegin.String())
	assert.Equal(t, "END", EventEnd.String())
	assert.Equal(t, "CANCEL", EventCancel.String())
	assert.Equal(t, "PAUSE", EventPause.String())
	assert.Equal(t, "RESUME", EventResume.String())
	assert.Equal(t, "INDEX_MARK", EventIndexMark.String())
	assert.Equal(t, "unknown", EventType(200).String())
}
