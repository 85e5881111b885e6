package ssip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSynthesisVoice(t *testing.T) {
	tests := []struct {
		desc     string
		line     string
		expected SynthesisVoice
	}{
		{
			desc:     "full triple",
			line:     "Portuguese (Portugal)+Kaukovalta\tpt\tKaukovalta",
			expected: SynthesisVoice{Name: "Portuguese (Portugal)+Kaukovalta", Language: "pt", Dialect: "Kaukovalta"},
		},
		{
			desc:     "dialect none",
			line:     "Esperanto\teo\tnone",
			expected: SynthesisVoice{Name: "Esperanto", Language: "eo"},
		},
		{
			desc:     "language and dialect none",
			line:     "default\tnone\tnone",
			expected: SynthesisVoice{Name: "default"},
		},
		{
			desc:     "name only",
			line:     "kal_diphone",
			expected: SynthesisVoice{Name: "kal_diphone"},
		},
		{
			desc:     "name and language only",
			line:     "en+f2\ten",
			expected: SynthesisVoice{Name: "en+f2", Language: "en"},
		},
		{
			desc:     "name literally none stays",
			line:     "none\ten\tnone",
			expected: SynthesisVoice{Name: "none", Language: "en"},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require.Equal(t, test.expected, ParseSynthesisVoice(test.line))
		})
	}
}

func TestParseSynthesisVoices(t *testing.T) {
	body := []string{
		"English (America)+male1\ten-US\tmale1",
		"Esperanto\teo\tnone",
	}

	voices := ParseSynthesisVoices(body)
	require.Len(t, voices, 2)
	require.Equal(t, SynthesisVoice{Name: "English (America)+male1", Language: "en-US", Dialect: "male1"}, voices[0])
	require.Equal(t, SynthesisVoice{Name: "Esperanto", Language: "eo"}, voices[1])

	require.Empty(t, ParseSynthesisVoices(nil))
}
