package ssip

import "strings"

// SynthesisVoice describes one concrete synthesis voice as reported by the
// LIST SYNTHESIS_VOICES response.
type SynthesisVoice struct {
	// Name is the voice name, used with SetSynthesisVoice.
	Name string
	// Language is the RFC 1766 language code, empty when unknown.
	Language string
	// Dialect is the voice dialect or variant, empty when unknown.
	Dialect string
}

// ParseSynthesisVoice parses one voice list line. The wire format is
// tab-separated: name, language, dialect. The literal token "none" and
// missing fields both map to an empty string.
func ParseSynthesisVoice(line string) SynthesisVoice {
	fields := strings.SplitN(line, "\t", 3)

	voice := SynthesisVoice{Name: fields[0]}
	if len(fields) > 1 {
		voice.Language = noneToEmpty(fields[1])
	}
	if len(fields) > 2 {
		voice.Dialect = noneToEmpty(fields[2])
	}

	return voice
}

// ParseSynthesisVoices parses every body line of a voice list response.
func ParseSynthesisVoices(body []string) []SynthesisVoice {
	voices := make([]SynthesisVoice, 0, len(body))
	for _, line := range body {
		voices = append(voices, ParseSynthesisVoice(line))
	}

	return voices
}

func noneToEmpty(s string) string {
	if s == "none" {
		return ""
	}
	return s
}
