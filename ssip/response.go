package ssip

import (
	"github.com/arloliu/go-ssip/internal/queue"
)

// Response represents one complete server response: zero or more body lines
// accumulated from continuation lines, plus one terminal status line.
type Response struct {
	// Code is the 3-digit status code shared by every line of the response.
	Code StatusCode
	// Body holds the unescaped continuation-line payloads, in arrival order.
	// It is nil for a single-line response.
	Body []string
	// Text is the human-readable text of the terminal status line.
	Text string
}

// parserState represents the state of a ResponseParser.
type parserState uint8

const (
	// awaitingFirstLine is the initial state: no response line seen yet.
	awaitingFirstLine parserState = iota
	// accumulatingBody indicates at least one continuation line was seen
	// and the parser is collecting body lines.
	accumulatingBody
)

// String returns string representation of the current state.
func (ps parserState) String() string {
	switch ps {
	case awaitingFirstLine:
		return "awaiting-first-line"
	case accumulatingBody:
		return "accumulating-body"
	default:
		return "unknown"
	}
}

// ResponseParser is the response-framing state machine. It consumes one
// line at a time and produces a complete Response once the terminal status
// line is observed.
//
// Exactly one parser instance serves one connection. It is not safe for
// concurrent use; the client driver serializes access together with the
// underlying stream.
type ResponseParser struct {
	state parserState
	code  StatusCode
	body  queue.Queue[string]
}

// NewResponseParser creates a parser in the awaiting-first-line state.
func NewResponseParser() *ResponseParser {
	return &ResponseParser{body: queue.NewSliceQueue[string](4)}
}

// Feed consumes one received line, without its line terminator.
//
// It returns:
//   - (nil, nil) when the line was consumed and more lines are needed.
//   - (resp, nil) when the line completes a response. The parser resets to
//     the awaiting-first-line state before returning.
//   - (nil, ErrNotStatusLine) when the line does not carry a status-code
//     prefix at all. The line was not consumed; the caller should offer it
//     to the event notification parser instead.
//   - (nil, *ProtocolError) when the line violates the response grammar.
//     The parser state is discarded.
func (p *ResponseParser) Feed(line string) (*Response, error) {
	code, terminal, text, ok := splitStatusLine(line)
	if !ok {
		// Not status-coded. Event lines may interleave with a response at
		// any point, including between continuation lines.
		return nil, ErrNotStatusLine
	}

	if _, err := code.Class(); err != nil {
		p.Reset()
		return nil, &ProtocolError{Line: line, Reason: "status code out of range [100, 599]"}
	}

	if p.state == accumulatingBody && code != p.code {
		p.Reset()
		return nil, &ProtocolError{Line: line, Reason: "continuation code mismatch"}
	}

	if !terminal {
		p.code = code
		p.state = accumulatingBody
		p.body.Enqueue(UnescapeLine(text))

		return nil, nil
	}

	resp := &Response{Code: code, Body: p.drainBody(), Text: text}
	p.Reset()

	return resp, nil
}

// Reset discards any partially accumulated response and returns the parser
// to the awaiting-first-line state. The client driver calls it after every
// completed exchange and on transport aborts.
func (p *ResponseParser) Reset() {
	p.state = awaitingFirstLine
	p.code = 0
	p.body.Reset()
}

// drainBody moves the accumulated body lines into a slice, or nil if no
// continuation line was seen.
func (p *ResponseParser) drainBody() []string {
	if p.body.IsEmpty() {
		return nil
	}

	body := make([]string, 0, p.body.Length())
	for {
		line, ok := p.body.Dequeue()
		if !ok {
			break
		}
		body = append(body, line)
	}

	return body
}

// splitStatusLine splits a line into its 3-digit status code, terminal flag
// and text.
//
// The grammar is "DDD TEXT" for a terminal line and "DDD-TEXT" for a
// continuation line. A bare "DDD" is accepted as a terminal line with empty
// text. ok is false when the line does not start with three digits followed
// by a valid separator.
func splitStatusLine(line string) (code StatusCode, terminal bool, text string, ok bool) {
	if len(line) < 3 {
		return 0, false, "", false
	}

	for i := 0; i < 3; i++ {
		if line[i] < '0' || line[i] > '9' {
			return 0, false, "", false
		}
		code = code*10 + StatusCode(line[i]-'0')
	}

	if len(line) == 3 {
		return code, true, "", true
	}

	switch line[3] {
	case ' ':
		return code, true, line[4:], true
	case '-':
		return code, false, line[4:], true
	default:
		return 0, false, "", false
	}
}
