package ssip

import "strings"

// EventType represents the kind of an event notification.
type EventType uint8

// Event notification kinds, covering the utterance lifecycle.
const (
	// EventBegin indicates the server started speaking a message.
	EventBegin EventType = iota
	// EventEnd indicates the server finished speaking a message.
	EventEnd
	// EventCancel indicates a message was canceled.
	EventCancel
	// EventPause indicates a message was paused.
	EventPause
	// EventResume indicates a paused message was resumed.
	EventResume
	// EventIndexMark indicates the server reached a named index mark inside
	// a message.
	EventIndexMark
)

// String returns string representation of the event type, matching its wire
// keyword.
func (et EventType) String() string {
	switch et {
	case EventBegin:
		return "BEGIN"
	case EventEnd:
		return "END"
	case EventCancel:
		return "CANCEL"
	case EventPause:
		return "PAUSE"
	case EventResume:
		return "RESUME"
	case EventIndexMark:
		return "INDEX_MARK"
	default:
		return "unknown"
	}
}

// Event represents an unsolicited event notification. Events describe the
// lifecycle of queued messages and are delivered independently of command
// responses: before, between, or interleaved with them.
type Event struct {
	// Type is the event kind.
	Type EventType
	// MessageID identifies the message the event refers to.
	MessageID MessageID
	// ClientID identifies the client connection that queued the message.
	ClientID ClientID
	// IndexMark is the mark name; set only for EventIndexMark.
	IndexMark string
}

// eventKeywords maps wire keywords to event types.
var eventKeywords = map[string]EventType{
	"BEGIN":      EventBegin,
	"END":        EventEnd,
	"CANCEL":     EventCancel,
	"PAUSE":      EventPause,
	"RESUME":     EventResume,
	"INDEX_MARK": EventIndexMark,
}

// ParseEvent parses an event notification line, without its line
// terminator.
//
// The event grammar is keyword-first and never starts with a numeric status
// code, which is what distinguishes event lines from response lines:
//
//	BEGIN <message-id> <client-id>
//	END <message-id> <client-id>
//	CANCEL <message-id> <client-id>
//	PAUSE <message-id> <client-id>
//	RESUME <message-id> <client-id>
//	INDEX_MARK <message-id> <client-id> <mark-name>
//
// A line matching neither the response nor the event grammar is a protocol
// violation; ParseEvent reports it as a *ProtocolError.
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, &ProtocolError{Line: line, Reason: "empty event line"}
	}

	etype, ok := eventKeywords[fields[0]]
	if !ok {
		return Event{}, &ProtocolError{Line: line, Reason: "unknown event keyword"}
	}

	if len(fields) < 3 {
		return Event{}, &ProtocolError{Line: line, Reason: "event line missing identifiers"}
	}

	ev := Event{Type: etype, MessageID: fields[1], ClientID: fields[2]}

	if etype == EventIndexMark {
		if len(fields) < 4 {
			return Event{}, &ProtocolError{Line: line, Reason: "index mark event missing mark name"}
		}
		ev.IndexMark = fields[3]

		return ev, nil
	}

	if len(fields) > 3 {
		return Event{}, &ProtocolError{Line: line, Reason: "trailing fields on event line"}
	}

	return ev, nil
}
