package ssip

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatusCode indicates that a status code is outside the valid
	// range of [100, 599].
	ErrInvalidStatusCode = errors.New("invalid status code, should be in range of [100, 599]")

	// ErrNotStatusLine indicates that a received line does not start with a
	// 3-digit status code followed by a space or dash separator.
	//
	// The client driver treats such lines as event-notification candidates
	// instead of response lines.
	ErrNotStatusLine = errors.New("line is not a status line")
)

var (
	// ErrRateOutOfRange indicates that a speech rate is outside [-100, 100].
	ErrRateOutOfRange = errors.New("rate out of range [-100, 100]")

	// ErrPitchOutOfRange indicates that a speech pitch is outside [-100, 100].
	ErrPitchOutOfRange = errors.New("pitch out of range [-100, 100]")

	// ErrVolumeOutOfRange indicates that a speech volume is outside [-100, 100].
	ErrVolumeOutOfRange = errors.New("volume out of range [-100, 100]")

	// ErrPauseContextOutOfRange indicates that a pause context is negative.
	ErrPauseContextOutOfRange = errors.New("pause context should be a non-negative number")

	// ErrArgHasLineBreak indicates that a single-line command argument
	// contains a raw CR or LF byte and cannot be represented as one
	// protocol line.
	ErrArgHasLineBreak = errors.New("argument contains a line break")

	// ErrTextHasCarriageReturn indicates that a text body contains a raw CR
	// byte, which collides with the protocol line terminator.
	ErrTextHasCarriageReturn = errors.New("text contains a carriage return")

	// ErrEmptyArgument indicates that a required command argument is empty.
	ErrEmptyArgument = errors.New("argument is empty")

	// ErrArgHasReservedChar indicates that a command argument contains a
	// character reserved by its wire grammar, e.g. a colon inside a client
	// name part or a space inside a scope.
	ErrArgHasReservedChar = errors.New("argument contains a reserved character")

	// ErrNotSingleChar indicates that a character command argument is not
	// exactly one character.
	ErrNotSingleChar = errors.New("argument is not a single character")
)

// ProtocolError indicates that a received line violates the response or
// event framing grammar. It carries the offending raw line for diagnostics.
type ProtocolError struct {
	// Line is the raw line, without the line terminator.
	Line string
	// Reason describes the grammar violation.
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s: %q", e.Reason, e.Line)
}

// StatusError indicates that the server rejected a well-formed command with
// a 4xx or 5xx terminal status line.
type StatusError struct {
	// Code is the terminal status code.
	Code StatusCode
	// Message is the human-readable text of the terminal status line.
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("command rejected: %d %s", e.Code, e.Message)
}

// IsClientError returns true if the rejection is a client error (4xx).
func (e *StatusError) IsClientError() bool { return e.Code.ClassOrUnknown() == ClassClientError }

// IsServerError returns true if the rejection is a server error (5xx).
func (e *StatusError) IsServerError() bool { return e.Code.ClassOrUnknown() == ClassServerError }
