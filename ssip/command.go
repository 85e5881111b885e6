package ssip

// MessageID is an opaque message identifier assigned by the server when a
// message is queued. It is used for correlation and display only.
type MessageID = string

// ClientID is an opaque client identifier assigned by the server.
type ClientID = string

// MessageScope addresses one or more queued messages in commands like STOP,
// CANCEL, PAUSE and RESUME.
type MessageScope string

// Message scopes.
const (
	// ScopeLastMessage addresses the last message from the current client.
	ScopeLastMessage MessageScope = "self"
	// ScopeAllMessages addresses messages from all clients.
	ScopeAllMessages MessageScope = "all"
)

// ScopeMessage addresses a specific message by its identifier.
func ScopeMessage(id MessageID) MessageScope { return MessageScope(id) }

// ClientScope addresses one or more client connections in SET commands.
type ClientScope string

// Client scopes.
const (
	// ScopeSelf addresses the current client connection.
	ScopeSelf ClientScope = "self"
	// ScopeAll addresses all client connections.
	ScopeAll ClientScope = "all"
)

// ScopeClient addresses a specific client by its identifier.
func ScopeClient(id ClientID) ClientScope { return ClientScope(id) }

// Priority represents a message priority.
type Priority string

// Message priorities, ordered from least to most intrusive.
const (
	PriorityProgress     Priority = "progress"
	PriorityNotification Priority = "notification"
	PriorityMessage      Priority = "message"
	PriorityText         Priority = "text"
	PriorityImportant    Priority = "important"
)

// PunctuationMode represents a punctuation verbosity mode.
type PunctuationMode string

// Punctuation modes.
const (
	PunctuationNone PunctuationMode = "none"
	PunctuationSome PunctuationMode = "some"
	PunctuationMost PunctuationMode = "most"
	PunctuationAll  PunctuationMode = "all"
)

// CapLetRecognMode represents a capital letters recognition mode.
type CapLetRecognMode string

// Capital letters recognition modes.
const (
	CapLetRecognNone  CapLetRecognMode = "none"
	CapLetRecognSpell CapLetRecognMode = "spell"
	CapLetRecognIcon  CapLetRecognMode = "icon"
)

// NotificationType selects which event notifications the server delivers.
type NotificationType string

// Notification types.
const (
	NotificationBegin     NotificationType = "begin"
	NotificationEnd       NotificationType = "end"
	NotificationCancel    NotificationType = "cancel"
	NotificationPause     NotificationType = "pause"
	NotificationResume    NotificationType = "resume"
	NotificationIndexMark NotificationType = "index_mark"
	NotificationAll       NotificationType = "all"
)

// VoiceType represents a symbolic voice name.
type VoiceType string

// Symbolic voice types.
const (
	VoiceMale1       VoiceType = "male1"
	VoiceMale2       VoiceType = "male2"
	VoiceMale3       VoiceType = "male3"
	VoiceFemale1     VoiceType = "female1"
	VoiceFemale2     VoiceType = "female2"
	VoiceFemale3     VoiceType = "female3"
	VoiceChildMale   VoiceType = "child_male"
	VoiceChildFemale VoiceType = "child_female"
)

// ClientName identifies a client connection to the server as a
// user:application:component triple.
type ClientName struct {
	User        string
	Application string
	Component   string
}

// NewClientName creates a ClientName with the default "main" component.
func NewClientName(user, application string) ClientName {
	return ClientName{User: user, Application: application, Component: "main"}
}

// Command is a single protocol command. It is a closed set of variants;
// the encoder handles every variant exhaustively and a new variant cannot
// be defined outside this package.
//
// Command values are immutable once constructed and carry only the
// parameters their operation requires.
type Command interface {
	// encode renders the command line, without the line terminator.
	// Implementing it restricts the set of commands to this package.
	encode() (string, error)
}

// SetClientName identifies the client to the server. It should be the first
// command sent on a fresh connection.
type SetClientName struct {
	Name ClientName
}

// Speak queues a text message. The text may span multiple lines; the encoder
// splits it into a dot-stuffed body terminated by a lone "." line.
type Speak struct {
	Text string
}

// Char speaks a single character.
type Char struct {
	Char rune
}

// Key speaks a symbolic key name, e.g. "space" or "kp-enter".
type Key struct {
	Name string
}

// SoundIcon plays a named sound icon.
type SoundIcon struct {
	Name string
}

// Stop immediately stops the addressed messages.
type Stop struct {
	Scope MessageScope
}

// Cancel stops the addressed messages and discards them from the queue.
type Cancel struct {
	Scope MessageScope
}

// Pause pauses speaking of the addressed messages.
type Pause struct {
	Scope MessageScope
}

// Resume resumes previously paused messages.
type Resume struct {
	Scope MessageScope
}

// SetPriority sets the priority of subsequent messages from this client.
type SetPriority struct {
	Priority Priority
}

// SetLanguage sets the speech language as an RFC 1766 code, e.g. "en".
type SetLanguage struct {
	Scope    ClientScope
	Language string
}

// SetRate sets the speech rate in [-100, 100].
type SetRate struct {
	Scope ClientScope
	Rate  int
}

// SetPitch sets the speech pitch in [-100, 100].
type SetPitch struct {
	Scope ClientScope
	Pitch int
}

// SetVolume sets the speech volume in [-100, 100].
type SetVolume struct {
	Scope  ClientScope
	Volume int
}

// SetPunctuation sets the punctuation verbosity mode.
type SetPunctuation struct {
	Scope ClientScope
	Mode  PunctuationMode
}

// SetCapLetRecogn sets the capital letters recognition mode.
type SetCapLetRecogn struct {
	Scope ClientScope
	Mode  CapLetRecognMode
}

// SetSpelling enables or disables spelling mode.
type SetSpelling struct {
	Scope ClientScope
	On    bool
}

// SetSSMLMode enables or disables SSML interpretation of message bodies.
type SetSSMLMode struct {
	On bool
}

// SetPauseContext sets the number of words repeated when a paused message
// is resumed. The value must be non-negative.
type SetPauseContext struct {
	Scope   ClientScope
	Context int
}

// SetNotification enables or disables delivery of one event notification
// type for this client.
type SetNotification struct {
	Type NotificationType
	On   bool
}

// SetOutputModule selects the synthesizer output module by name.
type SetOutputModule struct {
	Scope  ClientScope
	Module string
}

// SetSynthesisVoice selects a concrete synthesis voice by name, as listed
// by ListSynthesisVoices.
type SetSynthesisVoice struct {
	Scope ClientScope
	Voice string
}

// SetVoiceType selects a symbolic voice type.
type SetVoiceType struct {
	Scope ClientScope
	Voice VoiceType
}

// SetDebug enables or disables server debug logging.
type SetDebug struct {
	On bool
}

// ListOutputModules requests the list of available output modules.
type ListOutputModules struct{}

// ListSynthesisVoices requests the list of concrete synthesis voices for
// the current output module.
type ListSynthesisVoices struct{}

// ListVoiceTypes requests the list of symbolic voice types.
type ListVoiceTypes struct{}

// BlockBegin opens a block; messages inside a block are spoken as one
// uninterruptible unit.
type BlockBegin struct{}

// BlockEnd closes the current block.
type BlockEnd struct{}

// Quit ends the session. The server acknowledges and closes the connection.
type Quit struct{}
