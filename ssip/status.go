package ssip

// StatusCode represents the 3-digit numeric code of a response status line.
type StatusCode int

// StatusClass represents the outcome class of a status code, determined
// solely by its hundreds digit.
type StatusClass int

// Status code classes.
const (
	// ClassUnknown indicates a code outside the valid range of [100, 599].
	ClassUnknown StatusClass = iota
	// ClassSuccess indicates a 1xx informational or 2xx success code.
	ClassSuccess
	// ClassContinue indicates a 3xx code: the server expects more data,
	// e.g. the text body following a SPEAK command.
	ClassContinue
	// ClassClientError indicates a 4xx code: the command was rejected
	// because the request was wrong.
	ClassClientError
	// ClassServerError indicates a 5xx code: the command failed on the
	// server side.
	ClassServerError
)

// String returns string representation of the status class.
func (sc StatusClass) String() string {
	switch sc {
	case ClassSuccess:
		return "success"
	case ClassContinue:
		return "continue"
	case ClassClientError:
		return "client-error"
	case ClassServerError:
		return "server-error"
	default:
		return "unknown"
	}
}

// Class returns the status class of the code.
//
// It returns ErrInvalidStatusCode if the code is outside [100, 599].
func (c StatusCode) Class() (StatusClass, error) {
	switch {
	case c >= 100 && c <= 299:
		return ClassSuccess, nil
	case c >= 300 && c <= 399:
		return ClassContinue, nil
	case c >= 400 && c <= 499:
		return ClassClientError, nil
	case c >= 500 && c <= 599:
		return ClassServerError, nil
	default:
		return ClassUnknown, ErrInvalidStatusCode
	}
}

// ClassOrUnknown returns the status class of the code, mapping out-of-range
// codes to ClassUnknown instead of returning an error.
func (c StatusCode) ClassOrUnknown() StatusClass {
	class, _ := c.Class()
	return class
}

// IsSuccess returns true if the code is a 1xx or 2xx success code.
func (c StatusCode) IsSuccess() bool { return c.ClassOrUnknown() == ClassSuccess }

// IsContinue returns true if the code is a 3xx "send more data" code.
func (c StatusCode) IsContinue() bool { return c.ClassOrUnknown() == ClassContinue }

// IsError returns true if the code is a 4xx client error or a 5xx server
// error.
func (c StatusCode) IsError() bool {
	class := c.ClassOrUnknown()
	return class == ClassClientError || class == ClassServerError
}

// Success codes acknowledging completed commands.
const (
	// CodeOK is the generic success acknowledgement.
	CodeOK StatusCode = 200
	// CodeOKLanguageSet acknowledges SET ... LANGUAGE.
	CodeOKLanguageSet StatusCode = 201
	// CodeOKPrioritySet acknowledges SET self PRIORITY.
	CodeOKPrioritySet StatusCode = 202
	// CodeOKRateSet acknowledges SET ... RATE.
	CodeOKRateSet StatusCode = 203
	// CodeOKPitchSet acknowledges SET ... PITCH.
	CodeOKPitchSet StatusCode = 204
	// CodeOKPunctuationSet acknowledges SET ... PUNCTUATION.
	CodeOKPunctuationSet StatusCode = 205
	// CodeOKCapLetRecognSet acknowledges SET ... CAP_LET_RECOGN.
	CodeOKCapLetRecognSet StatusCode = 206
	// CodeOKSpellingSet acknowledges SET ... SPELLING.
	CodeOKSpellingSet StatusCode = 207
	// CodeOKClientNameSet acknowledges SET self CLIENT_NAME.
	CodeOKClientNameSet StatusCode = 208
	// CodeOKVoiceSet acknowledges SET ... VOICE and SET ... SYNTHESIS_VOICE.
	CodeOKVoiceSet StatusCode = 209
	// CodeOKStopped acknowledges STOP.
	CodeOKStopped StatusCode = 210
	// CodeOKPaused acknowledges PAUSE.
	CodeOKPaused StatusCode = 211
	// CodeOKResumed acknowledges RESUME.
	CodeOKResumed StatusCode = 212
	// CodeOKCanceled acknowledges CANCEL.
	CodeOKCanceled StatusCode = 213
	// CodeOKOutputModuleSet acknowledges SET ... OUTPUT_MODULE.
	CodeOKOutputModuleSet StatusCode = 216
	// CodeOKPauseContextSet acknowledges SET ... PAUSE_CONTEXT.
	CodeOKPauseContextSet StatusCode = 217
	// CodeOKVolumeSet acknowledges SET ... VOLUME.
	CodeOKVolumeSet StatusCode = 218
	// CodeOKSSMLModeSet acknowledges SET self SSML_MODE.
	CodeOKSSMLModeSet StatusCode = 219
	// CodeOKNotificationSet acknowledges SET self NOTIFICATION.
	CodeOKNotificationSet StatusCode = 220
	// CodeOKMessageQueued acknowledges a queued speech message. The message
	// identifier is carried in the response body.
	CodeOKMessageQueued StatusCode = 225
	// CodeOKSoundIconQueued acknowledges a queued sound icon.
	CodeOKSoundIconQueued StatusCode = 226
	// CodeOKCharQueued acknowledges a queued character.
	CodeOKCharQueued StatusCode = 227
	// CodeOKKeyQueued acknowledges a queued key name.
	CodeOKKeyQueued StatusCode = 228
	// CodeOKBye acknowledges QUIT; the server closes the connection next.
	CodeOKBye StatusCode = 231
	// CodeOKClientListSent introduces the client list response.
	CodeOKClientListSent StatusCode = 240
	// CodeOKMessageListSent introduces the message list response.
	CodeOKMessageListSent StatusCode = 241
	// CodeOKHelpSent introduces the help text response.
	CodeOKHelpSent StatusCode = 248
	// CodeOKVoiceListSent introduces the voice list response.
	CodeOKVoiceListSent StatusCode = 249
	// CodeOKModuleListSent introduces the output module list response.
	CodeOKModuleListSent StatusCode = 250
	// CodeOKInsideBlock acknowledges BLOCK BEGIN.
	CodeOKInsideBlock StatusCode = 260
	// CodeOKOutsideBlock acknowledges BLOCK END.
	CodeOKOutsideBlock StatusCode = 261
	// CodeOKDebugSet acknowledges SET all DEBUG.
	CodeOKDebugSet StatusCode = 262
)

// Continue codes prompting the client to send more data.
const (
	// CodeReceivingData prompts for the text body after a SPEAK command.
	// The body is terminated by a line containing a single dot.
	CodeReceivingData StatusCode = 330
)

// Client error codes (4xx).
const (
	// CodeErrNoClient indicates that no client is connected under this name.
	CodeErrNoClient StatusCode = 401
	// CodeErrNoSuchClient indicates that the addressed client does not exist.
	CodeErrNoSuchClient StatusCode = 402
	// CodeErrNoMessage indicates that the addressed message does not exist.
	CodeErrNoMessage StatusCode = 403
	// CodeErrPosLow indicates that a history cursor moved below the start.
	CodeErrPosLow StatusCode = 404
	// CodeErrPosHigh indicates that a history cursor moved past the end.
	CodeErrPosHigh StatusCode = 405
	// CodeErrIDNotExist indicates that the given identifier does not exist.
	CodeErrIDNotExist StatusCode = 406
	// CodeErrUnknownIcon indicates an unknown sound icon name.
	CodeErrUnknownIcon StatusCode = 407
	// CodeErrUnknownPriority indicates an unknown priority value.
	CodeErrUnknownPriority StatusCode = 408
	// CodeErrRateTooHigh indicates a rate above the supported maximum.
	CodeErrRateTooHigh StatusCode = 409
	// CodeErrRateTooLow indicates a rate below the supported minimum.
	CodeErrRateTooLow StatusCode = 410
	// CodeErrPitchTooHigh indicates a pitch above the supported maximum.
	CodeErrPitchTooHigh StatusCode = 411
	// CodeErrPitchTooLow indicates a pitch below the supported minimum.
	CodeErrPitchTooLow StatusCode = 412
	// CodeErrVolumeTooHigh indicates a volume above the supported maximum.
	CodeErrVolumeTooHigh StatusCode = 413
	// CodeErrVolumeTooLow indicates a volume below the supported minimum.
	CodeErrVolumeTooLow StatusCode = 414
	// CodeErrInvalidCommand indicates an unrecognized command verb.
	CodeErrInvalidCommand StatusCode = 420
	// CodeErrInvalidEncoding indicates invalid text encoding.
	CodeErrInvalidEncoding StatusCode = 421
	// CodeErrMissingParameter indicates a missing command parameter.
	CodeErrMissingParameter StatusCode = 422
	// CodeErrNotANumber indicates a non-numeric value for a numeric parameter.
	CodeErrNotANumber StatusCode = 423
	// CodeErrNotAString indicates a non-string value for a string parameter.
	CodeErrNotAString StatusCode = 424
	// CodeErrParameterNotOnOff indicates a boolean parameter that is neither
	// "on" nor "off".
	CodeErrParameterNotOnOff StatusCode = 425
	// CodeErrParameterInvalid indicates an otherwise invalid parameter value.
	CodeErrParameterInvalid StatusCode = 426
)

// Server error codes (5xx).
const (
	// CodeErrInternal indicates an internal server error.
	CodeErrInternal StatusCode = 500
	// CodeErrCouldntSetPriority indicates the server failed to set priority.
	CodeErrCouldntSetPriority StatusCode = 501
	// CodeErrCouldntSetLanguage indicates the server failed to set language.
	CodeErrCouldntSetLanguage StatusCode = 502
	// CodeErrCouldntSetRate indicates the server failed to set rate.
	CodeErrCouldntSetRate StatusCode = 503
	// CodeErrCouldntSetPitch indicates the server failed to set pitch.
	CodeErrCouldntSetPitch StatusCode = 504
	// CodeErrCouldntSetPunctuation indicates the server failed to set
	// punctuation mode.
	CodeErrCouldntSetPunctuation StatusCode = 505
	// CodeErrCouldntSetCapLetRecogn indicates the server failed to set
	// capital letters recognition mode.
	CodeErrCouldntSetCapLetRecogn StatusCode = 506
	// CodeErrCouldntSetSpelling indicates the server failed to set spelling.
	CodeErrCouldntSetSpelling StatusCode = 508
	// CodeErrCouldntSetVoice indicates the server failed to set the voice.
	CodeErrCouldntSetVoice StatusCode = 509
	// CodeErrCouldntSetClientName indicates the server failed to set the
	// client name.
	CodeErrCouldntSetClientName StatusCode = 511
	// CodeErrCouldntSetOutputModule indicates the server failed to set the
	// output module.
	CodeErrCouldntSetOutputModule StatusCode = 512
	// CodeErrNoSoundIcons indicates that no sound icons are available.
	CodeErrNoSoundIcons StatusCode = 514
	// CodeErrCantReportVoices indicates the server cannot list voices.
	CodeErrCantReportVoices StatusCode = 515
	// CodeErrNoOutputModule indicates that no output module is loaded.
	CodeErrNoOutputModule StatusCode = 516
	// CodeErrAlreadyInsideBlock indicates a BLOCK BEGIN inside a block.
	CodeErrAlreadyInsideBlock StatusCode = 517
	// CodeErrAlreadyOutsideBlock indicates a BLOCK END outside a block.
	CodeErrAlreadyOutsideBlock StatusCode = 518
	// CodeErrNotAllowedInsideBlock indicates a command forbidden in a block.
	CodeErrNotAllowedInsideBlock StatusCode = 519
	// CodeErrCouldntSetVolume indicates the server failed to set volume.
	CodeErrCouldntSetVolume StatusCode = 521
	// CodeErrCouldntSetSSMLMode indicates the server failed to set SSML mode.
	CodeErrCouldntSetSSMLMode StatusCode = 522
	// CodeErrCouldntSetNotification indicates the server failed to set
	// event notification.
	CodeErrCouldntSetNotification StatusCode = 523
	// CodeErrCouldntSetDebug indicates the server failed to set debug mode.
	CodeErrCouldntSetDebug StatusCode = 524
)
