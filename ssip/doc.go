// Package ssip implements the protocol core of SSIP, the line-oriented text
// protocol used to control a speech-synthesis daemon.
//
// It provides the pieces the client driver in package client is built on:
//
//   - Command: a closed set of typed command variants (speak, parameter
//     setting, playback control, listing, session control).
//   - EncodeCommand: renders a command into exact wire lines, including
//     dot-stuffed text bodies for SPEAK.
//   - StatusCode: the 3-digit status code model, partitioned into success
//     (1xx/2xx), continue (3xx), client error (4xx) and server error (5xx)
//     classes, plus named constants for protocol-significant exact codes.
//   - ResponseParser: the framing state machine distinguishing single-line
//     responses ("DDD TEXT"), multi-line responses accumulated from
//     continuation lines ("DDD-TEXT"), and interleaved event notifications.
//   - ParseEvent: the keyword-first event notification grammar.
//
// Wire syntax, per line and terminated by CRLF:
//
//	command:      <VERB> [<ARG> ...]
//	text body:    payload lines, "." escaped to "..", terminated by "."
//	response:     "DDD TEXT" (terminal) or "DDD-TEXT" (continuation)
//	notification: <EVENT-KEYWORD> <message-id> <client-id> [<mark>]
//
// All functions and types in this package are pure protocol transformations
// and perform no I/O.
package ssip
