package client

import "errors"

var (
	// ErrConnClosed indicates that the connection is closed. It is returned
	// for sends on a closed client and when the stream closes while a
	// command is awaiting its terminal status line.
	ErrConnClosed = errors.New("connection closed")

	// ErrStreamNil indicates that a nil stream was provided.
	ErrStreamNil = errors.New("stream is nil")

	// ErrClientConfigNil indicates that a nil ClientConfig was provided to
	// an option.
	ErrClientConfigNil = errors.New("client config is nil")

	// ErrUnexpectedContinue indicates that the server requested more data
	// for a command that carries no text body.
	ErrUnexpectedContinue = errors.New("server requested data for a command without a body")

	// ErrWaiterExists indicates that another WaitEvent call is already
	// registered for the same message identifier.
	ErrWaiterExists = errors.New("a waiter is already registered for this message")
)
