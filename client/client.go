package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-ssip/internal/pool"
	"github.com/arloliu/go-ssip/internal/queue"
	"github.com/arloliu/go-ssip/internal/util"
	"github.com/arloliu/go-ssip/logger"
	"github.com/arloliu/go-ssip/ssip"
)

// waiterChanSize is the buffer size of a WaitEvent delivery channel. A
// message can produce several lifecycle events between two channel reads.
const waiterChanSize = 8

// EventHandler is a function type invoked for every demultiplexed event
// notification.
//
// Note: handlers are invoked in blocking mode on the read path. Take care
// with long-running implementations.
type EventHandler func(ev ssip.Event)

// Client is the command-sequencing layer of the SSIP connection.
//
// A Client owns the response parser and the stream exclusively. Commands
// are serialized: at most one command is in flight at a time, enforced by
// an internal mutex, because the protocol defines no multiplexing of
// concurrent requests on one connection.
//
// Event notifications arriving on the shared stream never complete a
// command exchange; they are demultiplexed into a bounded pending queue
// (drained by PollEvents), registered handlers, and per-message waiters.
type Client struct {
	mu     sync.Mutex // serializes command exchanges and stream reads
	cfg    *ClientConfig
	stream LineReadWriter
	parser *ssip.ResponseParser
	logger logger.Logger

	events  queue.Queue[ssip.Event]
	waiters *xsync.MapOf[ssip.MessageID, chan ssip.Event]

	handlerMu sync.Mutex
	handlers  []EventHandler

	closed atomic.Bool
}

// NewClient creates a client on top of an established line stream.
//
// The cfg parameter may be nil, in which case a default configuration is
// used.
func NewClient(stream LineReadWriter, cfg *ClientConfig) (*Client, error) {
	if stream == nil {
		return nil, ErrStreamNil
	}

	if cfg == nil {
		var err error
		cfg, err = NewClientConfig()
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		cfg:     cfg,
		stream:  stream,
		parser:  ssip.NewResponseParser(),
		logger:  cfg.Logger(),
		events:  queue.NewLockFreeQueue[ssip.Event](),
		waiters: xsync.NewMapOf[ssip.MessageID, chan ssip.Event](),
	}, nil
}

// Send encodes one command, writes it to the stream, and blocks until its
// complete response arrives.
//
// Event notifications received while waiting are queued and never complete
// the exchange. On a 3xx status the command's text body is written and the
// final response awaited. A 4xx/5xx terminal status is returned as a
// *ssip.StatusError.
//
// Concurrent Send calls are serialized; the protocol allows only one
// command in flight per connection.
func (c *Client) Send(cmd ssip.Command) (*ssip.Response, error) {
	lines, body, err := ssip.EncodeCommand(cmd)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.exchange(lines, body)
}

// exchange runs one command/response exchange. The caller must hold c.mu.
func (c *Client) exchange(lines []string, body []string) (*ssip.Response, error) {
	if c.closed.Load() {
		return nil, ErrConnClosed
	}

	if err := c.writeLines(lines); err != nil {
		return nil, err
	}
	c.logger.Debug("command sent", "line", lines[0])

	resp, err := c.readResponse()
	if err != nil {
		return nil, err
	}

	if resp.Code.IsContinue() {
		if len(body) == 0 {
			return nil, ErrUnexpectedContinue
		}

		if err := c.writeLines(body); err != nil {
			return nil, err
		}
		c.logger.Debug("body sent", "lines", len(body))

		resp, err = c.readResponse()
		if err != nil {
			return nil, err
		}
	}

	if resp.Code.IsError() {
		return nil, &ssip.StatusError{Code: resp.Code, Message: resp.Text}
	}

	return resp, nil
}

// writeLines writes and flushes the given lines. The caller must hold c.mu.
func (c *Client) writeLines(lines []string) error {
	for _, line := range lines {
		if err := c.stream.WriteLine(line); err != nil {
			return c.transportErr("write line", err)
		}
	}

	if err := c.stream.Flush(); err != nil {
		return c.transportErr("flush", err)
	}

	return nil
}

// readResponse pumps the read loop until the parser completes a response.
// Event notification lines are dispatched along the way. The caller must
// hold c.mu.
func (c *Client) readResponse() (*ssip.Response, error) {
	for {
		line, err := c.stream.ReadLine()
		if err != nil {
			return nil, c.transportErr("read line", err)
		}

		resp, err := c.parser.Feed(line)
		switch {
		case errors.Is(err, ssip.ErrNotStatusLine):
			if err := c.dispatchLine(line); err != nil {
				return nil, err
			}
		case err != nil:
			c.logger.Error("malformed response line", "line", line, "error", err)
			return nil, err
		case resp != nil:
			c.logger.Debug("response received", "code", int(resp.Code), "text", resp.Text)
			return resp, nil
		}
	}
}

// pumpOne reads and dispatches exactly one line while no command is in
// flight. The caller must hold c.mu.
func (c *Client) pumpOne() error {
	if c.closed.Load() {
		return ErrConnClosed
	}

	line, err := c.stream.ReadLine()
	if err != nil {
		return c.transportErr("read line", err)
	}

	_, err = c.parser.Feed(line)
	if errors.Is(err, ssip.ErrNotStatusLine) {
		return c.dispatchLine(line)
	}
	if err != nil {
		return err
	}

	// A status line with no command in flight violates the framing rules.
	c.parser.Reset()

	return &ssip.ProtocolError{Line: line, Reason: "response line with no command in flight"}
}

// dispatchLine parses a non-status line as an event notification and
// dispatches it. A line matching neither grammar is a protocol violation.
func (c *Client) dispatchLine(line string) error {
	ev, err := ssip.ParseEvent(line)
	if err != nil {
		c.logger.Error("unparsable line", "line", line, "error", err)
		return err
	}

	c.dispatchEvent(ev)

	return nil
}

// dispatchEvent routes one event to handlers, then to a registered waiter
// or, failing that, into the bounded pending queue.
func (c *Client) dispatchEvent(ev ssip.Event) {
	c.logger.Debug("event received", "type", ev.Type.String(), "msg_id", ev.MessageID, "client_id", ev.ClientID)

	for _, handler := range c.eventHandlers() {
		handler(ev)
	}

	if ch, ok := c.waiters.Load(ev.MessageID); ok {
		select {
		case ch <- ev:
			return
		default:
			// The waiter buffer is full; keep the event available to
			// PollEvents instead of discarding it.
		}
	}

	if c.events.Length() >= c.cfg.EventQueueSize() {
		if dropped, ok := c.events.Dequeue(); ok {
			c.logger.Warn("event queue full, dropping oldest event",
				"type", dropped.Type.String(), "msg_id", dropped.MessageID)
		}
	}
	c.events.Enqueue(ev)
}

// AddEventHandler adds one or more EventHandler functions to be invoked on
// every received event notification.
func (c *Client) AddEventHandler(handlers ...EventHandler) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.handlers = append(c.handlers, handlers...)
}

// eventHandlers returns a snapshot of the registered handlers.
func (c *Client) eventHandlers() []EventHandler {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()

	if len(c.handlers) == 0 {
		return nil
	}

	return util.CloneSlice(c.handlers, 0)
}

// PollEvents drains and returns the pending event notifications without
// performing new I/O.
//
// It returns nil when no events are pending. Calling it again after more
// events arrive yields the new events; the sequence is finite and
// restartable.
func (c *Client) PollEvents() []ssip.Event {
	if c.events.IsEmpty() {
		return nil
	}

	events := make([]ssip.Event, 0, c.events.Length())
	for {
		ev, ok := c.events.Dequeue()
		if !ok {
			break
		}
		events = append(events, ev)
	}

	return events
}

// WaitEvent blocks until the next event notification for the given message
// arrives or ctx is done.
//
// When no command is in flight, WaitEvent pumps the read loop itself;
// otherwise the in-flight exchange delivers the event. Only one waiter per
// message identifier may be registered at a time.
//
// The context is honored at line boundaries. A read blocked on an idle
// stream is only interrupted by transport-level deadlines or by closing
// the stream.
func (c *Client) WaitEvent(ctx context.Context, id ssip.MessageID) (ssip.Event, error) {
	ch := make(chan ssip.Event, waiterChanSize)
	if _, loaded := c.waiters.LoadOrStore(id, ch); loaded {
		return ssip.Event{}, ErrWaiterExists
	}
	defer c.waiters.Delete(id)

	for {
		select {
		case ev := <-ch:
			return ev, nil
		case <-ctx.Done():
			return ssip.Event{}, ctx.Err()
		default:
		}

		if c.mu.TryLock() {
			err := c.pumpOne()
			c.mu.Unlock()
			if err != nil {
				return ssip.Event{}, err
			}

			continue
		}

		// Another goroutine owns the stream; its read loop delivers to the
		// waiter channel. Back off with a pooled timer.
		timer := pool.GetTimer(c.cfg.WaitPollInterval())
		select {
		case ev := <-ch:
			pool.PutTimer(timer)
			return ev, nil
		case <-ctx.Done():
			pool.PutTimer(timer)
			return ssip.Event{}, ctx.Err()
		case <-timer.C:
			pool.PutTimer(timer)
		}
	}
}

// Close ends the session with a best-effort QUIT exchange and closes the
// underlying stream. Subsequent sends fail with ErrConnClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Swap(true) {
		return nil
	}

	// The server acknowledges QUIT with 231 and closes its side; failures
	// here don't prevent closing ours.
	if err := c.stream.WriteLine("QUIT"); err == nil {
		if err = c.stream.Flush(); err == nil {
			_, _ = c.readQuitAck()
		}
	}
	c.parser.Reset()

	return c.stream.Close()
}

// readQuitAck reads the QUIT acknowledgement, tolerating events that are
// still in flight.
func (c *Client) readQuitAck() (*ssip.Response, error) {
	for {
		line, err := c.stream.ReadLine()
		if err != nil {
			return nil, err
		}

		resp, err := c.parser.Feed(line)
		switch {
		case errors.Is(err, ssip.ErrNotStatusLine):
			_ = c.dispatchLine(line)
		case err != nil:
			return nil, err
		case resp != nil:
			return resp, nil
		}
	}
}

// transportErr maps a stream failure to a client error, discarding any
// in-progress parser state. A closed stream maps to ErrConnClosed; no
// partial response is ever surfaced.
func (c *Client) transportErr(op string, err error) error {
	c.parser.Reset()

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, net.ErrClosed) {
		c.closed.Store(true)
		c.logger.Debug("stream closed", "op", op)

		return ErrConnClosed
	}

	return fmt.Errorf("%s: %w", op, err)
}
