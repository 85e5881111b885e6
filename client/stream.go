package client

import (
	"bufio"
	"io"
	"strings"
)

// lineTerminator is the wire line terminator.
const lineTerminator = "\r\n"

// LineReadWriter is the duplex stream capability the client drives. The
// construction of the underlying transport (Unix socket, TCP, FIFO) is the
// caller's responsibility; anything that frames lines both ways works.
//
// ReadLine is the client's sole suspension point: it blocks until a full
// line arrives or the stream fails. Implementations that need hard read
// timeouts should arm deadlines on the underlying transport.
type LineReadWriter interface {
	// ReadLine blocks until one full line is available and returns it
	// without its line terminator.
	ReadLine() (string, error)
	// WriteLine buffers one line for writing, appending the line
	// terminator.
	WriteLine(line string) error
	// Flush writes any buffered lines to the underlying stream.
	Flush() error
	// Close closes the underlying stream.
	Close() error
}

// lineStream adapts any duplex byte stream into a LineReadWriter with
// buffered, CRLF-framed reads and writes.
type lineStream struct {
	rwc io.ReadWriteCloser
	br  *bufio.Reader
	bw  *bufio.Writer
}

var _ LineReadWriter = (*lineStream)(nil)

// NewLineStream adapts a duplex byte stream, typically a net.Conn connected
// to the daemon's Unix socket or TCP port, into a LineReadWriter.
func NewLineStream(rwc io.ReadWriteCloser) LineReadWriter {
	return &lineStream{
		rwc: rwc,
		br:  bufio.NewReader(rwc),
		bw:  bufio.NewWriter(rwc),
	}
}

func (s *lineStream) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err != nil {
		// A partial line without terminator is a truncated stream, not a
		// frame; surface the error and discard the fragment.
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func (s *lineStream) WriteLine(line string) error {
	if _, err := s.bw.WriteString(line); err != nil {
		return err
	}
	_, err := s.bw.WriteString(lineTerminator)

	return err
}

func (s *lineStream) Flush() error {
	return s.bw.Flush()
}

func (s *lineStream) Close() error {
	return s.rwc.Close()
}
