package client

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineStream_WriteLine(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	stream := NewLineStream(clientConn)

	received := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := serverConn.Read(buf)
		received <- buf[:n]
	}()

	require.NoError(t, stream.WriteLine("SPEAK"))
	require.NoError(t, stream.WriteLine("hello"))
	require.NoError(t, stream.Flush())

	require.Equal(t, []byte("SPEAK\r\nhello\r\n"), <-received)
}

func TestLineStream_ReadLine(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	stream := NewLineStream(clientConn)

	go func() {
		serverConn.Write([]byte("200 OK\r\nBEGIN 21 5\r\nbare\n"))
		serverConn.Close()
	}()

	line, err := stream.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "200 OK", line)

	line, err = stream.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "BEGIN 21 5", line)

	// a lone LF still frames a line
	line, err = stream.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "bare", line)

	_, err = stream.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestLineStream_PartialLine(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	stream := NewLineStream(clientConn)

	go func() {
		serverConn.Write([]byte("200 OK"))
		serverConn.Close()
	}()

	line, err := stream.ReadLine()
	require.ErrorIs(t, err, io.EOF)
	require.Empty(t, line)
}
