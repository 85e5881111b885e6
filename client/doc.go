// Package client provides the connection-level driver for SSIP (Speech
// Synthesizer Interface Protocol) sessions with a speech synthesis daemon.
// It builds upon the wire types of the ssip package and layers command
// sequencing, event demultiplexing and session setup on top of any
// line-oriented stream.
//
// Key Features:
//   - Command Sequencing: Serializes commands so at most one is in flight
//     per connection, as the protocol requires.
//   - Typed Operations: Offers a typed method per protocol command, from
//     Speak and Stop to voice listing and parameter setting.
//   - Event Demultiplexing: Routes asynchronous event notifications to
//     registered handlers, per-message waiters, and a bounded polling
//     queue without ever letting them complete a command exchange.
//   - Error Handling: Maps error-class statuses to *ssip.StatusError and
//     closed transports to ErrConnClosed.
//   - Session Setup: Applies a loaded config package configuration as a
//     sequence of setup commands via ApplyConfig.
//   - Customization: Offers configuration options for queue sizing, wait
//     backoff and logging.
//
// Connection Establishment:
//   - Dial the daemon yourself (Unix socket or TCP) and wrap the
//     connection with `NewLineStream`.
//   - Create a ClientConfig with desired parameters using
//     `NewClientConfig()`, or pass nil for defaults.
//   - Use the `NewClient` function to create the client, then identify it
//     with `SetClientName` before other commands.
//
// Speaking:
//   - Use `Speak` to queue a message; it returns the message identifier
//     assigned by the server.
//   - Use `SetNotification` to subscribe to lifecycle events, then
//     `WaitEvent` or `PollEvents` to observe them.
//
// Connection Termination:
//   - Call the `Close` method to end the session; it performs a
//     best-effort QUIT exchange and closes the stream.
//
// Usage Example:
//
//	func main() {
//	    conn, err := net.Dial("unix", "/run/user/1000/speech-dispatcher/speechd.sock")
//	    // ... handle error ...
//
//	    cli, err := client.NewClient(client.NewLineStream(conn), nil)
//	    // ... handle error ...
//	    defer cli.Close()
//
//	    err = cli.SetClientName(ssip.NewClientName("joe", "myapp"))
//	    // ... handle error ...
//
//	    err = cli.SetNotification(ssip.NotificationAll, true)
//	    // ... handle error ...
//
//	    id, err := cli.Speak("hello world")
//	    // ... handle error ...
//
//	    // Wait for the next lifecycle event of the message
//	    ev, err := cli.WaitEvent(ctx, id)
//	    // ... handle error, inspect ev.Type ...
//	}
package client
