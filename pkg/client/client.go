package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// TCPClient plays hangman against a server: every line the server sends is
// printed and answered with one line of user input.
type TCPClient struct {
	serverAddr string
	in         io.Reader
	out        io.Writer
}

type NewTCPClientOptions struct {
	ServerAddr string
	In         io.Reader
	Out        io.Writer
}

// NewTCPClient creates a new TCP client.
func NewTCPClient(opts NewTCPClientOptions) *TCPClient {
	return &TCPClient{
		serverAddr: opts.ServerAddr,
		in:         opts.In,
		out:        opts.Out,
	}
}

// Start connects to the server and plays until the server closes the stream.
func (c *TCPClient) Start(ctx context.Context) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", c.serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	fmt.Fprintf(c.out, "You are now playing a game of hangman on the server %s\n", c.serverAddr)
	return Play(conn, c.in, c.out)
}

// Play relays server lines to out and input lines to the server. It returns
// nil when either the server or the input ends.
func Play(conn io.ReadWriter, in io.Reader, out io.Writer) error {
	server := bufio.NewScanner(conn)
	input := bufio.NewScanner(in)

	for server.Scan() {
		fmt.Fprintln(out, server.Text())

		if !input.Scan() {
			return input.Err()
		}
		if _, err := fmt.Fprintln(conn, input.Text()); err != nil {
			if isServerGone(err) {
				return nil
			}
			return fmt.Errorf("failed to send guess: %w", err)
		}
	}

	if err := server.Err(); err != nil && !isServerGone(err) {
		return fmt.Errorf("failed to read from server: %w", err)
	}
	return nil
}

func isServerGone(err error) bool {
	return errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET)
}
