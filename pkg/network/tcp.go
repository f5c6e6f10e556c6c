package network

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/cbodonnell/hangman/pkg/log"
)

// ConnectionHandler plays out a whole connection. It is called in its own
// goroutine and must close conn before returning.
type ConnectionHandler func(ctx context.Context, clientID string, conn net.Conn)

// TCPServer represents a TCP server.
type TCPServer struct {
	clientManager *ClientManager
	handler       ConnectionHandler
	port          int
	listener      net.Listener
	ready         chan struct{}
}

type NewTCPServerOptions struct {
	ClientManager *ClientManager
	Handler       ConnectionHandler
	Port          int
}

// NewTCPServer creates a new TCP server.
func NewTCPServer(opts NewTCPServerOptions) *TCPServer {
	return &TCPServer{
		clientManager: opts.ClientManager,
		handler:       opts.Handler,
		port:          opts.Port,
		ready:         make(chan struct{}),
	}
}

// Start listens on the configured port and serves connections until ctx
// is canceled. Each connection runs in its own goroutine.
func (s *TCPServer) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		close(s.ready)
		return fmt.Errorf("failed to listen on TCP port %d: %w", s.port, err)
	}
	s.listener = listener
	close(s.ready)

	log.Info("TCP server listening on %s", listener.Addr().String())

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				log.Info("TCP server closed")
				return nil
			}
			log.Error("Failed to accept TCP connection: %v", err)
			continue
		}

		go s.handleTCPConnection(ctx, conn)
	}
}

// Addr blocks until Start has listened and returns the listening address,
// or nil if listening failed.
func (s *TCPServer) Addr() net.Addr {
	<-s.ready
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// handleTCPConnection handles a TCP connection.
func (s *TCPServer) handleTCPConnection(ctx context.Context, conn net.Conn) {
	client := s.clientManager.ConnectClient(conn, TransportTCP)
	log.Debug("TCP connection established for client %s from %s (%d connected)", client.ID, conn.RemoteAddr(), s.clientManager.Count())

	defer func() {
		conn.Close()
		s.clientManager.DisconnectClient(client.ID)
		log.Debug("TCP connection closed for client %s", client.ID)
	}()

	s.handler(ctx, client.ID, conn)
}
