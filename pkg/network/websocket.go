package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/hangman/pkg/log"
	"nhooyr.io/websocket"
)

// WSServer serves the line protocol over WebSocket text messages. Each
// accepted socket is bridged to a net.Conn and given to the same
// ConnectionHandler as TCP clients.
type WSServer struct {
	clientManager *ClientManager
	handler       ConnectionHandler
	port          int
	tls           *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewWSServerOptions struct {
	ClientManager *ClientManager
	Handler       ConnectionHandler
	Port          int
	TLS           *TLSConfig
}

// NewWSServer creates a new WebSocket server.
func NewWSServer(opts NewWSServerOptions) *WSServer {
	return &WSServer{
		clientManager: opts.ClientManager,
		handler:       opts.Handler,
		port:          opts.Port,
		tls:           opts.TLS,
	}
}

// Handler returns the HTTP handler that upgrades requests to WebSocket sessions.
func (s *WSServer) Handler(ctx context.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Error("Failed to accept WebSocket connection: %v", err)
			return
		}
		log.Debug("New WebSocket connection from %s", r.RemoteAddr)
		s.handleWSConnection(ctx, wsConn)
	})
}

// Start starts the WebSocket server.
func (s *WSServer) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	server := &http.Server{Addr: addr, Handler: s.Handler(ctx)}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("WebSocket server listening on %s with TLS", addr)
		listenAndServe = func() error {
			return server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("WebSocket server listening on %s", addr)
		listenAndServe = server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("WebSocket server closed")
			return nil
		}
		return fmt.Errorf("websocket server error: %w", err)
	}
	return nil
}

// handleWSConnection handles a WebSocket connection.
func (s *WSServer) handleWSConnection(ctx context.Context, wsConn *websocket.Conn) {
	conn := websocket.NetConn(ctx, wsConn, websocket.MessageText)
	client := s.clientManager.ConnectClient(conn, TransportWebSocket)

	defer func() {
		conn.Close()
		s.clientManager.DisconnectClient(client.ID)
		log.Debug("WebSocket connection closed for client %s", client.ID)
	}()

	s.handler(ctx, client.ID, conn)
}
