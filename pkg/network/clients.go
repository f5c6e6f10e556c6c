package network

import (
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transport names the listener a client connected through.
type Transport string

const (
	TransportTCP       Transport = "tcp"
	TransportWebSocket Transport = "websocket"
)

// Client represents a connected client
type Client struct {
	ID          string
	Conn        net.Conn
	Transport   Transport
	ConnectedAt time.Time
}

// ClientManager tracks connected clients so they can be counted and
// closed together on shutdown.
type ClientManager struct {
	clients     map[string]*Client
	clientsLock sync.RWMutex
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[string]*Client),
	}
}

// ConnectClient registers a connection and returns the new client.
func (cm *ClientManager) ConnectClient(conn net.Conn, transport Transport) *Client {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	client := &Client{
		ID:          uuid.NewString(),
		Conn:        conn,
		Transport:   transport,
		ConnectedAt: time.Now(),
	}
	cm.clients[client.ID] = client
	return client
}

// DisconnectClient removes a client from the manager
func (cm *ClientManager) DisconnectClient(clientID string) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()
	delete(cm.clients, clientID)
}

func (cm *ClientManager) Exists(clientID string) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

// Count returns the number of connected clients.
func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// CloseAll closes every connected client's connection. Clients remove
// themselves once their handler returns.
func (cm *ClientManager) CloseAll() {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	for _, client := range cm.clients {
		client.Conn.Close()
	}
}
