package session

import (
	"context"
	"net"

	"github.com/cbodonnell/hangman/pkg/game"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/words"
)

type NewConnectionHandlerOptions struct {
	Words      words.WordSource
	Tries      int
	Highscores ScoreSubmitter
}

// NewConnectionHandler returns a function that plays one game per
// connection. It blocks until the session ends and closes conn.
func NewConnectionHandler(opts NewConnectionHandlerOptions) func(ctx context.Context, clientID string, conn net.Conn) {
	return func(ctx context.Context, clientID string, conn net.Conn) {
		s, err := New(NewSessionOptions{
			ID:         clientID,
			Conn:       conn,
			Words:      opts.Words,
			Tries:      opts.Tries,
			Highscores: opts.Highscores,
		})
		if err != nil {
			log.Error("Failed to create session for client %s: %v", clientID, err)
			conn.Close()
			return
		}

		log.Info("Starting new game for client %s (%s)", clientID, conn.RemoteAddr())
		status, err := s.Run(ctx)
		if err != nil {
			log.Warn("Game for client %s ended with error: %v", clientID, err)
		}

		if status == game.StatusWon {
			log.Info("Game for client %s ended: %s. Score: %d", clientID, status, s.Game().Score())
		} else {
			log.Info("Game for client %s ended: %s", clientID, status)
		}
	}
}
