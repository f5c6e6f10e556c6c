package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cbodonnell/hangman/pkg/log"
)

// ScoreLister exposes the current highscore ranking.
type ScoreLister interface {
	Scores() []int
}

type highscoresResponse struct {
	Scores []int `json:"scores"`
}

func HandleListHighscores(lister ScoreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if err := json.NewEncoder(w).Encode(highscoresResponse{Scores: lister.Scores()}); err != nil {
			log.Error("failed to encode highscores: %v", err)
			http.Error(w, "Failed to encode highscores", http.StatusInternalServerError)
			return
		}
	}
}
