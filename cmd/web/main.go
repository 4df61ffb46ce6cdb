package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mkalb/slither/internal/config"
	"github.com/mkalb/slither/internal/score"
)

const (
	defaultHost       = "0.0.0.0"
	defaultPort       = "8080"
	defaultScoresPath = "high_scores.json"
)

//go:embed index.html
var htmlPage string

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	store := score.NewStore(config.GetEnv("SNAKE_SCORES", defaultScoresPath))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := strings.Replace(htmlPage, "{{.SSHHost}}", sshHost, -1)
		fmt.Fprint(w, page)
	})

	// The same leaderboard the game writes, for the landing page.
	http.HandleFunc("/scores", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		entries := store.Load()
		if entries == nil {
			entries = []score.Entry{}
		}
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Printf("failed to encode scores: %v", err)
		}
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Starting web server on http://%s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
