package search

import (
	"net/http"
	"time"

	"media-search-service/internal/logging"
)

const apiVersion = "1.0"

type Server struct {
	searcher   Searcher
	log        logging.Logger
	timeout    time.Duration
	production bool
}

func NewServer(searcher Searcher, log logging.Logger, timeout time.Duration, production bool) *Server {
	return &Server{
		searcher:   searcher,
		log:        log,
		timeout:    timeout,
		production: production,
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "media-search-service",
	})
}
