// Package server exposes a parsed chart over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/ingyamilmolinar/lanechart/core/model"
	game_log "github.com/ingyamilmolinar/lanechart/internal/log"
	"github.com/rs/cors"
)

const shutdownTimeout = 5 * time.Second

// Server serves one immutable chart.
type Server struct {
	chart  model.Chart
	logger *game_log.Logger
	router *mux.Router
}

func New(chart model.Chart, logger *game_log.Logger) *Server {
	if logger == nil {
		logger = game_log.Discard()
	}
	if chart.Notes == nil {
		chart.Notes = []model.Note{}
	}
	if chart.Sections == nil {
		chart.Sections = []float64{}
	}
	s := &Server{chart: chart, logger: logger.With("SERVER")}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chart", s.handleChart).Methods(http.MethodGet)
	router.HandleFunc("/chart/notes/{index:[0-9]+}", s.handleNote).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router = router
	return s
}

// Handler returns the router wrapped with permissive CORS so browser
// builds of the viewer can fetch from another origin.
func (s *Server) Handler() http.Handler {
	return cors.Default().Handler(s.router)
}

// ListenAndServe blocks until ctx is done or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Infof("Serving %d notes on %s", len(s.chart.Notes), addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

/* ───────────────────────── handlers ───────────────────────── */

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.chart)
}

func (s *Server) handleNote(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || idx < 0 || idx >= len(s.chart.Notes) {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, s.chart.Notes[idx])
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("Could not encode response: %v", err)
	}
}
