// Package api serves a table of contents and its search over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/itsmostafa/tocview/internal/config"
	"github.com/itsmostafa/tocview/internal/toc"
)

// Server is the HTTP API for one dataset snapshot. The tree is built once
// and shared read-only by every request.
type Server struct {
	router chi.Router
	data   *toc.TOCData
	tree   []*toc.Node
	log    *slog.Logger
	cfg    config.Config
}

// NewServer builds the tree for data and configures routes. Datasets with
// missing references or cycles are rejected.
func NewServer(data *toc.TOCData, log *slog.Logger, cfg config.Config) (*Server, error) {
	tree, err := toc.BuildTreeChecked(*data)
	if err != nil {
		return nil, fmt.Errorf("invalid toc data: %w", err)
	}

	s := &Server{
		data: data,
		tree: tree,
		log:  log,
		cfg:  cfg,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/toc", s.handleData)
	r.Get("/api/toc/tree", s.handleTree)
	r.Get("/api/toc/search", s.handleSearch)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleData returns the raw flat dataset.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.data)
}

// handleTree returns the full built tree.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tree)
}

type searchResponse struct {
	Query   string      `json:"query"`
	Count   int         `json:"count"`
	Summary string      `json:"summary,omitempty"`
	Tree    []*toc.Node `json:"tree"`
}

// handleSearch filters the tree by the trimmed q parameter. A blank query
// returns the full tree with a zero count.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if len([]rune(q)) > s.cfg.MaxQueryLength {
		jsonError(w, fmt.Sprintf("query exceeds %d characters", s.cfg.MaxQueryLength), http.StatusBadRequest)
		return
	}

	result := toc.FilterTree(s.tree, q)
	s.log.Debug("search",
		"query", q,
		"count", result.Count,
		"roots", len(result.Tree),
		"request_id", middleware.GetReqID(r.Context()),
	)

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   q,
		Count:   result.Count,
		Summary: toc.Summary(q, result),
		Tree:    result.Tree,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
