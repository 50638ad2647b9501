package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/mlb-matchup-service/internal/app/board"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/matchups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
	"github.com/preston-bernstein/mlb-matchup-service/internal/poller"
	"github.com/preston-bernstein/mlb-matchup-service/internal/render"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// BoardReader exposes the latest published board.
type BoardReader interface {
	Current() (board.Board, bool)
	DateBoard(date string) (board.DateBoard, bool)
	Game(date, id string) (matchups.MatchupResult, bool)
	Location() *time.Location
}

// Handler wires HTTP routes to the board service.
type Handler struct {
	boards   BoardReader
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(boards BoardReader, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		boards:   boards,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Board returns the latest board as JSON.
func (h *Handler) Board(w nethttp.ResponseWriter, r *nethttp.Request) {
	b, ok := h.current()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "board not built yet", h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served board",
		logging.FieldRunID, b.RunID,
		logging.FieldCount, b.GameCount(),
	)
	writeJSON(w, nethttp.StatusOK, b, h.logger)
}

// BoardMarkdown renders the latest board as the markdown dashboard.
func (h *Handler) BoardMarkdown(w nethttp.ResponseWriter, r *nethttp.Request) {
	b, ok := h.current()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "board not built yet", h.logger)
		return
	}
	writeMarkdown(w, nethttp.StatusOK, render.MarkdownString(b, h.location()), h.logger)
}

// BoardByDate returns one date of the latest board.
func (h *Handler) BoardByDate(w nethttp.ResponseWriter, r *nethttp.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	if _, built := h.current(); !built {
		writeError(w, r, nethttp.StatusServiceUnavailable, "board not built yet", h.logger)
		return
	}
	d, found := h.boards.DateBoard(date)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "date not on board", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, d, h.logger)
}

// GameByID returns one evaluated game.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	id, err := url.PathUnescape(chi.URLParam(r, "gameID"))
	if err != nil || strings.TrimSpace(id) == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	if h.boards == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "board not built yet", h.logger)
		return
	}
	game, found := h.boards.Game(date, id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) current() (board.Board, bool) {
	if h.boards == nil {
		return board.Board{}, false
	}
	return h.boards.Current()
}

func (h *Handler) location() *time.Location {
	if h.boards == nil {
		return time.UTC
	}
	return h.boards.Location()
}

func (h *Handler) dateParam(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return "", false
	}
	return date, true
}
