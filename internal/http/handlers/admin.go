package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mlb-matchup-service/internal/app/board"
	"github.com/preston-bernstein/mlb-matchup-service/internal/http/requestutil"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
)

// Refresher runs one board rebuild on demand.
type Refresher interface {
	RefreshNow(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	boards    BoardReader
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, boards BoardReader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		boards:    boards,
		token:     token,
		logger:    logger,
	}
}

// RefreshBoard rebuilds the board immediately. Guarded by ADMIN_TOKEN;
// returns 401 if missing/invalid.
func (h *AdminHandler) RefreshBoard(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.refresher.RefreshNow(r.Context()); err != nil {
		logging.Warn(logger, "admin refresh failed", logging.FieldErr, err)
		if errors.Is(err, board.ErrPrerequisite) {
			writeError(w, r, http.StatusBadGateway, err.Error(), logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "refresh failed", logger)
		return
	}

	resp := map[string]any{"status": "ok"}
	if h.boards != nil {
		if b, ok := h.boards.Current(); ok {
			resp["runId"] = b.RunID
			resp["dates"] = len(b.Dates)
			resp["games"] = b.GameCount()
		}
	}
	logging.Info(logger, "admin refresh complete", logging.FieldRunID, resp["runId"])
	writeJSON(w, http.StatusOK, resp, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
