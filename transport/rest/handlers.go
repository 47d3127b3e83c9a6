package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write ping response", "error", err)
	}
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), r.PathValue("id"))
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
		return
	}

	if err != nil {
		that.logger.Error("failed to get game", "gameID", r.PathValue("id"), "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	results, err := that.uGame.RecentResults(r.Context(), limit)
	if errors.Is(err, apperror.ErrArchiveDisabled) {
		that.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: apperror.ErrArchiveDisabled.Error()})
		return
	}

	if err != nil {
		that.logger.Error("failed to list results", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	that.writeJSON(w, http.StatusOK, results)
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
