package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/easeaico/moodmate/internal/memory"
	"github.com/easeaico/moodmate/internal/storage"
	"github.com/easeaico/moodmate/internal/types"
)

func (h *Handler) entries(c *gin.Context) (string, []types.ChatEntry, bool) {
	userID := strings.TrimSpace(c.Param("id"))
	if userID == "" {
		writeError(c, http.StatusBadRequest, "user id is required")
		return "", nil, false
	}
	entries, err := h.history.ReadAll(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to read chat log", "user_id", userID, "error", err.Error())
		writeError(c, http.StatusInternalServerError, "failed to read history")
		return "", nil, false
	}
	return userID, entries, true
}

func (h *Handler) stats(c *gin.Context) {
	userID, entries, ok := h.entries(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, memory.Insights(userID, entries))
}

func (h *Handler) greeting(c *gin.Context) {
	userID, entries, ok := h.entries(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":  userID,
		"greeting": memory.Greeting(entries),
	})
}

func (h *Handler) listHistory(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	userID, entries, ok := h.entries(c)
	if !ok {
		return
	}
	if limit > 0 {
		entries = storage.Tail(entries, limit)
	}
	if entries == nil {
		entries = []types.ChatEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"entries": entries,
	})
}

func (h *Handler) clear(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("id"))
	if err := h.history.Clear(c.Request.Context(), userID); err != nil {
		slog.Error("failed to clear chat log", "user_id", userID, "error", err.Error())
		writeError(c, http.StatusInternalServerError, "failed to clear history")
		return
	}
	if h.sessions != nil {
		h.sessions.Forget(userID)
	}
	slog.Info("user history cleared", "user_id", userID)
	c.Status(http.StatusNoContent)
}
