// Package handler exposes the reply pipeline and per-user history over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/easeaico/moodmate/internal/translate"
	"github.com/easeaico/moodmate/internal/types"
)

const translateTimeout = 10 * time.Second

// Responder runs the reply pipeline for one request.
type Responder interface {
	Respond(ctx context.Context, req types.Request) (types.Response, error)
}

// HistoryStore reads and clears a user's chat log.
type HistoryStore interface {
	ReadAll(ctx context.Context, userID string) ([]types.ChatEntry, error)
	Clear(ctx context.Context, userID string) error
}

// SessionForgetter drops a user's in-memory session.
type SessionForgetter interface {
	Forget(userID string)
}

// Handler serves the HTTP API.
type Handler struct {
	responder  Responder
	translator translate.Translator
	history    HistoryStore
	sessions   SessionForgetter
	schema     *jsonschema.Resolved
}

// New returns a Handler. A nil translator leaves messages untranslated.
func New(responder Responder, translator translate.Translator, history HistoryStore, sessions SessionForgetter) (*Handler, error) {
	schema, err := requestSchema()
	if err != nil {
		return nil, err
	}
	if translator == nil {
		translator = translate.Noop{}
	}
	return &Handler{
		responder:  responder,
		translator: translator,
		history:    history,
		sessions:   sessions,
		schema:     schema,
	}, nil
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", h.health)
	r.POST("/respond", h.respond)

	users := r.Group("/users/:id")
	users.GET("/stats", h.stats)
	users.GET("/greeting", h.greeting)
	users.GET("/history", h.listHistory)
	users.DELETE("", h.clear)
	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func writeError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"error": detail})
}
