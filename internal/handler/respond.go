package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/easeaico/moodmate/internal/reply"
	"github.com/easeaico/moodmate/internal/translate"
	"github.com/easeaico/moodmate/internal/types"
)

func requestSchema() (*jsonschema.Resolved, error) {
	// Each node must be its own value; the resolver rejects shared subschemas.
	str := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} }
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"user_id":      str(),
			"message_text": str(),
			"language":     str(),
			"media": {
				Types: []string{"null", "object"},
				Properties: map[string]*jsonschema.Schema{
					"mimetype":     str(),
					"originalName": str(),
				},
				Required: []string{"mimetype"},
			},
		},
	}
	return schema.Resolve(nil)
}

func (h *Handler) respond(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	var instance map[string]any
	if err := json.Unmarshal(body, &instance); err != nil {
		writeError(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}
	if err := h.schema.Validate(instance); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req types.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	req.MessageText = h.translateMessage(ctx, req)

	resp, err := h.responder.Respond(ctx, req)
	if err != nil {
		if errors.Is(err, reply.ErrEmptyInput) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to respond", "user_id", req.UserID, "error", err.Error())
		writeError(c, http.StatusInternalServerError, "failed to compose reply")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// translateMessage returns the English text of req, or the original text when
// translation is not needed or fails.
func (h *Handler) translateMessage(ctx context.Context, req types.Request) string {
	if strings.TrimSpace(req.MessageText) == "" || !translate.NeedsTranslation(req.Language) {
		return req.MessageText
	}

	ctx, cancel := context.WithTimeout(ctx, translateTimeout)
	defer cancel()
	translated, err := h.translator.Translate(ctx, req.MessageText, req.Language)
	if err != nil || strings.TrimSpace(translated) == "" {
		if err != nil {
			slog.Warn("translation failed, using original text", "language", req.Language, "error", err.Error())
		}
		return req.MessageText
	}
	return translated
}
