// Package storage persists the per-user append-only chat log.
package storage

import (
	"context"

	"github.com/easeaico/moodmate/internal/types"
)

// ChatLog is the durable, append-only per-user message log.
type ChatLog interface {
	Append(ctx context.Context, userID string, entry types.ChatEntry) error
	// ReadAll returns entries oldest first, or an empty slice when the user has none.
	ReadAll(ctx context.Context, userID string) ([]types.ChatEntry, error)
}

// AdminLog adds the operator-only operations to ChatLog.
type AdminLog interface {
	ChatLog
	Users(ctx context.Context) ([]string, error)
	Clear(ctx context.Context, userID string) error
	Close() error
}

// Tail returns the last n entries.
func Tail(entries []types.ChatEntry, n int) []types.ChatEntry {
	if n <= 0 {
		return nil
	}
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
